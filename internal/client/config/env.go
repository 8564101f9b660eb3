package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	envAPIBaseURL = "ARTVAULT_API_URL"
	envDataDir    = "ARTVAULT_DATA_DIR"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; godotenv never
// overrides variables that are already set in the process environment.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
}
