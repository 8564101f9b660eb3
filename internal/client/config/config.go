package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the artvault CLI.
//
// Fields:
//   - APIBaseURL: base URL of the gallery API.
//   - DataDir: directory for client-local data (the settings database).
//   - ProgressTick: interval between simulated upload progress increments.
//   - ObservationDelay: how long a finished upload stays on screen before
//     the form resets.
type Config struct {
	APIBaseURL       string
	DataDir          string
	ProgressTick     time.Duration
	ObservationDelay time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:5000"
	c.DataDir = defaultDataDir()
	c.ProgressTick = 200 * time.Millisecond
	c.ObservationDelay = 2 * time.Second
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".artvault"
	}
	return filepath.Join(home, ".artvault")
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags
// (if present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
