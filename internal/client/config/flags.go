package config

import (
	"flag"
	"os"

	"github.com/nkartsev/artvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the gallery API (default from Config)
//	-d string   directory for client-local data (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the gallery API")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory for client-local data")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
