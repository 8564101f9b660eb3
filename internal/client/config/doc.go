// Package config loads runtime configuration for the artvault CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file
//     (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the gallery API
//	-d string   directory for client-local data (settings database)
//
// Supported environment variables
//
//	ARTVAULT_API_URL    base URL of the gallery API
//	ARTVAULT_DATA_DIR   directory for client-local data
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "200ms" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://127.0.0.1:5000",
//	  "data_dir": "/home/me/.artvault",
//	  "progress_tick": "200ms",
//	  "observation_delay": "2s"
//	}
package config
