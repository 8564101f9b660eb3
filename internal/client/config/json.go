package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/nkartsev/artvault/internal/flagx"
	"github.com/nkartsev/artvault/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "200ms" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	DataDir          string         `json:"data_dir"`
	ProgressTick     timex.Duration `json:"progress_tick"`
	ObservationDelay timex.Duration `json:"observation_delay"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is given, nothing is loaded.
// Only fields present in the file override the current values.
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.ProgressTick.Duration != 0 {
		cfg.ProgressTick = time.Duration(jc.ProgressTick.Duration)
	}
	if jc.ObservationDelay.Duration != 0 {
		cfg.ObservationDelay = time.Duration(jc.ObservationDelay.Duration)
	}
}
