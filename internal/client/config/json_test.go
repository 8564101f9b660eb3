package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":  "http://gallery.example:9000",
		"data_dir":      "/tmp/artvault",
		"progress_tick": "100ms",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://gallery.example:9000", cfg.APIBaseURL)
		assert.Equal(t, "/tmp/artvault", cfg.DataDir)
		assert.Equal(t, 100*time.Millisecond, cfg.ProgressTick)
	})

	t.Run("absent fields keep current values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"api_base_url": "http://other.example",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{DataDir: "/keep/me", ObservationDelay: 5 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "http://other.example", cfg.APIBaseURL)
		assert.Equal(t, "/keep/me", cfg.DataDir)
		assert.Equal(t, 5*time.Second, cfg.ObservationDelay)
	})

	t.Run("no CONFIG and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{APIBaseURL: "http://defaults:1234"}
		parseJson(cfg)

		assert.Equal(t, "http://defaults:1234", cfg.APIBaseURL)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
