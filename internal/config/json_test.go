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

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()

	t.Run("loads from json", func(t *testing.T) {
		path := writeTempJSON(t, dir, "full.json", map[string]any{
			"store_uri":     "postgres://u:p@db:5432/dietdash",
			"database_name": "other",
			"api_endpoint":  "http://api.local",
			"bcrypt_cost":   12,
			"store_timeout": "3s",
			"log_level":     "debug",
		})
		os.Args = []string{"dietdash", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, &Config{
			StoreURI:     "postgres://u:p@db:5432/dietdash",
			DatabaseName: "other",
			APIEndpoint:  "http://api.local",
			BcryptCost:   12,
			StoreTimeout: 3 * time.Second,
			LogLevel:     "debug",
		}, cfg)
	})

	t.Run("absent fields keep current values", func(t *testing.T) {
		path := writeTempJSON(t, dir, "partial.json", map[string]any{"store_timeout": 2000000000})
		os.Args = []string{"dietdash", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		cfg.APIEndpoint = "http://keep"
		parseJson(cfg)

		assert.Equal(t, "memory://", cfg.StoreURI)
		assert.Equal(t, "http://keep", cfg.APIEndpoint)
		assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
	})

	t.Run("explicit empty api_endpoint clears it", func(t *testing.T) {
		path := writeTempJSON(t, dir, "clear.json", map[string]any{"api_endpoint": ""})
		os.Args = []string{"dietdash", "-c", path}

		cfg := &Config{APIEndpoint: "http://old"}
		parseJson(cfg)
		assert.Empty(t, cfg.APIEndpoint)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"dietdash"}

		cfg := &Config{StoreURI: "memory://", LogLevel: "warn"}
		parseJson(cfg)
		assert.Equal(t, &Config{StoreURI: "memory://", LogLevel: "warn"}, cfg)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"dietdash", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"dietdash", "-c", filepath.Join(dir, "absent.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
