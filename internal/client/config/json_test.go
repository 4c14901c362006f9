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
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"auth_url":          "http://example/login",
		"profile_url":       "http://example/me",
		"store_path":        "/var/lib/gp/session.db",
		"request_timeout":   "3s",
		"token_ttl_minutes": 60,
		"log_level":         "debug",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"request_timeout": "0s",
	})

	t.Run("loads every field", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, Config{
			AuthURL:         "http://example/login",
			ProfileURL:      "http://example/me",
			StorePath:       "/var/lib/gp/session.db",
			RequestTimeout:  3 * time.Second,
			TokenTTLMinutes: 60,
			LogLevel:        "debug",
		}, *cfg)
	})

	t.Run("partial file overrides only named fields", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, DefaultAuthURL, cfg.AuthURL)
		assert.Zero(t, cfg.RequestTimeout)
	})

	t.Run("no flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{AuthURL: "keep", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "keep", cfg.AuthURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
