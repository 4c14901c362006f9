package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://dummyjson.com/auth/login", c.AuthURL)
	assert.Equal(t, "https://dummyjson.com/auth/me", c.ProfileURL)
	assert.Equal(t, "gophprofile.db", c.StorePath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Zero(t, c.TokenTTLMinutes)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsWithoutSources(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Chdir(t.TempDir())

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, DefaultAuthURL, cfg.AuthURL)
	assert.Equal(t, DefaultProfileURL, cfg.ProfileURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Chdir(t.TempDir())

	jsonPath := writeTempJSON(t, "", "cfg.json", map[string]any{
		"auth_url":    "http://json/login",
		"profile_url": "http://json/me",
		"log_level":   "warn",
	})
	t.Setenv("GOPHPROFILE_PROFILE_URL", "http://env/me")
	t.Setenv("GOPHPROFILE_LOG_LEVEL", "error")

	os.Args = []string{"testbin", "-c", jsonPath, "-log", "debug"}

	cfg := LoadConfig()

	assert.Equal(t, "http://json/login", cfg.AuthURL, "json overrides defaults")
	assert.Equal(t, "http://env/me", cfg.ProfileURL, "env overrides json")
	assert.Equal(t, "debug", cfg.LogLevel, "flags override env")
}
