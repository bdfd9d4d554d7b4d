package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.Fetch.UserAgent)
	assert.Equal(t, 0, cfg.Fetch.Retries)
	assert.Equal(t, 4, cfg.Fetch.Concurrency)
	assert.Equal(t, 512, cfg.Cache.Size)
	assert.Equal(t, ":3000", cfg.Server.Addr())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	yaml := "fetch:\n  timeout: 2s\n  concurrency: 8\nserver:\n  port: 8080\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	t.Setenv("HEADLINK_SERVER_PORT", "9090")
	t.Setenv("HEADLINK_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, 8, cfg.Fetch.Concurrency)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{
		Fetch:  FetchConfig{Timeout: time.Second, Concurrency: 1},
		Server: ServerConfig{Port: 3000},
	}
	assert.NoError(t, base.Validate())

	bad := base
	bad.Fetch.Timeout = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.Fetch.Concurrency = 0
	assert.Error(t, bad.Validate())

	bad = base
	bad.Fetch.Retries = -1
	assert.Error(t, bad.Validate())

	bad = base
	bad.Server.Port = 70000
	assert.Error(t, bad.Validate())
}
