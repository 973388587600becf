package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.StoragePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUARRY_DEBUG", "true")
	t.Setenv("QUARRY_STORAGE_PATH", "/tmp/quarry-test")
	t.Setenv("QUARRY_REQUEST_TIMEOUT", "5s")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "/tmp/quarry-test", cfg.StoragePath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("QUARRY_DEBUG", "")
	t.Setenv("QUARRY_STORAGE_PATH", "")
	t.Setenv("QUARRY_REQUEST_TIMEOUT", "")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.StoragePath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestAppRequestTimeout_ComesFromConfig(t *testing.T) {
	a := &App{config: &Config{RequestTimeout: 45 * time.Second}}
	assert.Equal(t, 45*time.Second, a.RequestTimeout())
}

func TestConfigFromEnvInvalidTimeout(t *testing.T) {
	t.Setenv("QUARRY_REQUEST_TIMEOUT", "not-a-duration")

	_, err := ConfigFromEnv()
	require.Error(t, err)
}
