package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "logs/coachpad.log", cfg.LogPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "en", cfg.Language)
	assert.Empty(t, cfg.ThemePath)
	assert.Equal(t, 15*time.Second, cfg.Auth.Timeout)
	assert.Equal(t, "/dev/input/event1", cfg.Back.DevicePath)
	assert.True(t, cfg.Auth.Demo())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("LANGUAGE", "es")
	t.Setenv("AUTH_URL", "https://api.example.com")
	t.Setenv("AUTH_TIMEOUT", "5s")
	t.Setenv("BACK_DEVICE_PATH", "/dev/input/event2")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, "https://api.example.com", cfg.Auth.URL)
	assert.Equal(t, 5*time.Second, cfg.Auth.Timeout)
	assert.Equal(t, "/dev/input/event2", cfg.Back.DevicePath)
	assert.False(t, cfg.Auth.Demo())
}

func TestInvalidDuration(t *testing.T) {
	t.Setenv("AUTH_TIMEOUT", "not-a-duration")

	_, err := New()
	assert.Error(t, err)
}
