package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "https://fal.run", cfg.Fal.SyncBaseURL)
	assert.Equal(t, "https://queue.fal.run", cfg.Fal.QueueBaseURL)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.True(t, cfg.Storage.Enabled)
}

func TestLoadConfig_EnvKeyResolution(t *testing.T) {
	t.Setenv("FAL_KEY", "key-from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "key-from-env", cfg.Fal.APIKey)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	os.Setenv("SERVER_PORT", "9999")
	defer os.Unsetenv("SERVER_PORT")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
}
