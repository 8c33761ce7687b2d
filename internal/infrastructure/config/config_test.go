package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Truth and Dare API", cfg.App.Name)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "data/truths.json", cfg.Data.TruthsFile)
	assert.Equal(t, "data/dares.json", cfg.Data.DaresFile)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "*", cfg.Security.CORSAllowedOrigins)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DATA_TRUTHS_FILE", "/srv/content/truths.json")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "/srv/content/truths.json", cfg.Data.TruthsFile)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	viper.Reset()
	t.Setenv("SERVER_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server port")
}

func TestServerAddress(t *testing.T) {
	cfg := ServerConfig{Host: "127.0.0.1", Port: 8000}
	assert.Equal(t, "127.0.0.1:8000", cfg.Address())
}
