package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportstat/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "GIN_MODE", "SESSION_TTL", "DATA_FILE", "NUMERIC_THRESHOLD", "COERCE_TEXT_COLUMNS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.GinMode)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.True(t, cfg.Data.CoerceText)
	assert.Equal(t, 0.5, cfg.Data.NumericThreshold)
	assert.Equal(t, 16.0, cfg.Plot.WidthCm)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("SESSION_TTL", "5m")
	t.Setenv("COERCE_TEXT_COLUMNS", "false")
	t.Setenv("NUMERIC_THRESHOLD", "0.8")
	t.Setenv("DATA_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.GinMode)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.False(t, cfg.Data.CoerceText)
	assert.Equal(t, 0.8, cfg.Data.NumericThreshold)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("DATA_FILE", "")
	t.Setenv("GIN_MODE", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestLoadRejectsMissingDataFile(t *testing.T) {
	t.Setenv("GIN_MODE", "")
	t.Setenv("DATA_FILE", "/definitely/not/here.csv")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATA_FILE")
}

func TestUnparseableValuesFallBack(t *testing.T) {
	t.Setenv("DATA_FILE", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("PLOT_WIDTH_CM", "wide")
	t.Setenv("SESSION_TTL", "forever")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 16.0, cfg.Plot.WidthCm)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
}
