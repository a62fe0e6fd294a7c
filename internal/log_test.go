package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LogLevelError, ParseLogLevel("ERROR"))
	assert.Equal(t, LogLevelWarn, ParseLogLevel("warn"))
	assert.Equal(t, LogLevelDebug, ParseLogLevel(" Debug "))
	assert.Equal(t, LogLevelTrace, ParseLogLevel("TRACE"))
	assert.Equal(t, LogLevelInfo, ParseLogLevel(""))
	assert.Equal(t, LogLevelInfo, ParseLogLevel("verbose"))
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LogLevelWarn)

	logger.Info("loaded %d rows", 10)
	logger.Debug("ignored")
	assert.Empty(t, buf.String())

	logger.Warn("no applicable columns for %s", "Football")
	assert.Contains(t, buf.String(), "no applicable columns for Football")
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LogLevelInfo).With("session", "abc")

	logger.Info("analysis complete")
	assert.Contains(t, buf.String(), `"session":"abc"`)
	assert.Equal(t, LogLevelInfo, logger.GetLevel())
}
