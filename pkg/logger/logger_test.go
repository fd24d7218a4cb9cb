package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := FromZap(zap.New(core))

	log.With("operation", "get_forecast").Error("Request failed", "status", 500)
	log.Debug("dropped below level")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Request failed", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "get_forecast", fields["operation"])
	assert.EqualValues(t, 500, fields["status"])
}

func TestNewLoggerLevels(t *testing.T) {
	debug := NewLogger("yieldboard", "test", "debug")
	assert.True(t, debug.logger.Desugar().Core().Enabled(zapcore.DebugLevel))

	fallback := NewLogger("yieldboard", "test", "loud")
	assert.False(t, fallback.logger.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, fallback.logger.Desugar().Core().Enabled(zapcore.InfoLevel))
}
