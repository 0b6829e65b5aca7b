package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDebugEnabled(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("TODO_DEBUG", "")
		assert.False(t, DebugEnabled())
	})

	t.Run("enabled when variable set", func(t *testing.T) {
		t.Setenv("TODO_DEBUG", "1")
		assert.True(t, DebugEnabled())
	})
}

func TestNew(t *testing.T) {
	t.Run("default logger filters debug output", func(t *testing.T) {
		t.Setenv("TODO_DEBUG", "")
		logger := New()
		require.NotNil(t, logger)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("debug logger passes debug output", func(t *testing.T) {
		t.Setenv("TODO_DEBUG", "1")
		logger := New()
		require.NotNil(t, logger)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	require.NotNil(t, logger)
	// Must be safe to use without any sink configured.
	logger.Warn("discarded")
}
