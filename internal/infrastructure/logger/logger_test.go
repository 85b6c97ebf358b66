package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapAdapter_WritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapAdapter(zap.New(core))

	l.WithFields(map[string]interface{}{"quote_id": "q-1"}).
		WithError(errors.New("boom")).
		Warn("[quote][usecase] notify failed", map[string]interface{}{"attempt": 1})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		e := entries[0]
		assert.Equal(t, zapcore.WarnLevel, e.Level)
		assert.Equal(t, "[quote][usecase] notify failed", e.Message)
		ctx := e.ContextMap()
		assert.Equal(t, "q-1", ctx["quote_id"])
		assert.Equal(t, "boom", ctx["error"])
		assert.EqualValues(t, 1, ctx["attempt"])
	}
}

func TestNew_Levels(t *testing.T) {
	assert.True(t, New("debug", "console").Core().Enabled(zapcore.DebugLevel))
	assert.False(t, New("info", "json").Core().Enabled(zapcore.DebugLevel))
	assert.False(t, New("error", "json").Core().Enabled(zapcore.WarnLevel))
	assert.False(t, New("bogus", "json").Core().Enabled(zapcore.DebugLevel))
}

func TestNoOpLogger(t *testing.T) {
	NewNoOpLogger().Info("ignored", nil)
	NewNoOpLogger().WithError(nil).WithFields(map[string]interface{}{"k": "v"}).Warn("ignored", nil)
}
