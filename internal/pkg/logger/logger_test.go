package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_FieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core))

	l.Debug("consultando pessoas", map[string]interface{}{"page": 2, "limit": 10})
	l.Warn("tag desconhecida", map[string]interface{}{"tag": "Diáconos"})
	l.Error("falha no banco", errors.New("connection refused"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "consultando pessoas", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.EqualValues(t, 2, ctx["page"])
	assert.EqualValues(t, 10, ctx["limit"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "Diáconos", entries[1].ContextMap()["tag"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "connection refused", entries[2].ContextMap()["error"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	assert.NotPanics(t, func() {
		l.Info("ok", nil)
		l.Error("erro", nil)
	})
}
