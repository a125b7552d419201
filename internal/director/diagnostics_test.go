package director

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogDiagnostics(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	broken := Default()
	broken.TextColor = String("white")

	failed := LogDiagnostics(logger, []*Config{Default(), broken, nil})
	assert.Equal(t, 2, failed)

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "director config valid", entries[0].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, int64(1), entries[1].ContextMap()["count"])
	assert.Equal(t, int64(33), entries[2].ContextMap()["count"])
}

func TestLogDiagnosticsNilLogger(t *testing.T) {
	assert.Equal(t, 0, LogDiagnostics(nil, []*Config{Default()}))
}

func TestLogSceneAttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	issues := Check(&Config{}, 3)
	assert.False(t, LogScene(zap.New(core), 3, issues, zap.Int("id", 42)))
	assert.True(t, LogScene(zap.New(core), 4, nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	fields := entries[0].ContextMap()
	assert.Equal(t, "director config has issues", entries[0].Message)
	assert.Equal(t, int64(3), fields["scene"])
	assert.Equal(t, int64(42), fields["id"])
	assert.Equal(t, int64(33), fields["count"])
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, int64(4), entries[1].ContextMap()["scene"])
}
