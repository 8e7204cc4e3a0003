package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewReopenableWriteSyncer(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("successful creation", func(t *testing.T) {
		logFilePath := filepath.Join(tempDir, "app.log")
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		require.NotNil(t, ws)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("creates missing directory", func(t *testing.T) {
		logFilePath := filepath.Join(tempDir, "nested", "log", "dashboard.log")
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		defer ws.Close()
		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("path is a directory", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(tempDir)
		assert.Error(t, err)
		assert.Nil(t, ws)
	})
}

func TestReopenableWriteSyncer_WriteAndReload(t *testing.T) {
	tempDir := t.TempDir()
	logFilePath := filepath.Join(tempDir, "app.log")
	rotatedLogFilePath := filepath.Join(tempDir, "app.log.1")

	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Write([]byte("firstLine\n"))
	require.NoError(t, err)

	require.NoError(t, os.Rename(logFilePath, rotatedLogFilePath))
	require.NoError(t, ws.Reload())

	_, err = ws.Write([]byte("secondLine\n"))
	require.NoError(t, err)
	require.NoError(t, ws.Sync())

	contentOld, err := os.ReadFile(rotatedLogFilePath)
	require.NoError(t, err)
	assert.Equal(t, "firstLine\n", string(contentOld))

	contentNew, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Equal(t, "secondLine\n", string(contentNew))
}

func TestNewLogger(t *testing.T) {
	ws, err := NewReopenableWriteSyncer(filepath.Join(t.TempDir(), "dashboard.log"))
	require.NoError(t, err)
	defer ws.Close()

	testCases := []struct {
		name          string
		logLevel      string
		expectedLevel zapcore.Level
		disabledLevel zapcore.Level
	}{
		{"debug level", "debug", zap.DebugLevel, zap.DebugLevel - 1},
		{"info level", "info", zap.InfoLevel, zap.DebugLevel},
		{"warn level", "warn", zap.WarnLevel, zap.InfoLevel},
		{"error level", "error", zap.ErrorLevel, zap.WarnLevel},
		{"invalid level", "invalid", zap.InfoLevel, zap.DebugLevel},
		{"empty level", "", zap.InfoLevel, zap.DebugLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogger("dashboard", tc.logLevel, ws)
			require.NotNil(t, logger)
			assert.True(t, logger.Core().Enabled(tc.expectedLevel), "expected level %s should be enabled", tc.expectedLevel)
			assert.False(t, logger.Core().Enabled(tc.disabledLevel), "level %s should be disabled", tc.disabledLevel)
		})
	}
}

func TestNewLogger_WritesServiceName(t *testing.T) {
	logFilePath := filepath.Join(t.TempDir(), "dashboard.log")
	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	logger := NewLogger("dashboard", "info", ws)
	logger.Info("check finished")
	require.NoError(t, ws.Sync())

	content, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"service.name":"dashboard"`)
	assert.Contains(t, string(content), `"msg":"check finished"`)
}
