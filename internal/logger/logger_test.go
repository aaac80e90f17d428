package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useFileLogger(t *testing.T, level LogLevel) string {
	t.Helper()
	previous := globalLogger
	t.Cleanup(func() { globalLogger = previous })

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, InitWithConfig(Config{Level: level, OutputPath: path, Format: "json"}))
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	require.NoError(t, globalLogger.Sync())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		" warn ":  LevelWarn,
		"error":   LevelError,
		"verbose": LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLogLevel_UnmarshalText(t *testing.T) {
	var l LogLevel
	require.NoError(t, l.UnmarshalText([]byte("error")))
	assert.Equal(t, LevelError, l)
	assert.Equal(t, "error", l.String())
}

func TestInfo_WritesStructuredFields(t *testing.T) {
	path := useFileLogger(t, LevelInfo)

	Info("reading resolved", "cohort", "esoteric_masters", "token", "jung")
	out := readLog(t, path)

	assert.Contains(t, out, `"msg":"reading resolved"`)
	assert.Contains(t, out, `"cohort":"esoteric_masters"`)
}

func TestInfo_RedactsSecrets(t *testing.T) {
	path := useFileLogger(t, LevelInfo)

	Info("config loaded", "telegram_token", "123456:very-secret", "gemini_api_key", "AIza-secret", "state_backend", "redis")
	out := readLog(t, path)

	assert.NotContains(t, out, "very-secret")
	assert.NotContains(t, out, "AIza-secret")
	assert.Contains(t, out, `"telegram_token":"[REDACTED]"`)
	assert.Contains(t, out, `"state_backend":"redis"`)
}

func TestLevelFiltering(t *testing.T) {
	path := useFileLogger(t, LevelWarn)

	Debug("hidden debug")
	Info("hidden info")
	Warn("visible warning")
	Error("visible error")
	out := readLog(t, path)

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible warning")
	assert.Contains(t, out, "visible error")
}

func TestDefaultLoggerIsSafeBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("no logger configured yet", "k", "v")
		WithFields("component", "test").Debug("still fine")
	})
}
