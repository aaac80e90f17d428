package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger = zap.NewNop().Sugar()

// LogLevel represents different log levels
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// UnmarshalText parses a level name. Unknown names fall back to info.
func (l *LogLevel) UnmarshalText(text []byte) error {
	*l = ParseLevel(string(text))
	return nil
}

// String returns the lower-case level name
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// ParseLevel converts a level name into a LogLevel
func ParseLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Config holds logger configuration
type Config struct {
	Level      LogLevel
	OutputPath string
	Format     string // "json" or "text"
}

// Init initializes the structured logger
func Init() error {
	return InitWithConfig(Config{
		Level:      LevelInfo,
		OutputPath: "stdout",
		Format:     "json",
	})
}

// InitWithConfig initializes logger with custom config
func InitWithConfig(config Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

// New builds a logger without installing it globally
func New(config Config) (*zap.SugaredLogger, error) {
	output := config.OutputPath
	if output == "" {
		output = "stdout"
	}
	if output != "stdout" && output != "stderr" {
		if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
			return nil, err
		}
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(config.Level))
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if config.Format == "json" {
		cfg.Encoding = "json"
	} else {
		cfg.Encoding = "console"
	}

	l, err := cfg.Build(zap.AddCaller(), zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Close flushes buffered entries
func Close() error {
	err := globalLogger.Sync()
	// Syncing a terminal returns EINVAL on some platforms.
	if err != nil && (strings.Contains(err.Error(), "invalid argument") || strings.Contains(err.Error(), "inappropriate ioctl")) {
		return nil
	}
	return err
}

// WithFields returns a logger with additional fields
func WithFields(fields ...any) *zap.SugaredLogger {
	return globalLogger.With(sanitize(fields)...)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	globalLogger.Debugw(msg, sanitize(args)...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	globalLogger.Infow(msg, sanitize(args)...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	globalLogger.Warnw(msg, sanitize(args)...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	globalLogger.Errorw(msg, sanitize(args)...)
}

// Infof logs an info message with formatting
func Infof(format string, args ...any) {
	globalLogger.Info(fmt.Sprintf(format, args...))
}

// Fatal logs a fatal message and exits
func Fatal(msg string, args ...any) {
	globalLogger.Errorw(msg, sanitize(args)...)
	_ = Close()
	os.Exit(1)
}

// GetLogger returns the global logger instance
func GetLogger() *zap.SugaredLogger {
	return globalLogger
}

// sanitize redacts values whose key looks like a credential
func sanitize(kv []any) []any {
	if len(kv) < 2 {
		return kv
	}
	out := make([]any, len(kv))
	copy(out, kv)
	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if ok && isSecretKey(key) {
			out[i+1] = "[REDACTED]"
		}
	}
	return out
}

func isSecretKey(key string) bool {
	key = strings.ToLower(key)
	for _, marker := range []string{"token", "api_key", "apikey", "password", "secret"} {
		if strings.Contains(key, marker) {
			return true
		}
	}
	return false
}
