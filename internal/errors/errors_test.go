package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestAppErrorFormatting(t *testing.T) {
	plain := New(ErrorTypeValidation, "VALIDATION", "name is empty")
	assert.Equal(t, "validation: name is empty", plain.Error())
	assert.Contains(t, plain.Source, "errors_test.go")

	cause := fmt.Errorf("dial tcp: refused")
	wrapped := Wrap(cause, ErrorTypeState, "STATE_ERROR", "load session")
	assert.Equal(t, "state: load session (internal: dial tcp: refused)", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestAppErrorIsMatchesTypeAndCode(t *testing.T) {
	err := NewTimeoutError("narrator")
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.False(t, errors.Is(err, ErrExternalAPI))

	outer := fmt.Errorf("synthesize: %w", NewExternalAPIError(errors.New("quota"), "Gemini"))
	assert.True(t, errors.Is(outer, ErrExternalAPI))
}

func TestLogFieldsIncludeContext(t *testing.T) {
	err := NewStateError(errors.New("boom"), "get_state").WithContext("user_id", int64(42))

	fields := err.LogFields()
	kv := map[string]interface{}{}
	for i := 0; i+1 < len(fields); i += 2 {
		kv[fields[i].(string)] = fields[i+1]
	}

	assert.Equal(t, ErrorTypeState, kv["error_type"])
	assert.Equal(t, "STATE_ERROR", kv["error_code"])
	assert.Equal(t, "boom", kv["internal_error"])
	assert.Equal(t, "get_state", kv["operation"])
	assert.Equal(t, int64(42), kv["user_id"])
}

func TestHandlerLogsBySeverity(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level zapcore.Level
		msg   string
	}{
		{name: "validation", err: NewValidationError("bad"), level: zapcore.WarnLevel, msg: "Validation error"},
		{name: "external", err: NewExternalAPIError(errors.New("x"), "OpenAI"), level: zapcore.WarnLevel, msg: "Upstream error"},
		{name: "timeout", err: NewTimeoutError("narrator"), level: zapcore.WarnLevel, msg: "Upstream error"},
		{name: "telegram", err: NewTelegramError(errors.New("x"), "send"), level: zapcore.ErrorLevel, msg: "Critical error"},
		{name: "internal", err: NewInternalError(errors.New("x")), level: zapcore.ErrorLevel, msg: "Critical error"},
		{name: "generic", err: errors.New("plain"), level: zapcore.ErrorLevel, msg: "Unhandled error"},
		{name: "canceled", err: context.Canceled, level: zapcore.DebugLevel, msg: "Operation canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			h := NewHandler(zap.New(core).Sugar())

			returned := h.LogAndReturn(context.Background(), tt.err)
			assert.Equal(t, tt.err, returned)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.level, entry.Level)
			assert.Equal(t, tt.msg, entry.Message)
		})
	}
}

func TestHandlerIgnoresNil(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	NewHandler(zap.New(core).Sugar()).Handle(context.Background(), nil)
	assert.Zero(t, logs.Len())
}
