package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	apperrors "github.com/vladimiradmaev/akashic-rays/internal/errors"
	"github.com/vladimiradmaev/akashic-rays/internal/render"
)

type fakeProvider struct {
	name  string
	text  string
	err   error
	delay time.Duration
	calls atomic.Int32
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.calls.Add(1)
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return p.text, p.err
}

func jungReading() domain.AnalysisResult {
	return akashic.Resolve(domain.UserProfile{Name: "Carl Jung"})
}

func TestSynthesizeWithoutProvidersUsesTemplate(t *testing.T) {
	s := &NarratorService{timeout: time.Second}
	result := jungReading()
	assert.Equal(t, render.TemplateSynthesis(result), s.Synthesize(context.Background(), result))
}

func TestSynthesizeFallsBackInOrder(t *testing.T) {
	first := &fakeProvider{name: "first", err: errors.New("quota exceeded")}
	second := &fakeProvider{name: "second", text: "  \"A soul of  healing.\"  "}
	s := &NarratorService{providers: []textProvider{first, second}, timeout: time.Second}

	got := s.Synthesize(context.Background(), jungReading())

	assert.Equal(t, "A soul of healing.", got)
	assert.EqualValues(t, 1, first.calls.Load())
	assert.EqualValues(t, 1, second.calls.Load())
}

func TestSynthesizeStopsAtFirstSuccess(t *testing.T) {
	first := &fakeProvider{name: "first", text: "done"}
	second := &fakeProvider{name: "second", text: "unused"}
	s := &NarratorService{providers: []textProvider{first, second}, timeout: time.Second}

	assert.Equal(t, "done", s.Synthesize(context.Background(), jungReading()))
	assert.Zero(t, second.calls.Load())
}

func TestSynthesizeNeverFails(t *testing.T) {
	result := jungReading()
	tests := []struct {
		name     string
		provider *fakeProvider
	}{
		{name: "error", provider: &fakeProvider{name: "p", err: errors.New("boom")}},
		{name: "blank", provider: &fakeProvider{name: "p", text: "   "}},
		{name: "timeout", provider: &fakeProvider{name: "p", text: "late", delay: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &NarratorService{providers: []textProvider{tt.provider}, timeout: 20 * time.Millisecond}
			assert.Equal(t, render.TemplateSynthesis(result), s.Synthesize(context.Background(), result))
		})
	}
}

func TestGenerateClassifiesFailures(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		want     *apperrors.AppError
		reason   string
	}{
		{name: "error", provider: &fakeProvider{name: "p", err: errors.New("boom")}, want: apperrors.ErrExternalAPI, reason: "upstream"},
		{name: "blank", provider: &fakeProvider{name: "p", text: "   "}, want: apperrors.ErrExternalAPI, reason: "upstream"},
		{name: "timeout", provider: &fakeProvider{name: "p", text: "late", delay: time.Second}, want: apperrors.ErrTimeout, reason: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &NarratorService{timeout: 20 * time.Millisecond}
			_, err := s.generate(context.Background(), tt.provider, "prompt")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.reason, failureReason(err))
		})
	}
	assert.Equal(t, "unknown", failureReason(errors.New("plain")))
}

func TestSynthesizeHonoursCanceledContext(t *testing.T) {
	first := &fakeProvider{name: "first", text: "late", delay: time.Second}
	second := &fakeProvider{name: "second", text: "unused"}
	s := &NarratorService{providers: []textProvider{first, second}, timeout: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := jungReading()
	assert.Equal(t, render.TemplateSynthesis(result), s.Synthesize(ctx, result))
	assert.Zero(t, second.calls.Load())
}

func TestSynthesisPromptDescribesReading(t *testing.T) {
	result := akashic.Resolve(domain.UserProfile{Name: "Alexander the Great"})
	prompt := synthesisPrompt(result)

	assert.Contains(t, prompt, "Name: Alexander the Great")
	assert.Contains(t, prompt, "Soul ray:")
	for _, conn := range result.StarseedConnections {
		assert.Contains(t, prompt, conn.StarSystem)
	}
}

func TestCleanSynthesisTruncates(t *testing.T) {
	long := strings.Repeat("a ", maxSynthesisLength)
	got := cleanSynthesis(long)
	assert.Len(t, []rune(got), maxSynthesisLength)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestNewNarratorServiceWithoutKeys(t *testing.T) {
	s, err := NewNarratorService(context.Background(), NarratorConfig{})
	require.NoError(t, err)
	assert.Empty(t, s.ProviderNames())
	assert.Equal(t, defaultNarratorTimeout, s.timeout)
	assert.NoError(t, s.Close())
}

func TestOpenAIProviderAgainstStubServer(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotModel = req.Model

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "The rays converge."}, "finish_reason": "stop"}]
		}`))
	}))
	t.Cleanup(srv.Close)

	s, err := NewNarratorService(context.Background(), NarratorConfig{
		OpenAIAPIKey: "sk-test",
		OpenAIURL:    srv.URL + "/v1",
		Timeout:      5 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"OpenAI"}, s.ProviderNames())

	assert.Equal(t, "The rays converge.", s.Synthesize(context.Background(), jungReading()))
	assert.Equal(t, openAIModel, gotModel)
}

func TestOpenAIProviderErrorFallsBackToTemplate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "rate limited", "type": "rate_limit"}}`))
	}))
	t.Cleanup(srv.Close)

	s, err := NewNarratorService(context.Background(), NarratorConfig{
		OpenAIAPIKey: "sk-test",
		OpenAIURL:    srv.URL + "/v1",
	})
	require.NoError(t, err)

	result := jungReading()
	assert.Equal(t, render.TemplateSynthesis(result), s.Synthesize(context.Background(), result))
}
