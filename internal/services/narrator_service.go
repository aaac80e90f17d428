package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	apperrors "github.com/vladimiradmaev/akashic-rays/internal/errors"
	"github.com/vladimiradmaev/akashic-rays/internal/logger"
	"github.com/vladimiradmaev/akashic-rays/internal/render"
)

const (
	geminiModel = "gemini-1.5-flash"
	openAIModel = "gpt-4o-mini"

	defaultNarratorTimeout = 15 * time.Second
	maxSynthesisLength     = 1500
)

// textProvider is one language model backend
type textProvider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
}

func (p *geminiProvider) Name() string { return "Gemini" }

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	model := p.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.8)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", stderrors.New("empty response from Gemini")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}

type openAIProvider struct {
	client *openai.Client
}

func (p *openAIProvider) Name() string { return "OpenAI" }

func (p *openAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       openAIModel,
			Temperature: 0.8,
			MaxTokens:   400,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", stderrors.New("empty response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}

// NarratorService writes the synthesis paragraph of a reading. Providers are
// tried in order and the canned template is used when all of them fail.
type NarratorService struct {
	providers []textProvider
	timeout   time.Duration
	closers   []func() error
}

// NarratorConfig selects the providers. Empty keys disable a provider.
type NarratorConfig struct {
	GeminiAPIKey string
	OpenAIAPIKey string
	OpenAIURL    string
	Timeout      time.Duration
}

// NewNarratorService creates a narrator from API keys
func NewNarratorService(ctx context.Context, cfg NarratorConfig) (*NarratorService, error) {
	s := &NarratorService{timeout: cfg.Timeout}
	if s.timeout <= 0 {
		s.timeout = defaultNarratorTimeout
	}

	if cfg.GeminiAPIKey != "" {
		client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
		if err != nil {
			return nil, apperrors.NewExternalAPIError(err, "Gemini")
		}
		s.providers = append(s.providers, &geminiProvider{client: client})
		s.closers = append(s.closers, client.Close)
	}

	if cfg.OpenAIAPIKey != "" {
		openaiCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
		if cfg.OpenAIURL != "" {
			openaiCfg.BaseURL = cfg.OpenAIURL
		}
		s.providers = append(s.providers, &openAIProvider{client: openai.NewClientWithConfig(openaiCfg)})
	}

	logger.Info("Narrator initialized", "providers", s.ProviderNames())
	return s, nil
}

// ProviderNames lists the configured providers in fallback order
func (s *NarratorService) ProviderNames() []string {
	names := make([]string, 0, len(s.providers))
	for _, p := range s.providers {
		names = append(names, p.Name())
	}
	return names
}

// Synthesize returns a paragraph for the reading. It never fails.
func (s *NarratorService) Synthesize(ctx context.Context, result domain.AnalysisResult) string {
	if len(s.providers) == 0 {
		return render.TemplateSynthesis(result)
	}

	prompt := synthesisPrompt(result)
	for _, p := range s.providers {
		text, err := s.generate(ctx, p, prompt)
		if err == nil {
			return text
		}

		fields := []any{"provider", p.Name(), "reason", failureReason(err)}
		var appErr *apperrors.AppError
		if stderrors.As(err, &appErr) {
			fields = append(fields, appErr.LogFields()...)
		} else {
			fields = append(fields, "error", err)
		}
		logger.Warn("Narrator provider failed, falling back", fields...)
		if ctx.Err() != nil {
			break
		}
	}
	return render.TemplateSynthesis(result)
}

// failureReason labels a provider error for the fallback log
func failureReason(err error) string {
	switch {
	case stderrors.Is(err, apperrors.ErrTimeout):
		return "timeout"
	case stderrors.Is(err, apperrors.ErrExternalAPI):
		return "upstream"
	default:
		return "unknown"
	}
}

func (s *NarratorService) generate(ctx context.Context, p textProvider, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := p.Generate(callCtx, prompt)
	if err != nil {
		if stderrors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return "", apperrors.NewTimeoutError(p.Name()).WithContext("timeout", s.timeout.String())
		}
		return "", apperrors.NewExternalAPIError(err, p.Name())
	}

	text = cleanSynthesis(text)
	if text == "" {
		return "", apperrors.NewExternalAPIError(stderrors.New("blank synthesis"), p.Name())
	}

	logger.Debug("Synthesis generated", "provider", p.Name(), "duration", time.Since(start).String())
	return text, nil
}

// Close releases provider clients
func (s *NarratorService) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	return stderrors.Join(errs...)
}

func synthesisPrompt(result domain.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("You are an esoteric astrologer in the tradition of Alice Bailey's Seven Rays.\n")
	b.WriteString("Write ONE paragraph (at most 120 words, plain text, no markdown, no lists) synthesising the reading below.\n")
	b.WriteString("Relate the Soul ray to the Personality ray and mention the strongest starseed connection if there is one.\n\n")

	fmt.Fprintf(&b, "Name: %s\n", result.Profile.Name)
	for _, v := range result.Vehicles() {
		ray := akashic.MustRay(v.Ray)
		fmt.Fprintf(&b, "%s ray: %d (%s)\n", v.Label, ray.ID, ray.Name)
	}
	karmic := akashic.MustRay(result.KarmicDebtRay)
	fmt.Fprintf(&b, "Karmic debt ray: %d (%s)\n", karmic.ID, karmic.Name)

	for _, system := range domain.SystemTypes() {
		if chart, ok := result.Charts[system]; ok {
			fmt.Fprintf(&b, "%s sun: %s\n", system, chart.Sun.Sign)
		}
	}
	for _, conn := range result.StarseedConnections {
		fmt.Fprintf(&b, "Starseed: %s via %s (%s)\n", conn.StarSystem, conn.FixedStar, conn.ConnectionType)
	}
	for _, record := range result.AkashicHistory {
		fmt.Fprintf(&b, "Past life: %s, %s in %s\n", record.Era, record.Role, record.Location)
	}
	return b.String()
}

func cleanSynthesis(text string) string {
	text = strings.TrimSpace(text)
	text = strings.Trim(text, "\"")
	text = strings.Join(strings.Fields(text), " ")
	if runes := []rune(text); len(runes) > maxSynthesisLength {
		text = string(runes[:maxSynthesisLength-3]) + "..."
	}
	return text
}

type templateNarrator struct{}

func (templateNarrator) Synthesize(_ context.Context, result domain.AnalysisResult) string {
	return render.TemplateSynthesis(result)
}
