package interfaces

import (
	"context"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	"github.com/vladimiradmaev/akashic-rays/internal/services"
)

// ReadingServiceInterface defines the contract for reading operations
type ReadingServiceInterface interface {
	Resolve(ctx context.Context, profile domain.UserProfile) services.Reading
	Reopen(ctx context.Context, readingID string, profile domain.UserProfile) services.Reading
	Synthesize(ctx context.Context, result domain.AnalysisResult) string
	Presets() []akashic.PresetGroup
	Preset(group, index int) (domain.UserProfile, bool)
}

var _ ReadingServiceInterface = (*services.ReadingService)(nil)
