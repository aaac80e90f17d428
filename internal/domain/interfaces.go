package domain

import (
	"context"
)

// ProfileResolver turns a profile into a reading. Implementations never fail.
type ProfileResolver interface {
	Resolve(profile UserProfile) AnalysisResult
}

// Narrator writes the synthesis paragraph shown with the vehicles view
type Narrator interface {
	Synthesize(ctx context.Context, result AnalysisResult) string
}

// BotService handles telegram bot operations
type BotService interface {
	Start(ctx context.Context) error
	Stop()
}
