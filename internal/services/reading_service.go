package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	"github.com/vladimiradmaev/akashic-rays/internal/logger"
)

// Reading is one resolved profile
type Reading struct {
	ID     string
	Cohort akashic.Cohort
	Result domain.AnalysisResult
}

// profileMatcher reports which curated entry a name selects
type profileMatcher interface {
	Match(name string) (akashic.Match, bool)
}

// ReadingService resolves profiles and asks the narrator for a synthesis
type ReadingService struct {
	resolver domain.ProfileResolver
	matcher  profileMatcher
	narrator domain.Narrator
}

// NewReadingService creates a reading service. A nil resolver uses the curated
// tables and a nil narrator uses the canned template. Resolvers that cannot
// match names report every reading as generic.
func NewReadingService(resolver domain.ProfileResolver, narrator domain.Narrator) *ReadingService {
	if resolver == nil {
		resolver = akashic.NewResolver()
	}
	if narrator == nil {
		narrator = templateNarrator{}
	}
	matcher, _ := resolver.(profileMatcher)
	return &ReadingService{
		resolver: resolver,
		matcher:  matcher,
		narrator: narrator,
	}
}

// Resolve builds a new reading for a profile
func (s *ReadingService) Resolve(ctx context.Context, profile domain.UserProfile) Reading {
	start := time.Now()
	reading, token := s.build(uuid.NewString(), profile)

	logger.Info("Profile resolved",
		"reading_id", reading.ID,
		"cohort", string(reading.Cohort),
		"token", token,
		"connections", len(reading.Result.StarseedConnections),
		"duration", time.Since(start).String(),
	)
	return reading
}

// Reopen rebuilds an earlier reading under its original id. Resolution is
// deterministic, so the result equals the one first shown.
func (s *ReadingService) Reopen(ctx context.Context, readingID string, profile domain.UserProfile) Reading {
	if readingID == "" {
		return s.Resolve(ctx, profile)
	}
	reading, _ := s.build(readingID, profile)
	logger.Debug("Reading reopened", "reading_id", readingID, "cohort", string(reading.Cohort))
	return reading
}

func (s *ReadingService) build(id string, profile domain.UserProfile) (Reading, string) {
	cohort := akashic.CohortGeneric
	token := ""
	if s.matcher != nil {
		if m, ok := s.matcher.Match(profile.Name); ok {
			cohort = m.Cohort
			token = m.Token
		}
	}
	return Reading{
		ID:     id,
		Cohort: cohort,
		Result: s.resolver.Resolve(profile),
	}, token
}

// Synthesize delegates to the narrator
func (s *ReadingService) Synthesize(ctx context.Context, result domain.AnalysisResult) string {
	return s.narrator.Synthesize(ctx, result)
}

// Presets returns the quick-select groups
func (s *ReadingService) Presets() []akashic.PresetGroup {
	return akashic.Presets()
}

// Preset resolves a quick-select entry
func (s *ReadingService) Preset(group, index int) (domain.UserProfile, bool) {
	return akashic.Preset(group, index)
}
