package services

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	"github.com/vladimiradmaev/akashic-rays/internal/render"
)

type stubNarrator struct {
	text string
	seen []string
}

func (n *stubNarrator) Synthesize(_ context.Context, result domain.AnalysisResult) string {
	n.seen = append(n.seen, result.Profile.Name)
	return n.text
}

func TestResolveAssignsIDAndCohort(t *testing.T) {
	s := NewReadingService(akashic.NewResolver(), nil)

	tests := []struct {
		name   string
		cohort akashic.Cohort
	}{
		{name: "Cleopatra VII", cohort: akashic.CohortLeaders},
		{name: "Rudolf Steiner", cohort: akashic.CohortMasters},
		{name: "Annie Besant", cohort: akashic.CohortTheosophists},
		{name: "Mary Shelley", cohort: akashic.CohortHorror},
		{name: "Jane Doe", cohort: akashic.CohortGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := domain.UserProfile{Name: tt.name, BirthPlace: "Somewhere"}
			reading := s.Resolve(context.Background(), profile)

			_, err := uuid.Parse(reading.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.cohort, reading.Cohort)
			assert.Equal(t, profile, reading.Result.Profile)

			if diff := cmp.Diff(akashic.Resolve(profile), reading.Result); diff != "" {
				t.Errorf("reading differs from resolver output (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveIDsAreUnique(t *testing.T) {
	s := NewReadingService(nil, nil)
	profile := domain.UserProfile{Name: "Carl Jung"}

	a := s.Resolve(context.Background(), profile)
	b := s.Resolve(context.Background(), profile)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Empty(t, cmp.Diff(a.Result, b.Result))
}

func TestSynthesizeDelegatesToNarrator(t *testing.T) {
	n := &stubNarrator{text: "narrated"}
	s := NewReadingService(nil, n)

	result := akashic.Resolve(domain.UserProfile{Name: "Edgar Allan Poe"})
	assert.Equal(t, "narrated", s.Synthesize(context.Background(), result))
	assert.Equal(t, []string{"Edgar Allan Poe"}, n.seen)
}

func TestNilNarratorUsesTemplate(t *testing.T) {
	s := NewReadingService(nil, nil)
	result := akashic.Resolve(domain.UserProfile{Name: "Jane Doe"})
	assert.Equal(t, render.TemplateSynthesis(result), s.Synthesize(context.Background(), result))
}

func TestPresetsPassThrough(t *testing.T) {
	s := NewReadingService(nil, nil)

	groups := s.Presets()
	require.Len(t, groups, 4)

	profile, ok := s.Preset(1, 3)
	require.True(t, ok)
	assert.Equal(t, groups[1].Profiles[3], profile)

	_, ok = s.Preset(9, 0)
	assert.False(t, ok)
}

type nameEchoResolver struct{}

func (nameEchoResolver) Resolve(profile domain.UserProfile) domain.AnalysisResult {
	return domain.AnalysisResult{Profile: profile, SoulRay: domain.RayID(7)}
}

func TestResolverWithoutMatcherReportsGeneric(t *testing.T) {
	s := NewReadingService(nameEchoResolver{}, nil)
	reading := s.Resolve(context.Background(), domain.UserProfile{Name: "Carl Jung"})

	assert.Equal(t, akashic.CohortGeneric, reading.Cohort)
	assert.Equal(t, domain.RayID(7), reading.Result.SoulRay)
	assert.Equal(t, "Carl Jung", reading.Result.Profile.Name)
}

func TestReopenKeepsReadingID(t *testing.T) {
	s := NewReadingService(nil, nil)
	profile := domain.UserProfile{Name: "Helena Blavatsky", BirthPlace: "Yekaterinoslav"}

	first := s.Resolve(context.Background(), profile)
	again := s.Reopen(context.Background(), first.ID, profile)

	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, first.Cohort, again.Cohort)
	assert.Empty(t, cmp.Diff(first.Result, again.Result))

	fresh := s.Reopen(context.Background(), "", profile)
	_, err := uuid.Parse(fresh.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, fresh.ID)
}
