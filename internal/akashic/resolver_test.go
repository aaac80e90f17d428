package akashic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/vladimiradmaev/akashic-rays/internal/domain"
)

func profileNamed(name string) domain.UserProfile {
	return domain.UserProfile{Name: name, BirthDate: "2000-01-01", BirthTime: "12:00", BirthPlace: "Nowhere"}
}

func assertWellFormed(t *testing.T, result domain.AnalysisResult) {
	t.Helper()

	require.Len(t, result.Charts, 4)
	for _, system := range domain.SystemTypes() {
		chart, ok := result.Charts[system]
		require.True(t, ok, "missing chart %s", system)
		assert.Equal(t, system, chart.System)
		assert.True(t, chart.RulerRay.Valid(), "ruler ray of %s", system)

		if system == domain.SystemHeliocentric {
			assert.NotNil(t, chart.Earth, "heliocentric chart needs earth")
			assert.Nil(t, chart.Moon)
			assert.Nil(t, chart.Ascendant)
		} else {
			assert.Nil(t, chart.Earth, "%s chart must not carry earth", system)
			assert.NotNil(t, chart.Moon, "%s chart needs moon", system)
			assert.NotNil(t, chart.Ascendant, "%s chart needs ascendant", system)
		}
	}

	for _, v := range result.Vehicles() {
		assert.True(t, v.Ray.Valid(), "%s ray %d", v.Label, v.Ray)
	}
	assert.True(t, result.KarmicDebtRay.Valid())
	assert.NotNil(t, result.StarseedConnections)
	assert.NotEmpty(t, result.AkashicHistory)

	for _, list := range [][]domain.RayScore{result.RayDistribution.Sacred, result.RayDistribution.NonSacred, result.RayDistribution.Weighted} {
		assert.NotEmpty(t, list)
		for _, s := range list {
			assert.True(t, s.RayID.Valid())
			assert.GreaterOrEqual(t, s.Score, 0)
			assert.LessOrEqual(t, s.Score, 100)
		}
	}
}

func TestResolve_Totality(t *testing.T) {
	names := []string{
		"",
		"   ",
		"\t\n",
		"ALEXANDER",
		"12345",
		"!!! ???",
		"日本語の名前",
		"Zzyzx Nonexistent",
		"Bailey King",
		"alexander cleopatra caesar akhenaten blavatsky bailey steiner jung krishnamurti besant leadbeater hall lovecraft poe shelley king",
	}
	for _, group := range Presets() {
		for _, p := range group.Profiles {
			names = append(names, p.Name)
		}
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			result := Resolve(profileNamed(name))
			assert.Equal(t, name, result.Profile.Name)
			assertWellFormed(t, result)
		})
	}
}

func TestMatch_CaseInsensitiveSubstring(t *testing.T) {
	for _, name := range []string{"ALEXANDER", "alexander", "Lexi-Alexander-Smith", "  aLeXaNdEr  "} {
		t.Run(name, func(t *testing.T) {
			m, ok := MatchName(name)
			require.True(t, ok)
			assert.Equal(t, Match{Token: "alexander", Cohort: CohortLeaders}, m)
		})
	}
}

func TestMatch_PriorityOrder(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		token  string
		cohort Cohort
	}{
		{"masters before horror", "Bailey King", "bailey", CohortMasters},
		{"jung before king", "King Jung", "jung", CohortMasters},
		{"leaders before masters", "Blavatsky Caesar", "caesar", CohortLeaders},
		{"theosophists before horror", "Marshall Poe", "hall", CohortTheosophists},
		{"token order within cohort", "Cleopatra Alexander", "alexander", CohortLeaders},
		{"token order within horror", "King Shelley", "shelley", CohortHorror},
		{"substring inside word", "Viking", "king", CohortHorror},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := MatchName(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.token, m.Token)
			assert.Equal(t, tt.cohort, m.Cohort)
		})
	}
}

func TestMatch_NoToken(t *testing.T) {
	m, ok := MatchName("Zzyzx Nonexistent")
	assert.False(t, ok)
	assert.Equal(t, CohortGeneric, m.Cohort)
	assert.Empty(t, m.Token)
}

func TestResolver_TokenPriority(t *testing.T) {
	want := []string{
		"alexander", "cleopatra", "caesar", "akhenaten",
		"blavatsky", "bailey", "steiner", "jung",
		"krishnamurti", "besant", "leadbeater", "hall",
		"lovecraft", "poe", "shelley", "king",
	}
	assert.Equal(t, want, NewResolver().Tokens())
}

func TestResolve_FallbackIsInputIndependent(t *testing.T) {
	a := Resolve(domain.UserProfile{Name: "Zzyzx Nonexistent", BirthDate: "1990-01-01", BirthTime: "01:00", BirthPlace: "Mars"})
	b := Resolve(domain.UserProfile{Name: "Someone Else", BirthDate: "garbage", BirthTime: "", BirthPlace: "Venus"})

	diff := cmp.Diff(a, b, cmpopts.IgnoreFields(domain.AnalysisResult{}, "Profile"))
	assert.Empty(t, diff)
	assert.NotEqual(t, a.Profile, b.Profile)

	assert.Equal(t, domain.RayTwo, a.SoulRay)
	assert.Equal(t, domain.RaySeven, a.KarmicDebtRay)
	require.Len(t, a.AkashicHistory, 2)
	assert.Equal(t, "Ancient Egypt (Thebes)", a.AkashicHistory[0].Location)
	assert.Equal(t, "Atlantis (Poseidonis)", a.AkashicHistory[1].Location)
}

func TestResolve_CarlJung(t *testing.T) {
	result := Resolve(domain.UserProfile{
		Name:       "Carl Jung",
		BirthDate:  "1875-07-26",
		BirthTime:  "19:29",
		BirthPlace: "Kesswil, Switzerland",
	})

	assert.Equal(t, domain.RayTwo, result.SoulRay)
	assert.Equal(t, domain.RayFive, result.PersonalityRay)
	require.NotEmpty(t, result.StarseedConnections)
	assert.Equal(t, "Lyra", result.StarseedConnections[0].StarSystem)
	require.NotEmpty(t, result.AkashicHistory)
	assert.Equal(t, "Alchemical Era", result.AkashicHistory[0].Era)
	assert.Equal(t, domain.RayFive, result.Charts[domain.SystemGeocentric].RulerRay)
	assert.Equal(t, domain.RayTwo, result.Charts[domain.SystemHeliocentric].RulerRay)
}

func TestResolve_CuratedHistories(t *testing.T) {
	tests := []struct {
		name string
		eras []string
	}{
		{"Alexander the Great", []string{"Feudal Era"}},
		{"Cleopatra VII", []string{"Dynastic Epoch (c. 1350 BC)"}},
		{"Julius Caesar", []string{"Renaissance"}},
		{"Akhenaten", []string{"Renaissance"}},
		{"Helena Blavatsky", []string{"Tibetan Era"}},
		{"Jiddu Krishnamurti", []string{"Atlantean Twilight (c. 9,600 BC)", "Dynastic Epoch (c. 1350 BC)"}},
		{"Manly P. Hall", []string{"First Earth Seeding", "Golden Age of Philosophy"}},
		{"H. P. Lovecraft", []string{"Age of the Gorgon Mysteries (c. 600 BC)"}},
		{"Edgar Allan Poe", []string{"First Earth Seeding", "Age of the Gorgon Mysteries (c. 600 BC)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Resolve(profileNamed(tt.name))
			var eras []string
			for _, r := range result.AkashicHistory {
				eras = append(eras, r.Era)
			}
			assert.Equal(t, tt.eras, eras)
		})
	}
}

func TestResolve_PresetsReachTheirCohort(t *testing.T) {
	cohorts := []Cohort{CohortLeaders, CohortMasters, CohortTheosophists, CohortHorror}
	tokens := NewResolver().Tokens()

	groups := Presets()
	require.Len(t, groups, len(cohorts))
	for gi, group := range groups {
		for pi, p := range group.Profiles {
			m, ok := MatchName(p.Name)
			require.True(t, ok, p.Name)
			assert.Equal(t, cohorts[gi], m.Cohort, p.Name)
			assert.Equal(t, tokens[gi*4+pi], m.Token, p.Name)
		}
	}
}

func TestResolve_ResultsDoNotShareTables(t *testing.T) {
	first := Resolve(profileNamed("Carl Jung"))
	first.StarseedConnections[0].StarSystem = "Tampered"
	first.AkashicHistory[0].Era = "Tampered"
	first.Charts[domain.SystemHeliocentric].Earth.Sign = "Tampered"

	second := Resolve(profileNamed("Carl Jung"))
	assert.Equal(t, "Lyra", second.StarseedConnections[0].StarSystem)
	assert.Equal(t, "Alchemical Era", second.AkashicHistory[0].Era)
	assert.Equal(t, "Aquarius", second.Charts[domain.SystemHeliocentric].Earth.Sign)
}

func TestResolve_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	names := []string{"Alexander", "Bailey King", "Annie Besant", "Stephen King", "Nobody", ""}
	want := make([]domain.AnalysisResult, len(names))
	for i, n := range names {
		want[i] = Resolve(profileNamed(n))
	}

	var g errgroup.Group
	for w := 0; w < 16; w++ {
		g.Go(func() error {
			for i, n := range names {
				if diff := cmp.Diff(want[i], Resolve(profileNamed(n))); diff != "" {
					t.Errorf("resolve %q diverged: %s", n, diff)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
