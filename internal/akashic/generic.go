package akashic

import "github.com/vladimiradmaev/akashic-rays/internal/domain"

var genericConnections = [...]domain.StarseedConnection{
	{
		StarSystem:     "Sirius",
		FixedStar:      "Sirius A",
		Degree:         14,
		Sign:           "Cancer",
		Description:    "Direct conduit to the Great White Lodge. Suggests a mission of teaching and cosmic initiation.",
		ConnectionType: domain.ConnectionSpiritual,
	},
	{
		StarSystem:     "Pleiades",
		FixedStar:      "Alcyone",
		Degree:         0,
		Sign:           "Gemini",
		Description:    "Strong emphasis on communication of higher wisdom and healing of the astral body.",
		ConnectionType: domain.ConnectionAstral,
	},
}

// buildGeneric returns the synthetic reading for unrecognized names. Only the
// echoed profile depends on the input.
func buildGeneric(profile domain.UserProfile) domain.AnalysisResult {
	connections := cloneConnections(genericConnections[:])

	geo := domain.ChartData{
		System:         domain.SystemGeocentric,
		Sun:            body("Sun", "Aquarius", 15, 11, domain.RayFive),
		Moon:           bodyRef("Moon", "Scorpio", 22, 8, domain.RayFour),
		Ascendant:      bodyRef("Ascendant", "Gemini", 10, 1, domain.RayTwo),
		RulerRay:       domain.RayFive,
		Interpretation: "The Mask & Personality. Your tool for interaction in this incarnation.",
	}
	helio := domain.ChartData{
		System:         domain.SystemHeliocentric,
		Sun:            body("Sun (Center)", "Leo", 0, 0, domain.RayOne),
		Earth:          bodyRef("Earth", "Leo", 15, 5, domain.RayTwo),
		RulerRay:       domain.RayTwo,
		Interpretation: "The Soul's Perspective. Pure solar intent untainted by lunar personality filters.",
	}
	draconic := domain.ChartData{
		System:         domain.SystemDraconic,
		Sun:            body("Sun", "Libra", 5, 11, domain.RayThree),
		Moon:           bodyRef("Moon", "Cancer", 12, 8, domain.RaySeven),
		Ascendant:      bodyRef("Ascendant", "Aquarius", 25, 1, domain.RayFive),
		RulerRay:       domain.RaySeven,
		Interpretation: "The Karmic Layer. Soul contracts, past life accumulations, and 'what lies beneath'.",
	}
	sidereal := domain.ChartData{
		System:         domain.SystemSidereal,
		Sun:            body("Sun", "Capricorn", 21, 11, domain.RayOne),
		Moon:           bodyRef("Moon", "Libra", 28, 8, domain.RayThree),
		Ascendant:      bodyRef("Ascendant", "Taurus", 16, 1, domain.RayFour),
		RulerRay:       domain.RayOne,
		Interpretation: "The Star Lineage. Your true position against the fixed stars.",
	}

	return domain.AnalysisResult{
		Profile:             profile,
		Charts:              chartSet(geo, helio, draconic, sidereal),
		MonadicRay:          domain.RayOne,
		SoulRay:             domain.RayTwo,
		PersonalityRay:      domain.RayFive,
		MentalRay:           domain.RayFour,
		AstralRay:           domain.RaySix,
		PhysicalRay:         domain.RayThree,
		KarmicDebtRay:       domain.RaySeven,
		StarseedConnections: connections,
		AkashicHistory:      GenerateAkashicHistory(connections),
		RayDistribution: domain.RayDistribution{
			Sacred: scores(domain.ScoreSacred,
				scorePair{domain.RayTwo, 85},
				scorePair{domain.RayFour, 65},
				scorePair{domain.RayOne, 30},
			),
			NonSacred: scores(domain.ScoreNonSacred,
				scorePair{domain.RayFive, 90},
				scorePair{domain.RayThree, 70},
			),
			Weighted: scores(domain.ScoreEsoteric,
				scorePair{domain.RayTwo, 90},
				scorePair{domain.RayFive, 85},
				scorePair{domain.RaySeven, 40},
			),
		},
	}
}
