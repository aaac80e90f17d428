package akashic

import "github.com/vladimiradmaev/akashic-rays/internal/domain"

type leaderEntry struct {
	geocentric  signs
	geoRuler    domain.RayID
	helioEarth  string
	draconic    signs
	sidereal    signs
	connections []domain.StarseedConnection
}

// Caesar and Akhenaten share Cleopatra's sun placements and carry no star
// connections of their own, so their history falls back to the default record.
var leaders = map[string]leaderEntry{
	"alexander": {
		geocentric: signs{sun: "Leo", moon: "Aries", ascendant: "Scorpio"},
		geoRuler:   domain.RayOne,
		helioEarth: "Aquarius",
		draconic:   signs{sun: "Aries", moon: "Sagittarius", ascendant: "Leo"},
		sidereal:   signs{sun: "Cancer", moon: "Pisces", ascendant: "Libra"},
		connections: []domain.StarseedConnection{
			{StarSystem: "Antares", FixedStar: "Alpha Scorpii", Degree: 9, Sign: "Sagittarius", Description: "Warrior energy", ConnectionType: domain.ConnectionPhysical},
			{StarSystem: "Orion", FixedStar: "Betelgeuse", Degree: 28, Sign: "Gemini", Description: "Military honor", ConnectionType: domain.ConnectionMental},
		},
	},
	"cleopatra": {
		geocentric: signs{sun: "Capricorn", moon: "Taurus", ascendant: "Cancer"},
		geoRuler:   domain.RaySeven,
		helioEarth: "Cancer",
		draconic:   signs{sun: "Libra", moon: "Gemini", ascendant: "Pisces"},
		sidereal:   signs{sun: "Sagittarius", moon: "Aries", ascendant: "Gemini"},
		connections: []domain.StarseedConnection{
			{StarSystem: "Sirius", FixedStar: "Sirius A", Degree: 14, Sign: "Cancer", Description: "Isis connection", ConnectionType: domain.ConnectionSpiritual},
		},
	},
	"caesar": {
		geocentric: signs{sun: "Capricorn", moon: "Scorpio", ascendant: "Aries"},
		geoRuler:   domain.RaySeven,
		helioEarth: "Cancer",
		draconic:   signs{sun: "Libra", moon: "Leo", ascendant: "Capricorn"},
		sidereal:   signs{sun: "Sagittarius", moon: "Libra", ascendant: "Pisces"},
	},
	"akhenaten": {
		geocentric: signs{sun: "Capricorn", moon: "Aquarius", ascendant: "Leo"},
		geoRuler:   domain.RaySeven,
		helioEarth: "Cancer",
		draconic:   signs{sun: "Libra", moon: "Virgo", ascendant: "Sagittarius"},
		sidereal:   signs{sun: "Sagittarius", moon: "Capricorn", ascendant: "Cancer"},
	},
}

func leader(token string) builder {
	entry := leaders[token]
	return func(profile domain.UserProfile) domain.AnalysisResult {
		return buildLeader(profile, entry)
	}
}

func buildLeader(profile domain.UserProfile, e leaderEntry) domain.AnalysisResult {
	connections := cloneConnections(e.connections)

	geo := domain.ChartData{
		System:         domain.SystemGeocentric,
		Sun:            body("Sun", e.geocentric.sun, 20, 10, domain.RayOne),
		Moon:           bodyRef("Moon", e.geocentric.moon, 11, 4, domain.RaySix),
		Ascendant:      bodyRef("Ascendant", e.geocentric.ascendant, 2, 1, domain.RayOne),
		RulerRay:       e.geoRuler,
		Interpretation: "The Personality Vehicle.",
	}
	helio := domain.ChartData{
		System:         domain.SystemHeliocentric,
		Sun:            helioSun(),
		Earth:          bodyRef("Earth", e.helioEarth, 20, 4, domain.RayFive),
		RulerRay:       domain.RayTwo,
		Interpretation: "The Soul Purpose.",
	}
	draconic := domain.ChartData{
		System:         domain.SystemDraconic,
		Sun:            body("Sun", e.draconic.sun, 5, 1, domain.RayOne),
		Moon:           bodyRef("Moon", e.draconic.moon, 26, 9, domain.RaySix),
		Ascendant:      bodyRef("Ascendant", e.draconic.ascendant, 17, 1, domain.RayFour),
		RulerRay:       domain.RayFour,
		Interpretation: "The Karmic Contract.",
	}
	sidereal := domain.ChartData{
		System:         domain.SystemSidereal,
		Sun:            body("Sun", e.sidereal.sun, 25, 10, domain.RayThree),
		Moon:           bodyRef("Moon", e.sidereal.moon, 17, 4, domain.RayTwo),
		Ascendant:      bodyRef("Ascendant", e.sidereal.ascendant, 8, 1, domain.RayThree),
		RulerRay:       domain.RayThree,
		Interpretation: "The Cosmic Origin.",
	}

	return domain.AnalysisResult{
		Profile:             profile,
		Charts:              chartSet(geo, helio, draconic, sidereal),
		MonadicRay:          domain.RayOne,
		SoulRay:             domain.RayOne,
		PersonalityRay:      domain.RaySix,
		MentalRay:           domain.RayFour,
		AstralRay:           domain.RaySix,
		PhysicalRay:         domain.RayThree,
		KarmicDebtRay:       domain.RayFour,
		StarseedConnections: connections,
		AkashicHistory:      GenerateAkashicHistory(connections),
		RayDistribution: domain.RayDistribution{
			Sacred:    scores(domain.ScoreSacred, scorePair{domain.RayOne, 100}),
			NonSacred: scores(domain.ScoreNonSacred, scorePair{domain.RaySix, 80}),
			Weighted:  scores(domain.ScoreEsoteric, scorePair{domain.RayOne, 95}),
		},
	}
}
