package akashic

import "github.com/vladimiradmaev/akashic-rays/internal/domain"

type horrorEntry struct {
	geocentric     signs
	helioEarth     string
	draconic       signs
	sidereal       signs
	soulRay        domain.RayID
	personalityRay domain.RayID
	karmicDebtRay  domain.RayID
	shadowAspects  []domain.Aspect
	connections    []domain.StarseedConnection
}

var horrorAuthors = map[string]horrorEntry{
	"lovecraft": {
		geocentric:     signs{sun: "Leo", moon: "Gemini", ascendant: "Virgo"},
		helioEarth:     "Aquarius",
		draconic:       signs{sun: "Sagittarius", moon: "Aries", ascendant: "Capricorn"},
		sidereal:       signs{sun: "Cancer", moon: "Taurus", ascendant: "Leo"},
		soulRay:        domain.RayFour,
		personalityRay: domain.RayFive,
		karmicDebtRay:  domain.RayOne,
		shadowAspects: []domain.Aspect{
			{Body: "Algol", Type: "Conjunction", Orb: 1, Interpretation: "The gaze that sees what lies outside the circle of the known."},
			{Body: "Pluto", Type: "Square", Orb: 3, Interpretation: "Dread of the vast and indifferent."},
		},
		connections: []domain.StarseedConnection{
			{StarSystem: "Algol", FixedStar: "Algol", Degree: 26, Sign: "Taurus", Description: "The Demon Star; gateway to the outer dark", ConnectionType: domain.ConnectionAstral},
		},
	},
	"poe": {
		geocentric:     signs{sun: "Capricorn", moon: "Aquarius", ascendant: "Scorpio"},
		helioEarth:     "Cancer",
		draconic:       signs{sun: "Virgo", moon: "Libra", ascendant: "Cancer"},
		sidereal:       signs{sun: "Sagittarius", moon: "Capricorn", ascendant: "Libra"},
		soulRay:        domain.RayFour,
		personalityRay: domain.RaySix,
		karmicDebtRay:  domain.RaySix,
		shadowAspects: []domain.Aspect{
			{Body: "Moon", Type: "Opposition", Orb: 5, Interpretation: "Grief made into rhythm."},
		},
		connections: []domain.StarseedConnection{
			{StarSystem: "Lyra", FixedStar: "Vega", Degree: 15, Sign: "Capricorn", Description: "The poetic principle and the music of the spheres", ConnectionType: domain.ConnectionSpiritual},
			{StarSystem: "Algol", FixedStar: "Algol", Degree: 26, Sign: "Taurus", Description: "The raven at the threshold", ConnectionType: domain.ConnectionAstral},
		},
	},
	"shelley": {
		geocentric:     signs{sun: "Virgo", moon: "Scorpio", ascendant: "Gemini"},
		helioEarth:     "Pisces",
		draconic:       signs{sun: "Aries", moon: "Aquarius", ascendant: "Sagittarius"},
		sidereal:       signs{sun: "Leo", moon: "Libra", ascendant: "Taurus"},
		soulRay:        domain.RayTwo,
		personalityRay: domain.RayFour,
		karmicDebtRay:  domain.RayFive,
		shadowAspects: []domain.Aspect{
			{Body: "Uranus", Type: "Trine", Orb: 2, Interpretation: "Lightning given to the dead form."},
		},
		connections: []domain.StarseedConnection{
			{StarSystem: "Orion", FixedStar: "Rigel", Degree: 16, Sign: "Gemini", Description: "Galvanic fire: creation wrestling its creator", ConnectionType: domain.ConnectionPhysical},
		},
	},
	"king": {
		geocentric:     signs{sun: "Virgo", moon: "Sagittarius", ascendant: "Cancer"},
		helioEarth:     "Pisces",
		draconic:       signs{sun: "Gemini", moon: "Virgo", ascendant: "Aries"},
		sidereal:       signs{sun: "Leo", moon: "Scorpio", ascendant: "Gemini"},
		soulRay:        domain.RayFour,
		personalityRay: domain.RaySix,
		karmicDebtRay:  domain.RaySix,
		shadowAspects: []domain.Aspect{
			{Body: "Neptune", Type: "Square", Orb: 2, Interpretation: "The shining: a child's sight that will not close."},
		},
		connections: []domain.StarseedConnection{
			{StarSystem: "Pleiades", FixedStar: "Alcyone", Degree: 0, Sign: "Gemini", Description: "Psychic sensitivity carried since childhood", ConnectionType: domain.ConnectionAstral},
			{StarSystem: "Sirius", FixedStar: "Sirius A", Degree: 14, Sign: "Cancer", Description: "Storyteller of the dark tower", ConnectionType: domain.ConnectionMental},
		},
	},
}

func horrorAuthor(token string) builder {
	entry := horrorAuthors[token]
	return func(profile domain.UserProfile) domain.AnalysisResult {
		return buildHorrorAuthor(profile, entry)
	}
}

// The shadow material sits on the draconic chart, which is why its aspects
// live there rather than on the geocentric one.
func buildHorrorAuthor(profile domain.UserProfile, e horrorEntry) domain.AnalysisResult {
	connections := cloneConnections(e.connections)

	geo := domain.ChartData{
		System:         domain.SystemGeocentric,
		Sun:            body("Sun", e.geocentric.sun, 27, 12, domain.RayFour),
		Moon:           bodyRef("Moon", e.geocentric.moon, 8, 8, domain.RaySix),
		Ascendant:      bodyRef("Ascendant", e.geocentric.ascendant, 19, 1, e.personalityRay),
		RulerRay:       e.personalityRay,
		Interpretation: "The mask that writes the dark.",
	}
	helio := domain.ChartData{
		System:         domain.SystemHeliocentric,
		Sun:            helioSun(),
		Earth:          bodyRef("Earth", e.helioEarth, 27, 8, domain.RayFour),
		RulerRay:       e.soulRay,
		Interpretation: "The Soul's descent into the underworld of form.",
	}
	draconic := domain.ChartData{
		System:         domain.SystemDraconic,
		Sun:            body("Sun", e.draconic.sun, 13, 8, domain.RayOne),
		Moon:           bodyRef("Moon", e.draconic.moon, 29, 12, domain.RaySix),
		Ascendant:      bodyRef("Ascendant", e.draconic.ascendant, 4, 1, e.karmicDebtRay),
		RulerRay:       e.karmicDebtRay,
		Interpretation: "The Shadow contract: fears carried across lifetimes.",
		Aspects:        cloneAspects(e.shadowAspects),
	}
	sidereal := domain.ChartData{
		System:         domain.SystemSidereal,
		Sun:            body("Sun", e.sidereal.sun, 3, 12, domain.RaySeven),
		Moon:           bodyRef("Moon", e.sidereal.moon, 22, 8, domain.RaySix),
		Ascendant:      bodyRef("Ascendant", e.sidereal.ascendant, 10, 1, domain.RayThree),
		RulerRay:       domain.RaySeven,
		Interpretation: "The outer dark beyond the fixed stars.",
	}

	return domain.AnalysisResult{
		Profile:             profile,
		Charts:              chartSet(geo, helio, draconic, sidereal),
		MonadicRay:          domain.RayThree,
		SoulRay:             e.soulRay,
		PersonalityRay:      e.personalityRay,
		MentalRay:           domain.RayFive,
		AstralRay:           domain.RaySix,
		PhysicalRay:         domain.RayThree,
		KarmicDebtRay:       e.karmicDebtRay,
		StarseedConnections: connections,
		AkashicHistory:      GenerateAkashicHistory(connections),
		RayDistribution: domain.RayDistribution{
			Sacred:    scores(domain.ScoreSacred, scorePair{e.soulRay, 70}),
			NonSacred: scores(domain.ScoreNonSacred, scorePair{e.personalityRay, 95}, scorePair{domain.RayThree, 60}),
			Weighted:  scores(domain.ScoreExoteric, scorePair{e.karmicDebtRay, 90}),
		},
	}
}
