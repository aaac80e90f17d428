package akashic

import "github.com/vladimiradmaev/akashic-rays/internal/domain"

type theosophistEntry struct {
	geocentric     signs
	geoSunRay      domain.RayID
	helioEarth     string
	draconic       signs
	sidereal       signs
	soulRay        domain.RayID
	personalityRay domain.RayID
	karmicDebtRay  domain.RayID
	aspects        []domain.Aspect
	connections    []domain.StarseedConnection
}

var theosophists = map[string]theosophistEntry{
	"krishnamurti": {
		geocentric:     signs{sun: "Taurus", moon: "Taurus", ascendant: "Capricorn"},
		geoSunRay:      domain.RayFour,
		helioEarth:     "Scorpio",
		draconic:       signs{sun: "Virgo", moon: "Virgo", ascendant: "Gemini"},
		sidereal:       signs{sun: "Aries", moon: "Aries", ascendant: "Sagittarius"},
		soulRay:        domain.RayTwo,
		personalityRay: domain.RayFour,
		karmicDebtRay:  domain.RayOne,
		aspects: []domain.Aspect{
			{Body: "Moon", Type: "Conjunction", Orb: 2, Interpretation: "The vehicle and its feeling nature prepared as one."},
			{Body: "Uranus", Type: "Opposition", Orb: 3, Interpretation: "The dissolution of the Order of the Star."},
		},
		connections: []domain.StarseedConnection{
			{StarSystem: "Alcyone", FixedStar: "Alcyone", Degree: 0, Sign: "Gemini", Description: "The name given in the past-life investigations", ConnectionType: domain.ConnectionSpiritual},
			{StarSystem: "Sirius", FixedStar: "Sirius A", Degree: 14, Sign: "Cancer", Description: "The World Teacher's overshadowing", ConnectionType: domain.ConnectionSpiritual},
		},
	},
	"besant": {
		geocentric:     signs{sun: "Libra", moon: "Leo", ascendant: "Aquarius"},
		geoSunRay:      domain.RayThree,
		helioEarth:     "Aries",
		draconic:       signs{sun: "Capricorn", moon: "Scorpio", ascendant: "Taurus"},
		sidereal:       signs{sun: "Virgo", moon: "Cancer", ascendant: "Capricorn"},
		soulRay:        domain.RayOne,
		personalityRay: domain.RaySix,
		karmicDebtRay:  domain.RaySix,
		aspects: []domain.Aspect{
			{Body: "Mars", Type: "Square", Orb: 4, Interpretation: "The orator's fire spent on causes."},
		},
		connections: []domain.StarseedConnection{
			{StarSystem: "Sirius", FixedStar: "Sirius A", Degree: 14, Sign: "Cancer", Description: "Keeper of the Esoteric Section", ConnectionType: domain.ConnectionSpiritual},
		},
	},
	"leadbeater": {
		geocentric:     signs{sun: "Aquarius", moon: "Virgo", ascendant: "Libra"},
		geoSunRay:      domain.RayFive,
		helioEarth:     "Leo",
		draconic:       signs{sun: "Taurus", moon: "Capricorn", ascendant: "Aquarius"},
		sidereal:       signs{sun: "Capricorn", moon: "Leo", ascendant: "Virgo"},
		soulRay:        domain.RayTwo,
		personalityRay: domain.RaySeven,
		karmicDebtRay:  domain.RaySeven,
		aspects: []domain.Aspect{
			{Body: "Neptune", Type: "Trine", Orb: 1.5, Interpretation: "Clairvoyant sight turned into ceremony."},
		},
		connections: []domain.StarseedConnection{
			{StarSystem: "Arcturus", FixedStar: "Arcturus", Degree: 24, Sign: "Libra", Description: "Investigator of occult chemistry", ConnectionType: domain.ConnectionMental},
		},
	},
	"hall": {
		geocentric:     signs{sun: "Pisces", moon: "Gemini", ascendant: "Aquarius"},
		geoSunRay:      domain.RaySix,
		helioEarth:     "Virgo",
		draconic:       signs{sun: "Cancer", moon: "Sagittarius", ascendant: "Libra"},
		sidereal:       signs{sun: "Aquarius", moon: "Taurus", ascendant: "Capricorn"},
		soulRay:        domain.RayTwo,
		personalityRay: domain.RayThree,
		karmicDebtRay:  domain.RayFive,
		aspects: []domain.Aspect{
			{Body: "Saturn", Type: "Sextile", Orb: 2.5, Interpretation: "A library built as a temple."},
		},
		connections: []domain.StarseedConnection{
			{StarSystem: "Lyra", FixedStar: "Vega", Degree: 15, Sign: "Capricorn", Description: "Encyclopedist of the secret teachings", ConnectionType: domain.ConnectionMental},
			{StarSystem: "Arcturus", FixedStar: "Arcturus", Degree: 24, Sign: "Libra", Description: "Sacred geometry of the mystery schools", ConnectionType: domain.ConnectionMental},
		},
	},
}

func theosophist(token string) builder {
	entry := theosophists[token]
	return func(profile domain.UserProfile) domain.AnalysisResult {
		return buildTheosophist(profile, entry)
	}
}

func buildTheosophist(profile domain.UserProfile, e theosophistEntry) domain.AnalysisResult {
	connections := cloneConnections(e.connections)

	geo := domain.ChartData{
		System:         domain.SystemGeocentric,
		Sun:            body("Sun", e.geocentric.sun, 21, 9, e.geoSunRay),
		Moon:           bodyRef("Moon", e.geocentric.moon, 6, 5, domain.RayFour),
		Ascendant:      bodyRef("Ascendant", e.geocentric.ascendant, 12, 1, e.personalityRay),
		RulerRay:       e.personalityRay,
		Interpretation: "The instrument of the Teaching in the outer world.",
		Aspects:        cloneAspects(e.aspects),
	}
	helio := domain.ChartData{
		System:         domain.SystemHeliocentric,
		Sun:            helioSun(),
		Earth:          bodyRef("Earth", e.helioEarth, 21, 3, domain.RayTwo),
		RulerRay:       e.soulRay,
		Interpretation: "The Soul's vow to the Hierarchy.",
	}
	draconic := domain.ChartData{
		System:         domain.SystemDraconic,
		Sun:            body("Sun", e.draconic.sun, 9, 12, domain.RaySix),
		Moon:           bodyRef("Moon", e.draconic.moon, 24, 6, domain.RaySix),
		Ascendant:      bodyRef("Ascendant", e.draconic.ascendant, 0, 1, e.karmicDebtRay),
		RulerRay:       e.karmicDebtRay,
		Interpretation: "The vows carried over from the Temple lives.",
	}
	sidereal := domain.ChartData{
		System:         domain.SystemSidereal,
		Sun:            body("Sun", e.sidereal.sun, 27, 9, domain.RayTwo),
		Moon:           bodyRef("Moon", e.sidereal.moon, 12, 5, domain.RayThree),
		Ascendant:      bodyRef("Ascendant", e.sidereal.ascendant, 18, 1, domain.RaySeven),
		RulerRay:       domain.RayTwo,
		Interpretation: "The lineage of the Lodges behind the fixed stars.",
	}

	return domain.AnalysisResult{
		Profile:             profile,
		Charts:              chartSet(geo, helio, draconic, sidereal),
		MonadicRay:          domain.RayTwo,
		SoulRay:             e.soulRay,
		PersonalityRay:      e.personalityRay,
		MentalRay:           domain.RayFour,
		AstralRay:           domain.RayTwo,
		PhysicalRay:         domain.RaySeven,
		KarmicDebtRay:       e.karmicDebtRay,
		StarseedConnections: connections,
		AkashicHistory:      GenerateAkashicHistory(connections),
		RayDistribution: domain.RayDistribution{
			Sacred:    scores(domain.ScoreSacred, scorePair{e.soulRay, 90}),
			NonSacred: scores(domain.ScoreNonSacred, scorePair{e.personalityRay, 75}),
			Weighted:  scores(domain.ScoreEsoteric, scorePair{e.soulRay, 95}, scorePair{e.karmicDebtRay, 40}),
		},
	}
}
