package akashic

import "github.com/vladimiradmaev/akashic-rays/internal/domain"

type masterEntry struct {
	geoSun         domain.PlanetPosition
	geoMoon        string
	geoAscendant   string
	helioEarth     domain.PlanetPosition
	siderealSun    string
	soulRay        domain.RayID
	personalityRay domain.RayID
	connections    []domain.StarseedConnection
	history        []domain.AkashicRecord
}

var masters = map[string]masterEntry{
	"blavatsky": {
		geoSun:         body("Sun", "Leo", 19, 1, domain.RayOne),
		geoMoon:        "Cancer",
		geoAscendant:   "Cancer",
		helioEarth:     body("Earth", "Aquarius", 19, 7, domain.RayFive),
		siderealSun:    "Cancer",
		soulRay:        domain.RayOne,
		personalityRay: domain.RayThree,
		connections: []domain.StarseedConnection{
			{StarSystem: "Sirius", FixedStar: "Sirius A", Degree: 14, Sign: "Cancer", Description: "Direct Hierarchical Impulse", ConnectionType: domain.ConnectionSpiritual},
		},
		history: []domain.AkashicRecord{{
			Era:        "Tibetan Era",
			Location:   "Himalayas",
			Role:       "Chela of M.",
			StarOrigin: "Sirius",
			Lesson:     "Bringing the Wisdom of the East to the West.",
			RayFocus:   domain.RayOne,
		}},
	},
	"bailey": {
		geoSun:         body("Sun", "Gemini", 25, 1, domain.RayTwo),
		geoMoon:        "Aries",
		geoAscendant:   "Cancer",
		helioEarth:     body("Earth", "Sagittarius", 25, 7, domain.RayFour),
		siderealSun:    "Cancer",
		soulRay:        domain.RayTwo,
		personalityRay: domain.RayOne,
		connections: []domain.StarseedConnection{
			{StarSystem: "Pleiades", FixedStar: "Alcyone", Degree: 0, Sign: "Gemini", Description: "Esoteric Astrology Transmission", ConnectionType: domain.ConnectionAstral},
		},
		history: []domain.AkashicRecord{{
			Era:        "Early Christian Era",
			Location:   "Alexandria",
			Role:       "Gnostic Scribe",
			StarOrigin: "Pleiades",
			Lesson:     "Externalization of the Hierarchy.",
			RayFocus:   domain.RayTwo,
		}},
	},
	"steiner": {
		geoSun:         body("Sun", "Pisces", 9, 1, domain.RaySix),
		geoMoon:        "Scorpio",
		geoAscendant:   "Scorpio",
		helioEarth:     body("Earth", "Virgo", 9, 7, domain.RayTwo),
		siderealSun:    "Aquarius",
		soulRay:        domain.RayTwo,
		personalityRay: domain.RayFive,
		connections: []domain.StarseedConnection{
			{StarSystem: "Arcturus", FixedStar: "Arcturus", Degree: 24, Sign: "Libra", Description: "Akashic Reader & Spiritual Scientist", ConnectionType: domain.ConnectionMental},
		},
		history: []domain.AkashicRecord{{
			Era:        "Rosicrucian Era",
			Location:   "Germany",
			Role:       "Initiate of the Rose Cross",
			StarOrigin: "Arcturus",
			Lesson:     "Uniting Science and Spirituality.",
			RayFocus:   domain.RayFive,
		}},
	},
	"jung": {
		geoSun:         body("Sun", "Leo", 3, 1, domain.RayOne),
		geoMoon:        "Taurus",
		geoAscendant:   "Aquarius",
		helioEarth:     body("Earth", "Aquarius", 3, 7, domain.RayFive),
		siderealSun:    "Cancer",
		soulRay:        domain.RayTwo,
		personalityRay: domain.RayFive,
		connections: []domain.StarseedConnection{
			{StarSystem: "Lyra", FixedStar: "Vega", Degree: 15, Sign: "Capricorn", Description: "Explorer of the Collective Unconscious", ConnectionType: domain.ConnectionMental},
		},
		history: []domain.AkashicRecord{{
			Era:        "Alchemical Era",
			Location:   "Basel",
			Role:       "Alchemist of the Soul",
			StarOrigin: "Lyra",
			Lesson:     "Individuation and Shadow Work.",
			RayFocus:   domain.RayFour,
		}},
	},
}

func master(token string) builder {
	entry := masters[token]
	return func(profile domain.UserProfile) domain.AnalysisResult {
		return buildMaster(profile, entry)
	}
}

// Masters carry a curated history record instead of one derived from their
// star connections.
func buildMaster(profile domain.UserProfile, e masterEntry) domain.AnalysisResult {
	history := make([]domain.AkashicRecord, len(e.history))
	copy(history, e.history)
	earth := e.helioEarth

	geo := domain.ChartData{
		System:         domain.SystemGeocentric,
		Sun:            e.geoSun,
		Moon:           bodyRef("Moon", e.geoMoon, 14, 4, domain.RayFour),
		Ascendant:      bodyRef("Ascendant", e.geoAscendant, 1, 1, e.personalityRay),
		RulerRay:       e.personalityRay,
		Interpretation: "The vehicle of the Personality chosen for specific service.",
	}
	helio := domain.ChartData{
		System:         domain.SystemHeliocentric,
		Sun:            helioSun(),
		Earth:          &earth,
		RulerRay:       e.soulRay,
		Interpretation: "The Soul's Perspective.",
	}
	draconic := domain.ChartData{
		System:         domain.SystemDraconic,
		Sun:            body("Sun", "Scorpio", 15, 8, domain.RaySix),
		Moon:           bodyRef("Moon", "Taurus", 15, 2, domain.RayFour),
		Ascendant:      bodyRef("Ascendant", "Aquarius", 15, 1, domain.RayFive),
		RulerRay:       domain.RayFour,
		Interpretation: "The Karmic necessities of the Disciple.",
	}
	sidereal := domain.ChartData{
		System:         domain.SystemSidereal,
		Sun:            body("Sun", e.siderealSun, 5, 12, domain.RayThree),
		Moon:           bodyRef("Moon", e.geoMoon, 20, 3, domain.RayTwo),
		Ascendant:      bodyRef("Ascendant", e.geoAscendant, 7, 1, domain.RayThree),
		RulerRay:       domain.RayThree,
		Interpretation: "The Cosmic Lineage.",
	}

	return domain.AnalysisResult{
		Profile:             profile,
		Charts:              chartSet(geo, helio, draconic, sidereal),
		MonadicRay:          domain.RayOne,
		SoulRay:             e.soulRay,
		PersonalityRay:      e.personalityRay,
		MentalRay:           domain.RayFour,
		AstralRay:           domain.RaySix,
		PhysicalRay:         domain.RaySeven,
		KarmicDebtRay:       domain.RayFour,
		StarseedConnections: cloneConnections(e.connections),
		AkashicHistory:      history,
		RayDistribution: domain.RayDistribution{
			Sacred:    scores(domain.ScoreSacred, scorePair{e.soulRay, 95}),
			NonSacred: scores(domain.ScoreNonSacred, scorePair{e.personalityRay, 85}),
			Weighted:  scores(domain.ScoreEsoteric, scorePair{e.soulRay, 100}),
		},
	}
}
