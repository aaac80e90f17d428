package akashic

import (
	"strings"

	"github.com/vladimiradmaev/akashic-rays/internal/domain"
)

var fixedStars = [...]domain.StarseedConnection{
	{
		StarSystem:     "Sirius",
		FixedStar:      "Sirius A",
		Degree:         14,
		Sign:           "Cancer",
		Description:    "Higher Mind, Great White Lodge connection, Cosmic Freedom.",
		ConnectionType: domain.ConnectionSpiritual,
	},
	{
		StarSystem:     "Pleiades",
		FixedStar:      "Alcyone",
		Degree:         0,
		Sign:           "Gemini",
		Description:    "Communication, unconditional love, healing the inner child.",
		ConnectionType: domain.ConnectionAstral,
	},
	{
		StarSystem:     "Arcturus",
		FixedStar:      "Arcturus",
		Degree:         24,
		Sign:           "Libra",
		Description:    "Advanced technology, higher geometry, emotional balance.",
		ConnectionType: domain.ConnectionMental,
	},
	{
		StarSystem:     "Orion",
		FixedStar:      "Rigel",
		Degree:         16,
		Sign:           "Gemini",
		Description:    "Integration of polarity, warrior spirit, technical mastery.",
		ConnectionType: domain.ConnectionPhysical,
	},
	{
		StarSystem:     "Lyra",
		FixedStar:      "Vega",
		Degree:         15,
		Sign:           "Capricorn",
		Description:    "Ancient wisdom, musical harmony, foundational starseed origins.",
		ConnectionType: domain.ConnectionSpiritual,
	},
}

// FixedStars returns the generic star table
func FixedStars() []domain.StarseedConnection {
	out := make([]domain.StarseedConnection, len(fixedStars))
	copy(out, fixedStars[:])
	return out
}

// FixedStar looks up the generic entry for a star system, ignoring case
func FixedStar(starSystem string) (domain.StarseedConnection, bool) {
	for _, s := range fixedStars {
		if strings.EqualFold(s.StarSystem, strings.TrimSpace(starSystem)) {
			return s, true
		}
	}
	return domain.StarseedConnection{}, false
}
