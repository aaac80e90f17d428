package akashic

import "github.com/vladimiradmaev/akashic-rays/internal/domain"

var historyByStarSystem = map[string]domain.AkashicRecord{
	"Sirius": {
		Era:        "Dynastic Epoch (c. 1350 BC)",
		Location:   "Ancient Egypt (Thebes)",
		Role:       "Temple Initiate of Isis",
		StarOrigin: "Sirius A",
		Lesson:     "Balancing power with sacred wisdom; retrieving the lost codes of resurrection.",
		RayFocus:   domain.RayTwo,
	},
	"Pleiades": {
		Era:        "Pre-Diluvian (c. 10,000 BC)",
		Location:   "Atlantis (Poseidonis)",
		Role:       "Crystal Healer / Sound Keeper",
		StarOrigin: "Alcyone",
		Lesson:     "Healing the separation trauma; using sound frequency to restructure matter.",
		RayFocus:   domain.RaySeven,
	},
	"Arcturus": {
		Era:        "Golden Age of Philosophy",
		Location:   "Ancient Greece (Athens)",
		Role:       "Pythagorean Mathematician",
		StarOrigin: "Arcturus",
		Lesson:     "Understanding the geometry of the soul and the logic of higher dimensions.",
		RayFocus:   domain.RayFive,
	},
	"Orion": {
		Era:        "Feudal Era",
		Location:   "Japan (Kamakura)",
		Role:       "Samurai / Warrior Monk",
		StarOrigin: "Rigel",
		Lesson:     "Transmuting conflict into inner discipline; the path of the peaceful warrior.",
		RayFocus:   domain.RayOne,
	},
	"Lyra": {
		Era:        "First Earth Seeding",
		Location:   "Lemuria (Mu)",
		Role:       "Earth Guardian",
		StarOrigin: "Vega",
		Lesson:     "Grounding the first spiritual laws into the physical grid of the planet.",
		RayFocus:   domain.RayThree,
	},
	"Algol": {
		Era:        "Age of the Gorgon Mysteries (c. 600 BC)",
		Location:   "Ancient Greece (Argos)",
		Role:       "Oracle of the Severed Head",
		StarOrigin: "Algol",
		Lesson:     "Looking into terror without turning to stone; fear transmuted into protective sight.",
		RayFocus:   domain.RayOne,
	},
	"Alcyone": {
		Era:        "Atlantean Twilight (c. 9,600 BC)",
		Location:   "Atlantis (City of the Golden Gates)",
		Role:       "Disciple of the Temple of the Sun",
		StarOrigin: "Alcyone",
		Lesson:     "Renouncing every ladder of authority; truth as a pathless land.",
		RayFocus:   domain.RayTwo,
	},
}

var defaultRecord = domain.AkashicRecord{
	Era:        "Renaissance",
	Location:   "Florence, Italy",
	Role:       "Apprentice of Arts",
	StarOrigin: "Solar System",
	Lesson:     "Expression of beauty through form.",
	RayFocus:   domain.RayFour,
}

// GenerateAkashicHistory derives past lives from star connections, one record
// per recognized star system in input order. When nothing is recognized the
// Renaissance apprentice record is returned on its own.
func GenerateAkashicHistory(connections []domain.StarseedConnection) []domain.AkashicRecord {
	history := make([]domain.AkashicRecord, 0, len(connections))
	for _, conn := range connections {
		if record, ok := historyByStarSystem[conn.StarSystem]; ok {
			history = append(history, record)
		}
	}

	if len(history) == 0 {
		history = append(history, defaultRecord)
	}
	return history
}

// DefaultRecord returns the record used when no star system is recognized
func DefaultRecord() domain.AkashicRecord {
	return defaultRecord
}
