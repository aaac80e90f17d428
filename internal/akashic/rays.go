package akashic

import "github.com/vladimiradmaev/akashic-rays/internal/domain"

var rayTable = [...]domain.RayDefinition{
	{
		ID:          domain.RayOne,
		Name:        "Will or Power",
		Color:       "#ef4444",
		Description: "The Ray of Will, Power, and Governance.",
		Quality:     "Dynamic intensity, destruction of forms, synthesis.",
	},
	{
		ID:          domain.RayTwo,
		Name:        "Love-Wisdom",
		Color:       "#3b82f6",
		Description: "The Ray of Love, Wisdom, and Healing.",
		Quality:     "Inclusiveness, coherence, attraction, teaching.",
	},
	{
		ID:          domain.RayThree,
		Name:        "Active Intelligence",
		Color:       "#22c55e",
		Description: "The Ray of Abstract Intelligence and adaptability.",
		Quality:     "Philosophical understanding, planning, strategy.",
	},
	{
		ID:          domain.RayFour,
		Name:        "Harmony through Conflict",
		Color:       "#eab308",
		Description: "The Ray of Beauty, Art, and Mediation.",
		Quality:     "Unity amidst diversity, artistic expression, balance.",
	},
	{
		ID:          domain.RayFive,
		Name:        "Concrete Science",
		Color:       "#f97316",
		Description: "The Ray of Concrete Knowledge and Science.",
		Quality:     "Detailed analysis, research, technological precision.",
	},
	{
		ID:          domain.RaySix,
		Name:        "Devotion & Idealism",
		Color:       "#06b6d4",
		Description: "The Ray of Abstract Idealism and Devotion.",
		Quality:     "One-pointedness, religious fervor, loyalty.",
	},
	{
		ID:          domain.RaySeven,
		Name:        "Ceremonial Order",
		Color:       "#d946ef",
		Description: "The Ray of Ritual, Order, and Magic.",
		Quality:     "Organization, grounding spirit in matter, rhythm.",
	},
}

// Ray returns the definition of a ray
func Ray(id domain.RayID) (domain.RayDefinition, bool) {
	if !id.Valid() {
		return domain.RayDefinition{}, false
	}
	return rayTable[id-1], true
}

// MustRay is Ray for ids already known to be valid. Invalid ids get a
// placeholder definition rather than a panic.
func MustRay(id domain.RayID) domain.RayDefinition {
	if def, ok := Ray(id); ok {
		return def
	}
	return domain.RayDefinition{ID: id, Name: "Unknown Ray", Color: "#64748b"}
}

// Rays returns all seven definitions in id order
func Rays() []domain.RayDefinition {
	out := make([]domain.RayDefinition, len(rayTable))
	copy(out, rayTable[:])
	return out
}
