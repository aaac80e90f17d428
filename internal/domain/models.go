package domain

// RayID identifies one of the seven esoteric rays
type RayID int

const (
	RayOne RayID = iota + 1
	RayTwo
	RayThree
	RayFour
	RayFive
	RaySix
	RaySeven
)

// Valid reports whether the id is one of the seven rays
func (r RayID) Valid() bool {
	return r >= RayOne && r <= RaySeven
}

// RayDefinition describes a ray for display
type RayDefinition struct {
	ID          RayID  `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Color       string `json:"color" yaml:"color"`
	Description string `json:"description" yaml:"description"`
	Quality     string `json:"quality" yaml:"quality"`
}

// SystemType names an astrological reference frame
type SystemType string

const (
	SystemGeocentric   SystemType = "Geocentric (Tropical)"
	SystemHeliocentric SystemType = "Heliocentric"
	SystemDraconic     SystemType = "Draconic (Karmic)"
	SystemSidereal     SystemType = "Sidereal (Cosmic)"
)

// SystemTypes lists every reference frame in display order
func SystemTypes() []SystemType {
	return []SystemType{SystemGeocentric, SystemHeliocentric, SystemDraconic, SystemSidereal}
}

// UserProfile is the free-text input of a reading. None of the fields are parsed.
type UserProfile struct {
	Name       string `json:"name" yaml:"name"`
	BirthDate  string `json:"birthDate" yaml:"birthDate"`
	BirthTime  string `json:"birthTime" yaml:"birthTime"`
	BirthPlace string `json:"birthPlace" yaml:"birthPlace"`
}

// PlanetPosition places a body in a sign. Degree and house are narrative only.
type PlanetPosition struct {
	Planet string  `json:"planet" yaml:"planet"`
	Sign   string  `json:"sign" yaml:"sign"`
	Degree float64 `json:"degree" yaml:"degree"`
	House  int     `json:"house" yaml:"house"`
	Ray    RayID   `json:"ray" yaml:"ray"`
}

// Aspect relates the chart's sun to another body
type Aspect struct {
	Body           string  `json:"body" yaml:"body"`
	Type           string  `json:"type" yaml:"type"`
	Orb            float64 `json:"orb" yaml:"orb"`
	Interpretation string  `json:"interpretation" yaml:"interpretation"`
}

// ChartData is one reference frame of a reading. Heliocentric charts carry
// Earth; every other system carries Moon and Ascendant instead.
type ChartData struct {
	System         SystemType      `json:"system" yaml:"system"`
	Sun            PlanetPosition  `json:"sun" yaml:"sun"`
	Earth          *PlanetPosition `json:"earth,omitempty" yaml:"earth,omitempty"`
	Moon           *PlanetPosition `json:"moon,omitempty" yaml:"moon,omitempty"`
	Ascendant      *PlanetPosition `json:"ascendant,omitempty" yaml:"ascendant,omitempty"`
	RulerRay       RayID           `json:"rulerRay" yaml:"rulerRay"`
	Interpretation string          `json:"interpretation" yaml:"interpretation"`
	Aspects        []Aspect        `json:"aspects,omitempty" yaml:"aspects,omitempty"`
}

// ConnectionType classifies a starseed connection
type ConnectionType string

const (
	ConnectionMental    ConnectionType = "Mental"
	ConnectionAstral    ConnectionType = "Astral"
	ConnectionPhysical  ConnectionType = "Physical"
	ConnectionSpiritual ConnectionType = "Spiritual"
)

// StarseedConnection links a profile to a fixed star
type StarseedConnection struct {
	StarSystem     string         `json:"starSystem" yaml:"starSystem"`
	FixedStar      string         `json:"fixedStar" yaml:"fixedStar"`
	Degree         float64        `json:"degree" yaml:"degree"`
	Sign           string         `json:"sign" yaml:"sign"`
	Description    string         `json:"description" yaml:"description"`
	ConnectionType ConnectionType `json:"connectionType" yaml:"connectionType"`
}

// AkashicRecord is an archetypal past life
type AkashicRecord struct {
	Era        string `json:"era" yaml:"era"`
	Location   string `json:"location" yaml:"location"`
	Role       string `json:"role" yaml:"role"`
	StarOrigin string `json:"starOrigin" yaml:"starOrigin"`
	Lesson     string `json:"lesson" yaml:"lesson"`
	RayFocus   RayID  `json:"rayFocus" yaml:"rayFocus"`
}

// ScoreCategory tags a ray score
type ScoreCategory string

const (
	ScoreSacred    ScoreCategory = "Sacred"
	ScoreNonSacred ScoreCategory = "Non-Sacred"
	ScoreEsoteric  ScoreCategory = "Esoteric"
	ScoreExoteric  ScoreCategory = "Exoteric"
)

// RayScore is a 0-100 weight for a ray
type RayScore struct {
	RayID RayID         `json:"rayId" yaml:"rayId"`
	Score int           `json:"score" yaml:"score"`
	Type  ScoreCategory `json:"type" yaml:"type"`
}

// RayDistribution groups the scores shown on the bar charts
type RayDistribution struct {
	Sacred    []RayScore `json:"sacred" yaml:"sacred"`
	NonSacred []RayScore `json:"nonSacred" yaml:"nonSacred"`
	Weighted  []RayScore `json:"weighted" yaml:"weighted"`
}

// AnalysisResult is a complete reading
type AnalysisResult struct {
	Profile             UserProfile              `json:"profile" yaml:"profile"`
	Charts              map[SystemType]ChartData `json:"charts" yaml:"charts"`
	MonadicRay          RayID                    `json:"monadicRay" yaml:"monadicRay"`
	SoulRay             RayID                    `json:"soulRay" yaml:"soulRay"`
	PersonalityRay      RayID                    `json:"personalityRay" yaml:"personalityRay"`
	MentalRay           RayID                    `json:"mentalRay" yaml:"mentalRay"`
	AstralRay           RayID                    `json:"astralRay" yaml:"astralRay"`
	PhysicalRay         RayID                    `json:"physicalRay" yaml:"physicalRay"`
	KarmicDebtRay       RayID                    `json:"karmicDebtRay" yaml:"karmicDebtRay"`
	StarseedConnections []StarseedConnection     `json:"starseedConnections" yaml:"starseedConnections"`
	AkashicHistory      []AkashicRecord          `json:"akashicHistory" yaml:"akashicHistory"`
	RayDistribution     RayDistribution          `json:"rayDistribution" yaml:"rayDistribution"`
}

// Vehicles returns the six constitution rays in display order
func (r AnalysisResult) Vehicles() []Vehicle {
	return []Vehicle{
		{Label: "Monad", Ray: r.MonadicRay},
		{Label: "Soul", Ray: r.SoulRay},
		{Label: "Personality", Ray: r.PersonalityRay},
		{Label: "Mental", Ray: r.MentalRay},
		{Label: "Astral", Ray: r.AstralRay},
		{Label: "Physical", Ray: r.PhysicalRay},
	}
}

// Vehicle pairs a constitution layer with its ray
type Vehicle struct {
	Label string
	Ray   RayID
}

// ChatUser identifies the Telegram user behind an update. It is never stored.
type ChatUser struct {
	TelegramID int64
	ChatID     int64
	Username   string
	FirstName  string
}
