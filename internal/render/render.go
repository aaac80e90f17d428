// Package render formats readings as chat messages. Markdown mode targets
// Telegram's legacy Markdown parse mode; plain mode is used on terminals.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vladimiradmaev/akashic-rays/internal/akashic"
	"github.com/vladimiradmaev/akashic-rays/internal/domain"
)

// MaxMessageLength is Telegram's limit for a text message
const MaxMessageLength = 4096

// Mode selects the output dialect
type Mode int

const (
	Markdown Mode = iota
	Plain
)

// Tab names one view of a reading
type Tab string

const (
	TabOverview Tab = "overview"
	TabOrigins  Tab = "origins"
	TabKarmic   Tab = "karmic"
	TabVehicles Tab = "vehicles"
)

// Tabs lists the views in display order
func Tabs() []Tab {
	return []Tab{TabOverview, TabOrigins, TabKarmic, TabVehicles}
}

// ParseTab accepts a tab name in any case
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs() {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, true
		}
	}
	return "", false
}

// Title is the button label of a tab
func (t Tab) Title() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabOrigins:
		return "Origins"
	case TabKarmic:
		return "Karmic"
	case TabVehicles:
		return "Vehicles"
	default:
		return string(t)
	}
}

// Renderer turns an AnalysisResult into text
type Renderer struct {
	mode Mode
}

// New creates a renderer for the given mode
func New(mode Mode) *Renderer {
	return &Renderer{mode: mode}
}

// Tab renders one view. Unknown tabs fall back to the overview.
func (r *Renderer) Tab(tab Tab, result domain.AnalysisResult, synthesis string) string {
	switch tab {
	case TabOrigins:
		return r.Origins(result)
	case TabKarmic:
		return r.Karmic(result)
	case TabVehicles:
		return r.Vehicles(result, synthesis)
	default:
		return r.Overview(result)
	}
}

// Overview renders the constitution, the four-system comparison and the ray distribution
func (r *Renderer) Overview(result domain.AnalysisResult) string {
	var b strings.Builder

	r.heading(&b, "✨ Akashic reading: "+result.Profile.Name)
	if line := profileLine(result.Profile); line != "" {
		b.WriteString(r.escape(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	r.heading(&b, "Constitution")
	for _, v := range result.Vehicles()[:3] {
		r.rayLine(&b, v.Label, v.Ray)
	}
	b.WriteString("\n")

	r.heading(&b, "Multi-dimensional zodiac")
	for _, system := range domain.SystemTypes() {
		chart, ok := result.Charts[system]
		if !ok {
			continue
		}
		focus := chart.Sun.Sign
		if system == domain.SystemHeliocentric && chart.Earth != nil {
			focus = fmt.Sprintf("%s, Earth in %s", focus, chart.Earth.Sign)
		}
		ray := akashic.MustRay(chart.RulerRay)
		fmt.Fprintf(&b, "%s %s\n", r.bold(string(system)+":"), r.escape(focus))
		fmt.Fprintf(&b, "  Ruling ray %d: %s\n", ray.ID, r.escape(ray.Name))
		fmt.Fprintf(&b, "  %s\n", r.italic(chart.Interpretation))
	}
	b.WriteString("\n")

	r.scoreBlock(&b, "Sacred rays", result.RayDistribution.Sacred)
	r.scoreBlock(&b, "Non-sacred rays", result.RayDistribution.NonSacred)
	r.scoreBlock(&b, "Weighted", result.RayDistribution.Weighted)

	return r.finish(b.String())
}

// Origins renders the starseed connections and the past lives
func (r *Renderer) Origins(result domain.AnalysisResult) string {
	var b strings.Builder

	r.heading(&b, "🌌 Cosmic lineage")
	if len(result.StarseedConnections) == 0 {
		b.WriteString("No fixed-star contacts stand out in this chart.\n")
	}
	for _, conn := range result.StarseedConnections {
		fmt.Fprintf(&b, "%s (%s) %s\n",
			r.bold(conn.StarSystem),
			r.escape(conn.FixedStar),
			r.escape(fmt.Sprintf("%g° %s, %s plane", conn.Degree, conn.Sign, conn.ConnectionType)))
		fmt.Fprintf(&b, "  %s\n", r.italic(conn.Description))
	}
	b.WriteString("\n")

	r.heading(&b, "📜 Soul memory")
	for _, record := range result.AkashicHistory {
		ray := akashic.MustRay(record.RayFocus)
		fmt.Fprintf(&b, "%s\n", r.bold(record.Era))
		fmt.Fprintf(&b, "  %s\n", r.escape(fmt.Sprintf("%s · %s · from %s", record.Location, record.Role, record.StarOrigin)))
		fmt.Fprintf(&b, "  Lesson (ray %d): %s\n", ray.ID, r.escape(record.Lesson))
	}

	return r.finish(b.String())
}

// Karmic renders the draconic chart and the karmic debt ray
func (r *Renderer) Karmic(result domain.AnalysisResult) string {
	var b strings.Builder

	r.heading(&b, "⚖️ Karmic & draconic study")
	if draconic, ok := result.Charts[domain.SystemDraconic]; ok {
		fmt.Fprintf(&b, "Draconic sun: %s\n", r.escape(signOrNA(&draconic.Sun)))
		fmt.Fprintf(&b, "Draconic ascendant: %s\n", r.escape(signOrNA(draconic.Ascendant)))
		fmt.Fprintf(&b, "%s\n", r.italic(draconic.Interpretation))
		for _, aspect := range draconic.Aspects {
			fmt.Fprintf(&b, "  %s\n", r.escape(fmt.Sprintf("%s %s (orb %g°): %s", aspect.Type, aspect.Body, aspect.Orb, aspect.Interpretation)))
		}
	}
	b.WriteString("\n")

	karmic := akashic.MustRay(result.KarmicDebtRay)
	r.heading(&b, fmt.Sprintf("Ray %d karma", karmic.ID))
	b.WriteString(r.escape(karmic.Name))
	b.WriteString("\n")
	b.WriteString(r.italic(fmt.Sprintf(
		"Your soul is working to balance the energy of %s. This manifests as a need to master %s through emotional discipline.",
		karmic.Name, strings.ToLower(strings.TrimSuffix(karmic.Quality, ".")))))
	b.WriteString("\n\n")
	b.WriteString(r.escape("The draconic layer filters the light of the soul through the veil of past-life matter."))
	b.WriteString("\n")

	return r.finish(b.String())
}

// Vehicles renders the six ray vehicles followed by the synthesis paragraph
func (r *Renderer) Vehicles(result domain.AnalysisResult, synthesis string) string {
	var b strings.Builder

	r.heading(&b, "🜂 Esoteric constitution")
	for _, v := range result.Vehicles() {
		r.rayLine(&b, v.Label, v.Ray)
	}
	b.WriteString("\n")

	if synthesis == "" {
		synthesis = TemplateSynthesis(result)
	}
	r.heading(&b, "Akashic synthesis")
	b.WriteString(r.escape(synthesis))
	b.WriteString("\n")

	return r.finish(b.String())
}

// Rays renders the reference list of the seven rays
func (r *Renderer) Rays() string {
	var b strings.Builder
	r.heading(&b, "The seven rays")
	for _, ray := range akashic.Rays() {
		fmt.Fprintf(&b, "%s\n", r.bold(fmt.Sprintf("Ray %d: %s", ray.ID, ray.Name)))
		fmt.Fprintf(&b, "  %s\n", r.escape(ray.Description))
		fmt.Fprintf(&b, "  %s\n", r.italic(ray.Quality))
	}
	return r.finish(b.String())
}

// TemplateSynthesis is the canned paragraph used when no narrator is available
func TemplateSynthesis(result domain.AnalysisResult) string {
	soul := akashic.MustRay(result.SoulRay)
	personality := akashic.MustRay(result.PersonalityRay)
	return fmt.Sprintf(
		"The alignment between the Soul (Ray %d) and the Personality (Ray %d) suggests a lifetime focused on integrating %s into the vehicle of %s. "+
			"The Heliocentric Earth position opposes your Personality Sun, grounding these high-frequency energies into practical service.",
		soul.ID, personality.ID, soul.Name, personality.Name)
}

// Bar draws a 0-100 score as ten cells
func Bar(score int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	filled := (score + 5) / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func (r *Renderer) rayLine(b *strings.Builder, label string, id domain.RayID) {
	ray := akashic.MustRay(id)
	fmt.Fprintf(b, "%s ray %d, %s\n", r.bold(label+":"), ray.ID, r.escape(ray.Name))
}

func (r *Renderer) scoreBlock(b *strings.Builder, title string, scores []domain.RayScore) {
	if len(scores) == 0 {
		return
	}
	r.heading(b, title)
	for _, s := range scores {
		fmt.Fprintf(b, "R%d %s %d\n", s.RayID, Bar(s.Score), s.Score)
	}
	b.WriteString("\n")
}

func (r *Renderer) heading(b *strings.Builder, text string) {
	b.WriteString(r.bold(text))
	b.WriteString("\n")
}

// Legacy Markdown has no escapes inside an entity, so the delimiter is
// dropped from the enclosed text instead.
func (r *Renderer) bold(text string) string {
	if r.mode == Plain {
		return text
	}
	return "*" + strings.ReplaceAll(text, "*", "") + "*"
}

func (r *Renderer) italic(text string) string {
	if r.mode == Plain {
		return text
	}
	return "_" + strings.ReplaceAll(text, "_", " ") + "_"
}

func (r *Renderer) escape(text string) string {
	if r.mode == Plain {
		return text
	}
	return EscapeMarkdown(text)
}

func (r *Renderer) finish(text string) string {
	text = strings.ToValidUTF8(strings.TrimRight(text, "\n"), "")
	if utf8.RuneCountInString(text) <= MaxMessageLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:MaxMessageLength-3]) + "..."
}

// EscapeMarkdown escapes the characters legacy Markdown treats as markup
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"[", "\\[",
	"`", "\\`",
)

func profileLine(p domain.UserProfile) string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.BirthDate, p.BirthTime, p.BirthPlace} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " · ")
}

func signOrNA(p *domain.PlanetPosition) string {
	if p == nil || p.Sign == "" {
		return "N/A"
	}
	return p.Sign
}
