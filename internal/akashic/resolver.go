// Package akashic resolves a free-text profile into a curated or generic
// esoteric reading. All tables in this package are read-only after init, so
// a Resolver is safe for concurrent use.
package akashic

import (
	"strings"

	"github.com/vladimiradmaev/akashic-rays/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Cohort groups the curated names that share a profile builder
type Cohort string

const (
	CohortLeaders      Cohort = "historical_leaders"
	CohortMasters      Cohort = "esoteric_masters"
	CohortTheosophists Cohort = "theosophists"
	CohortHorror       Cohort = "horror_authors"
	CohortGeneric      Cohort = "generic"
)

type builder func(profile domain.UserProfile) domain.AnalysisResult

type route struct {
	token  string
	cohort Cohort
	build  builder
}

// Match reports which route a name was dispatched to
type Match struct {
	Token  string
	Cohort Cohort
}

// Resolver maps profiles to readings. The zero value is not usable; call NewResolver.
type Resolver struct {
	routes []route
}

// NewResolver builds a resolver over the compiled-in route table
func NewResolver() *Resolver {
	return &Resolver{routes: defaultRoutes()}
}

// Routes are tested in order and the first token contained in the lower-cased
// name wins, so a cohort listed earlier shadows later ones.
func defaultRoutes() []route {
	return []route{
		{"alexander", CohortLeaders, leader("alexander")},
		{"cleopatra", CohortLeaders, leader("cleopatra")},
		{"caesar", CohortLeaders, leader("caesar")},
		{"akhenaten", CohortLeaders, leader("akhenaten")},

		{"blavatsky", CohortMasters, master("blavatsky")},
		{"bailey", CohortMasters, master("bailey")},
		{"steiner", CohortMasters, master("steiner")},
		{"jung", CohortMasters, master("jung")},

		{"krishnamurti", CohortTheosophists, theosophist("krishnamurti")},
		{"besant", CohortTheosophists, theosophist("besant")},
		{"leadbeater", CohortTheosophists, theosophist("leadbeater")},
		{"hall", CohortTheosophists, theosophist("hall")},

		{"lovecraft", CohortHorror, horrorAuthor("lovecraft")},
		{"poe", CohortHorror, horrorAuthor("poe")},
		{"shelley", CohortHorror, horrorAuthor("shelley")},
		{"king", CohortHorror, horrorAuthor("king")},
	}
}

// Resolve returns the reading for a profile. It never fails: names that match
// no curated token get the generic reading.
func (r *Resolver) Resolve(profile domain.UserProfile) domain.AnalysisResult {
	if rt, ok := r.lookup(profile.Name); ok {
		return rt.build(profile)
	}
	return buildGeneric(profile)
}

// Match reports the route a name resolves to. ok is false for the generic fallback.
func (r *Resolver) Match(name string) (Match, bool) {
	rt, ok := r.lookup(name)
	if !ok {
		return Match{Cohort: CohortGeneric}, false
	}
	return Match{Token: rt.token, Cohort: rt.cohort}, true
}

// Tokens lists the curated tokens in priority order
func (r *Resolver) Tokens() []string {
	tokens := make([]string, 0, len(r.routes))
	for _, rt := range r.routes {
		tokens = append(tokens, rt.token)
	}
	return tokens
}

func (r *Resolver) lookup(name string) (route, bool) {
	// Casers carry state, so one is built per call.
	lowered := cases.Lower(language.Und).String(name)
	for _, rt := range r.routes {
		if strings.Contains(lowered, rt.token) {
			return rt, true
		}
	}
	return route{}, false
}

var std = NewResolver()

// Resolve resolves a profile with the default resolver
func Resolve(profile domain.UserProfile) domain.AnalysisResult {
	return std.Resolve(profile)
}

// MatchName reports the route a name resolves to with the default resolver
func MatchName(name string) (Match, bool) {
	return std.Match(name)
}
