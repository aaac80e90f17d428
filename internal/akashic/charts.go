package akashic

import "github.com/vladimiradmaev/akashic-rays/internal/domain"

// signs holds the three sign placements of a geocentric-style chart
type signs struct {
	sun       string
	moon      string
	ascendant string
}

func body(planet, sign string, degree float64, house int, ray domain.RayID) domain.PlanetPosition {
	return domain.PlanetPosition{Planet: planet, Sign: sign, Degree: degree, House: house, Ray: ray}
}

func bodyRef(planet, sign string, degree float64, house int, ray domain.RayID) *domain.PlanetPosition {
	p := body(planet, sign, degree, house, ray)
	return &p
}

// helioSun is the sun at the centre of a heliocentric chart
func helioSun() domain.PlanetPosition {
	return body("Sun", "Center", 0, 0, domain.RayOne)
}

func chartSet(geo, helio, draconic, sidereal domain.ChartData) map[domain.SystemType]domain.ChartData {
	return map[domain.SystemType]domain.ChartData{
		domain.SystemGeocentric:   geo,
		domain.SystemHeliocentric: helio,
		domain.SystemDraconic:     draconic,
		domain.SystemSidereal:     sidereal,
	}
}

func cloneConnections(in []domain.StarseedConnection) []domain.StarseedConnection {
	out := make([]domain.StarseedConnection, len(in))
	copy(out, in)
	return out
}

func cloneAspects(in []domain.Aspect) []domain.Aspect {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Aspect, len(in))
	copy(out, in)
	return out
}

func scores(category domain.ScoreCategory, pairs ...scorePair) []domain.RayScore {
	out := make([]domain.RayScore, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, domain.RayScore{RayID: p.ray, Score: p.score, Type: category})
	}
	return out
}

type scorePair struct {
	ray   domain.RayID
	score int
}
