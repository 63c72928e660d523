package geography

import (
	"math"

	"github.com/halc8312/shinwa-sub002/internal/model"
)

// Distance is the Euclidean distance between two resolved locations on
// the normalized coordinate plane. Scales share the plane, so the hint
// is comparable across them.
func Distance(a, b ResolvedLocation) float64 {
	dx := a.Coord.X - b.Coord.X
	dy := a.Coord.Y - b.Coord.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Connected reports whether a direct edge exists between a and b.
// A unidirectional connection only counts in its declared direction.
// This is a direct-edge lookup, not a path search; locations without
// any edge still simulate travel via the distance fallback.
func (ix *Index) Connected(a, b ResolvedLocation) bool {
	_, ok := ix.ConnectionBetween(a, b)
	return ok
}

// ConnectionBetween returns the first declared edge usable from a to b.
func (ix *Index) ConnectionBetween(a, b ResolvedLocation) (model.Connection, bool) {
	for _, c := range ix.edges {
		if c.FromLocationID == a.ID && c.ToLocationID == b.ID {
			return c, true
		}
		if c.Bidirectional && c.FromLocationID == b.ID && c.ToLocationID == a.ID {
			return c, true
		}
	}
	return model.Connection{}, false
}

// TravelTimeFor returns the precomputed travel time for one connection
// and method, when the editor has recorded one.
func (ix *Index) TravelTimeFor(connectionID string, method model.TransportType) (model.TravelTime, bool) {
	for _, tt := range ix.times[connectionID] {
		if tt.Method == method {
			return tt, true
		}
	}
	return model.TravelTime{}, false
}

// TravelTimes returns all precomputed records for one connection.
func (ix *Index) TravelTimes(connectionID string) []model.TravelTime {
	return ix.times[connectionID]
}

// DifficultyMultiplier scales coordinate distance for terrain grade.
func DifficultyMultiplier(d model.Difficulty) float64 {
	switch d {
	case model.DifficultyModerate:
		return 1.5
	case model.DifficultyHard:
		return 2.0
	default:
		return 1.0
	}
}
