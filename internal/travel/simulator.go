package travel

import (
	"github.com/halc8312/shinwa-sub002/internal/geography"
	"github.com/halc8312/shinwa-sub002/internal/model"
	"github.com/halc8312/shinwa-sub002/internal/transport"
)

// Result describes one simulated journey. Distance is in normalized
// map units, EstimatedDuration in minutes.
type Result struct {
	Distance          float64             `json:"distance"`
	EstimatedDuration float64             `json:"estimated_duration"`
	MethodUsed        model.TransportType `json:"method_used"`
}

// Simulate computes the travel estimate for a character moving between
// two resolved locations with a chosen method. When the editor has
// recorded a TravelTime for the pair's connection and this method, its
// base time wins; otherwise the coordinate distance is scaled by the
// connection difficulty, or used raw when no connection exists at all.
func Simulate(ix *geography.Index, character model.Character, from, to geography.ResolvedLocation, method model.TransportMethod) Result {
	dist := geography.Distance(from, to)
	speed := method.Speed
	if speed <= 0 {
		speed = transport.Method(model.TransportWalk).Speed
	}

	conn, hasConn := ix.ConnectionBetween(from, to)
	if hasConn {
		if tt, ok := ix.TravelTimeFor(conn.ID, method.Type); ok {
			return Result{Distance: dist, EstimatedDuration: tt.BaseTime, MethodUsed: method.Type}
		}
		dist *= geography.DifficultyMultiplier(conn.Difficulty)
	}

	return Result{
		Distance:          dist,
		EstimatedDuration: dist / speed * 60,
		MethodUsed:        method.Type,
	}
}

// MethodsFor lists the transports offered for one location pair: the
// era-available set intersected with any methods the connection's
// TravelTime records explicitly name, plus the walk fallback.
func MethodsFor(ix *geography.Index, settings model.WorldSettings, custom []model.TransportMethod, from, to geography.ResolvedLocation) []model.TransportMethod {
	available := transport.Available(settings, custom)

	conn, hasConn := ix.ConnectionBetween(from, to)
	if !hasConn {
		return available
	}
	records := ix.TravelTimes(conn.ID)
	if len(records) == 0 {
		return available
	}

	named := make(map[model.TransportType]bool, len(records))
	for _, tt := range records {
		named[tt.Method] = true
	}

	var methods []model.TransportMethod
	for _, m := range available {
		if named[m.Type] || m.Type == model.TransportWalk {
			methods = append(methods, m)
		}
	}
	// Walk is always offered even when the era set somehow lost it.
	for _, m := range methods {
		if m.Type == model.TransportWalk {
			return methods
		}
	}
	return append(methods, transport.Method(model.TransportWalk))
}
