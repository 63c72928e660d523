package geography

import (
	"math"
	"testing"

	"github.com/halc8312/shinwa-sub002/internal/model"
)

func mustResolve(t *testing.T, ix *Index, name string) ResolvedLocation {
	t.Helper()
	loc, ok := ix.Resolve(name)
	if !ok {
		t.Fatalf("resolving %q failed", name)
	}
	return loc
}

func TestDistance(t *testing.T) {
	ix := testIndex(t)

	capital := mustResolve(t, ix, "王都")
	far := mustResolve(t, ix, "遠い国")

	want := math.Sqrt(45*45 + 45*45)
	if got := Distance(capital, far); math.Abs(got-want) > 1e-9 {
		t.Errorf("Distance = %f, want %f", got, want)
	}
	if got := Distance(capital, capital); got != 0 {
		t.Errorf("self distance = %f, want 0", got)
	}
}

func TestConnectedBidirectional(t *testing.T) {
	ix := testIndex(t)

	capital := mustResolve(t, ix, "王都")
	port := mustResolve(t, ix, "港町")

	if !ix.Connected(capital, port) {
		t.Error("capital -> port should be connected")
	}
	if !ix.Connected(port, capital) {
		t.Error("bidirectional edge should connect port -> capital too")
	}
}

func TestConnectedRespectsDirection(t *testing.T) {
	ix := testIndex(t)

	capital := mustResolve(t, ix, "王都")
	forest := mustResolve(t, ix, "北の森")

	if !ix.Connected(capital, forest) {
		t.Error("capital -> forest edge should exist")
	}
	if ix.Connected(forest, capital) {
		t.Error("one-way edge must not connect forest -> capital")
	}
}

func TestConnectedNoEdge(t *testing.T) {
	ix := testIndex(t)

	capital := mustResolve(t, ix, "王都")
	far := mustResolve(t, ix, "遠い国")

	if ix.Connected(capital, far) {
		t.Error("no edge should exist to 遠い国")
	}
}

func TestTravelTimeFor(t *testing.T) {
	ix := testIndex(t)

	tt, ok := ix.TravelTimeFor("c-road", model.TransportHorse)
	if !ok {
		t.Fatal("expected horse travel time for c-road")
	}
	if tt.BaseTime != 120 {
		t.Errorf("expected base time 120, got %f", tt.BaseTime)
	}

	if _, ok := ix.TravelTimeFor("c-road", model.TransportShip); ok {
		t.Error("no ship record should exist for c-road")
	}
	if _, ok := ix.TravelTimeFor("c-trail", model.TransportWalk); ok {
		t.Error("c-trail has no travel time records")
	}
}

func TestDifficultyMultiplier(t *testing.T) {
	tests := []struct {
		d    model.Difficulty
		want float64
	}{
		{model.DifficultyEasy, 1.0},
		{model.DifficultyModerate, 1.5},
		{model.DifficultyHard, 2.0},
		{"", 1.0},
	}
	for _, tt := range tests {
		if got := DifficultyMultiplier(tt.d); got != tt.want {
			t.Errorf("DifficultyMultiplier(%q) = %f, want %f", tt.d, got, tt.want)
		}
	}
}
