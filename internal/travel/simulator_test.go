package travel

import (
	"math"
	"testing"

	"github.com/halc8312/shinwa-sub002/internal/geography"
	"github.com/halc8312/shinwa-sub002/internal/model"
	"github.com/halc8312/shinwa-sub002/internal/transport"
)

func mustResolve(t *testing.T, ix *geography.Index, name string) geography.ResolvedLocation {
	t.Helper()
	loc, ok := ix.Resolve(name)
	if !ok {
		t.Fatalf("resolving %q failed", name)
	}
	return loc
}

func TestSimulatePrecomputedTravelTime(t *testing.T) {
	ix := testIndex(t)
	capital := mustResolve(t, ix, "王都")
	port := mustResolve(t, ix, "港町")

	result := Simulate(ix, model.Character{ID: "char-1"}, capital, port, transport.Method(model.TransportHorse))

	if result.MethodUsed != model.TransportHorse {
		t.Errorf("expected horse, got %q", result.MethodUsed)
	}
	// The editor recorded 120 minutes for this road by horse.
	if result.EstimatedDuration != 120 {
		t.Errorf("expected duration 120, got %f", result.EstimatedDuration)
	}
}

func TestSimulateDifficultyScaling(t *testing.T) {
	ix := testIndex(t)
	capital := mustResolve(t, ix, "王都")
	forest := mustResolve(t, ix, "北の森")

	walk := transport.Method(model.TransportWalk)
	result := Simulate(ix, model.Character{}, capital, forest, walk)

	// Moderate trail with no travel-time record: coordinate distance
	// scaled 1.5x, then divided by walking speed.
	raw := math.Sqrt(5*5 + 20*20)
	wantDist := raw * 1.5
	if math.Abs(result.Distance-wantDist) > 1e-9 {
		t.Errorf("expected distance %f, got %f", wantDist, result.Distance)
	}
	wantDuration := wantDist / walk.Speed * 60
	if math.Abs(result.EstimatedDuration-wantDuration) > 1e-9 {
		t.Errorf("expected duration %f, got %f", wantDuration, result.EstimatedDuration)
	}
}

func TestSimulateNoConnectionFallback(t *testing.T) {
	ix := testIndex(t)
	capital := mustResolve(t, ix, "王都")
	far := mustResolve(t, ix, "遠い国")

	horse := transport.Method(model.TransportHorse)
	result := Simulate(ix, model.Character{}, capital, far, horse)

	wantDist := math.Sqrt(45*45 + 45*45)
	if math.Abs(result.Distance-wantDist) > 1e-9 {
		t.Errorf("expected raw distance %f, got %f", wantDist, result.Distance)
	}
	wantDuration := wantDist / horse.Speed * 60
	if math.Abs(result.EstimatedDuration-wantDuration) > 1e-9 {
		t.Errorf("expected duration %f, got %f", wantDuration, result.EstimatedDuration)
	}
}

func TestSimulateZeroSpeedFallsBackToWalking(t *testing.T) {
	ix := testIndex(t)
	capital := mustResolve(t, ix, "王都")
	far := mustResolve(t, ix, "遠い国")

	broken := model.TransportMethod{Type: model.TransportCustom, Speed: 0}
	result := Simulate(ix, model.Character{}, capital, far, broken)

	if result.EstimatedDuration <= 0 || math.IsInf(result.EstimatedDuration, 1) {
		t.Errorf("zero speed must not produce a degenerate duration, got %f", result.EstimatedDuration)
	}
}

func TestMethodsForIntersectsTravelTimeRecords(t *testing.T) {
	ix := testIndex(t)
	capital := mustResolve(t, ix, "王都")
	port := mustResolve(t, ix, "港町")

	settings := model.WorldSettings{Era: "中世"}
	methods := MethodsFor(ix, settings, nil, capital, port)

	got := make(map[model.TransportType]bool)
	for _, m := range methods {
		got[m.Type] = true
	}
	if !got[model.TransportWalk] || !got[model.TransportHorse] {
		t.Errorf("expected walk and horse offered, got %v", methods)
	}
	// The medieval era also has carriage and ship, but the road's
	// travel-time records only name walk and horse.
	if got[model.TransportCarriage] || got[model.TransportShip] {
		t.Errorf("methods outside travel-time records should not be offered: %v", methods)
	}
}

func TestMethodsForWithoutRecordsReturnsEraSet(t *testing.T) {
	ix := testIndex(t)
	capital := mustResolve(t, ix, "王都")
	forest := mustResolve(t, ix, "北の森")

	settings := model.WorldSettings{Era: "中世"}
	methods := MethodsFor(ix, settings, nil, capital, forest)

	if len(methods) != 4 {
		t.Errorf("expected full medieval set for a recordless connection, got %v", methods)
	}
}

func TestMethodsForAlwaysOffersWalk(t *testing.T) {
	ix := testIndex(t)
	capital := mustResolve(t, ix, "王都")
	far := mustResolve(t, ix, "遠い国")

	custom := []model.TransportMethod{{Type: model.TransportTeleport, Speed: 10000}}
	methods := MethodsFor(ix, model.WorldSettings{}, custom, capital, far)

	found := false
	for _, m := range methods {
		if m.Type == model.TransportWalk {
			found = true
		}
	}
	if !found {
		t.Errorf("walk fallback missing: %v", methods)
	}
}
