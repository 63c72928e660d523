package store

import (
	"testing"

	"github.com/halc8312/shinwa-sub002/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testGeography() *model.Geography {
	return &model.Geography{
		WorldMap: model.WorldMap{
			ID:   "wm-1",
			Name: "テスト世界",
			Locations: []model.WorldLocation{
				{ID: "w-capital", Name: "王都", Type: model.LocationCity, Coord: model.Coordinate{X: 50, Y: 50}, Importance: 5},
				{ID: "w-port", Name: "港町", Type: model.LocationCity, Coord: model.Coordinate{X: 60, Y: 55}, Importance: 3},
			},
		},
		Regions: []model.Region{
			{
				ID:               "r-capital",
				ParentLocationID: "w-capital",
				Name:             "王都周辺",
				Locations: []model.RegionalLocation{
					{ID: "rl-castle", Name: "王城", Type: model.LocationLandmark, Coord: model.Coordinate{X: 50, Y: 48}, Services: []string{"audience"}},
					{ID: "rl-market", Name: "市場通り", Type: model.LocationOther, Coord: model.Coordinate{X: 52, Y: 51}},
				},
			},
		},
		LocalMaps: []model.LocalMap{
			{
				ID:   "lm-inn",
				Name: "宿屋周辺",
				Areas: []model.LocalArea{
					{ID: "la-inn", Name: "宿屋", Coord: model.Coordinate{X: 10, Y: 10}},
				},
			},
		},
		Connections: []model.Connection{
			{ID: "c-road", FromLocationID: "w-capital", ToLocationID: "w-port", Bidirectional: true, Type: model.ConnRoad, Difficulty: model.DifficultyEasy},
		},
		TravelTimes: []model.TravelTime{
			{ConnectionID: "c-road", Method: model.TransportHorse, BaseTime: 120, Conditions: "晴天時"},
			{ConnectionID: "c-road", Method: model.TransportWalk, BaseTime: 360},
		},
	}
}

func TestGeographyRoundTrip(t *testing.T) {
	s := testStore(t)
	want := testGeography()

	if err := s.WriteGeography(want); err != nil {
		t.Fatalf("writing geography: %v", err)
	}
	got, err := s.ReadGeography()
	if err != nil {
		t.Fatalf("reading geography: %v", err)
	}

	if got.WorldMap.ID != "wm-1" || got.WorldMap.Name != "テスト世界" {
		t.Errorf("world map meta: got %q/%q", got.WorldMap.ID, got.WorldMap.Name)
	}
	if len(got.WorldMap.Locations) != 2 {
		t.Fatalf("expected 2 world locations, got %d", len(got.WorldMap.Locations))
	}
	if got.WorldMap.Locations[0].ID != "w-capital" || got.WorldMap.Locations[1].ID != "w-port" {
		t.Errorf("world location order not preserved: %+v", got.WorldMap.Locations)
	}
	if got.WorldMap.Locations[0].Coord.X != 50 || got.WorldMap.Locations[0].Importance != 5 {
		t.Errorf("world location fields lost: %+v", got.WorldMap.Locations[0])
	}

	if len(got.Regions) != 1 || got.Regions[0].ParentLocationID != "w-capital" {
		t.Fatalf("regions: %+v", got.Regions)
	}
	locs := got.Regions[0].Locations
	if len(locs) != 2 || locs[0].ID != "rl-castle" || locs[1].ID != "rl-market" {
		t.Fatalf("regional locations: %+v", locs)
	}
	if len(locs[0].Services) != 1 || locs[0].Services[0] != "audience" {
		t.Errorf("services lost: %+v", locs[0].Services)
	}

	if len(got.LocalMaps) != 1 || len(got.LocalMaps[0].Areas) != 1 {
		t.Fatalf("local maps: %+v", got.LocalMaps)
	}
	if got.LocalMaps[0].Areas[0].Name != "宿屋" {
		t.Errorf("local area: %+v", got.LocalMaps[0].Areas[0])
	}

	if len(got.Connections) != 1 {
		t.Fatalf("connections: %+v", got.Connections)
	}
	c := got.Connections[0]
	if !c.Bidirectional || c.Type != model.ConnRoad || c.Difficulty != model.DifficultyEasy {
		t.Errorf("connection fields lost: %+v", c)
	}

	if len(got.TravelTimes) != 2 {
		t.Fatalf("travel times: %+v", got.TravelTimes)
	}
	if got.TravelTimes[0].Method != model.TransportHorse || got.TravelTimes[0].BaseTime != 120 {
		t.Errorf("travel time order or fields lost: %+v", got.TravelTimes[0])
	}
	if got.TravelTimes[0].Conditions != "晴天時" {
		t.Errorf("conditions lost: %+v", got.TravelTimes[0])
	}
}

func TestWriteGeographyReplacesWholesale(t *testing.T) {
	s := testStore(t)
	if err := s.WriteGeography(testGeography()); err != nil {
		t.Fatalf("first write: %v", err)
	}

	small := &model.Geography{
		WorldMap: model.WorldMap{
			ID:        "wm-2",
			Name:      "縮小版",
			Locations: []model.WorldLocation{{ID: "w-only", Name: "孤島", Type: model.LocationCity, Coord: model.Coordinate{X: 1, Y: 1}}},
		},
	}
	if err := s.WriteGeography(small); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := s.ReadGeography()
	if err != nil {
		t.Fatalf("reading geography: %v", err)
	}
	if got.WorldMap.ID != "wm-2" || len(got.WorldMap.Locations) != 1 {
		t.Errorf("old document leaked: %+v", got.WorldMap)
	}
	if len(got.Regions) != 0 || len(got.Connections) != 0 || len(got.TravelTimes) != 0 {
		t.Errorf("old rows survived replacement: %+v", got)
	}
}

func TestWorldSettings(t *testing.T) {
	s := testStore(t)

	settings, err := s.ReadWorldSettings()
	if err != nil {
		t.Fatalf("reading empty settings: %v", err)
	}
	if settings.Era != "" {
		t.Errorf("expected zero value before save, got %q", settings.Era)
	}

	if err := s.WriteWorldSettings(model.WorldSettings{Era: "中世"}); err != nil {
		t.Fatalf("writing settings: %v", err)
	}
	settings, err = s.ReadWorldSettings()
	if err != nil {
		t.Fatalf("reading settings: %v", err)
	}
	if settings.Era != "中世" {
		t.Errorf("era: got %q", settings.Era)
	}

	if err := s.WriteWorldSettings(model.WorldSettings{Era: "現代"}); err != nil {
		t.Fatalf("overwriting settings: %v", err)
	}
	settings, _ = s.ReadWorldSettings()
	if settings.Era != "現代" {
		t.Errorf("era after overwrite: got %q", settings.Era)
	}
}

func TestCustomTransports(t *testing.T) {
	s := testStore(t)

	got, err := s.ReadCustomTransports()
	if err != nil {
		t.Fatalf("reading empty transports: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil before save, got %v", got)
	}

	methods := []model.TransportMethod{
		{Type: model.TransportHorse, Speed: 12, Availability: "common"},
		{Type: model.TransportShip, Speed: 15, Availability: "coastal"},
	}
	if err := s.WriteCustomTransports(methods); err != nil {
		t.Fatalf("writing transports: %v", err)
	}
	got, err = s.ReadCustomTransports()
	if err != nil {
		t.Fatalf("reading transports: %v", err)
	}
	if len(got) != 2 || got[0].Type != model.TransportHorse || got[1].Availability != "coastal" {
		t.Errorf("round trip: %v", got)
	}

	// Saving a new list replaces the old one completely.
	if err := s.WriteCustomTransports([]model.TransportMethod{{Type: model.TransportWalk, Speed: 4}}); err != nil {
		t.Fatalf("replacing transports: %v", err)
	}
	got, _ = s.ReadCustomTransports()
	if len(got) != 1 || got[0].Type != model.TransportWalk {
		t.Errorf("replacement leaked old rows: %v", got)
	}

	// An empty save clears the override.
	if err := s.WriteCustomTransports(nil); err != nil {
		t.Fatalf("clearing transports: %v", err)
	}
	got, _ = s.ReadCustomTransports()
	if got != nil {
		t.Errorf("expected nil after clearing, got %v", got)
	}
}

func TestCharacterTransports(t *testing.T) {
	s := testStore(t)

	got, err := s.ReadCharacterTransports("char-1")
	if err != nil {
		t.Fatalf("reading unsaved character: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unsaved character, got %v", got)
	}

	if err := s.WriteCharacterTransports("char-1", []model.TransportType{model.TransportWalk, model.TransportHorse}); err != nil {
		t.Fatalf("writing character transports: %v", err)
	}
	got, err = s.ReadCharacterTransports("char-1")
	if err != nil {
		t.Fatalf("reading character transports: %v", err)
	}
	if len(got) != 2 || got[0] != model.TransportWalk || got[1] != model.TransportHorse {
		t.Errorf("round trip: %v", got)
	}

	if err := s.WriteCharacterTransports("char-1", []model.TransportType{model.TransportShip}); err != nil {
		t.Fatalf("overwriting character transports: %v", err)
	}
	got, _ = s.ReadCharacterTransports("char-1")
	if len(got) != 1 || got[0] != model.TransportShip {
		t.Errorf("overwrite: %v", got)
	}

	if got, _ := s.ReadCharacterTransports("char-2"); got != nil {
		t.Errorf("unrelated character leaked data: %v", got)
	}
}

func TestChapterText(t *testing.T) {
	s := testStore(t)

	if s.ChapterTextExists(3) {
		t.Error("chapter 3 should not exist yet")
	}
	if err := s.WriteChapterText(3, "彼は馬で王都を発った。"); err != nil {
		t.Fatalf("writing chapter text: %v", err)
	}
	if !s.ChapterTextExists(3) {
		t.Error("chapter 3 should exist after write")
	}

	body, err := s.ReadChapterText(3)
	if err != nil {
		t.Fatalf("reading chapter text: %v", err)
	}
	if body != "彼は馬で王都を発った。" {
		t.Errorf("body: got %q", body)
	}

	if err := s.WriteChapterText(3, "改稿された本文。"); err != nil {
		t.Fatalf("overwriting chapter text: %v", err)
	}
	body, _ = s.ReadChapterText(3)
	if body != "改稿された本文。" {
		t.Errorf("body after overwrite: got %q", body)
	}
}

func TestCounts(t *testing.T) {
	s := testStore(t)

	if s.LocationCount() != 0 || s.RegionCount() != 0 || s.ConnectionCount() != 0 {
		t.Error("fresh store should report zero counts")
	}

	if err := s.WriteGeography(testGeography()); err != nil {
		t.Fatalf("writing geography: %v", err)
	}
	if got := s.LocationCount(); got != 5 {
		t.Errorf("location count across scales: got %d, want 5", got)
	}
	if got := s.RegionCount(); got != 1 {
		t.Errorf("region count: got %d", got)
	}
	if got := s.ConnectionCount(); got != 1 {
		t.Errorf("connection count: got %d", got)
	}

	s.WriteChapterText(1, "本文")
	s.WriteCharacterTransports("char-1", []model.TransportType{model.TransportWalk})
	if got := s.ChapterTextCount(); got != 1 {
		t.Errorf("chapter count: got %d", got)
	}
	if got := s.CharacterCount(); got != 1 {
		t.Errorf("character count: got %d", got)
	}
}
