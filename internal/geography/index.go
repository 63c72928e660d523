package geography

import (
	"fmt"

	"github.com/halc8312/shinwa-sub002/internal/model"
)

// ResolvedLocation is a location entity plus the scale it was found at.
// Descriptive is set by the resolver when the queried name described a
// generic scene ("火を囲んでいる場所") rather than a proper place name.
type ResolvedLocation struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Scale       model.Scale      `json:"scale"`
	Coord       model.Coordinate `json:"coordinates"`
	Descriptive bool             `json:"descriptive,omitempty"`
}

// IntegrityError reports a geography document that violates its
// referential invariants. Documents produced by the map editor should
// never trip this, but the index checks defensively at build time.
type IntegrityError struct {
	Entity string // "region", "connection", "travel_time", "location"
	ID     string
	Ref    string
}

func (e *IntegrityError) Error() string {
	if e.Ref == "" {
		return fmt.Sprintf("geography: duplicate %s id %q", e.Entity, e.ID)
	}
	return fmt.Sprintf("geography: %s %q references unknown location %q", e.Entity, e.ID, e.Ref)
}

// entry is one location in the flattened namespace, in declaration order.
type entry struct {
	loc      ResolvedLocation
	normName string
	order    int
}

// Index is an immutable lookup view over one Geography snapshot. All
// three scales are flattened into a single id namespace and a single
// ordered candidate list, so matching and graph code is written once
// rather than per scale.
type Index struct {
	doc     *model.Geography
	entries []entry
	byID    map[string]int            // id -> entries index
	conns   map[string]model.Connection
	edges   []model.Connection        // declaration order
	times   map[string][]model.TravelTime // connection id -> records
}

// NewIndex flattens and verifies a geography document. The document is
// not copied; callers must not mutate it while the index is in use.
func NewIndex(doc *model.Geography) (*Index, error) {
	ix := &Index{
		doc:   doc,
		byID:  make(map[string]int),
		conns: make(map[string]model.Connection),
		times: make(map[string][]model.TravelTime),
	}

	add := func(id, name string, scale model.Scale, coord model.Coordinate) error {
		if _, dup := ix.byID[id]; dup {
			return &IntegrityError{Entity: "location", ID: id}
		}
		ix.byID[id] = len(ix.entries)
		ix.entries = append(ix.entries, entry{
			loc:      ResolvedLocation{ID: id, Name: name, Scale: scale, Coord: coord},
			normName: Normalize(name),
			order:    len(ix.entries),
		})
		return nil
	}

	for _, wl := range doc.WorldMap.Locations {
		if err := add(wl.ID, wl.Name, model.ScaleWorld, wl.Coord); err != nil {
			return nil, err
		}
	}
	for _, rg := range doc.Regions {
		if _, ok := ix.byID[rg.ParentLocationID]; !ok {
			return nil, &IntegrityError{Entity: "region", ID: rg.ID, Ref: rg.ParentLocationID}
		}
		for _, rl := range rg.Locations {
			if err := add(rl.ID, rl.Name, model.ScaleRegion, rl.Coord); err != nil {
				return nil, err
			}
		}
	}
	for _, lm := range doc.LocalMaps {
		for _, la := range lm.Areas {
			if err := add(la.ID, la.Name, model.ScaleLocal, la.Coord); err != nil {
				return nil, err
			}
		}
	}

	for _, c := range doc.Connections {
		if _, ok := ix.byID[c.FromLocationID]; !ok {
			return nil, &IntegrityError{Entity: "connection", ID: c.ID, Ref: c.FromLocationID}
		}
		if _, ok := ix.byID[c.ToLocationID]; !ok {
			return nil, &IntegrityError{Entity: "connection", ID: c.ID, Ref: c.ToLocationID}
		}
		ix.conns[c.ID] = c
		ix.edges = append(ix.edges, c)
	}

	for _, tt := range doc.TravelTimes {
		if _, ok := ix.conns[tt.ConnectionID]; !ok {
			return nil, &IntegrityError{Entity: "travel_time", ID: tt.ConnectionID, Ref: tt.ConnectionID}
		}
		ix.times[tt.ConnectionID] = append(ix.times[tt.ConnectionID], tt)
	}

	return ix, nil
}

// Lookup returns the location with the given id, at whatever scale it
// was declared.
func (ix *Index) Lookup(id string) (ResolvedLocation, bool) {
	i, ok := ix.byID[id]
	if !ok {
		return ResolvedLocation{}, false
	}
	return ix.entries[i].loc, true
}

// Names returns every location name in declaration order.
func (ix *Index) Names() []string {
	names := make([]string, len(ix.entries))
	for i, e := range ix.entries {
		names[i] = e.loc.Name
	}
	return names
}

// Len reports the number of locations across all scales.
func (ix *Index) Len() int { return len(ix.entries) }
