package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/halc8312/shinwa-sub002/internal/model"
)

// Store manages all project data persistence via DuckDB. The geography
// document is written and read wholesale; the engine itself never
// writes through it.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// New opens (or creates) a DuckDB database in the given data directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "worldmap.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS world_locations (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			x DOUBLE NOT NULL,
			y DOUBLE NOT NULL,
			importance INTEGER NOT NULL DEFAULT 0,
			pos INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS regions (
			id TEXT PRIMARY KEY,
			parent_location_id TEXT NOT NULL,
			name TEXT NOT NULL,
			pos INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS regional_locations (
			id TEXT PRIMARY KEY,
			region_id TEXT NOT NULL REFERENCES regions(id),
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			x DOUBLE NOT NULL,
			y DOUBLE NOT NULL,
			importance INTEGER NOT NULL DEFAULT 0,
			services TEXT,
			pos INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS local_maps (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			pos INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS local_areas (
			id TEXT PRIMARY KEY,
			local_map_id TEXT NOT NULL REFERENCES local_maps(id),
			name TEXT NOT NULL,
			x DOUBLE NOT NULL,
			y DOUBLE NOT NULL,
			pos INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS connections (
			id TEXT PRIMARY KEY,
			from_loc TEXT NOT NULL,
			to_loc TEXT NOT NULL,
			bidirectional BOOLEAN NOT NULL DEFAULT true,
			type TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			pos INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS travel_times (
			id INTEGER PRIMARY KEY DEFAULT nextval('travel_times_seq'),
			connection_id TEXT NOT NULL REFERENCES connections(id),
			method TEXT NOT NULL,
			base_time DOUBLE NOT NULL,
			conditions TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS transport_methods (
			type TEXT PRIMARY KEY,
			speed DOUBLE NOT NULL,
			availability TEXT,
			pos INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS character_transports (
			character_id TEXT PRIMARY KEY,
			methods TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chapter_text (
			chapter_idx INTEGER PRIMARY KEY,
			body TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	if _, err := s.DB.Exec("CREATE SEQUENCE IF NOT EXISTS travel_times_seq"); err != nil {
		return fmt.Errorf("creating sequence: %w", err)
	}

	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("executing migration %q: %w", stmt[:60], err)
		}
	}

	return nil
}

// WriteGeography replaces the stored geography document wholesale.
func (s *Store) WriteGeography(doc *model.Geography) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, tbl := range []string{"travel_times", "connections", "local_areas", "local_maps", "regional_locations", "regions", "world_locations"} {
		if _, err := tx.Exec("DELETE FROM " + tbl); err != nil {
			return fmt.Errorf("clearing %s: %w", tbl, err)
		}
	}

	for i, wl := range doc.WorldMap.Locations {
		if _, err := tx.Exec("INSERT INTO world_locations (id, name, type, x, y, importance, pos) VALUES (?, ?, ?, ?, ?, ?, ?)",
			wl.ID, wl.Name, wl.Type, wl.Coord.X, wl.Coord.Y, wl.Importance, i); err != nil {
			return fmt.Errorf("inserting world location %s: %w", wl.ID, err)
		}
	}

	for i, rg := range doc.Regions {
		if _, err := tx.Exec("INSERT INTO regions (id, parent_location_id, name, pos) VALUES (?, ?, ?, ?)",
			rg.ID, rg.ParentLocationID, rg.Name, i); err != nil {
			return fmt.Errorf("inserting region %s: %w", rg.ID, err)
		}
		for j, rl := range rg.Locations {
			services, _ := json.Marshal(rl.Services)
			if _, err := tx.Exec("INSERT INTO regional_locations (id, region_id, name, type, x, y, importance, services, pos) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
				rl.ID, rg.ID, rl.Name, rl.Type, rl.Coord.X, rl.Coord.Y, rl.Importance, string(services), j); err != nil {
				return fmt.Errorf("inserting regional location %s: %w", rl.ID, err)
			}
		}
	}

	for i, lm := range doc.LocalMaps {
		if _, err := tx.Exec("INSERT INTO local_maps (id, name, pos) VALUES (?, ?, ?)", lm.ID, lm.Name, i); err != nil {
			return fmt.Errorf("inserting local map %s: %w", lm.ID, err)
		}
		for j, la := range lm.Areas {
			if _, err := tx.Exec("INSERT INTO local_areas (id, local_map_id, name, x, y, pos) VALUES (?, ?, ?, ?, ?, ?)",
				la.ID, lm.ID, la.Name, la.Coord.X, la.Coord.Y, j); err != nil {
				return fmt.Errorf("inserting local area %s: %w", la.ID, err)
			}
		}
	}

	for i, c := range doc.Connections {
		if _, err := tx.Exec("INSERT INTO connections (id, from_loc, to_loc, bidirectional, type, difficulty, pos) VALUES (?, ?, ?, ?, ?, ?, ?)",
			c.ID, c.FromLocationID, c.ToLocationID, c.Bidirectional, c.Type, c.Difficulty, i); err != nil {
			return fmt.Errorf("inserting connection %s: %w", c.ID, err)
		}
	}

	for _, tt := range doc.TravelTimes {
		if _, err := tx.Exec("INSERT INTO travel_times (connection_id, method, base_time, conditions) VALUES (?, ?, ?, ?)",
			tt.ConnectionID, tt.Method, tt.BaseTime, tt.Conditions); err != nil {
			return fmt.Errorf("inserting travel time for %s: %w", tt.ConnectionID, err)
		}
	}

	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('world_map_id', ?)", doc.WorldMap.ID); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('world_map_name', ?)", doc.WorldMap.Name); err != nil {
		return err
	}

	return tx.Commit()
}

// ReadGeography loads the stored geography document.
func (s *Store) ReadGeography() (*model.Geography, error) {
	doc := &model.Geography{}

	var id, name sql.NullString
	s.DB.QueryRow("SELECT value FROM meta WHERE key = 'world_map_id'").Scan(&id)
	s.DB.QueryRow("SELECT value FROM meta WHERE key = 'world_map_name'").Scan(&name)
	doc.WorldMap.ID = id.String
	doc.WorldMap.Name = name.String

	rows, err := s.DB.Query("SELECT id, name, type, x, y, importance FROM world_locations ORDER BY pos")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var wl model.WorldLocation
		if err := rows.Scan(&wl.ID, &wl.Name, &wl.Type, &wl.Coord.X, &wl.Coord.Y, &wl.Importance); err != nil {
			return nil, err
		}
		doc.WorldMap.Locations = append(doc.WorldMap.Locations, wl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	regionRows, err := s.DB.Query("SELECT id, parent_location_id, name FROM regions ORDER BY pos")
	if err != nil {
		return nil, err
	}
	defer regionRows.Close()
	for regionRows.Next() {
		var rg model.Region
		if err := regionRows.Scan(&rg.ID, &rg.ParentLocationID, &rg.Name); err != nil {
			return nil, err
		}
		doc.Regions = append(doc.Regions, rg)
	}
	if err := regionRows.Err(); err != nil {
		return nil, err
	}

	for i := range doc.Regions {
		locRows, err := s.DB.Query("SELECT id, name, type, x, y, importance, services FROM regional_locations WHERE region_id = ? ORDER BY pos", doc.Regions[i].ID)
		if err != nil {
			return nil, err
		}
		for locRows.Next() {
			var rl model.RegionalLocation
			var services sql.NullString
			if err := locRows.Scan(&rl.ID, &rl.Name, &rl.Type, &rl.Coord.X, &rl.Coord.Y, &rl.Importance, &services); err != nil {
				locRows.Close()
				return nil, err
			}
			if services.Valid {
				json.Unmarshal([]byte(services.String), &rl.Services)
			}
			doc.Regions[i].Locations = append(doc.Regions[i].Locations, rl)
		}
		locRows.Close()
	}

	mapRows, err := s.DB.Query("SELECT id, name FROM local_maps ORDER BY pos")
	if err != nil {
		return nil, err
	}
	defer mapRows.Close()
	for mapRows.Next() {
		var lm model.LocalMap
		if err := mapRows.Scan(&lm.ID, &lm.Name); err != nil {
			return nil, err
		}
		doc.LocalMaps = append(doc.LocalMaps, lm)
	}
	if err := mapRows.Err(); err != nil {
		return nil, err
	}

	for i := range doc.LocalMaps {
		areaRows, err := s.DB.Query("SELECT id, name, x, y FROM local_areas WHERE local_map_id = ? ORDER BY pos", doc.LocalMaps[i].ID)
		if err != nil {
			return nil, err
		}
		for areaRows.Next() {
			var la model.LocalArea
			if err := areaRows.Scan(&la.ID, &la.Name, &la.Coord.X, &la.Coord.Y); err != nil {
				areaRows.Close()
				return nil, err
			}
			doc.LocalMaps[i].Areas = append(doc.LocalMaps[i].Areas, la)
		}
		areaRows.Close()
	}

	connRows, err := s.DB.Query("SELECT id, from_loc, to_loc, bidirectional, type, difficulty FROM connections ORDER BY pos")
	if err != nil {
		return nil, err
	}
	defer connRows.Close()
	for connRows.Next() {
		var c model.Connection
		if err := connRows.Scan(&c.ID, &c.FromLocationID, &c.ToLocationID, &c.Bidirectional, &c.Type, &c.Difficulty); err != nil {
			return nil, err
		}
		doc.Connections = append(doc.Connections, c)
	}
	if err := connRows.Err(); err != nil {
		return nil, err
	}

	ttRows, err := s.DB.Query("SELECT connection_id, method, base_time, conditions FROM travel_times ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer ttRows.Close()
	for ttRows.Next() {
		var tt model.TravelTime
		var conditions sql.NullString
		if err := ttRows.Scan(&tt.ConnectionID, &tt.Method, &tt.BaseTime, &conditions); err != nil {
			return nil, err
		}
		tt.Conditions = conditions.String
		doc.TravelTimes = append(doc.TravelTimes, tt)
	}

	return doc, ttRows.Err()
}

// WriteWorldSettings stores project-level world metadata.
func (s *Store) WriteWorldSettings(settings model.WorldSettings) error {
	_, err := s.DB.Exec("INSERT OR REPLACE INTO meta (key, value) VALUES ('era', ?)", settings.Era)
	return err
}

// ReadWorldSettings loads project-level world metadata. A project that
// never saved settings reads back as the zero value.
func (s *Store) ReadWorldSettings() (model.WorldSettings, error) {
	var era sql.NullString
	err := s.DB.QueryRow("SELECT value FROM meta WHERE key = 'era'").Scan(&era)
	if err != nil && err != sql.ErrNoRows {
		return model.WorldSettings{}, err
	}
	return model.WorldSettings{Era: era.String}, nil
}

// WriteCustomTransports replaces the project's transport overrides
// verbatim. An empty list clears the override so era defaults apply
// again.
func (s *Store) WriteCustomTransports(methods []model.TransportMethod) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM transport_methods"); err != nil {
		return err
	}
	for i, m := range methods {
		if _, err := tx.Exec("INSERT INTO transport_methods (type, speed, availability, pos) VALUES (?, ?, ?, ?)",
			m.Type, m.Speed, m.Availability, i); err != nil {
			return fmt.Errorf("inserting transport %s: %w", m.Type, err)
		}
	}
	return tx.Commit()
}

// ReadCustomTransports loads the project's transport overrides; nil
// means no override is saved.
func (s *Store) ReadCustomTransports() ([]model.TransportMethod, error) {
	rows, err := s.DB.Query("SELECT type, speed, availability FROM transport_methods ORDER BY pos")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []model.TransportMethod
	for rows.Next() {
		var m model.TransportMethod
		var availability sql.NullString
		if err := rows.Scan(&m.Type, &m.Speed, &availability); err != nil {
			return nil, err
		}
		m.Availability = availability.String
		methods = append(methods, m)
	}
	return methods, rows.Err()
}

// WriteCharacterTransports replaces one character's available methods.
func (s *Store) WriteCharacterTransports(characterID string, methods []model.TransportType) error {
	body, err := json.Marshal(methods)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec("INSERT OR REPLACE INTO character_transports (character_id, methods) VALUES (?, ?)",
		characterID, string(body))
	return err
}

// ReadCharacterTransports loads one character's available methods; nil
// means none have been saved.
func (s *Store) ReadCharacterTransports(characterID string) ([]model.TransportType, error) {
	var body string
	err := s.DB.QueryRow("SELECT methods FROM character_transports WHERE character_id = ?", characterID).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var methods []model.TransportType
	if err := json.Unmarshal([]byte(body), &methods); err != nil {
		return nil, fmt.Errorf("decoding transports for %s: %w", characterID, err)
	}
	return methods, nil
}

// WriteChapterText stores a chapter's plaintext body.
func (s *Store) WriteChapterText(chapterIdx int, text string) error {
	_, err := s.DB.Exec("INSERT OR REPLACE INTO chapter_text (chapter_idx, body) VALUES (?, ?)", chapterIdx, text)
	return err
}

// ReadChapterText retrieves a chapter's plaintext body.
func (s *Store) ReadChapterText(chapterIdx int) (string, error) {
	var body string
	err := s.DB.QueryRow("SELECT body FROM chapter_text WHERE chapter_idx = ?", chapterIdx).Scan(&body)
	return body, err
}

// ChapterTextExists checks if a chapter's text has been imported.
func (s *Store) ChapterTextExists(chapterIdx int) bool {
	var n int
	s.DB.QueryRow("SELECT 1 FROM chapter_text WHERE chapter_idx = ?", chapterIdx).Scan(&n)
	return n == 1
}

// LocationCount returns the number of locations across all scales.
func (s *Store) LocationCount() int {
	var total int
	for _, tbl := range []string{"world_locations", "regional_locations", "local_areas"} {
		var n int
		s.DB.QueryRow("SELECT COUNT(*) FROM " + tbl).Scan(&n)
		total += n
	}
	return total
}

// RegionCount returns the number of regions.
func (s *Store) RegionCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM regions").Scan(&n)
	return n
}

// ConnectionCount returns the number of connections.
func (s *Store) ConnectionCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM connections").Scan(&n)
	return n
}

// ChapterTextCount returns how many chapters have been imported.
func (s *Store) ChapterTextCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM chapter_text").Scan(&n)
	return n
}

// CharacterCount returns how many characters have saved transports.
func (s *Store) CharacterCount() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM character_transports").Scan(&n)
	return n
}
