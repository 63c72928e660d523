package model

// Scale identifies the map granularity at which a location lives.
type Scale string

const (
	ScaleWorld  Scale = "world"
	ScaleRegion Scale = "region"
	ScaleLocal  Scale = "local"
)

// LocationType classifies named places.
type LocationType string

const (
	LocationCapital   LocationType = "capital"
	LocationMajorCity LocationType = "major_city"
	LocationCity      LocationType = "city"
	LocationTown      LocationType = "town"
	LocationVillage   LocationType = "village"
	LocationCountry   LocationType = "country"
	LocationLandmark  LocationType = "landmark"
	LocationPort      LocationType = "port"
	LocationFortress  LocationType = "fortress"
	LocationBuilding  LocationType = "building"
	LocationOther     LocationType = "other"
)

// Coordinate is a position on the 0-100 map plane. Every scale uses the
// same normalized plane, so distance heuristics are scale-agnostic.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// WorldLocation is a continent/country-scale point on the world map.
type WorldLocation struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       LocationType `json:"type"`
	Coord      Coordinate   `json:"coordinates"`
	Importance int          `json:"importance,omitempty"`
}

// WorldMap is the top-scale canvas.
type WorldMap struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Locations []WorldLocation `json:"locations"`
}

// RegionalLocation is a city/town-scale point inside a Region.
type RegionalLocation struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Type       LocationType `json:"type"`
	Coord      Coordinate   `json:"coordinates"`
	Importance int          `json:"importance,omitempty"`
	Services   []string     `json:"services,omitempty"`
}

// Region is a zoomed-in area anchored to one WorldLocation.
type Region struct {
	ID               string             `json:"id"`
	ParentLocationID string             `json:"parent_location_id"`
	Name             string             `json:"name"`
	Locations        []RegionalLocation `json:"locations"`
}

// LocalArea is a street/building-scale point.
type LocalArea struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Coord Coordinate `json:"coordinates"`
}

// LocalMap is a zoomed-in area at street scale.
type LocalMap struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Areas []LocalArea `json:"areas"`
}

// ConnectionType classifies how two locations are linked.
type ConnectionType string

const (
	ConnRoad         ConnectionType = "road"
	ConnSea          ConnectionType = "sea"
	ConnRiver        ConnectionType = "river"
	ConnMountainPass ConnectionType = "mountain_pass"
	ConnAir          ConnectionType = "air"
	ConnOther        ConnectionType = "other"
)

// Difficulty grades a connection's terrain.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// Connection is an edge between two location ids of any scale.
type Connection struct {
	ID             string         `json:"id"`
	FromLocationID string         `json:"from_location_id"`
	ToLocationID   string         `json:"to_location_id"`
	Bidirectional  bool           `json:"bidirectional"`
	Type           ConnectionType `json:"connection_type"`
	Difficulty     Difficulty     `json:"difficulty"`
}

// TransportType keys a mode of travel.
type TransportType string

const (
	TransportWalk     TransportType = "walk"
	TransportHorse    TransportType = "horse"
	TransportCart     TransportType = "cart"
	TransportCarriage TransportType = "carriage"
	TransportShip     TransportType = "ship"
	TransportBicycle  TransportType = "bicycle"
	TransportCar      TransportType = "car"
	TransportTrain    TransportType = "train"
	TransportAirplane TransportType = "airplane"
	TransportFlight   TransportType = "flight"
	TransportTeleport TransportType = "teleport"
	TransportCustom   TransportType = "custom"
)

// TransportMethod is a mode of travel with its speed in map units per hour.
type TransportMethod struct {
	Type         TransportType `json:"type"`
	Speed        float64       `json:"speed"`
	Availability string        `json:"availability,omitempty"`
}

// TravelTime is a precomputed duration in minutes for one connection
// and one transport method.
type TravelTime struct {
	ConnectionID string        `json:"connection_id"`
	Method       TransportType `json:"travel_method"`
	BaseTime     float64       `json:"base_time"`
	Conditions   string        `json:"conditions,omitempty"`
}

// Geography is the full world-map document for one project. It is
// loaded wholesale before any engine call and treated as immutable for
// the duration of the call.
type Geography struct {
	WorldMap    WorldMap     `json:"world_map"`
	Regions     []Region     `json:"regions,omitempty"`
	LocalMaps   []LocalMap   `json:"local_maps,omitempty"`
	Connections []Connection `json:"connections,omitempty"`
	TravelTimes []TravelTime `json:"travel_times,omitempty"`
}

// WorldSettings carries project-level world metadata. Era is a free-text
// label ("中世ファンタジー", "modern", ...) used to pick default transports.
type WorldSettings struct {
	Era string `json:"era"`
}

// Character is the slice of a character record the engine needs.
type Character struct {
	ID                 string `json:"id"`
	Name               string `json:"name,omitempty"`
	StartingLocationID string `json:"starting_location_id,omitempty"`
}
