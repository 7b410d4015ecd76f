package api

// --- SERVER -> CLIENT ---

// Message types sent to viewers.
const (
	TypeZone  = "ZONE"
	TypeError = "ERROR"
)

// ServerResponse is the root object the server sends to a viewer.
type ServerResponse struct {
	// Type is TypeZone or TypeError.
	Type string `json:"type"`

	// Zone is the full snapshot of the active zone. Set when Type is TypeZone.
	Zone *ZoneSnapshot `json:"zone,omitempty"`

	// Error describes a rejected command. Set when Type is TypeError.
	Error string `json:"error,omitempty"`
}

// ZoneSnapshot is an immutable picture of the active zone.
type ZoneSnapshot struct {
	Instance string `json:"instance"`
	Seed     int64  `json:"seed"`
	// State is LOADING or PLAYING.
	State string `json:"state"`

	Grid GridMeta `json:"grid"`

	// Rows holds one string per row, top row first, one glyph per tile.
	Rows []string `json:"rows"`

	// Markers maps marker category to tile positions.
	Markers map[string][]PointView `json:"markers"`

	Colliders []ColliderView `json:"colliders"`

	// Census counts live zone entities per kind.
	Census Census `json:"census"`

	Report *ReportView `json:"report,omitempty"`
}

// GridMeta carries the map dimensions and tile size.
type GridMeta struct {
	Width    int     `json:"w"`
	Height   int     `json:"h"`
	TileSize float64 `json:"tileSize"`
}

// PointView is a tile position.
type PointView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ColliderView is one environmental collider, in tiles and in world units.
type ColliderView struct {
	Kind   string    `json:"kind"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	W      int       `json:"w"`
	H      int       `json:"h"`
	Center []float64 `json:"center"`
	Extent []float64 `json:"extent"`
}

// ReportView lists what generation could not deliver.
type ReportView struct {
	DeadZonesWanted int            `json:"deadZonesWanted"`
	DeadZonesPlaced int            `json:"deadZonesPlaced"`
	PrefabsSkipped  []string       `json:"prefabsSkipped,omitempty"`
	Shortfall       map[string]int `json:"shortfall,omitempty"`
}

// Census counts entities per kind ("tile", "collider", "enemy", ...).
type Census map[string]int

// --- CLIENT -> SERVER ---

// Client actions.
const (
	ActionEnter = "ENTER"
	ActionNext  = "NEXT"
	ActionHub   = "HUB"
)

// ClientCommand is a zone transition request from a viewer.
type ClientCommand struct {
	// Action is ENTER, NEXT or HUB.
	Action string `json:"action"`

	// Instance is required for ENTER.
	Instance string `json:"instance,omitempty"`

	// Seed pins the zone seed for ENTER; 0 draws one from the master seed.
	Seed int64 `json:"seed,omitempty"`
}
