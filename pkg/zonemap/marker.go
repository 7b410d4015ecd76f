package zonemap

import "zonecraft/internal/domain"

// MarkerType is the semantic category of a marker.
type MarkerType uint8

const (
	EnemySpawns MarkerType = iota
	BossSpawns
	ChestSpawns
	NPCSpawns
	PlayerSpawns
	LevelExits
)

// AllMarkerTypes lists every category in a stable order.
var AllMarkerTypes = []MarkerType{EnemySpawns, BossSpawns, ChestSpawns, NPCSpawns, PlayerSpawns, LevelExits}

var markerTypeToString = map[MarkerType]string{
	EnemySpawns:  "enemy_spawns",
	BossSpawns:   "boss_spawns",
	ChestSpawns:  "chest_spawns",
	NPCSpawns:    "npc_spawns",
	PlayerSpawns: "player_spawns",
	LevelExits:   "level_exits",
}

func (m MarkerType) String() string {
	if s, ok := markerTypeToString[m]; ok {
		return s
	}
	return "unknown"
}

// Markers maps a category to tile-grid positions.
type Markers map[MarkerType][]domain.Position

// Add appends positions to a category.
func (m Markers) Add(t MarkerType, positions ...domain.Position) {
	if len(positions) == 0 {
		return
	}
	m[t] = append(m[t], positions...)
}

func (m Markers) Count(t MarkerType) int {
	return len(m[t])
}

// First returns the first position of a category.
func (m Markers) First(t MarkerType) (domain.Position, bool) {
	if len(m[t]) == 0 {
		return domain.Position{}, false
	}
	return m[t][0], true
}

// Merge appends every category of other. Nothing is overwritten.
func (m Markers) Merge(other Markers) {
	for _, t := range AllMarkerTypes {
		m.Add(t, other[t]...)
	}
}

// Clone deep-copies the table.
func (m Markers) Clone() Markers {
	out := make(Markers, len(m))
	for t, positions := range m {
		out[t] = append([]domain.Position(nil), positions...)
	}
	return out
}

// Total counts markers across all categories.
func (m Markers) Total() int {
	n := 0
	for _, positions := range m {
		n += len(positions)
	}
	return n
}
