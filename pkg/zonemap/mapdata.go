package zonemap

import "zonecraft/internal/domain"

// PlacedPrefab records where a prefab ended up.
type PlacedPrefab struct {
	Kind   PrefabKind
	Bounds Rect
}

// MapData is the mutable generation-time aggregate. It lives for one
// Build and is consumed by IntoLayout.
type MapData struct {
	Grid      *TileGrid
	Markers   Markers
	Colliders []EnvironmentalCollider

	// DeadZones holds the full footprint (ring included) of every dead zone.
	DeadZones []Rect
	Prefabs   []PlacedPrefab
}

// NewMapData creates a fresh grid filled with floor.
func NewMapData(size Size, floor TileType) *MapData {
	return &MapData{
		Grid:    NewTileGrid(size, floor),
		Markers: make(Markers),
	}
}

func (d *MapData) Size() Size {
	return d.Grid.Size
}

// Carve overwrites r with fill and splits every already-derived collider
// crossing r, so no collider spans the opening.
func (d *MapData) Carve(r Rect, fill TileType) {
	d.Grid.FillRect(r, fill)
	if len(d.Colliders) > 0 {
		d.Colliders = splitColliders(d.Colliders, r)
	}
}

// HasPrefab reports whether a prefab of kind was placed.
func (d *MapData) HasPrefab(kind PrefabKind) bool {
	for _, p := range d.Prefabs {
		if p.Kind == kind {
			return true
		}
	}
	return false
}

// IntoLayout hands the tiles, markers and colliders over to an immutable
// MapLayout. The MapData is empty afterwards.
func (d *MapData) IntoLayout() *MapLayout {
	layout := &MapLayout{
		size:      d.Grid.Size,
		tiles:     d.Grid.Tiles,
		markers:   d.Markers,
		colliders: d.Colliders,
	}
	d.Grid = nil
	d.Markers = nil
	d.Colliders = nil
	d.DeadZones = nil
	d.Prefabs = nil
	return layout
}

// MapLayout is the read-only product consumed by the renderer, the collider
// spawner and the spawn orchestrator. A zone transition replaces it whole.
type MapLayout struct {
	size      Size
	tiles     [][]TileType
	markers   Markers
	colliders []EnvironmentalCollider
}

func (l *MapLayout) Size() Size {
	return l.size
}

// Tile returns the tile at (x, y); ok is false out of bounds.
func (l *MapLayout) Tile(x, y int) (TileType, bool) {
	if x < 0 || x >= l.size.Width || y < 0 || y >= l.size.Height {
		return DeadZone, false
	}
	return l.tiles[x][y], true
}

// EachTile visits every tile in row-major order.
func (l *MapLayout) EachTile(fn func(p domain.Position, t TileType)) {
	for y := 0; y < l.size.Height; y++ {
		for x := 0; x < l.size.Width; x++ {
			fn(domain.Position{X: x, Y: y}, l.tiles[x][y])
		}
	}
}

// Markers returns a copy of the positions for one category.
func (l *MapLayout) Markers(t MarkerType) []domain.Position {
	return append([]domain.Position(nil), l.markers[t]...)
}

// MarkerTable returns a copy of the whole marker table.
func (l *MapLayout) MarkerTable() Markers {
	return l.markers.Clone()
}

// Colliders returns a copy of the environmental colliders.
func (l *MapLayout) Colliders() []EnvironmentalCollider {
	return append([]EnvironmentalCollider(nil), l.colliders...)
}

// Count returns how many tiles hold t.
func (l *MapLayout) Count(t TileType) int {
	n := 0
	for x := range l.tiles {
		for _, tile := range l.tiles[x] {
			if tile == t {
				n++
			}
		}
	}
	return n
}
