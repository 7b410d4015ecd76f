package zonemap

import (
	"sort"
)

// operation is one step the builder was asked to perform. The numeric
// order is the order Build applies them in.
type operation uint8

const (
	opTerrain operation = iota
	opDeadZones
	opPrefab
	opExteriorWalls
)

type request struct {
	op     operation
	prefab PrefabKind
}

// Report tells the caller what generation could not deliver. Placement is
// best-effort, so none of this is an error.
type Report struct {
	DeadZonesWanted  int
	DeadZonesPlaced  int
	PrefabsSkipped   []PrefabKind
	MarkersRequested map[MarkerType]int
	MarkersPlaced    map[MarkerType]int
}

// Shortfall returns how many scattered markers of t are missing.
func (r Report) Shortfall(t MarkerType) int {
	return max(0, r.MarkersRequested[t]-r.MarkersPlaced[t])
}

// Builder accumulates a zone description through chained With* calls.
// Nothing runs until Build, which applies the requests in a fixed order:
// terrain, dead zones, prefabs (in registration order), exterior walls,
// markers, colliders. The order of the With* calls does not matter.
type Builder struct {
	size     Size
	rng      Rand
	floor    TileType
	requests []request

	hubSize       int
	wallThickness int
	terrain       TerrainNoise
	enemies       int
	chests        int
	bands         map[MarkerType]Band
	minDistance   int
}

// NewBuilder starts a zone of the given size. size must be positive.
func NewBuilder(size Size, rng Rand) *Builder {
	return &Builder{
		size:          size,
		rng:           rng,
		floor:         Ground,
		hubSize:       DefaultHubSize,
		wallThickness: 1,
		bands:         DefaultBands(),
		minDistance:   MinMarkerDistance,
	}
}

// WithFloor sets the tile the grid starts out as.
func (b *Builder) WithFloor(floor TileType) *Builder {
	b.floor = floor
	return b
}

// WithTerrainNoise decorates the floor with ponds and grass.
func (b *Builder) WithTerrainNoise(t TerrainNoise) *Builder {
	b.terrain = t
	b.once(opTerrain, t.Enabled())
	return b
}

// WithDeadZones toggles dead-zone placement.
func (b *Builder) WithDeadZones(enabled bool) *Builder {
	b.once(opDeadZones, enabled)
	return b
}

// WithPrefab registers a prefab. Prefabs are applied in the order they
// were registered.
func (b *Builder) WithPrefab(kind PrefabKind) *Builder {
	b.requests = append(b.requests, request{op: opPrefab, prefab: kind})
	return b
}

// WithHubSize overrides the side length of the hub prefab.
func (b *Builder) WithHubSize(side int) *Builder {
	b.hubSize = side
	return b
}

// WithExteriorWalls walls in the grid border.
func (b *Builder) WithExteriorWalls() *Builder {
	b.once(opExteriorWalls, true)
	return b
}

// WithExteriorWallThickness walls in the border with a thicker ring.
func (b *Builder) WithExteriorWallThickness(thickness int) *Builder {
	b.wallThickness = max(1, thickness)
	b.once(opExteriorWalls, true)
	return b
}

// WithEnemies asks for n scattered enemy markers on top of any prefab ones.
func (b *Builder) WithEnemies(n int) *Builder {
	b.enemies = max(0, n)
	return b
}

// WithChests asks for n scattered chest markers.
func (b *Builder) WithChests(n int) *Builder {
	b.chests = max(0, n)
	return b
}

// WithBand overrides the scatter band for one marker type.
func (b *Builder) WithBand(t MarkerType, band Band) *Builder {
	b.bands[t] = band
	return b
}

// WithMinMarkerDistance overrides the spacing between scattered markers.
func (b *Builder) WithMinMarkerDistance(d int) *Builder {
	b.minDistance = max(0, d)
	return b
}

// once keeps a single request for op, adding or dropping it.
func (b *Builder) once(op operation, enabled bool) {
	for i, r := range b.requests {
		if r.op == op {
			if !enabled {
				b.requests = append(b.requests[:i], b.requests[i+1:]...)
			}
			return
		}
	}
	if enabled {
		b.requests = append(b.requests, request{op: op})
	}
}

// Build runs every request and returns the finished MapData together with
// what could not be placed.
func (b *Builder) Build() (*MapData, Report) {
	data := NewMapData(b.size, b.floor)
	report := Report{
		MarkersRequested: make(map[MarkerType]int),
		MarkersPlaced:    make(map[MarkerType]int),
	}

	ordered := append([]request(nil), b.requests...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].op < ordered[j].op })

	var reserved []Rect
	for _, r := range ordered {
		if r.op == opPrefab && r.prefab == PrefabHub {
			if bounds, bridge, ok := HubFootprint(b.size, b.hubSize, b.wallThickness); ok {
				reserved = append(reserved, bounds, bridge)
			}
		}
	}

	for _, r := range ordered {
		switch r.op {
		case opTerrain:
			ApplyTerrainNoise(data, b.rng, b.terrain)
		case opDeadZones:
			report.DeadZonesWanted = DeadZoneTarget(b.size)
			report.DeadZonesPlaced = ApplyDeadZones(data, b.rng, reserved)
		case opPrefab:
			markers, ok := b.applyPrefab(data, r.prefab)
			if !ok {
				report.PrefabsSkipped = append(report.PrefabsSkipped, r.prefab)
				continue
			}
			data.Markers.Merge(markers)
		case opExteriorWalls:
			ApplyExteriorWalls(data, b.wallThickness)
		}
	}

	b.placeMarkers(data, &report)
	data.Colliders = data.Grid.DeriveColliders()
	return data, report
}

func (b *Builder) applyPrefab(data *MapData, kind PrefabKind) (Markers, bool) {
	switch kind {
	case PrefabHub:
		return ApplyHub(data, b.hubSize, b.wallThickness)
	case PrefabTemple:
		return ApplyTemple(data, b.rng)
	}
	return nil, false
}

// placeMarkers scatters enemies and chests next to whatever prefabs
// supplied, and adds a player spawn and level exit only when no prefab did.
func (b *Builder) placeMarkers(data *MapData, report *Report) {
	wanted := map[MarkerType]int{
		EnemySpawns: b.enemies,
		ChestSpawns: b.chests,
	}
	if data.Markers.Count(PlayerSpawns) == 0 {
		wanted[PlayerSpawns] = 1
	}
	if data.Markers.Count(LevelExits) == 0 {
		wanted[LevelExits] = 1
	}

	for _, t := range AllMarkerTypes {
		n := wanted[t]
		if n == 0 {
			continue
		}
		got := ScatterMarkers(data.Grid, b.rng, b.bands[t], n, b.minDistance, data.Markers[t])
		data.Markers.Add(t, got...)
		report.MarkersRequested[t] = n
		report.MarkersPlaced[t] = len(got)
	}
}
