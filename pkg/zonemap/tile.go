package zonemap

import (
	"fmt"
	"strings"
)

// TileType is the content of one grid cell.
type TileType uint8

const (
	Ground TileType = iota
	Grass
	Wall
	Water
	Wood
	Cobblestone
	// DeadZone reserves space: it is neither rendered nor collided.
	DeadZone
)

var tileTypeToString = map[TileType]string{
	Ground:      "ground",
	Grass:       "grass",
	Wall:        "wall",
	Water:       "water",
	Wood:        "wood",
	Cobblestone: "cobblestone",
	DeadZone:    "dead_zone",
}

var tileStringToType = map[string]TileType{
	"ground":      Ground,
	"grass":       Grass,
	"wall":        Wall,
	"water":       Water,
	"wood":        Wood,
	"cobblestone": Cobblestone,
	"dead_zone":   DeadZone,
}

// ParseTileType converts a config name into a TileType.
func ParseTileType(s string) (TileType, error) {
	if t, ok := tileStringToType[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return Ground, fmt.Errorf("unknown tile type %q", s)
}

func (t TileType) String() string {
	if s, ok := tileTypeToString[t]; ok {
		return s
	}
	return "unknown"
}

// IsSolid reports whether the tile gets an environmental collider.
func (t TileType) IsSolid() bool {
	return t == Wall || t == Water
}

// Size is the grid extent in tiles.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s Size) Area() int {
	return s.Width * s.Height
}

// Bounds returns the whole grid as a rect.
func (s Size) Bounds() Rect {
	return Rect{W: s.Width, H: s.Height}
}

// TileGrid stores tiles column-major: Tiles[x][y].
type TileGrid struct {
	Size  Size
	Tiles [][]TileType
}

// NewTileGrid allocates a grid filled with fill. The caller guarantees a
// positive size.
func NewTileGrid(size Size, fill TileType) *TileGrid {
	tiles := make([][]TileType, size.Width)
	for x := range tiles {
		col := make([]TileType, size.Height)
		for y := range col {
			col[y] = fill
		}
		tiles[x] = col
	}
	return &TileGrid{Size: size, Tiles: tiles}
}

// SetFloor overwrites every cell. Callers apply it before any walls.
func (g *TileGrid) SetFloor(fill TileType) {
	for x := range g.Tiles {
		for y := range g.Tiles[x] {
			g.Tiles[x][y] = fill
		}
	}
}

func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size.Width && y >= 0 && y < g.Size.Height
}

// Get returns the tile at (x, y); ok is false out of bounds.
func (g *TileGrid) Get(x, y int) (TileType, bool) {
	if !g.InBounds(x, y) {
		return DeadZone, false
	}
	return g.Tiles[x][y], true
}

// Is reports whether (x, y) is in bounds and holds t.
func (g *TileGrid) Is(x, y int, t TileType) bool {
	got, ok := g.Get(x, y)
	return ok && got == t
}

// Set writes a tile; out-of-bounds writes are dropped.
func (g *TileGrid) Set(x, y int, t TileType) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.Tiles[x][y] = t
	return true
}

// FillRect writes t over the part of r that lies inside the grid.
func (g *TileGrid) FillRect(r Rect, t TileType) {
	r.Each(func(x, y int) { g.Set(x, y, t) })
}

// OutlineRect stamps a ring of the given thickness along the inside of r.
func (g *TileGrid) OutlineRect(r Rect, thickness int, t TileType) {
	r.Each(func(x, y int) {
		if x < r.X+thickness || x >= r.X+r.W-thickness ||
			y < r.Y+thickness || y >= r.Y+r.H-thickness {
			g.Set(x, y, t)
		}
	})
}

// AllOf reports whether every tile of r is inside the grid and equals t.
func (g *TileGrid) AllOf(r Rect, t TileType) bool {
	ok := true
	r.Each(func(x, y int) {
		if ok && !g.Is(x, y, t) {
			ok = false
		}
	})
	return ok
}

// AnyOf reports whether some in-bounds tile of r equals t.
func (g *TileGrid) AnyOf(r Rect, t TileType) bool {
	found := false
	r.Each(func(x, y int) {
		if !found && g.Is(x, y, t) {
			found = true
		}
	})
	return found
}

// Count returns how many tiles hold t.
func (g *TileGrid) Count(t TileType) int {
	n := 0
	for x := range g.Tiles {
		for _, tile := range g.Tiles[x] {
			if tile == t {
				n++
			}
		}
	}
	return n
}
