package zonemap

import (
	"zonecraft/internal/domain"

	"github.com/zyedidia/generic/mapset"
)

// ColliderKind mirrors the solid tile type a collider was derived from.
type ColliderKind uint8

const (
	WallCollider ColliderKind = iota
	WaterCollider
)

func (k ColliderKind) String() string {
	if k == WaterCollider {
		return "water"
	}
	return "wall"
}

// Tile returns the tile type this kind covers.
func (k ColliderKind) Tile() TileType {
	if k == WaterCollider {
		return Water
	}
	return Wall
}

// EnvironmentalCollider is an axis-aligned box in tile space. Origin is the
// low corner tile; Width and Height are in tiles.
type EnvironmentalCollider struct {
	Kind   ColliderKind    `json:"kind"`
	Origin domain.Position `json:"origin"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
}

func (c EnvironmentalCollider) Bounds() Rect {
	return Rect{X: c.Origin.X, Y: c.Origin.Y, W: c.Width, H: c.Height}
}

// Center is the tile-space centre, with tile centres on integer coordinates.
func (c EnvironmentalCollider) Center() domain.Vec2 {
	return domain.Vec2{
		X: float64(c.Origin.X) + float64(c.Width-1)/2,
		Y: float64(c.Origin.Y) + float64(c.Height-1)/2,
	}
}

func (c EnvironmentalCollider) Covers(p domain.Position) bool {
	return c.Bounds().Contains(p)
}

// DeriveColliders merges Wall runs, then Water runs, into boxes: horizontal
// runs of two or more tiles first (row-major), then vertical runs over
// tiles not yet covered, then whatever single tiles remain.
func (g *TileGrid) DeriveColliders() []EnvironmentalCollider {
	var out []EnvironmentalCollider
	out = append(out, g.deriveKind(WallCollider)...)
	out = append(out, g.deriveKind(WaterCollider)...)
	return out
}

func (g *TileGrid) deriveKind(kind ColliderKind) []EnvironmentalCollider {
	tile := kind.Tile()
	w, h := g.Size.Width, g.Size.Height
	covered := mapset.New[domain.Position]()
	var out []EnvironmentalCollider

	cover := func(c EnvironmentalCollider) {
		c.Bounds().Each(func(x, y int) { covered.Put(domain.Position{X: x, Y: y}) })
		out = append(out, c)
	}
	free := func(x, y int) bool {
		return g.Tiles[x][y] == tile && !covered.Has(domain.Position{X: x, Y: y})
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; {
			if !free(x, y) {
				x++
				continue
			}
			start := x
			for x < w && free(x, y) {
				x++
			}
			if x-start >= 2 {
				cover(EnvironmentalCollider{Kind: kind, Origin: domain.Position{X: start, Y: y}, Width: x - start, Height: 1})
			}
		}
	}

	for x := 0; x < w; x++ {
		for y := 0; y < h; {
			if !free(x, y) {
				y++
				continue
			}
			start := y
			for y < h && free(x, y) {
				y++
			}
			if y-start >= 2 {
				cover(EnvironmentalCollider{Kind: kind, Origin: domain.Position{X: x, Y: start}, Width: 1, Height: y - start})
			}
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if free(x, y) {
				cover(EnvironmentalCollider{Kind: kind, Origin: domain.Position{X: x, Y: y}, Width: 1, Height: 1})
			}
		}
	}

	return out
}

// splitColliders removes cut from every collider it crosses, keeping the
// left/right strips at full height and the below/above strips in between.
func splitColliders(colliders []EnvironmentalCollider, cut Rect) []EnvironmentalCollider {
	out := make([]EnvironmentalCollider, 0, len(colliders))
	for _, c := range colliders {
		b := c.Bounds()
		ix, ok := b.Intersection(cut)
		if !ok {
			out = append(out, c)
			continue
		}
		pieces := []Rect{
			{X: b.X, Y: b.Y, W: ix.X - b.X, H: b.H},
			{X: ix.X + ix.W, Y: b.Y, W: b.X + b.W - (ix.X + ix.W), H: b.H},
			{X: ix.X, Y: b.Y, W: ix.W, H: ix.Y - b.Y},
			{X: ix.X, Y: ix.Y + ix.H, W: ix.W, H: b.Y + b.H - (ix.Y + ix.H)},
		}
		for _, p := range pieces {
			if p.Empty() {
				continue
			}
			out = append(out, EnvironmentalCollider{
				Kind:   c.Kind,
				Origin: domain.Position{X: p.X, Y: p.Y},
				Width:  p.W,
				Height: p.H,
			})
		}
	}
	return out
}
