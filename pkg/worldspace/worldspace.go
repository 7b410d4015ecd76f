// Package worldspace converts tile-grid coordinates into the world space the
// renderer and physics share.
//
// The tilemap renderer centres every map on its origin: it takes the world
// position of tile (0,0) and of tile (size.X, size.Y), and shifts the map by
// minus half their difference. TileToWorld applies the same shift, so
// anything spawned through it lines up with the rendered tiles and the
// environmental colliders. This is the only place that knows the convention.
package worldspace

import (
	"math"

	"zonecraft/internal/domain"
	"zonecraft/pkg/zonemap"
)

const DefaultTileSize = 32.0

// Config is shared by the tilemap renderer, the collider spawner and the
// spawn orchestrator.
type Config struct {
	TileSize domain.Vec2 `yaml:"tile_size" json:"tileSize"`
	Origin   domain.Vec2 `yaml:"origin" json:"origin"`
}

// DefaultConfig uses square 32px tiles centred on the world origin.
func DefaultConfig() Config {
	return Config{TileSize: domain.Vec2{X: DefaultTileSize, Y: DefaultTileSize}}
}

// centerInWorld is the un-centred position the renderer gives a tile of a
// square grid.
func (c Config) centerInWorld(p domain.Vec2) domain.Vec2 {
	return p.Mul(c.TileSize)
}

// Correction is the shift the renderer applies to centre a grid of size.
func (c Config) Correction(size zonemap.Size) domain.Vec2 {
	low := c.centerInWorld(domain.Vec2{})
	high := c.centerInWorld(domain.Vec2{X: float64(size.Width), Y: float64(size.Height)})
	return high.Sub(low).Scale(-0.5)
}

// TileToWorld returns the world-space centre of a tile.
func (c Config) TileToWorld(size zonemap.Size, tile domain.Position) domain.Vec2 {
	return c.PointToWorld(size, tile.ToVec2())
}

// PointToWorld is TileToWorld for fractional tile coordinates.
func (c Config) PointToWorld(size zonemap.Size, p domain.Vec2) domain.Vec2 {
	return c.Origin.Add(p.Mul(c.TileSize)).Add(c.Correction(size))
}

// WorldToTile returns the tile whose centre is nearest to a world point.
func (c Config) WorldToTile(size zonemap.Size, w domain.Vec2) domain.Position {
	local := w.Sub(c.Origin).Sub(c.Correction(size))
	return domain.Position{
		X: int(math.Round(local.X / c.TileSize.X)),
		Y: int(math.Round(local.Y / c.TileSize.Y)),
	}
}

// ColliderToWorld returns the world-space centre and full extent of a
// collider derived from a grid of size.
func (c Config) ColliderToWorld(size zonemap.Size, col zonemap.EnvironmentalCollider) (center, extent domain.Vec2) {
	center = c.PointToWorld(size, col.Center())
	extent = domain.Vec2{X: float64(col.Width), Y: float64(col.Height)}.Mul(c.TileSize)
	return center, extent
}
