package systems

import (
	"github.com/yohamta/donburi"

	"zonecraft/internal/domain"
	"zonecraft/pkg/zonemap"
)

// TransformData is the world-space position of an entity.
type TransformData struct {
	Pos domain.Vec2
}

// TileSpriteData is one rendered tile.
type TileSpriteData struct {
	Tile domain.Position
	Type zonemap.TileType
}

// ColliderShapeData is an axis-aligned static body.
type ColliderShapeData struct {
	Kind   zonemap.ColliderKind
	Extent domain.Vec2
}

// EnemyData describes a spawned enemy.
type EnemyData struct {
	Type string
	Boss bool
	Tile domain.Position
}

// SpawnedAtData records the tile a non-enemy entity was placed on.
type SpawnedAtData struct {
	Tile domain.Position
}

var (
	Transform     = donburi.NewComponentType[TransformData]()
	TileSprite    = donburi.NewComponentType[TileSpriteData]()
	ColliderShape = donburi.NewComponentType[ColliderShapeData]()
	Enemy         = donburi.NewComponentType[EnemyData]()
	SpawnedAt     = donburi.NewComponentType[SpawnedAtData]()

	// ZoneScoped entities are removed when the zone is torn down.
	ZoneScoped = donburi.NewComponentType[struct{}]()

	Chest      = donburi.NewComponentType[struct{}]()
	NPC        = donburi.NewComponentType[struct{}]()
	ExitPortal = donburi.NewComponentType[struct{}]()
	Player     = donburi.NewComponentType[struct{}]()
)
