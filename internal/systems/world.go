package systems

import (
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"zonecraft/internal/domain"
	"zonecraft/pkg/api"
	"zonecraft/pkg/logger"
	"zonecraft/pkg/worldspace"
	"zonecraft/pkg/zonemap"
)

// SpawnRequested carries orchestrator requests to the spawn subscribers.
var SpawnRequested = events.NewEventType[domain.SpawnRequest]()

var (
	zoneQuery     = donburi.NewQuery(filter.Contains(ZoneScoped))
	tileQuery     = donburi.NewQuery(filter.Contains(TileSprite))
	colliderQuery = donburi.NewQuery(filter.Contains(ColliderShape))
	enemyQuery    = donburi.NewQuery(filter.Contains(Enemy))
	chestQuery    = donburi.NewQuery(filter.Contains(Chest))
	npcQuery      = donburi.NewQuery(filter.Contains(NPC))
	portalQuery   = donburi.NewQuery(filter.Contains(ExitPortal))
	playerQuery   = donburi.NewQuery(filter.Contains(Player, Transform))
)

// World is the ECS side of a zone: tiles, colliders and everything the
// orchestrator asks for. The player entity survives zone changes.
type World struct {
	ECS   donburi.World
	Space worldspace.Config
}

// NewWorld creates the ECS world, the persistent player and the spawn
// subscribers.
func NewWorld(space worldspace.Config) *World {
	w := &World{ECS: donburi.NewWorld(), Space: space}

	player := w.ECS.Entry(w.ECS.Create(Player, Transform))
	Transform.SetValue(player, TransformData{Pos: space.Origin})

	SpawnRequested.Subscribe(w.ECS, w.onSpawnRequested)
	return w
}

// Cleanup removes every zone-scoped entity and returns how many were removed.
func (w *World) Cleanup() int {
	var doomed []donburi.Entity
	zoneQuery.Each(w.ECS, func(e *donburi.Entry) {
		doomed = append(doomed, e.Entity())
	})
	for _, e := range doomed {
		w.ECS.Remove(e)
	}
	if len(doomed) > 0 {
		logger.Log.WithField("entities", len(doomed)).Debug("Zone cleaned up")
	}
	return len(doomed)
}

// SpawnTilemap creates one tile entity per rendered tile. DeadZone tiles
// are not rendered.
func (w *World) SpawnTilemap(layout *zonemap.MapLayout) int {
	size := layout.Size()
	spawned := 0
	layout.EachTile(func(p domain.Position, t zonemap.TileType) {
		if t == zonemap.DeadZone {
			return
		}
		entry := w.ECS.Entry(w.ECS.Create(ZoneScoped, Transform, TileSprite))
		Transform.SetValue(entry, TransformData{Pos: w.Space.TileToWorld(size, p)})
		TileSprite.SetValue(entry, TileSpriteData{Tile: p, Type: t})
		spawned++
	})
	return spawned
}

// SpawnColliders creates one static body per environmental collider.
func (w *World) SpawnColliders(layout *zonemap.MapLayout) int {
	size := layout.Size()
	colliders := layout.Colliders()
	for _, c := range colliders {
		center, extent := w.Space.ColliderToWorld(size, c)
		entry := w.ECS.Entry(w.ECS.Create(ZoneScoped, Transform, ColliderShape))
		Transform.SetValue(entry, TransformData{Pos: center})
		ColliderShape.SetValue(entry, ColliderShapeData{Kind: c.Kind, Extent: extent})
	}
	return len(colliders)
}

// Dispatch queues a spawn request. Entities appear on the next Flush.
func (w *World) Dispatch(req domain.SpawnRequest) {
	SpawnRequested.Publish(w.ECS, req)
}

// Flush runs the spawn subscribers for every queued request.
func (w *World) Flush() {
	SpawnRequested.ProcessEvents(w.ECS)
}

func (w *World) onSpawnRequested(world donburi.World, req domain.SpawnRequest) {
	for _, p := range req.Points {
		var entry *donburi.Entry
		switch req.Kind {
		case domain.SpawnEnemy:
			entry = world.Entry(world.Create(ZoneScoped, Transform, Enemy))
			Enemy.SetValue(entry, EnemyData{Type: p.EnemyType, Boss: p.Boss, Tile: p.Tile})
		case domain.SpawnChest:
			entry = world.Entry(world.Create(ZoneScoped, Transform, SpawnedAt, Chest))
		case domain.SpawnNPC:
			entry = world.Entry(world.Create(ZoneScoped, Transform, SpawnedAt, NPC))
		case domain.SpawnExitPortal:
			entry = world.Entry(world.Create(ZoneScoped, Transform, SpawnedAt, ExitPortal))
		default:
			logger.Log.WithField("kind", req.Kind.String()).Warn("Ignoring spawn request of unknown kind")
			return
		}
		Transform.SetValue(entry, TransformData{Pos: p.World})
		if entry.HasComponent(SpawnedAt) {
			SpawnedAt.SetValue(entry, SpawnedAtData{Tile: p.Tile})
		}
	}
	logger.Log.WithFields(logrus.Fields{
		"kind":  req.Kind.String(),
		"count": len(req.Points),
	}).Debug("Spawned")
}

// MovePlayer relocates the persistent player.
func (w *World) MovePlayer(pos domain.Vec2) bool {
	entry, ok := playerQuery.First(w.ECS)
	if !ok {
		return false
	}
	Transform.SetValue(entry, TransformData{Pos: pos})
	return true
}

// PlayerPosition returns the world position of the player.
func (w *World) PlayerPosition() (domain.Vec2, bool) {
	entry, ok := playerQuery.First(w.ECS)
	if !ok {
		return domain.Vec2{}, false
	}
	return Transform.Get(entry).Pos, true
}

// Enemies returns every spawned enemy.
func (w *World) Enemies() []EnemyData {
	var out []EnemyData
	enemyQuery.Each(w.ECS, func(e *donburi.Entry) {
		out = append(out, *Enemy.Get(e))
	})
	return out
}

// Census counts live entities per kind.
func (w *World) Census() api.Census {
	return api.Census{
		"tile":        tileQuery.Count(w.ECS),
		"collider":    colliderQuery.Count(w.ECS),
		"enemy":       enemyQuery.Count(w.ECS),
		"chest":       chestQuery.Count(w.ECS),
		"npc":         npcQuery.Count(w.ECS),
		"exit_portal": portalQuery.Count(w.ECS),
		"player":      playerQuery.Count(w.ECS),
	}
}
