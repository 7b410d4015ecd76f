package engine

import (
	"github.com/sirupsen/logrus"

	"zonecraft/internal/domain"
	"zonecraft/pkg/logger"
	"zonecraft/pkg/worldspace"
	"zonecraft/pkg/zonemap"
)

// DefaultEnemyType is used when an instance names no enemy types.
const DefaultEnemyType = "grunt"

// SpawnDispatcher receives one request per marker category.
type SpawnDispatcher interface {
	Dispatch(req domain.SpawnRequest)
}

// PlayerMover relocates the persistent player. It reports false when there
// is no player to move.
type PlayerMover interface {
	MovePlayer(pos domain.Vec2) bool
}

// Roster holds the enemy choices of an instance.
type Roster struct {
	EnemyTypes []Weighted
	BossType   string
}

func (r Roster) enemyType(rng zonemap.Rand) string {
	if len(r.EnemyTypes) == 0 {
		return DefaultEnemyType
	}
	name, err := ChooseWeighted(rng, r.EnemyTypes)
	if err != nil {
		return DefaultEnemyType
	}
	return name
}

func (r Roster) bossType(rng zonemap.Rand) string {
	if r.BossType != "" {
		return r.BossType
	}
	return r.enemyType(rng)
}

// SpawnSummary counts what SpawnZone handed off.
type SpawnSummary struct {
	Requested   map[domain.SpawnKind]int
	PlayerMoved bool
}

// Orchestrator turns marker tables into spawn requests.
type Orchestrator struct {
	Space      worldspace.Config
	Dispatcher SpawnDispatcher
	Player     PlayerMover
}

func NewOrchestrator(space worldspace.Config, d SpawnDispatcher, p PlayerMover) *Orchestrator {
	return &Orchestrator{Space: space, Dispatcher: d, Player: p}
}

// SpawnZone dispatches enemies (bosses included), chests, NPCs and exit
// portals, then moves the player to the first player spawn. Categories with
// no markers are skipped.
func (o *Orchestrator) SpawnZone(layout *zonemap.MapLayout, roster Roster, rng zonemap.Rand) SpawnSummary {
	size := layout.Size()
	summary := SpawnSummary{Requested: make(map[domain.SpawnKind]int)}

	point := func(p domain.Position) domain.SpawnPoint {
		return domain.SpawnPoint{World: o.Space.TileToWorld(size, p), Tile: p}
	}

	var enemies []domain.SpawnPoint
	for _, p := range layout.Markers(zonemap.EnemySpawns) {
		sp := point(p)
		sp.EnemyType = roster.enemyType(rng)
		enemies = append(enemies, sp)
	}
	for _, p := range layout.Markers(zonemap.BossSpawns) {
		sp := point(p)
		sp.EnemyType = roster.bossType(rng)
		sp.Boss = true
		enemies = append(enemies, sp)
	}
	o.dispatch(domain.SpawnEnemy, enemies, &summary)

	simple := []struct {
		marker zonemap.MarkerType
		kind   domain.SpawnKind
	}{
		{zonemap.ChestSpawns, domain.SpawnChest},
		{zonemap.NPCSpawns, domain.SpawnNPC},
		{zonemap.LevelExits, domain.SpawnExitPortal},
	}
	for _, s := range simple {
		var points []domain.SpawnPoint
		for _, p := range layout.Markers(s.marker) {
			points = append(points, point(p))
		}
		o.dispatch(s.kind, points, &summary)
	}

	if spawns := layout.Markers(zonemap.PlayerSpawns); len(spawns) > 0 && o.Player != nil {
		world := o.Space.TileToWorld(size, spawns[0])
		summary.PlayerMoved = o.Player.MovePlayer(world)
		if !summary.PlayerMoved {
			logger.Log.WithField("tile", spawns[0]).Debug("No player to place")
		}
	}
	return summary
}

func (o *Orchestrator) dispatch(kind domain.SpawnKind, points []domain.SpawnPoint, summary *SpawnSummary) {
	if len(points) == 0 {
		return
	}
	o.Dispatcher.Dispatch(domain.SpawnRequest{Kind: kind, Points: points})
	summary.Requested[kind] = len(points)
	logger.Log.WithFields(logrus.Fields{
		"kind":  kind.String(),
		"count": len(points),
	}).Debug("Spawn request dispatched")
}
