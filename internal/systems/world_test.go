package systems

import (
	"math/rand"
	"testing"

	"github.com/yohamta/donburi"

	"zonecraft/internal/domain"
	"zonecraft/pkg/worldspace"
	"zonecraft/pkg/zonemap"
)

// 10x10 ground field with a walled border and a 2x2 dead zone.
func testLayout() *zonemap.MapLayout {
	d := zonemap.NewMapData(zonemap.Size{Width: 10, Height: 10}, zonemap.Ground)
	d.Grid.FillRect(zonemap.Rect{X: 4, Y: 4, W: 2, H: 2}, zonemap.DeadZone)
	zonemap.ApplyExteriorWalls(d, 1)
	d.Markers.Add(zonemap.PlayerSpawns, domain.Position{X: 2, Y: 2})
	d.Colliders = d.Grid.DeriveColliders()
	return d.IntoLayout()
}

func TestSpawnTilemap_SkipsDeadZone(t *testing.T) {
	w := NewWorld(worldspace.DefaultConfig())
	layout := testLayout()

	got := w.SpawnTilemap(layout)
	if got != 100-4 {
		t.Errorf("expected 96 tiles, got %d", got)
	}
	if c := w.Census()["tile"]; c != got {
		t.Errorf("census says %d tiles, spawned %d", c, got)
	}
}

func TestSpawnColliders_WorldPlacement(t *testing.T) {
	space := worldspace.DefaultConfig()
	w := NewWorld(space)
	layout := testLayout()

	n := w.SpawnColliders(layout)
	if n != len(layout.Colliders()) || n != 4 {
		t.Fatalf("expected 4 border colliders, got %d", n)
	}

	want, wantExtent := space.ColliderToWorld(layout.Size(), layout.Colliders()[0])
	found := false
	colliderQuery.Each(w.ECS, func(e *donburi.Entry) {
		if Transform.Get(e).Pos == want && ColliderShape.Get(e).Extent == wantExtent {
			found = true
		}
	})
	if !found {
		t.Errorf("no collider entity at %v with extent %v", want, wantExtent)
	}
}

func TestDispatch_SpawnsOnFlush(t *testing.T) {
	w := NewWorld(worldspace.DefaultConfig())

	w.Dispatch(domain.SpawnRequest{Kind: domain.SpawnEnemy, Points: []domain.SpawnPoint{
		{World: domain.Vec2{X: 1, Y: 2}, EnemyType: "goblin"},
		{World: domain.Vec2{X: 3, Y: 4}, EnemyType: "troll", Boss: true},
	}})
	w.Dispatch(domain.SpawnRequest{Kind: domain.SpawnChest, Points: []domain.SpawnPoint{{}}})
	w.Dispatch(domain.SpawnRequest{Kind: domain.SpawnNPC, Points: []domain.SpawnPoint{{}}})
	w.Dispatch(domain.SpawnRequest{Kind: domain.SpawnExitPortal, Points: []domain.SpawnPoint{{}}})

	if w.Census()["enemy"] != 0 {
		t.Fatal("entities should not exist before Flush")
	}
	w.Flush()

	census := w.Census()
	want := map[string]int{"enemy": 2, "chest": 1, "npc": 1, "exit_portal": 1, "player": 1}
	for k, v := range want {
		if census[k] != v {
			t.Errorf("census[%s] = %d, want %d", k, census[k], v)
		}
	}

	bosses := 0
	for _, e := range w.Enemies() {
		if e.Boss {
			bosses++
			if e.Type != "troll" {
				t.Errorf("boss type = %s, want troll", e.Type)
			}
		}
	}
	if bosses != 1 {
		t.Errorf("expected 1 boss, got %d", bosses)
	}
}

func TestCleanup_KeepsPlayer(t *testing.T) {
	w := NewWorld(worldspace.DefaultConfig())
	layout := testLayout()
	w.SpawnTilemap(layout)
	w.SpawnColliders(layout)
	w.Dispatch(domain.SpawnRequest{Kind: domain.SpawnChest, Points: []domain.SpawnPoint{{}, {}}})
	w.Flush()

	removed := w.Cleanup()
	if removed != 96+4+2 {
		t.Errorf("expected 102 removed, got %d", removed)
	}
	for k, v := range w.Census() {
		if k == "player" {
			if v != 1 {
				t.Errorf("player should survive cleanup, count %d", v)
			}
			continue
		}
		if v != 0 {
			t.Errorf("census[%s] = %d after cleanup", k, v)
		}
	}
	if w.Cleanup() != 0 {
		t.Error("second cleanup should remove nothing")
	}
}

func TestMovePlayer(t *testing.T) {
	w := NewWorld(worldspace.DefaultConfig())
	target := domain.Vec2{X: -120, Y: 64}

	if !w.MovePlayer(target) {
		t.Fatal("MovePlayer should find the player")
	}
	pos, ok := w.PlayerPosition()
	if !ok || pos != target {
		t.Errorf("player at %v, want %v", pos, target)
	}
}

func TestRepeatedZones_DoNotAccumulate(t *testing.T) {
	w := NewWorld(worldspace.DefaultConfig())
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 3; i++ {
		data, _ := zonemap.NewBuilder(zonemap.Size{Width: 40, Height: 40}, rng).
			WithExteriorWalls().
			WithEnemies(3).
			Build()
		layout := data.IntoLayout()

		w.Cleanup()
		tiles := w.SpawnTilemap(layout)
		w.SpawnColliders(layout)

		if c := w.Census()["tile"]; c != tiles {
			t.Fatalf("zone %d: %d tiles alive, want %d", i, c, tiles)
		}
	}
}
