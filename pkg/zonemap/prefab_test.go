package zonemap

import (
	"math/rand"
	"testing"

	"zonecraft/internal/domain"
)

func TestApplyExteriorWalls_SkipsDeadZones(t *testing.T) {
	d := NewMapData(Size{10, 8}, Ground)
	d.Grid.Set(0, 4, DeadZone)
	d.Grid.Set(5, 7, DeadZone)

	ApplyExteriorWalls(d, 1)

	if !d.Grid.Is(0, 4, DeadZone) || !d.Grid.Is(5, 7, DeadZone) {
		t.Fatal("exterior walls overwrote a dead zone")
	}
	for x := 0; x < 10; x++ {
		for y := 0; y < 8; y++ {
			border := x == 0 || y == 0 || x == 9 || y == 7
			tile := d.Grid.Tiles[x][y]
			switch {
			case tile == DeadZone:
			case border && tile != Wall:
				t.Errorf("border tile (%d,%d) = %s, want wall", x, y, tile)
			case !border && tile != Ground:
				t.Errorf("interior tile (%d,%d) = %s, want ground", x, y, tile)
			}
		}
	}
}

func TestApplyExteriorWalls_Thickness(t *testing.T) {
	d := NewMapData(Size{10, 10}, Ground)
	ApplyExteriorWalls(d, 2)

	if !d.Grid.Is(1, 5, Wall) || !d.Grid.Is(8, 5, Wall) {
		t.Error("second ring should be wall")
	}
	if !d.Grid.Is(2, 5, Ground) {
		t.Error("third column should still be ground")
	}
}

func TestApplyDeadZones_NeverOverlap(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		d := NewMapData(Size{150, 150}, Ground)
		placed := ApplyDeadZones(d, rand.New(rand.NewSource(seed)), nil)

		if placed != len(d.DeadZones) {
			t.Fatalf("seed %d: returned %d but recorded %d", seed, placed, len(d.DeadZones))
		}
		if placed > DeadZoneTarget(d.Size()) {
			t.Fatalf("seed %d: placed %d, more than target %d", seed, placed, DeadZoneTarget(d.Size()))
		}

		for i, a := range d.DeadZones {
			if a.X < deadZoneEdgeMargin || a.Y < deadZoneEdgeMargin ||
				a.X+a.W > 150-deadZoneEdgeMargin || a.Y+a.H > 150-deadZoneEdgeMargin {
				t.Errorf("seed %d: dead zone %+v too close to the edge", seed, a)
			}
			for _, b := range d.DeadZones[i+1:] {
				if a.Intersects(b) {
					t.Errorf("seed %d: dead zones %+v and %+v overlap", seed, a, b)
				}
			}

			inner := Rect{X: a.X + 1, Y: a.Y + 1, W: a.W - 2, H: a.H - 2}
			if !d.Grid.AllOf(inner, DeadZone) {
				t.Errorf("seed %d: interior of %+v is not all dead zone", seed, a)
			}
			a.Each(func(x, y int) {
				if !inner.Contains(domain.Position{X: x, Y: y}) && !d.Grid.Is(x, y, Wall) {
					t.Errorf("seed %d: ring tile (%d,%d) of %+v is not wall", seed, x, y, a)
				}
			})
		}
	}
}

func TestApplyDeadZones_RespectsReservedAndSmallGrids(t *testing.T) {
	small := NewMapData(Size{40, 40}, Ground)
	if n := ApplyDeadZones(small, rand.New(rand.NewSource(1)), nil); n != 0 {
		t.Errorf("40x40 grid should get no dead zones, got %d", n)
	}

	d := NewMapData(Size{120, 120}, Ground)
	reserved := Rect{X: 10, Y: 10, W: 100, H: 100}
	n := ApplyDeadZones(d, rand.New(rand.NewSource(3)), []Rect{reserved})
	if n != 0 {
		t.Errorf("reserved area leaves no room, yet %d dead zones were placed", n)
	}
	if d.Grid.Count(DeadZone) != 0 || d.Grid.Count(Wall) != 0 {
		t.Error("a rejected placement must not touch the grid")
	}
}

func TestApplyHub(t *testing.T) {
	d := NewMapData(Size{100, 100}, Ground)
	markers, ok := ApplyHub(d, 25, 1)
	if !ok {
		t.Fatal("hub should fit a 100x100 grid")
	}

	bounds, bridge, _ := HubFootprint(d.Size(), 25, 1)
	gap := HubEntrance(bounds)
	interior := Rect{X: bounds.X + 3, Y: bounds.Y + 3, W: 19, H: 19}

	bounds.Each(func(x, y int) {
		p := domain.Position{X: x, Y: y}
		tile := d.Grid.Tiles[x][y]
		switch {
		case gap.Contains(p):
			if tile != Wood {
				t.Errorf("gap tile %v = %s, want wood", p, tile)
			}
		case interior.Contains(p):
			if tile != Cobblestone {
				t.Errorf("interior tile %v = %s, want cobblestone", p, tile)
			}
		default:
			if tile != Wall {
				t.Errorf("ring tile %v = %s, want wall", p, tile)
			}
		}
	})
	if !d.Grid.AllOf(bridge, Wood) {
		t.Error("bridge should be wood")
	}

	for _, mt := range []MarkerType{PlayerSpawns, LevelExits, NPCSpawns} {
		if markers.Count(mt) != 1 {
			t.Errorf("expected one %s marker, got %d", mt, markers.Count(mt))
		}
	}
	player, _ := markers.First(PlayerSpawns)
	if !interior.Contains(player) {
		t.Errorf("player spawn %v should be inside the hub", player)
	}
	exit, _ := markers.First(LevelExits)
	if !bridge.Contains(exit) {
		t.Errorf("level exit %v should be on the bridge", exit)
	}
	if !d.HasPrefab(PrefabHub) {
		t.Error("hub placement was not recorded")
	}
}

func TestApplyHub_DoesNotFit(t *testing.T) {
	d := NewMapData(Size{20, 20}, Ground)
	if _, ok := ApplyHub(d, 25, 1); ok {
		t.Fatal("a 25-wide hub cannot fit a 20x20 grid")
	}
	if d.Grid.Count(Ground) != 400 {
		t.Error("grid must be untouched when the hub does not fit")
	}
}

func TestApplyTemple(t *testing.T) {
	d := NewMapData(Size{60, 60}, Ground)
	markers, ok := ApplyTemple(d, rand.New(rand.NewSource(7)))
	if !ok {
		t.Fatal("an empty 60x60 grid always has room for a temple")
	}

	if got := markers.Count(EnemySpawns); got != 4 {
		t.Errorf("expected 4 temple guards, got %d", got)
	}
	if got := markers.Count(BossSpawns); got != 1 {
		t.Errorf("expected 1 boss, got %d", got)
	}

	perimeter := 2*TempleWidth + 2*TempleHeight - 4
	if got := d.Grid.Count(Wall); got != perimeter-templeGapWidth {
		t.Errorf("temple walls = %d, want %d", got, perimeter-templeGapWidth)
	}

	bounds := d.Prefabs[0].Bounds
	for _, p := range append(markers[EnemySpawns], markers[BossSpawns]...) {
		if !bounds.Contains(p) || !d.Grid.Is(p.X, p.Y, Ground) {
			t.Errorf("temple marker %v must be on ground inside %+v", p, bounds)
		}
	}
}

func TestApplyTemple_NoFootprint(t *testing.T) {
	d := NewMapData(Size{60, 60}, Wall)
	markers, ok := ApplyTemple(d, rand.New(rand.NewSource(7)))
	if ok || markers != nil {
		t.Fatal("temple must give up on a wall-saturated grid")
	}
	if d.Grid.Count(Wall) != 3600 {
		t.Error("grid must be untouched")
	}
}

func TestApplyTerrainNoise(t *testing.T) {
	build := func() *MapData {
		d := NewMapData(Size{64, 64}, Ground)
		d.Grid.FillRect(Rect{X: 0, Y: 0, W: 10, H: 10}, Cobblestone)
		ApplyTerrainNoise(d, rand.New(rand.NewSource(11)), TerrainNoise{Scale: 8, Water: 0.2, Grass: 0.0})
		return d
	}
	a, b := build(), build()

	if !d2Equal(a.Grid, b.Grid) {
		t.Fatal("same seed must give the same terrain")
	}
	if a.Grid.Count(Cobblestone) != 100 {
		t.Error("terrain noise may only change ground tiles")
	}
	if a.Grid.Count(Water)+a.Grid.Count(Grass) == 0 {
		t.Error("expected some water or grass on a 64x64 map")
	}
}

func d2Equal(a, b *TileGrid) bool {
	if a.Size != b.Size {
		return false
	}
	for x := range a.Tiles {
		for y := range a.Tiles[x] {
			if a.Tiles[x][y] != b.Tiles[x][y] {
				return false
			}
		}
	}
	return true
}
