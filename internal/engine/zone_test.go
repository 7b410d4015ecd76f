package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"zonecraft/internal/domain"
	"zonecraft/internal/systems"
	"zonecraft/pkg/api"
	"zonecraft/pkg/worldspace"
	"zonecraft/pkg/zonemap"
)

// stageRecorder logs the order the service drives a stage in.
type stageRecorder struct {
	calls []string
}

func (s *stageRecorder) Dispatch(req domain.SpawnRequest) {
	s.calls = append(s.calls, "dispatch:"+req.Kind.String())
}
func (s *stageRecorder) MovePlayer(domain.Vec2) bool {
	s.calls = append(s.calls, "player")
	return true
}
func (s *stageRecorder) Cleanup() int {
	s.calls = append(s.calls, "cleanup")
	return 0
}
func (s *stageRecorder) SpawnTilemap(*zonemap.MapLayout) int {
	s.calls = append(s.calls, "tilemap")
	return 0
}
func (s *stageRecorder) SpawnColliders(*zonemap.MapLayout) int {
	s.calls = append(s.calls, "colliders")
	return 0
}
func (s *stageRecorder) Flush()             { s.calls = append(s.calls, "flush") }
func (s *stageRecorder) Census() api.Census { return api.Census{} }

func testConfig() Config {
	return Config{Seed: 42, WorldSpace: worldspace.DefaultConfig()}
}

func TestActivate_Order(t *testing.T) {
	stage := &stageRecorder{}
	s := NewZoneService(testConfig(), mustAssets(t), stage)

	if err := s.EnterHub(); err != nil {
		t.Fatalf("EnterHub: %v", err)
	}

	// The hub supplies player, exit and NPC markers; it scatters no enemies
	// or chests.
	want := []string{"cleanup", "tilemap", "colliders", "dispatch:NPC", "dispatch:EXIT_PORTAL", "player", "flush"}
	if !reflect.DeepEqual(stage.calls, want) {
		t.Errorf("calls = %v, want %v", stage.calls, want)
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %s, want PLAYING", s.State())
	}
	if z := s.Current(); z == nil || z.Instance != "town" {
		t.Fatalf("current zone = %+v", z)
	}
}

func TestGenerateLayout_Deterministic(t *testing.T) {
	s := NewZoneService(testConfig(), mustAssets(t), &stageRecorder{})

	a, _, err := s.GenerateLayout("forest", 1234)
	if err != nil {
		t.Fatalf("GenerateLayout: %v", err)
	}
	b, _, _ := s.GenerateLayout("forest", 1234)

	if a.Size() != b.Size() {
		t.Fatalf("sizes differ: %v vs %v", a.Size(), b.Size())
	}
	if !reflect.DeepEqual(a.MarkerTable(), b.MarkerTable()) {
		t.Error("same seed should give the same markers")
	}
	if !reflect.DeepEqual(a.Colliders(), b.Colliders()) {
		t.Error("same seed should give the same colliders")
	}

	if _, _, err := s.GenerateLayout("swamp", 1); !errors.Is(err, ErrUnknownInstance) {
		t.Errorf("expected ErrUnknownInstance, got %v", err)
	}
}

func TestEnterInstance_WithECS(t *testing.T) {
	cfg := testConfig()
	world := systems.NewWorld(cfg.WorldSpace)
	s := NewZoneService(cfg, mustAssets(t), world)

	if err := s.EnterInstanceSeeded("caves", 99); err != nil {
		t.Fatalf("EnterInstanceSeeded: %v", err)
	}
	z := s.Current()
	census := world.Census()

	if census["tile"] != 50*50 {
		t.Errorf("expected 2500 tiles, got %d", census["tile"])
	}
	if census["collider"] != len(z.Layout.Colliders()) {
		t.Errorf("collider entities %d, layout has %d", census["collider"], len(z.Layout.Colliders()))
	}
	if census["enemy"] != len(z.Layout.Markers(zonemap.EnemySpawns)) {
		t.Errorf("enemy entities %d, markers %d", census["enemy"], len(z.Layout.Markers(zonemap.EnemySpawns)))
	}
	if census["exit_portal"] != 1 {
		t.Errorf("expected one exit portal, got %d", census["exit_portal"])
	}

	spawn := z.Layout.Markers(zonemap.PlayerSpawns)[0]
	pos, _ := world.PlayerPosition()
	if want := cfg.WorldSpace.TileToWorld(z.Layout.Size(), spawn); pos != want {
		t.Errorf("player at %v, want %v", pos, want)
	}

	// Entering the next zone replaces every zone entity.
	if err := s.EnterHub(); err != nil {
		t.Fatalf("EnterHub: %v", err)
	}
	census = world.Census()
	if census["tile"] > 100*100 || census["enemy"] != 0 {
		t.Errorf("previous zone leaked into the hub: %v", census)
	}
	if census["npc"] != 1 || census["player"] != 1 {
		t.Errorf("hub census = %v", census)
	}

	snap := s.Snapshot()
	if snap == nil || snap.Instance != "town" || len(snap.Rows) != 100 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if !reflect.DeepEqual(snap.Census, s.Census()) {
		t.Error("Census should mirror the snapshot")
	}
}

func TestNextInstance_FromRotation(t *testing.T) {
	s := NewZoneService(testConfig(), mustAssets(t), &stageRecorder{})
	for i := 0; i < 5; i++ {
		if err := s.NextInstance(); err != nil {
			t.Fatalf("NextInstance: %v", err)
		}
		if name := s.Current().Instance; name != "forest" && name != "caves" {
			t.Fatalf("rotation produced %q", name)
		}
	}
}

func TestEnterHub_NotConfigured(t *testing.T) {
	assets := mustAssets(t)
	assets.Hub = ""
	s := NewZoneService(testConfig(), assets, &stageRecorder{})
	if err := s.EnterHub(); !errors.Is(err, ErrUnknownInstance) {
		t.Errorf("expected ErrUnknownInstance, got %v", err)
	}
}

func TestRun_ProcessesCommands(t *testing.T) {
	s := NewZoneService(testConfig(), mustAssets(t), &stageRecorder{})
	updates := s.Hub.Register("viewer")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	reply := make(chan error, 1)
	s.CommandChan <- ZoneCommand{Action: api.ActionEnter, Instance: "caves", Seed: 7, Reply: reply}
	if err := <-reply; err != nil {
		t.Fatalf("ENTER failed: %v", err)
	}

	select {
	case msg := <-updates:
		if msg.Type != api.TypeZone || msg.Zone.Instance != "caves" || msg.Zone.Seed != 7 {
			t.Errorf("unexpected update %+v", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot broadcast")
	}

	s.CommandChan <- ZoneCommand{Action: api.ActionEnter, Instance: "swamp", Reply: reply}
	if err := <-reply; !errors.Is(err, ErrUnknownInstance) {
		t.Errorf("expected ErrUnknownInstance, got %v", err)
	}
	if msg := <-updates; msg.Type != api.TypeError {
		t.Errorf("failed command should broadcast an error, got %s", msg.Type)
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Run returned %v", err)
	}
}

func TestProcessCommand_Validation(t *testing.T) {
	s := NewZoneService(testConfig(), mustAssets(t), &stageRecorder{})

	if err := s.ProcessCommand(api.ClientCommand{Action: "ENTER"}); err == nil {
		t.Error("ENTER without instance should be rejected")
	}
	if err := s.ProcessCommand(api.ClientCommand{Action: "next"}); err != nil {
		t.Fatalf("NEXT rejected: %v", err)
	}
	cmd := <-s.CommandChan
	if cmd.Action != api.ActionNext {
		t.Errorf("queued action = %s", cmd.Action)
	}

	for i := 0; i < cap(s.CommandChan); i++ {
		s.CommandChan <- ZoneCommand{Action: api.ActionNext}
	}
	if err := s.ProcessCommand(api.ClientCommand{Action: "HUB"}); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy on a full queue, got %v", err)
	}
}

func TestTileAt(t *testing.T) {
	cfg := testConfig()
	s := NewZoneService(cfg, mustAssets(t), &stageRecorder{})

	if _, _, ok := s.TileAt(domain.Vec2{}); ok {
		t.Fatal("TileAt should report false before any zone is active")
	}
	if err := s.EnterInstanceSeeded("caves", 99); err != nil {
		t.Fatalf("EnterInstanceSeeded: %v", err)
	}
	layout := s.Current().Layout

	for _, p := range []domain.Position{{X: 0, Y: 0}, {X: 10, Y: 37}, {X: 49, Y: 49}} {
		w := cfg.WorldSpace.TileToWorld(layout.Size(), p)
		got, tile, ok := s.TileAt(w)
		want, _ := layout.Tile(p.X, p.Y)
		if !ok || got != p || tile != want {
			t.Errorf("TileAt(%v) = %v %s %v, want %v %s", w, got, tile, ok, p, want)
		}
	}

	off := cfg.WorldSpace.TileToWorld(layout.Size(), domain.Position{X: 50, Y: 0})
	if _, _, ok := s.TileAt(off); ok {
		t.Error("a point past the right edge should be off the grid")
	}
}
