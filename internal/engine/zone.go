package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"

	"zonecraft/internal/domain"
	"zonecraft/internal/network"
	"zonecraft/pkg/api"
	"zonecraft/pkg/logger"
	"zonecraft/pkg/utils"
	"zonecraft/pkg/zonemap"
)

// ErrBusy is returned when the command queue is full.
var ErrBusy = errors.New("zone service busy")

// ZoneState is the lifecycle of the active zone.
type ZoneState uint8

const (
	StateLoading ZoneState = iota
	StatePlaying
)

var zoneStateToString = map[ZoneState]string{
	StateLoading: "LOADING",
	StatePlaying: "PLAYING",
}

func (s ZoneState) String() string {
	if v, ok := zoneStateToString[s]; ok {
		return v
	}
	return "UNKNOWN"
}

// ZoneStage is the ECS side a zone is spawned into.
type ZoneStage interface {
	SpawnDispatcher
	PlayerMover
	Cleanup() int
	SpawnTilemap(layout *zonemap.MapLayout) int
	SpawnColliders(layout *zonemap.MapLayout) int
	// Flush creates the entities of every dispatched request.
	Flush()
	Census() api.Census
}

// Zone is one generated and activated instance.
type Zone struct {
	Instance string
	Seed     int64
	Layout   *zonemap.MapLayout
	Report   zonemap.Report
	Spawned  SpawnSummary
}

// ZoneCommand asks the service loop for a zone transition. Reply, when set,
// receives the outcome; it must be buffered.
type ZoneCommand struct {
	Action   string
	Instance string
	Seed     int64
	Reply    chan error
}

// ZoneService owns the active zone. Transitions happen on the goroutine
// running Run (or on the caller's goroutine before Run starts); readers use
// Current, State and Snapshot.
type ZoneService struct {
	cfg          Config
	assets       *InstanceAssets
	rng          *rand.Rand
	stage        ZoneStage
	orchestrator *Orchestrator

	CommandChan chan ZoneCommand
	Hub         *network.Broadcaster

	mu       sync.RWMutex
	state    ZoneState
	current  *Zone
	snapshot *api.ZoneSnapshot
}

func NewZoneService(cfg Config, assets *InstanceAssets, stage ZoneStage) *ZoneService {
	return &ZoneService{
		cfg:          cfg,
		assets:       assets,
		rng:          utils.NewRand(cfg.Seed),
		stage:        stage,
		orchestrator: NewOrchestrator(cfg.WorldSpace, stage, stage),
		CommandChan:  make(chan ZoneCommand, 16),
		Hub:          network.NewBroadcaster(),
	}
}

// GenerateLayout produces the layout of an instance without activating it.
// The same name and seed always give the same layout.
func (s *ZoneService) GenerateLayout(name string, seed int64) (*zonemap.MapLayout, zonemap.Report, error) {
	return s.assets.Generate(name, seed)
}

// EnterInstance generates and activates an instance with a seed drawn from
// the master seed.
func (s *ZoneService) EnterInstance(name string) error {
	return s.EnterInstanceSeeded(name, s.rng.Int63())
}

// EnterInstanceSeeded generates and activates an instance with a fixed seed.
func (s *ZoneService) EnterInstanceSeeded(name string, seed int64) error {
	z, rng, err := s.assets.generate(name, seed)
	if err != nil {
		return fmt.Errorf("entering %q: %w", name, err)
	}
	inst, _ := s.assets.Instance(name)
	s.activate(z, inst.Roster(), rng)
	return nil
}

// EnterHub activates the configured hub instance.
func (s *ZoneService) EnterHub() error {
	if s.assets.Hub == "" {
		return fmt.Errorf("%w: no hub configured", ErrUnknownInstance)
	}
	return s.EnterInstance(s.assets.Hub)
}

// NextInstance picks an instance from the weighted rotation and enters it.
func (s *ZoneService) NextInstance() error {
	name, err := ChooseWeighted(s.rng, s.assets.Rotation)
	if err != nil {
		return fmt.Errorf("choosing next instance: %w", err)
	}
	return s.EnterInstance(name)
}

// activate runs the zone swap: cleanup, tilemap, colliders, entities.
func (s *ZoneService) activate(z *Zone, roster Roster, rng *rand.Rand) {
	s.mu.Lock()
	s.state = StateLoading
	s.mu.Unlock()

	removed := s.stage.Cleanup()
	tiles := s.stage.SpawnTilemap(z.Layout)
	colliders := s.stage.SpawnColliders(z.Layout)
	z.Spawned = s.orchestrator.SpawnZone(z.Layout, roster, rng)
	s.stage.Flush()

	snap := buildSnapshot(z, StatePlaying, s.cfg.WorldSpace, s.stage.Census())

	s.mu.Lock()
	s.current = z
	s.state = StatePlaying
	s.snapshot = snap
	s.mu.Unlock()

	size := z.Layout.Size()
	logger.Log.WithFields(logrus.Fields{
		"instance":  z.Instance,
		"seed":      z.Seed,
		"width":     size.Width,
		"height":    size.Height,
		"removed":   removed,
		"tiles":     tiles,
		"colliders": colliders,
	}).Info("Zone activated")
	logReport(z)

	s.Hub.Broadcast(api.ServerResponse{Type: api.TypeZone, Zone: snap})
}

func logReport(z *Zone) {
	log := logger.Log.WithFields(logrus.Fields{"instance": z.Instance, "seed": z.Seed})
	for _, p := range z.Report.PrefabsSkipped {
		log.WithField("prefab", p.String()).Warn("Prefab did not fit, skipped")
	}
	if z.Report.DeadZonesPlaced < z.Report.DeadZonesWanted {
		log.WithFields(logrus.Fields{
			"wanted": z.Report.DeadZonesWanted,
			"placed": z.Report.DeadZonesPlaced,
		}).Debug("Fewer dead zones than targeted")
	}
	for _, mt := range zonemap.AllMarkerTypes {
		if n := z.Report.Shortfall(mt); n > 0 {
			log.WithFields(logrus.Fields{
				"marker":  mt.String(),
				"missing": n,
			}).Warn("Could not place every marker")
		}
	}
}

// Current returns the active zone, or nil before the first activation.
func (s *ZoneService) Current() *Zone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *ZoneService) State() ZoneState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Snapshot returns the wire form of the active zone, or nil.
func (s *ZoneService) Snapshot() *api.ZoneSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Census returns the entity counts taken right after the last activation.
func (s *ZoneService) Census() api.Census {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := api.Census{}
	if s.snapshot != nil {
		for k, v := range s.snapshot.Census {
			out[k] = v
		}
	}
	return out
}

// TileAt maps a world point onto the active zone's grid. ok is false when
// no zone is active or the point lies off the grid.
func (s *ZoneService) TileAt(w domain.Vec2) (domain.Position, zonemap.TileType, bool) {
	z := s.Current()
	if z == nil {
		return domain.Position{}, zonemap.DeadZone, false
	}
	p := s.cfg.WorldSpace.WorldToTile(z.Layout.Size(), w)
	tile, ok := z.Layout.Tile(p.X, p.Y)
	return p, tile, ok
}

// InstanceNames lists the configured instances.
func (s *ZoneService) InstanceNames() []string {
	names := make([]string, 0, len(s.assets.Instances))
	for name := range s.assets.Instances {
		names = append(names, name)
	}
	return names
}

// ProcessCommand validates a viewer command and queues it for Run.
func (s *ZoneService) ProcessCommand(cmd api.ClientCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	select {
	case s.CommandChan <- ZoneCommand{Action: cmd.Action, Instance: cmd.Instance, Seed: cmd.Seed}:
		return nil
	default:
		return ErrBusy
	}
}

// Run serializes zone transitions until ctx is cancelled.
func (s *ZoneService) Run(ctx context.Context) error {
	logger.Log.Info("Zone loop started")
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("Zone loop stopped")
			return ctx.Err()
		case cmd := <-s.CommandChan:
			err := s.execute(cmd)
			if err != nil {
				logger.Log.WithError(err).WithField("action", cmd.Action).Warn("Zone command failed")
				s.Hub.Broadcast(api.ServerResponse{Type: api.TypeError, Error: err.Error()})
			}
			if cmd.Reply != nil {
				cmd.Reply <- err
			}
		}
	}
}

func (s *ZoneService) execute(cmd ZoneCommand) error {
	switch cmd.Action {
	case api.ActionEnter:
		if cmd.Seed != 0 {
			return s.EnterInstanceSeeded(cmd.Instance, cmd.Seed)
		}
		return s.EnterInstance(cmd.Instance)
	case api.ActionNext:
		return s.NextInstance()
	case api.ActionHub:
		return s.EnterHub()
	default:
		return fmt.Errorf("unknown zone action %q", cmd.Action)
	}
}
