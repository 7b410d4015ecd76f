package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"zonecraft/pkg/utils"
	"zonecraft/pkg/zonemap"
)

var (
	// ErrUnknownInstance is returned when a name has no instance config.
	ErrUnknownInstance = errors.New("unknown instance")
	// ErrInvalidConfig wraps every validation failure of the instance file.
	ErrInvalidConfig = errors.New("invalid instance config")
)

// Range is an inclusive integer range rolled per zone.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Roll returns a value in [Min, Max].
func (r Range) Roll(rng zonemap.Rand) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

func (r Range) validate(field string, minAllowed int) error {
	if r.Min < minAllowed {
		return fmt.Errorf("%s.min must be >= %d, got %d", field, minAllowed, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%s.max (%d) is below min (%d)", field, r.Max, r.Min)
	}
	return nil
}

// Weighted is one entry of a weighted choice table.
type Weighted struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// ChooseWeighted picks a name with probability proportional to its weight.
func ChooseWeighted(rng zonemap.Rand, items []Weighted) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("%w: empty weighted table", ErrInvalidConfig)
	}
	total := 0
	for _, it := range items {
		if it.Weight <= 0 {
			return "", fmt.Errorf("%w: %q has non-positive weight %d", ErrInvalidConfig, it.Name, it.Weight)
		}
		total += it.Weight
	}

	roll := rng.Intn(total)
	for _, it := range items {
		if roll < it.Weight {
			return it.Name, nil
		}
		roll -= it.Weight
	}
	return items[len(items)-1].Name, nil
}

// TerrainConfig maps onto zonemap.TerrainNoise.
type TerrainConfig struct {
	Water float64 `yaml:"water"`
	Grass float64 `yaml:"grass"`
	Scale float64 `yaml:"scale"`
}

// InstanceConfig describes how one kind of zone is generated and populated.
type InstanceConfig struct {
	Width         Range          `yaml:"width"`
	Height        Range          `yaml:"height"`
	Floor         string         `yaml:"floor"`
	Prefabs       []string       `yaml:"prefabs"`
	HubSize       int            `yaml:"hub_size"`
	ExteriorWalls bool           `yaml:"exterior_walls"`
	DeadZones     bool           `yaml:"dead_zones"`
	Enemies       Range          `yaml:"enemies"`
	Chests        Range          `yaml:"chests"`
	Terrain       *TerrainConfig `yaml:"terrain"`
	EnemyTypes    []Weighted     `yaml:"enemy_types"`
	BossType      string         `yaml:"boss_type"`

	// resolved by validate
	floor   zonemap.TileType
	prefabs []zonemap.PrefabKind
}

func (c *InstanceConfig) validate() error {
	if err := c.Width.validate("width", 1); err != nil {
		return err
	}
	if err := c.Height.validate("height", 1); err != nil {
		return err
	}
	if err := c.Enemies.validate("enemies", 0); err != nil {
		return err
	}
	if err := c.Chests.validate("chests", 0); err != nil {
		return err
	}
	if c.HubSize < 0 {
		return fmt.Errorf("hub_size must not be negative, got %d", c.HubSize)
	}

	c.floor = zonemap.Ground
	if c.Floor != "" {
		floor, err := zonemap.ParseTileType(c.Floor)
		if err != nil {
			return err
		}
		if floor.IsSolid() || floor == zonemap.DeadZone {
			return fmt.Errorf("floor %q is not walkable", c.Floor)
		}
		c.floor = floor
	}

	c.prefabs = c.prefabs[:0]
	for _, name := range c.Prefabs {
		kind, err := zonemap.ParsePrefabKind(name)
		if err != nil {
			return err
		}
		c.prefabs = append(c.prefabs, kind)
	}

	for _, et := range c.EnemyTypes {
		if et.Name == "" {
			return errors.New("enemy_types entry without a name")
		}
		if et.Weight <= 0 {
			return fmt.Errorf("enemy type %q has non-positive weight %d", et.Name, et.Weight)
		}
	}

	if t := c.Terrain; t != nil {
		if t.Scale < 0 {
			return fmt.Errorf("terrain.scale must not be negative, got %v", t.Scale)
		}
	}
	return nil
}

// Roster returns the spawn-time choices of this instance.
func (c *InstanceConfig) Roster() Roster {
	return Roster{EnemyTypes: c.EnemyTypes, BossType: c.BossType}
}

// Builder rolls the zone size and returns a builder carrying every request
// of this instance. Size and counts are drawn from rng before generation.
func (c *InstanceConfig) Builder(rng zonemap.Rand) *zonemap.Builder {
	size := zonemap.Size{Width: c.Width.Roll(rng), Height: c.Height.Roll(rng)}

	b := zonemap.NewBuilder(size, rng).
		WithFloor(c.floor).
		WithDeadZones(c.DeadZones).
		WithEnemies(c.Enemies.Roll(rng)).
		WithChests(c.Chests.Roll(rng))

	if c.HubSize > 0 {
		b.WithHubSize(c.HubSize)
	}
	for _, p := range c.prefabs {
		b.WithPrefab(p)
	}
	if c.ExteriorWalls {
		b.WithExteriorWalls()
	}
	if t := c.Terrain; t != nil {
		b.WithTerrainNoise(zonemap.TerrainNoise{Scale: t.Scale, Water: t.Water, Grass: t.Grass})
	}
	return b
}

// InstanceAssets is the parsed instance file.
type InstanceAssets struct {
	Hub       string                     `yaml:"hub"`
	Rotation  []Weighted                 `yaml:"rotation"`
	Instances map[string]*InstanceConfig `yaml:"instances"`
}

// Instance looks up a config by name.
func (a *InstanceAssets) Instance(name string) (*InstanceConfig, error) {
	cfg, ok := a.Instances[name]
	if !ok || cfg == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstance, name)
	}
	return cfg, nil
}

// Validate checks every instance and every reference to one.
func (a *InstanceAssets) Validate() error {
	if len(a.Instances) == 0 {
		return fmt.Errorf("%w: no instances defined", ErrInvalidConfig)
	}
	for name, cfg := range a.Instances {
		if cfg == nil {
			return fmt.Errorf("%w: instance %q is empty", ErrInvalidConfig, name)
		}
		if err := cfg.validate(); err != nil {
			return fmt.Errorf("%w: instance %q: %v", ErrInvalidConfig, name, err)
		}
	}
	if a.Hub != "" {
		if _, err := a.Instance(a.Hub); err != nil {
			return fmt.Errorf("%w: hub: %v", ErrInvalidConfig, err)
		}
	}
	for _, r := range a.Rotation {
		if _, err := a.Instance(r.Name); err != nil {
			return fmt.Errorf("%w: rotation: %v", ErrInvalidConfig, err)
		}
		if r.Weight <= 0 {
			return fmt.Errorf("%w: rotation entry %q has non-positive weight %d", ErrInvalidConfig, r.Name, r.Weight)
		}
	}
	return nil
}

// ParseInstanceAssets decodes and validates an instance file.
func ParseInstanceAssets(data []byte) (*InstanceAssets, error) {
	var assets InstanceAssets
	if err := yaml.Unmarshal(data, &assets); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := assets.Validate(); err != nil {
		return nil, err
	}
	return &assets, nil
}

// LoadInstanceAssets reads and parses the instance file at path.
func LoadInstanceAssets(path string) (*InstanceAssets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading instance config: %w", err)
	}
	assets, err := ParseInstanceAssets(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return assets, nil
}

func (a *InstanceAssets) generate(name string, seed int64) (*Zone, *rand.Rand, error) {
	inst, err := a.Instance(name)
	if err != nil {
		return nil, nil, err
	}
	rng := utils.NewRand(seed)
	data, report := inst.Builder(rng).Build()
	return &Zone{
		Instance: name,
		Seed:     seed,
		Layout:   data.IntoLayout(),
		Report:   report,
	}, rng, nil
}

// Generate produces the layout of an instance. The same name and seed
// always give the same layout.
func (a *InstanceAssets) Generate(name string, seed int64) (*zonemap.MapLayout, zonemap.Report, error) {
	z, _, err := a.generate(name, seed)
	if err != nil {
		return nil, zonemap.Report{}, err
	}
	return z.Layout, z.Report, nil
}
