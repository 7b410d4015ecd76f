package engine

import (
	"os"
	"testing"

	"zonecraft/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

const testInstances = `
hub: town
rotation:
  - {name: forest, weight: 3}
  - {name: caves, weight: 1}
instances:
  town:
    width:  {min: 100, max: 100}
    height: {min: 100, max: 100}
    floor: ground
    prefabs: [hub]
    hub_size: 25
    exterior_walls: true
    dead_zones: true
  forest:
    width:  {min: 60, max: 90}
    height: {min: 60, max: 90}
    floor: ground
    enemies: {min: 4, max: 8}
    chests: {min: 1, max: 3}
    prefabs: [temple]
    exterior_walls: true
    terrain: {water: 0.55, grass: 0.25, scale: 12}
    enemy_types:
      - {name: goblin, weight: 3}
      - {name: wolf, weight: 1}
    boss_type: troll
  caves:
    width:  {min: 50, max: 50}
    height: {min: 50, max: 50}
    enemies: {min: 6, max: 6}
    exterior_walls: true
`

func mustAssets(t *testing.T) *InstanceAssets {
	t.Helper()
	assets, err := ParseInstanceAssets([]byte(testInstances))
	if err != nil {
		t.Fatalf("ParseInstanceAssets: %v", err)
	}
	return assets
}
