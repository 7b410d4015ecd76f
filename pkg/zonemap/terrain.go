package zonemap

import "github.com/aquilax/go-perlin"

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

// TerrainNoise turns patches of Ground into Water and Grass. Noise values
// above Water become water, values above Grass (and not water) become grass.
type TerrainNoise struct {
	Scale float64
	Water float64
	Grass float64
}

// DefaultTerrainNoise gives a few ponds and meadows on a typical instance.
func DefaultTerrainNoise() TerrainNoise {
	return TerrainNoise{Scale: 12, Water: 0.35, Grass: 0.1}
}

// Enabled reports whether the settings would change anything.
func (t TerrainNoise) Enabled() bool {
	return t.Scale > 0
}

// ApplyTerrainNoise decorates Ground tiles only; everything else is kept.
// The noise seed comes from rng, so the same Rand state gives the same map.
func ApplyTerrainNoise(d *MapData, rng Rand, t TerrainNoise) {
	if !t.Enabled() {
		return
	}
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, rng.Int63())
	g := d.Grid
	for x := range g.Tiles {
		for y := range g.Tiles[x] {
			if g.Tiles[x][y] != Ground {
				continue
			}
			v := noise.Noise2D(float64(x)/t.Scale, float64(y)/t.Scale)
			switch {
			case v > t.Water:
				g.Tiles[x][y] = Water
			case v > t.Grass:
				g.Tiles[x][y] = Grass
			}
		}
	}
}
