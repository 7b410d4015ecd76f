package zonemap

import "zonecraft/internal/domain"

const (
	TempleWidth     = 13
	TempleHeight    = 11
	templeGapWidth  = 3
	templeAttempts  = 100
	templeGuardStep = 2
)

// ApplyTemple looks for a TempleWidth x TempleHeight footprint made only of
// Ground and walls it in, leaving a gap in the middle of the south side.
// The boss waits in the centre with four guards around it. When no
// footprint is found within templeAttempts the grid is left untouched and
// ok is false.
func ApplyTemple(d *MapData, rng Rand) (Markers, bool) {
	g := d.Grid
	maxX := g.Size.Width - TempleWidth - 1
	maxY := g.Size.Height - TempleHeight - 1
	if maxX < 1 || maxY < 1 {
		return nil, false
	}

	for attempt := 0; attempt < templeAttempts; attempt++ {
		footprint := Rect{
			X: randRange(rng, 1, maxX),
			Y: randRange(rng, 1, maxY),
			W: TempleWidth,
			H: TempleHeight,
		}
		if !g.AllOf(footprint, Ground) {
			continue
		}

		g.OutlineRect(footprint, 1, Wall)
		g.FillRect(Rect{X: footprint.X + TempleWidth/2 - templeGapWidth/2, Y: footprint.Y, W: templeGapWidth, H: 1}, Ground)

		cx, cy := footprint.Center()
		centre := domain.Position{X: cx, Y: cy}
		markers := make(Markers)
		markers.Add(BossSpawns, centre)
		markers.Add(EnemySpawns,
			centre.Shift(-templeGuardStep, 0),
			centre.Shift(templeGuardStep, 0),
			centre.Shift(0, -templeGuardStep),
			centre.Shift(0, templeGuardStep),
		)

		d.Prefabs = append(d.Prefabs, PlacedPrefab{Kind: PrefabTemple, Bounds: footprint})
		return markers, true
	}
	return nil, false
}
