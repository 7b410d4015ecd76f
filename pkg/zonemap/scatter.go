package zonemap

import (
	"zonecraft/internal/domain"

	"github.com/zyedidia/generic/mapset"
)

const (
	// MinMarkerDistance is the closest two scattered markers of one type get.
	MinMarkerDistance = 5
	scatterAttempts   = 100
)

// Band is a fractional slice of the grid, applied to both axes.
type Band struct {
	Min float64
	Max float64
}

// DefaultBands keeps enemies in the middle of the map, the player near the
// low corner and the exit near the high corner.
func DefaultBands() map[MarkerType]Band {
	return map[MarkerType]Band{
		EnemySpawns:  {Min: 0.3, Max: 0.7},
		BossSpawns:   {Min: 0.4, Max: 0.6},
		ChestSpawns:  {Min: 0.2, Max: 0.8},
		NPCSpawns:    {Min: 0.3, Max: 0.7},
		PlayerSpawns: {Min: 0.1, Max: 0.3},
		LevelExits:   {Min: 0.7, Max: 0.9},
	}
}

// span converts the band into an inclusive tile range on an axis of n tiles.
func (b Band) span(n int) (int, int) {
	lo := int(float64(n) * b.Min)
	hi := int(float64(n)*b.Max) - 1
	lo = max(0, min(lo, n-1))
	hi = max(lo, min(hi, n-1))
	return lo, hi
}

// ScatterMarkers samples up to count Ground positions inside band. A sample
// closer than minDistance to an already accepted position (including
// existing) is rejected. Each marker gets scatterAttempts tries; the result
// may hold fewer than count positions.
func ScatterMarkers(g *TileGrid, rng Rand, band Band, count, minDistance int, existing []domain.Position) []domain.Position {
	if count <= 0 {
		return nil
	}
	x0, x1 := band.span(g.Size.Width)
	y0, y1 := band.span(g.Size.Height)

	taken := append([]domain.Position(nil), existing...)
	seen := mapset.New[domain.Position]()
	for _, p := range existing {
		seen.Put(p)
	}
	minSq := minDistance * minDistance

	var out []domain.Position
	for len(out) < count {
		accepted := false
		for attempt := 0; attempt < scatterAttempts; attempt++ {
			p := domain.Position{X: randRange(rng, x0, x1), Y: randRange(rng, y0, y1)}
			if seen.Has(p) || !g.Is(p.X, p.Y, Ground) {
				continue
			}
			if tooClose(p, taken, minSq) {
				continue
			}
			seen.Put(p)
			taken = append(taken, p)
			out = append(out, p)
			accepted = true
			break
		}
		if !accepted {
			break
		}
	}
	return out
}

func tooClose(p domain.Position, others []domain.Position, minSq int) bool {
	for _, o := range others {
		if p.DistanceSquaredTo(o) < minSq {
			return true
		}
	}
	return false
}
