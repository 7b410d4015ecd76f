package zonemap

const (
	deadZoneMinSize     = 3
	deadZoneMaxSize     = 10
	deadZoneEdgeMargin  = 5
	deadZoneSpacing     = 3
	deadZoneAttempts    = 100
	deadZoneAreaPerZone = 2500
	deadZoneMaxCount    = 10
)

// DeadZoneTarget is how many dead zones a grid of this size asks for.
func DeadZoneTarget(size Size) int {
	return min(size.Area()/deadZoneAreaPerZone, deadZoneMaxCount)
}

// ApplyDeadZones places up to DeadZoneTarget walled-off regions filled with
// DeadZone. A footprint is rejected when it comes within deadZoneSpacing of
// another dead zone or a reserved rect, or touches an existing wall. Each
// zone gets deadZoneAttempts tries; zones that do not fit are dropped.
// Returns how many were placed.
func ApplyDeadZones(d *MapData, rng Rand, reserved []Rect) int {
	g := d.Grid
	target := DeadZoneTarget(g.Size)
	placed := 0

	for i := 0; i < target; i++ {
		for attempt := 0; attempt < deadZoneAttempts; attempt++ {
			inner := randRange(rng, deadZoneMinSize, deadZoneMaxSize)
			side := inner + 2

			maxX := g.Size.Width - deadZoneEdgeMargin - side
			maxY := g.Size.Height - deadZoneEdgeMargin - side
			if maxX < deadZoneEdgeMargin || maxY < deadZoneEdgeMargin {
				continue
			}
			footprint := Rect{
				X: randRange(rng, deadZoneEdgeMargin, maxX),
				Y: randRange(rng, deadZoneEdgeMargin, maxY),
				W: side,
				H: side,
			}
			if !deadZoneFits(d, footprint, reserved) {
				continue
			}

			g.OutlineRect(footprint, 1, Wall)
			g.FillRect(Rect{X: footprint.X + 1, Y: footprint.Y + 1, W: inner, H: inner}, DeadZone)
			d.DeadZones = append(d.DeadZones, footprint)
			placed++
			break
		}
	}
	return placed
}

func deadZoneFits(d *MapData, footprint Rect, reserved []Rect) bool {
	padded := footprint.Expand(deadZoneSpacing)
	for _, other := range d.DeadZones {
		if padded.Intersects(other) {
			return false
		}
	}
	for _, r := range reserved {
		if padded.Intersects(r) {
			return false
		}
	}
	return !d.Grid.AnyOf(footprint, Wall) && !d.Grid.AnyOf(footprint, DeadZone)
}
