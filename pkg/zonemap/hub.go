package zonemap

import "zonecraft/internal/domain"

const (
	DefaultHubSize     = 25
	hubWallThickness   = 3
	hubEntranceWidth   = 3
	hubBridgeLength    = 4
	minHubInteriorSide = 3
)

// HubFootprint returns the hub bounds centred on a grid, and the area the
// entrance bridge claims below it. border is the thickness of the exterior
// wall ring; ok is false when the hub and its bridge do not fit inside it.
func HubFootprint(size Size, hubSize, border int) (bounds Rect, bridge Rect, ok bool) {
	if hubSize < 2*hubWallThickness+minHubInteriorSide {
		return Rect{}, Rect{}, false
	}
	border = max(1, border)
	bounds = Rect{
		X: (size.Width - hubSize) / 2,
		Y: (size.Height - hubSize) / 2,
		W: hubSize,
		H: hubSize,
	}
	if bounds.X < border || bounds.Y < hubBridgeLength+border ||
		bounds.X+bounds.W > size.Width-border || bounds.Y+bounds.H > size.Height-border {
		return Rect{}, Rect{}, false
	}
	gap := HubEntrance(bounds)
	bridge = Rect{X: gap.X, Y: bounds.Y - hubBridgeLength, W: hubEntranceWidth, H: hubBridgeLength}
	return bounds, bridge, true
}

// HubEntrance returns the gap cut through the south wall of a hub occupying
// bounds.
func HubEntrance(bounds Rect) Rect {
	return Rect{
		X: bounds.X + bounds.W/2 - hubEntranceWidth/2,
		Y: bounds.Y,
		W: hubEntranceWidth,
		H: hubWallThickness,
	}
}

// ApplyHub stamps the town hub: a cobblestone square with a thick wall ring,
// an entrance cut through the south (low y) wall and a wooden bridge leading
// out of it. It returns player, exit and NPC markers placed relative to the
// entrance. ok is false, and nothing is touched, when the hub does not fit
// inside an exterior wall of the given thickness.
func ApplyHub(d *MapData, hubSize, border int) (Markers, bool) {
	bounds, bridge, ok := HubFootprint(d.Size(), hubSize, border)
	if !ok {
		return nil, false
	}

	g := d.Grid
	g.FillRect(bounds, Cobblestone)
	g.OutlineRect(bounds, hubWallThickness, Wall)

	d.Carve(HubEntrance(bounds), Wood)
	d.Carve(bridge, Wood)

	cx, cy := bounds.Center()
	markers := make(Markers)
	markers.Add(PlayerSpawns, domain.Position{X: cx, Y: bounds.Y + hubWallThickness})
	markers.Add(LevelExits, domain.Position{X: cx, Y: bridge.Y})
	markers.Add(NPCSpawns, domain.Position{X: cx, Y: cy})

	d.Prefabs = append(d.Prefabs, PlacedPrefab{Kind: PrefabHub, Bounds: bounds})
	return markers, true
}
