package engine

import (
	"strings"

	"zonecraft/pkg/api"
	"zonecraft/pkg/worldspace"
	"zonecraft/pkg/zonemap"
)

// buildSnapshot renders a zone into the wire form viewers receive.
func buildSnapshot(z *Zone, state ZoneState, space worldspace.Config, census api.Census) *api.ZoneSnapshot {
	layout := z.Layout
	size := layout.Size()

	snap := &api.ZoneSnapshot{
		Instance: z.Instance,
		Seed:     z.Seed,
		State:    state.String(),
		Grid: api.GridMeta{
			Width:    size.Width,
			Height:   size.Height,
			TileSize: space.TileSize.X,
		},
		Rows:    renderRows(layout),
		Markers: make(map[string][]api.PointView),
		Census:  census,
		Report:  reportView(z.Report),
	}

	for _, mt := range zonemap.AllMarkerTypes {
		for _, p := range layout.Markers(mt) {
			snap.Markers[mt.String()] = append(snap.Markers[mt.String()], api.PointView{X: p.X, Y: p.Y})
		}
	}

	for _, c := range layout.Colliders() {
		center, extent := space.ColliderToWorld(size, c)
		snap.Colliders = append(snap.Colliders, api.ColliderView{
			Kind:   c.Kind.String(),
			X:      c.Origin.X,
			Y:      c.Origin.Y,
			W:      c.Width,
			H:      c.Height,
			Center: []float64{center.X, center.Y},
			Extent: []float64{extent.X, extent.Y},
		})
	}
	return snap
}

// renderRows draws the grid top row first, since y grows upwards.
func renderRows(layout *zonemap.MapLayout) []string {
	size := layout.Size()
	rows := make([]string, 0, size.Height)
	var sb strings.Builder
	for y := size.Height - 1; y >= 0; y-- {
		sb.Reset()
		for x := 0; x < size.Width; x++ {
			t, _ := layout.Tile(x, y)
			sb.WriteByte(t.Glyph().Char())
		}
		rows = append(rows, sb.String())
	}
	return rows
}

func reportView(r zonemap.Report) *api.ReportView {
	view := &api.ReportView{
		DeadZonesWanted: r.DeadZonesWanted,
		DeadZonesPlaced: r.DeadZonesPlaced,
	}
	for _, p := range r.PrefabsSkipped {
		view.PrefabsSkipped = append(view.PrefabsSkipped, p.String())
	}
	for _, mt := range zonemap.AllMarkerTypes {
		if n := r.Shortfall(mt); n > 0 {
			if view.Shortfall == nil {
				view.Shortfall = make(map[string]int)
			}
			view.Shortfall[mt.String()] = n
		}
	}
	return view
}
