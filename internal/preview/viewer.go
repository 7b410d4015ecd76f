// Package preview draws generated zones in a terminal.
package preview

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/zyedidia/generic/mapset"

	"zonecraft/internal/domain"
	"zonecraft/pkg/zonemap"
)

// statusRows is the space reserved under the map.
const statusRows = 1

// GenerateFunc produces the layout of the viewed instance for a seed.
type GenerateFunc func(seed int64) (*zonemap.MapLayout, zonemap.Report, error)

// Viewer shows one instance and regenerates it on demand.
type Viewer struct {
	screen   tcell.Screen
	camera   *Camera
	generate GenerateFunc
	newSeed  func() int64

	Instance string
	Seed     int64

	layout        *zonemap.MapLayout
	report        zonemap.Report
	markers       map[domain.Position]zonemap.MarkerType
	colliderTiles mapset.Set[domain.Position]
	showColliders bool
	err           error
}

// NewViewer generates the first layout for seed.
func NewViewer(screen tcell.Screen, instance string, seed int64, generate GenerateFunc, newSeed func() int64) *Viewer {
	w, h := screen.Size()
	v := &Viewer{
		screen:   screen,
		camera:   NewCamera(0, 0, w, h-statusRows),
		generate: generate,
		newSeed:  newSeed,
		Instance: instance,
	}
	v.Regenerate(seed)
	return v
}

// Regenerate replaces the layout and recentres the camera.
func (v *Viewer) Regenerate(seed int64) {
	v.Seed = seed
	layout, report, err := v.generate(seed)
	if err != nil {
		v.err = err
		return
	}
	v.err = nil
	v.layout = layout
	v.report = report

	v.markers = make(map[domain.Position]zonemap.MarkerType)
	for _, mt := range zonemap.AllMarkerTypes {
		for _, p := range layout.Markers(mt) {
			v.markers[p] = mt
		}
	}

	v.colliderTiles = mapset.New[domain.Position]()
	for _, c := range layout.Colliders() {
		c.Bounds().Each(func(x, y int) {
			v.colliderTiles.Put(domain.Position{X: x, Y: y})
		})
	}

	size := layout.Size()
	v.camera.Center(size.Width/2, size.Height/2)
}

// HandleKey applies one key press and reports whether the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) (quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.camera.Pan(0, 1)
	case tcell.KeyDown:
		v.camera.Pan(0, -1)
	case tcell.KeyLeft:
		v.camera.Pan(-1, 0)
	case tcell.KeyRight:
		v.camera.Pan(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'k':
			v.camera.Pan(0, 1)
		case 'j':
			v.camera.Pan(0, -1)
		case 'h':
			v.camera.Pan(-1, 0)
		case 'l':
			v.camera.Pan(1, 0)
		case 'K':
			v.camera.Pan(0, 10)
		case 'J':
			v.camera.Pan(0, -10)
		case 'H':
			v.camera.Pan(-10, 0)
		case 'L':
			v.camera.Pan(10, 0)
		case 'n':
			v.Regenerate(v.newSeed())
		case 'c':
			v.showColliders = !v.showColliders
		}
	}
	return false
}

// Resize adapts the camera to a new screen size.
func (v *Viewer) Resize() {
	w, h := v.screen.Size()
	v.camera.ViewWidth = w
	v.camera.ViewHeight = h - statusRows
}

// Draw renders the map, markers and status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	if v.layout != nil {
		v.drawMap()
	}
	v.drawStatus()
	v.screen.Show()
}

func (v *Viewer) drawMap() {
	colliderStyle := tcell.StyleDefault.Background(tcell.NewHexColor(0x3A1F1F))

	v.layout.EachTile(func(p domain.Position, t zonemap.TileType) {
		sx, sy, ok := v.camera.TileToScreen(p.X, p.Y)
		if !ok {
			return
		}
		g := t.Glyph()
		if mt, ok := v.markers[p]; ok {
			g = mt.Glyph()
		}
		style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(g.Color())))
		if v.showColliders && v.colliderTiles.Has(p) {
			style = colliderStyle.Foreground(tcell.NewHexColor(int32(g.Color())))
		}
		v.screen.SetContent(sx, sy, rune(g.Char()), nil, style)
	})
}

// StatusLine describes the current zone.
func (v *Viewer) StatusLine() string {
	if v.err != nil {
		return fmt.Sprintf("%s seed %d: %v", v.Instance, v.Seed, v.err)
	}
	size := v.layout.Size()
	line := fmt.Sprintf("%s seed %d  %dx%d  colliders %d",
		v.Instance, v.Seed, size.Width, size.Height, len(v.layout.Colliders()))
	for _, mt := range zonemap.AllMarkerTypes {
		if n := len(v.layout.Markers(mt)); n > 0 {
			line += fmt.Sprintf("  %c×%d", mt.Glyph().Char(), n)
		}
	}
	if len(v.report.PrefabsSkipped) > 0 {
		line += fmt.Sprintf("  skipped %v", v.report.PrefabsSkipped)
	}
	return line + "  [n]ew [c]olliders [q]uit"
}

func (v *Viewer) drawStatus() {
	w, h := v.screen.Size()
	line := runewidth.Truncate(v.StatusLine(), w, "…")
	style := tcell.StyleDefault.Reverse(true)

	x := 0
	for _, r := range line {
		v.screen.SetContent(x, h-1, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < w; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, style)
	}
}

// Run draws and handles input until the user quits.
func (v *Viewer) Run() {
	v.Draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.Resize()
			v.screen.Sync()
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return
			}
		}
		v.Draw()
	}
}
