package zonemap

import (
	"fmt"
	"strings"
)

// PrefabKind names a structural stamp the builder can apply.
type PrefabKind uint8

const (
	PrefabHub PrefabKind = iota
	PrefabTemple
)

var prefabKindToString = map[PrefabKind]string{
	PrefabHub:    "hub",
	PrefabTemple: "temple",
}

var prefabStringToKind = map[string]PrefabKind{
	"hub":    PrefabHub,
	"temple": PrefabTemple,
}

// ParsePrefabKind converts a config name into a PrefabKind.
func ParsePrefabKind(s string) (PrefabKind, error) {
	if k, ok := prefabStringToKind[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return PrefabHub, fmt.Errorf("unknown prefab %q", s)
}

func (k PrefabKind) String() string {
	if s, ok := prefabKindToString[k]; ok {
		return s
	}
	return "unknown"
}

// ApplyExteriorWalls stamps a wall border of the given thickness around the
// grid. DeadZone cells are left alone.
func ApplyExteriorWalls(d *MapData, thickness int) {
	if thickness < 1 {
		thickness = 1
	}
	g := d.Grid
	g.Size.Bounds().Each(func(x, y int) {
		onBorder := x < thickness || y < thickness ||
			x >= g.Size.Width-thickness || y >= g.Size.Height-thickness
		if onBorder && g.Tiles[x][y] != DeadZone {
			g.Tiles[x][y] = Wall
		}
	})
}
