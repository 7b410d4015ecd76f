package zonemap

import "fmt"

// Glyph packs a display character and its colour into 32 bits:
//
//	[0:8]  - ASCII character
//	[8:32] - RGB colour
type Glyph uint32

const (
	bitsChar   = 8
	bitsColor  = 24
	shiftColor = bitsChar
	maskChar   = (1 << bitsChar) - 1
	maskColor  = (1 << bitsColor) - 1
)

// MakeGlyph packs an 0xRRGGBB colour and a character. Only the low 24 bits
// of the colour are kept.
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// Color returns the colour as 0xRRGGBB.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// HexColor returns the colour as "#RRGGBB".
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}

func (g Glyph) String() string {
	return fmt.Sprintf("Glyph{char='%c', color=%s}", g.Char(), g.HexColor())
}

var tileGlyphs = map[TileType]Glyph{
	Ground:      MakeGlyph(0x8B7D6B, '.'),
	Grass:       MakeGlyph(0x4CAF50, '"'),
	Wall:        MakeGlyph(0x9E9E9E, '#'),
	Water:       MakeGlyph(0x2196F3, '~'),
	Wood:        MakeGlyph(0xA1662F, '='),
	Cobblestone: MakeGlyph(0xBDBDBD, ','),
	DeadZone:    MakeGlyph(0x000000, ' '),
}

var markerGlyphs = map[MarkerType]Glyph{
	EnemySpawns:  MakeGlyph(0xF44336, 'e'),
	BossSpawns:   MakeGlyph(0xD500F9, 'B'),
	ChestSpawns:  MakeGlyph(0xFFC107, '$'),
	NPCSpawns:    MakeGlyph(0x00BCD4, 'N'),
	PlayerSpawns: MakeGlyph(0x22D3EE, '@'),
	LevelExits:   MakeGlyph(0xFFFFFF, '>'),
}

// Glyph returns how the tile is drawn in text views.
func (t TileType) Glyph() Glyph {
	if g, ok := tileGlyphs[t]; ok {
		return g
	}
	return MakeGlyph(0xFF00FF, '?')
}

// Glyph returns how the marker is drawn in text views.
func (m MarkerType) Glyph() Glyph {
	if g, ok := markerGlyphs[m]; ok {
		return g
	}
	return MakeGlyph(0xFF00FF, '?')
}
