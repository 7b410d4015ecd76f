package preview

// Camera maps tile coordinates onto terminal cells. Tiles are one column
// wide; tile y grows upwards while screen rows grow downwards.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int
	ViewHeight int
}

// NewCamera creates a camera centred on tile (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center puts tile (cx, cy) in the middle of the view.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = cx - c.ViewWidth/2
	c.OffsetY = cy - c.ViewHeight/2
}

func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// TileToScreen converts a tile to a cell. visible is false outside the view.
func (c *Camera) TileToScreen(tx, ty int) (sx, sy int, visible bool) {
	sx = tx - c.OffsetX
	sy = c.ViewHeight - 1 - (ty - c.OffsetY)
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToTile is the inverse of TileToScreen.
func (c *Camera) ScreenToTile(sx, sy int) (int, int) {
	return sx + c.OffsetX, c.ViewHeight - 1 - sy + c.OffsetY
}
