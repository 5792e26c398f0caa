package obj

import "github.com/milk9111/mageknight/common"

// Camera keeps a viewport centred on a target and inside the level.
type Camera struct {
	X, Y float64

	ViewW, ViewH   float64
	LevelW, LevelH float64
	// Smooth is the follow factor per update in (0,1]; 0 or 1 snaps.
	Smooth float64
}

func NewCamera(viewW, viewH, levelW, levelH float64) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH, LevelW: levelW, LevelH: levelH}
}

// SetLevelSize updates the bounds and re-clamps the offset.
func (c *Camera) SetLevelSize(w, h float64) {
	c.LevelW, c.LevelH = w, h
	c.X, c.Y = c.clamp(c.X, c.Y)
}

// Update centres the view on target.
func (c *Camera) Update(target common.Rect) {
	x := target.CenterX() - c.ViewW/2
	y := target.CenterY() - c.ViewH/2
	if c.Smooth > 0 && c.Smooth < 1 {
		x = common.Lerp(c.X, x, c.Smooth)
		y = common.Lerp(c.Y, y, c.Smooth)
	}
	c.X, c.Y = c.clamp(x, y)
}

// Snap jumps straight to target regardless of smoothing.
func (c *Camera) Snap(target common.Rect) {
	c.X, c.Y = c.clamp(target.CenterX()-c.ViewW/2, target.CenterY()-c.ViewH/2)
}

func (c *Camera) clamp(x, y float64) (float64, float64) {
	return common.Clamp(x, 0, max(0, c.LevelW-c.ViewW)),
		common.Clamp(y, 0, max(0, c.LevelH-c.ViewH))
}

// Apply converts a world rect to screen space.
func (c *Camera) Apply(r common.Rect) common.Rect {
	return r.Offset(-c.X, -c.Y)
}

// Visible reports whether r overlaps the viewport.
func (c *Camera) Visible(r common.Rect) bool {
	return c.Apply(r).Intersects(common.NewRect(0, 0, c.ViewW, c.ViewH))
}
