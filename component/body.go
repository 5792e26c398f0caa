package component

import "github.com/milk9111/mageknight/common"

// Body is the kinematic state shared by every moving actor.
type Body struct {
	X, Y          float64
	Width, Height float64
	VX, VY        float64
	Grounded      bool
}

func NewBody(x, y, w, h float64) Body {
	return Body{X: x, Y: y, Width: w, Height: h}
}

// Rect returns the bounding rectangle at the current position.
func (b *Body) Rect() common.Rect {
	return common.Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

func (b *Body) CenterX() float64 { return b.X + b.Width/2 }
func (b *Body) CenterY() float64 { return b.Y + b.Height/2 }
func (b *Body) Bottom() float64  { return b.Y + b.Height }

// Contact reports what Resolve touched during one step.
type Contact struct {
	Horizontal bool
	Ceiling    bool
	Grounded   bool
}

// MoveX applies vx and snaps out of any overlapped tile along x. VX is left
// untouched; callers recompute it each tick.
func MoveX(b *Body, tiles []common.Rect) bool {
	b.X += b.VX
	hit := false
	for _, t := range tiles {
		if !b.Rect().Intersects(t) {
			continue
		}
		hit = true
		if b.VX > 0 {
			b.X = t.X - b.Width
		} else if b.VX < 0 {
			b.X = t.Right()
		}
	}
	return hit
}

// MoveY applies vy, resets Grounded and snaps out of overlapped tiles along y.
func MoveY(b *Body, tiles []common.Rect) (grounded, ceiling bool) {
	b.Y += b.VY
	b.Grounded = false
	for _, t := range tiles {
		if !b.Rect().Intersects(t) {
			continue
		}
		if b.VY > 0 {
			b.Y = t.Y - b.Height
			b.VY = 0
			b.Grounded = true
		} else if b.VY < 0 {
			b.Y = t.Bottom()
			b.VY = 0
			ceiling = true
		}
	}
	return b.Grounded, ceiling
}

// Resolve moves b by its velocity against the static tiles, x axis first.
// Overlaps with several tiles on the same axis are corrected in slice order,
// so a later tile may overwrite an earlier correction.
func Resolve(b *Body, tiles []common.Rect) Contact {
	var c Contact
	c.Horizontal = MoveX(b, tiles)
	c.Grounded, c.Ceiling = MoveY(b, tiles)
	return c
}
