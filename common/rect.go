package common

// Rect is an axis-aligned rectangle in world pixels. X/Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Intersects reports strict overlap. Rects that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Inflate grows the rect by dw/dh in total, keeping its center.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, Width: r.Width + dw, Height: r.Height + dh}
}

// Offset moves the rect by dx/dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Centered returns a copy of r moved so its center is at cx, cy.
func (r Rect) Centered(cx, cy float64) Rect {
	r.X = cx - r.Width/2
	r.Y = cy - r.Height/2
	return r
}

// Sub returns the portion of r described by fractions of its size.
func (r Rect) Sub(fx, fy, fw, fh float64) Rect {
	return Rect{
		X:      r.X + r.Width*fx,
		Y:      r.Y + r.Height*fy,
		Width:  r.Width * fw,
		Height: r.Height * fh,
	}
}

// Feet is the lower-middle strip used for death zone contact.
func (r Rect) Feet() Rect {
	return r.Sub(0.25, 0.8, 0.5, 0.2)
}
