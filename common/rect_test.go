package common

import "testing"

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 32, 32)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{name: "overlap", other: NewRect(16, 16, 32, 32), want: true},
		{name: "contained", other: NewRect(4, 4, 8, 8), want: true},
		{name: "touching right edge", other: NewRect(32, 0, 32, 32), want: false},
		{name: "touching bottom edge", other: NewRect(0, 32, 32, 32), want: false},
		{name: "apart", other: NewRect(100, 100, 4, 4), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Fatalf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectFeet(t *testing.T) {
	r := NewRect(100, 200, 64, 64)
	got := r.Feet()
	want := NewRect(116, 251.2, 32, 12.8)
	if got.X != want.X || got.Width != want.Width || got.Height < 12.79 || got.Height > 12.81 || got.Y < 251.19 || got.Y > 251.21 {
		t.Fatalf("Feet() = %+v, want %+v", got, want)
	}
}

func TestRectInflateKeepsCenter(t *testing.T) {
	r := NewRect(10, 20, 48, 48)
	in := r.Inflate(20, 20)
	if in.CenterX() != r.CenterX() || in.CenterY() != r.CenterY() {
		t.Fatalf("center moved: %v,%v -> %v,%v", r.CenterX(), r.CenterY(), in.CenterX(), in.CenterY())
	}
	if in.Width != 68 || in.Height != 68 {
		t.Fatalf("size = %vx%v, want 68x68", in.Width, in.Height)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 0, -3, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}
