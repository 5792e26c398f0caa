package component

import (
	"testing"

	"github.com/milk9111/mageknight/common"
)

func row(y float64, cols int) []common.Rect {
	tiles := make([]common.Rect, 0, cols)
	for c := 0; c < cols; c++ {
		tiles = append(tiles, common.NewRect(float64(c)*32, y, 32, 32))
	}
	return tiles
}

func TestResolveLandsOnFloor(t *testing.T) {
	tiles := row(5*32, 4)
	b := NewBody(16, 0, 32, 32)
	for i := 0; i < 100 && !b.Grounded; i++ {
		b.VY = 5
		Resolve(&b, tiles)
	}
	if !b.Grounded {
		t.Fatal("body never grounded")
	}
	if b.Bottom() != 160 {
		t.Fatalf("bottom = %v, want 160", b.Bottom())
	}
	if b.VY != 0 {
		t.Fatalf("VY = %v, want 0", b.VY)
	}
}

func TestResolveAxes(t *testing.T) {
	wall := common.NewRect(100, 0, 32, 32)
	ceiling := common.NewRect(0, 0, 32, 32)
	tests := []struct {
		name         string
		body         Body
		vx, vy       float64
		tiles        []common.Rect
		wantX, wantY float64
		wantGrounded bool
		wantVY       float64
		wantContact  Contact
	}{
		{
			name: "moving right snaps to left edge",
			body: NewBody(60, 0, 32, 32), vx: 10,
			tiles: []common.Rect{wall}, wantX: 68, wantY: 0,
			wantContact: Contact{Horizontal: true},
		},
		{
			name: "moving left snaps to right edge",
			body: NewBody(135, 0, 32, 32), vx: -10,
			tiles: []common.Rect{wall}, wantX: 132, wantY: 0,
			wantContact: Contact{Horizontal: true},
		},
		{
			name: "rising into underside stops",
			body: NewBody(0, 40, 32, 32), vy: -12,
			tiles: []common.Rect{ceiling}, wantX: 0, wantY: 32,
			wantContact: Contact{Ceiling: true},
		},
		{
			name: "falling onto top grounds",
			body: NewBody(0, -40, 32, 32), vy: 12,
			tiles: []common.Rect{ceiling}, wantX: 0, wantY: -32,
			wantGrounded: true,
			wantContact:  Contact{Grounded: true},
		},
		{
			name: "free flight",
			body: NewBody(0, 100, 32, 32), vx: 3, vy: 4,
			tiles: []common.Rect{wall}, wantX: 3, wantY: 104, wantVY: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.body
			b.VX, b.VY = tt.vx, tt.vy
			got := Resolve(&b, tt.tiles)
			if b.X != tt.wantX || b.Y != tt.wantY {
				t.Fatalf("position = %v,%v want %v,%v", b.X, b.Y, tt.wantX, tt.wantY)
			}
			if b.Grounded != tt.wantGrounded {
				t.Fatalf("Grounded = %v, want %v", b.Grounded, tt.wantGrounded)
			}
			if b.VY != tt.wantVY {
				t.Fatalf("VY = %v, want %v", b.VY, tt.wantVY)
			}
			if b.VX != tt.vx {
				t.Fatalf("VX changed to %v", b.VX)
			}
			if got != tt.wantContact {
				t.Fatalf("contact = %+v, want %+v", got, tt.wantContact)
			}
			for _, tile := range tt.tiles {
				if b.Rect().Intersects(tile) {
					t.Fatalf("body %+v still overlaps %+v", b.Rect(), tile)
				}
			}
		})
	}
}

func TestResolveNeverLeavesOverlapOnFloorGrid(t *testing.T) {
	tiles := append(row(320, 10), common.NewRect(160, 288, 32, 32))
	for vx := -9.0; vx <= 9; vx += 3 {
		for vy := -6.0; vy <= 15; vy += 3 {
			b := NewBody(96, 250, 32, 32)
			for i := 0; i < 30; i++ {
				b.VX = vx
				b.VY = vy
				Resolve(&b, tiles)
				for _, tile := range tiles {
					if b.Rect().Intersects(tile) {
						t.Fatalf("vx=%v vy=%v tick %d: %+v overlaps %+v", vx, vy, i, b.Rect(), tile)
					}
				}
			}
		}
	}
}
