package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/fx"
	"github.com/milk9111/mageknight/prefabs"
)

// lighting darkens the screen except for a soft circle around the player.
type lighting struct {
	spec prefabs.OverlaySpec
	mask *ebiten.Image
	dark color.RGBA
}

func newLighting(spec prefabs.OverlaySpec) *lighting {
	l := &lighting{spec: spec, dark: color.RGBA{A: spec.Alpha}}
	if spec.LightRadius > 0 {
		l.mask = ebiten.NewImageFromImage(fx.LightMask(spec.LightRadius, spec.Alpha))
	}
	return l
}

// Draw covers the screen around a light centred at (cx, cy) in screen space.
func (l *lighting) Draw(screen *ebiten.Image, c *Canvas, cx, cy float64) {
	if l.spec.Alpha == 0 {
		return
	}
	const w, h = common.BaseWidth, common.BaseHeight
	if l.mask == nil {
		c.FillRect(0, 0, w, h, l.dark)
		return
	}
	r := l.spec.LightRadius
	x0, y0 := cx-r, cy-r
	x1, y1 := cx+r, cy+r

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x0, y0)
	screen.DrawImage(l.mask, op)

	c.FillRect(0, 0, w, max(y0, 0), l.dark)
	c.FillRect(0, y1, w, max(h-y1, 0), l.dark)
	top, bottom := max(y0, 0), min(y1, h)
	c.FillRect(0, top, max(x0, 0), max(bottom-top, 0), l.dark)
	c.FillRect(x1, top, max(w-x1, 0), max(bottom-top, 0), l.dark)
}
