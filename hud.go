package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/obj"
	"github.com/milk9111/mageknight/system"
)

const (
	hudX      = 16
	hudY      = 16
	faceSize  = 12
	faceSpace = 18
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// drawHUD shows one face per hit point and the numeric health below.
func drawHUD(screen *ebiten.Image, c *Canvas, h *component.Health) {
	for i := range h.Max {
		x := float64(hudX + i*faceSpace)
		col := color.Color(colornames.Gold)
		if i >= h.Current {
			col = color.RGBA{R: 60, G: 60, B: 60, A: 200}
		}
		c.FillCircle(x+faceSize/2, hudY+faceSize/2, faceSize/2, col)
	}
	drawText(screen, fmt.Sprintf("Health: %d/%d", h.Current, h.Max), hudX, hudY+faceSize+6, colornames.White)
}

func drawText(screen *ebiten.Image, s string, x, y float64, col color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	ebtext.Draw(screen, s, hudFace, op)
}

// drawCentered draws s horizontally centred on cx.
func drawCentered(screen *ebiten.Image, s string, cx, y float64, col color.Color) {
	w, _ := ebtext.Measure(s, hudFace, 0)
	drawText(screen, s, cx-w/2, y, col)
}

// drawDebug outlines every body and prints tick stats.
func drawDebug(screen *ebiten.Image, c *Canvas, w *system.World, scheme string) {
	cam := w.Camera
	outline := func(a obj.Actor, col color.Color) {
		r := cam.Apply(a.Bounds())
		c.StrokeRect(r.X, r.Y, r.Width, r.Height, col)
	}
	outline(w.Player, colornames.Lime)
	if w.Player.Sword.Attacking() {
		r := cam.Apply(w.Player.Sword.Rect)
		c.StrokeRect(r.X, r.Y, r.Width, r.Height, colornames.Yellow)
	}
	for _, a := range w.Hostiles {
		outline(a, colornames.Red)
	}

	msg := fmt.Sprintf("TPS %.1f  FPS %.1f  tick %d\nstate %s  hostiles %d  scheme %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), w.Ticks(),
		w.Player.State(), len(w.Hostiles), scheme)
	ebitenutil.DebugPrintAt(screen, msg, hudX, 60)
}
