package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/mageknight/component"
)

const maxConverted = 256

// Canvas draws onto an ebiten image. Frames that are not already GPU images
// are uploaded once and cached by identity.
type Canvas struct {
	dst       *ebiten.Image
	converted map[image.Image]*ebiten.Image
}

func NewCanvas() *Canvas {
	return &Canvas{converted: make(map[image.Image]*ebiten.Image)}
}

// Target sets the image drawn onto for this frame.
func (c *Canvas) Target(dst *ebiten.Image) { c.dst = dst }

func (c *Canvas) Blit(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	c.dst.DrawImage(c.upload(img), op)
}

func (c *Canvas) upload(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := c.converted[img]; ok {
		return e
	}
	if len(c.converted) >= maxConverted {
		for k, e := range c.converted {
			e.Deallocate()
			delete(c.converted, k)
		}
	}
	e := ebiten.NewImageFromImage(img)
	c.converted[img] = e
	return e
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	vector.FillCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

// StrokeRect outlines a rectangle; used by the debug overlay.
func (c *Canvas) StrokeRect(x, y, w, h float64, col color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), 1, col, false)
}

var _ component.Canvas = (*Canvas)(nil)
