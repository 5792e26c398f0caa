package component

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Blitter receives finished images for drawing.
type Blitter interface {
	Blit(img image.Image, x, y float64)
}

// Canvas is everything the game objects need from a renderer.
type Canvas interface {
	Blitter
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
}

// Transformer produces a scaled and mirrored copy of src.
type Transformer interface {
	Transform(src image.Image, sx, sy float64, flipX, flipY bool) image.Image
}

// ScaleFlip is a CPU Transformer with nearest-neighbour scaling, suitable for
// pixel art held in plain image.Image values.
type ScaleFlip struct{}

func (ScaleFlip) Transform(src image.Image, sx, sy float64, flipX, flipY bool) image.Image {
	b := src.Bounds()
	w := int(float64(b.Dx()) * sx)
	h := int(float64(b.Dy()) * sy)
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, b, draw.Src, nil)
	if !flipX && !flipY {
		return scaled
	}
	out := image.NewRGBA(scaled.Bounds())
	for y := 0; y < h; y++ {
		ty := y
		if flipY {
			ty = h - 1 - y
		}
		for x := 0; x < w; x++ {
			tx := x
			if flipX {
				tx = w - 1 - x
			}
			out.SetRGBA(tx, ty, scaled.RGBAAt(x, y))
		}
	}
	return out
}

var _ Transformer = ScaleFlip{}
