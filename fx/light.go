package fx

import (
	"image"
	"image/color"
	"math"
)

// LightAlpha is the darkness left at distance d from a light of the given
// radius on top of an overlay of base alpha.
func LightAlpha(d, radius float64, base uint8) uint8 {
	if radius <= 0 || d >= radius {
		return base
	}
	f := 1 - d/radius
	a := float64(base) - 255*f*f
	if a < 0 {
		return 0
	}
	return uint8(a)
}

// LightMask renders the darkness around a light as a 2r x 2r black image.
// Pixels outside the circle carry the full base alpha.
func LightMask(radius float64, base uint8) *image.RGBA {
	size := int(math.Ceil(radius * 2))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-radius, float64(y)+0.5-radius)
			img.SetRGBA(x, y, color.RGBA{A: LightAlpha(d, radius, base)})
		}
	}
	return img
}
