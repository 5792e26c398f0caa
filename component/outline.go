package component

import (
	"image"
	"image/color"
)

// Outline returns an image the size of src with col on every transparent
// pixel that has an opaque pixel within thickness (square neighbourhood).
// Opaque pixels of src stay transparent, so the result is drawn under or over
// the source image.
func Outline(src image.Image, thickness int, col color.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}

	opaque := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			opaque[y*w+x] = a != 0
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if opaque[y*w+x] {
				continue
			}
			if nearOpaque(opaque, w, h, x, y, thickness) {
				out.SetRGBA(x, y, col)
			}
		}
	}
	return out
}

func nearOpaque(opaque []bool, w, h, x, y, t int) bool {
	for yy := max(y-t, 0); yy <= min(y+t, h-1); yy++ {
		for xx := max(x-t, 0); xx <= min(x+t, w-1); xx++ {
			if opaque[yy*w+xx] {
				return true
			}
		}
	}
	return false
}
