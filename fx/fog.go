package fx

import (
	"image/color"
	"math/rand/v2"

	"github.com/milk9111/mageknight/component"
)

type wisp struct {
	x, y, w, h float64
}

// Fog drifts translucent wisps across the screen, wrapping at the right edge.
type Fog struct {
	Speed   float64
	Color   color.RGBA
	screenW float64
	wisps   []wisp
}

func NewFog(count int, screenW, screenH, speed float64, alpha uint8, tint color.Color, rng *rand.Rand) *Fog {
	c := color.RGBAModel.Convert(tint).(color.RGBA)
	f := &Fog{Speed: speed, Color: fade(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}, float64(alpha)/255), screenW: screenW}
	for range count {
		w := 120 + rng.Float64()*160
		f.wisps = append(f.wisps, wisp{
			x: rng.Float64() * screenW,
			y: rng.Float64() * screenH,
			w: w,
			h: w * 0.3,
		})
	}
	return f
}

func (f *Fog) Update() {
	for i := range f.wisps {
		w := &f.wisps[i]
		w.x += f.Speed
		if w.x > f.screenW {
			w.x = -200
		}
	}
}

// Draw renders each wisp as a row of overlapping soft circles.
func (f *Fog) Draw(dst component.Canvas) {
	for _, w := range f.wisps {
		r := w.h / 2
		for x := w.x + r; x < w.x+w.w-r; x += r {
			dst.FillCircle(x, w.y+r, r, f.Color)
		}
	}
}
