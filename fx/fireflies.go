package fx

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/milk9111/mageknight/component"
)

type firefly struct {
	x, y       float64
	size       float64
	brightness float64
	speed      float64
	angle      float64
	visible    bool
	timer      int
	fadeSpeed  float64
}

// Fireflies wander randomly and blink in and out.
type Fireflies struct {
	Color         color.RGBA
	width, height float64
	rng           *rand.Rand
	flies         []firefly
}

func NewFireflies(count int, width, height float64, tint color.Color, rng *rand.Rand) *Fireflies {
	f := &Fireflies{
		Color:  color.RGBAModel.Convert(tint).(color.RGBA),
		width:  width,
		height: height,
		rng:    rng,
	}
	for range count {
		f.flies = append(f.flies, firefly{
			x:          rng.Float64() * width,
			y:          rng.Float64() * height,
			size:       float64(2 + rng.IntN(4)),
			brightness: float64(100 + rng.IntN(156)),
			speed:      0.5 + rng.Float64()*0.5,
			angle:      rng.Float64() * 2 * math.Pi,
			visible:    true,
			timer:      30 + rng.IntN(271),
			fadeSpeed:  1 + rng.Float64()*4,
		})
	}
	return f
}

func (f *Fireflies) Update() {
	for i := range f.flies {
		ff := &f.flies[i]
		ff.angle += f.rng.Float64()*0.2 - 0.1
		ff.x = wrap(ff.x+ff.speed*math.Cos(ff.angle), f.width)
		ff.y = wrap(ff.y+ff.speed*math.Sin(ff.angle), f.height)
		ff.timer--
		if ff.timer <= 0 {
			ff.visible = !ff.visible
			ff.timer = 30 + f.rng.IntN(271)
		}
		if ff.visible {
			ff.brightness = min(255, ff.brightness+ff.fadeSpeed)
		} else {
			ff.brightness = max(0, ff.brightness-ff.fadeSpeed)
		}
	}
}

// Draw places the flies relative to the camera, wrapping horizontally so the
// swarm always covers the screen.
func (f *Fireflies) Draw(dst component.Canvas, camX, camY float64) {
	for _, ff := range f.flies {
		if ff.brightness <= 0 {
			continue
		}
		x := wrap(ff.x-camX, f.width)
		dst.FillCircle(x, ff.y-camY, ff.size, fade(f.Color, ff.brightness/255))
	}
}

func wrap(v, n float64) float64 {
	if n <= 0 {
		return v
	}
	v = math.Mod(v, n)
	if v < 0 {
		v += n
	}
	return v
}
