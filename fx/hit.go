package fx

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/milk9111/mageknight/component"
)

type spark struct {
	x, y, vx, vy float64
	size         float64
	life, max    int
}

// HitEffect is a short burst of sparks flying out from a hit point.
type HitEffect struct {
	X, Y     float64
	Color    color.RGBA
	Lifetime int

	frame  int
	sparks []spark
}

// NewHitEffect scatters count sparks with lifetimes between 10 and lifetime frames.
func NewHitEffect(x, y float64, c color.RGBA, count, lifetime int, rng *rand.Rand) *HitEffect {
	lifetime = max(lifetime, 1)
	e := &HitEffect{X: x, Y: y, Color: c, Lifetime: lifetime}
	minLife := min(10, lifetime)
	for range count {
		angle := rng.Float64() * 2 * math.Pi
		speed := 1 + rng.Float64()*2
		life := minLife + rng.IntN(lifetime-minLife+1)
		e.sparks = append(e.sparks, spark{
			x: x, y: y,
			vx:   math.Cos(angle) * speed,
			vy:   math.Sin(angle) * speed,
			size: 2 + rng.Float64()*3,
			life: life, max: life,
		})
	}
	return e
}

func (e *HitEffect) Update() {
	e.frame++
	for i := range e.sparks {
		s := &e.sparks[i]
		s.x += s.vx
		s.y += s.vy
		s.size *= 0.95
		s.life--
	}
}

// Finished reports whether the effect has outlived its lifetime.
func (e *HitEffect) Finished() bool { return e.frame > e.Lifetime }

func (e *HitEffect) Draw(dst component.Canvas, camX, camY float64) {
	for _, s := range e.sparks {
		if s.life <= 0 {
			continue
		}
		dst.FillCircle(s.x-camX, s.y-camY, s.size, fade(e.Color, float64(s.life)/float64(s.max)))
	}
}

// fade scales a colour's alpha by f in [0,1], keeping it premultiplied.
func fade(c color.RGBA, f float64) color.RGBA {
	f = max(0, min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
