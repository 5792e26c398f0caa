package fx

import (
	"image/color"
	"math/rand/v2"

	"github.com/milk9111/mageknight/component"
)

var dustColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// Particle is a puff of dust kicked up by a footstep.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Lifetime int
}

func NewParticle(x, y float64, rng *rand.Rand) *Particle {
	return &Particle{
		X: x, Y: y,
		VX:       rng.Float64()*2 - 1,
		VY:       rng.Float64()*2 - 1,
		Size:     float64(2 + rng.IntN(4)),
		Lifetime: 20 + rng.IntN(31),
	}
}

func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.Lifetime--
	p.Size -= 0.1
}

func (p *Particle) Alive() bool { return p.Lifetime > 0 && p.Size > 0 }

func (p *Particle) Draw(dst component.Canvas, camX, camY float64) {
	if !p.Alive() {
		return
	}
	dst.FillCircle(p.X-camX, p.Y-camY, p.Size, dustColor)
}

// UpdateParticles advances ps and drops the dead ones in place.
func UpdateParticles(ps []*Particle) []*Particle {
	out := ps[:0]
	for _, p := range ps {
		p.Update()
		if p.Alive() {
			out = append(out, p)
		}
	}
	clear(ps[len(out):])
	return out
}
