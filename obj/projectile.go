package obj

import (
	"image/color"
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/prefabs"
)

type droplet struct {
	x, y, size float64
	life       int
}

// Projectile is a wobbling slime ball. It dies on lifetime expiry, tiles, the
// player, or any damage.
type Projectile struct {
	X, Y   float64
	VX, VY float64
	Size   float64

	spec     *prefabs.ProjectileSpec
	deps     Deps
	life     int
	wobble   float64
	stretchX float64
	stretchY float64
	trail    []droplet
	trailT   int
	dead     bool
}

func NewProjectile(x, y, vx, vy, size float64, spec *prefabs.ProjectileSpec, deps Deps) *Projectile {
	return &Projectile{
		X: x, Y: y, VX: vx, VY: vy,
		Size:     size,
		spec:     spec,
		deps:     deps.withDefaults(),
		life:     spec.Lifetime,
		stretchX: 1,
		stretchY: 1,
	}
}

func (p *Projectile) Kind() Kind { return KindProjectile }
func (p *Projectile) sealed()    {}

func (p *Projectile) IsAlive() bool { return !p.dead && p.life > 0 }

// Bounds is a square around the centre sized by the larger stretch.
func (p *Projectile) Bounds() common.Rect {
	s := p.Size * max(p.stretchX, p.stretchY)
	return common.NewRect(p.X-s/2, p.Y-s/2, s, s)
}

func (p *Projectile) CheckCollision(r common.Rect) bool {
	return p.IsAlive() && p.Bounds().Intersects(r)
}

func (p *Projectile) TakeDamage(int) { p.dead = true }

// Velocity returns the current travel vector.
func (p *Projectile) Velocity() cp.Vector { return cp.Vector{X: p.VX, Y: p.VY} }

func (p *Projectile) Update(env *Env) bool {
	if !p.IsAlive() {
		return false
	}

	p.X += p.VX
	p.Y += p.VY
	p.VY += p.spec.Gravity

	p.wobble += p.spec.WobbleSpeed
	w := math.Sin(p.wobble) * 0.2
	p.stretchX = 1 + math.Abs(p.VX)*0.05 + w
	p.stretchY = 1 + math.Abs(p.VY)*0.05 - w

	p.dropTrail()

	p.life--
	if p.life <= 0 {
		return false
	}
	b := p.Bounds()
	for _, t := range env.Tiles {
		if b.Intersects(t) {
			p.dead = true
			return false
		}
	}
	return true
}

func (p *Projectile) dropTrail() {
	kept := p.trail[:0]
	for _, d := range p.trail {
		d.life--
		if d.life > 0 {
			kept = append(kept, d)
		}
	}
	p.trail = kept

	p.trailT++
	if p.trailT < p.spec.TrailInterval {
		return
	}
	p.trailT = 0
	rng := p.deps.Rand
	if rng.Float64() >= p.spec.TrailChance {
		return
	}
	p.trail = append(p.trail, droplet{
		x:    p.X + rng.Float64()*6 - 3,
		y:    p.Y + rng.Float64()*6 - 3,
		size: p.Size * (0.2 + rng.Float64()*0.2),
		life: p.spec.TrailLifetime,
	})
}

func (p *Projectile) Draw(dst component.Canvas, cam *Camera, now time.Duration) {
	c := p.spec.Color.RGBA8()
	for _, d := range p.trail {
		a := 255 * d.life / max(p.spec.TrailLifetime, 1)
		dst.FillCircle(d.x-cam.X, d.y-cam.Y, d.size, color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a)})
	}
	if !p.IsAlive() {
		return
	}
	x, y := p.X-cam.X, p.Y-cam.Y
	w, h := p.Size*p.stretchX, p.Size*p.stretchY
	dst.FillCircle(x, y, max(w, h)+2, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 100})
	dst.FillCircle(x, y, max(w, h), c)
	dst.FillCircle(x-w/4, y-h/4, min(w, h)/3, color.NRGBA{R: 220, G: 255, B: 220, A: 150})
}
