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

// flyingState is the interface each concrete flying enemy state implements.
// OnPhysics sets the horizontal velocity and vertical target for the tick.
type flyingState interface {
	Enter(e *FlyingEnemy)
	OnPhysics(e *FlyingEnemy, env *Env, hover float64)
	Name() string
}

// aim is the player relative to the enemy's centre.
type aim struct {
	delta cp.Vector
	dist  float64
	dir   float64
}

func (e *FlyingEnemy) aimAt(target common.Rect) aim {
	d := cp.Vector{X: target.CenterX() - e.Body.CenterX(), Y: target.CenterY() - e.Body.CenterY()}
	return aim{delta: d, dist: d.Length(), dir: common.Direction(d.X)}
}

type flyingIdleState struct{}

func (flyingIdleState) Name() string         { return "idle" }
func (flyingIdleState) Enter(e *FlyingEnemy) {}
func (flyingIdleState) OnPhysics(e *FlyingEnemy, env *Env, hover float64) {
	e.patrol(hover)
	target, ok := env.target()
	if !ok {
		return
	}
	if e.aimAt(target).dist < e.spec.DetectionRange && e.cooldown.Ready() {
		e.setState(stateFlyingPursuing)
	}
}

type flyingPursuingState struct{}

func (flyingPursuingState) Name() string         { return "pursuing" }
func (flyingPursuingState) Enter(e *FlyingEnemy) {}
func (flyingPursuingState) OnPhysics(e *FlyingEnemy, env *Env, hover float64) {
	target, ok := env.target()
	if !ok {
		e.setState(stateFlyingIdle)
		e.patrol(hover)
		return
	}
	a := e.aimAt(target)
	want := e.spec.PreferredDistance
	switch {
	case a.dist > want+e.spec.DistanceSlack:
		e.Body.VX = e.spec.Speed * e.spec.ApproachFactor * a.dir
	case a.dist < want-e.spec.DistanceSlack:
		e.Body.VX = -e.spec.Speed * a.dir
	default:
		e.Body.VX = 0
	}
	e.targetY = target.Y - e.spec.HoverAbove + hover

	if math.Abs(a.dist-want) < e.spec.AttackBand && e.cooldown.Ready() {
		e.setState(stateFlyingAttacking)
	}
	if a.dist > e.spec.DetectionRange*e.spec.LoseInterest {
		e.setState(stateFlyingIdle)
	}
}

type flyingAttackingState struct{}

func (flyingAttackingState) Name() string { return "attacking" }
func (flyingAttackingState) Enter(e *FlyingEnemy) {
	e.fireDelay = e.spec.FireDelay
	e.charging = false
}
func (flyingAttackingState) OnPhysics(e *FlyingEnemy, env *Env, hover float64) {
	e.Body.VX = 0
	e.targetY = e.Body.Y
	if e.fireDelay > 0 {
		if !e.charging {
			e.charging = true
			e.sounds.play(e.deps.Audio, "charge")
		}
		e.fireDelay--
		e.targetY += math.Sin(float64(e.fireDelay)*0.2) * 2
		return
	}
	if target, ok := env.target(); ok {
		e.fire(env, target)
	}
	e.cooldown.Start(e.spec.CooldownFrames)
	e.setState(stateFlyingRetreating)
}

type flyingRetreatingState struct{}

func (flyingRetreatingState) Name() string         { return "retreating" }
func (flyingRetreatingState) Enter(e *FlyingEnemy) {}
func (flyingRetreatingState) OnPhysics(e *FlyingEnemy, env *Env, hover float64) {
	dir := 1.0
	if target, ok := env.target(); ok {
		dir = e.aimAt(target).dir
	}
	e.Body.VX = -e.spec.Speed * dir
	e.targetY = e.SpawnY - e.spec.RetreatHeight + hover
	if e.cooldown.Remaining < e.spec.CooldownFrames-e.spec.RetreatFrames {
		e.setState(stateFlyingIdle)
	}
}

var (
	stateFlyingIdle       flyingState = &flyingIdleState{}
	stateFlyingPursuing   flyingState = &flyingPursuingState{}
	stateFlyingAttacking  flyingState = &flyingAttackingState{}
	stateFlyingRetreating flyingState = &flyingRetreatingState{}
)

// FlyingEnemy hovers on a sine wave, keeps its distance from the player and
// lobs projectiles.
type FlyingEnemy struct {
	Body   component.Body
	Health *component.Health

	SpawnX, SpawnY float64

	spec      *prefabs.FlyingEnemySpec
	shot      *prefabs.ProjectileSpec
	deps      Deps
	sounds    sounds
	anim      *component.AnimationPlayer
	state     flyingState
	direction float64
	facing    float64
	phase     float64
	targetY   float64
	fireDelay int
	charging  bool
	cooldown  component.Cooldown
}

func NewFlyingEnemy(x, y float64, spec *prefabs.FlyingEnemySpec, shot *prefabs.ProjectileSpec, deps Deps) *FlyingEnemy {
	deps = deps.withDefaults()
	e := &FlyingEnemy{
		Body:   component.NewBody(x, y, spec.Width, spec.Height),
		Health: component.NewHealth(spec.Health),
		SpawnX: x,
		SpawnY: y,
		spec:   spec,
		shot:   shot,
		deps:   deps,
		sounds: newSounds(spec.Audio),
		anim:   newAnimator(deps.Sprites, spec.Animation, spec.Width, spec.Height, spec.Placeholder.RGBA8()),
	}
	e.Health.OnDeath = func(*component.Health) { e.sounds.play(e.deps.Audio, "die") }
	e.Reset()
	return e
}

func (e *FlyingEnemy) Kind() Kind { return KindFlyingEnemy }
func (e *FlyingEnemy) sealed()    {}

func (e *FlyingEnemy) Bounds() common.Rect { return e.Body.Rect() }
func (e *FlyingEnemy) IsAlive() bool       { return e.Health.IsAlive() }
func (e *FlyingEnemy) State() string       { return e.state.Name() }

// Hitbox is the centre of the body used for contact damage.
func (e *FlyingEnemy) Hitbox() common.Rect {
	in := e.spec.HitboxInset
	return e.Body.Rect().Sub(in, in, 1-2*in, 1-2*in)
}

// CheckCollision uses the inset hitbox so grazing the wings is harmless.
func (e *FlyingEnemy) CheckCollision(r common.Rect) bool {
	return e.IsAlive() && e.Hitbox().Intersects(r)
}

func (e *FlyingEnemy) setState(s flyingState) {
	e.state = s
	s.Enter(e)
}

func (e *FlyingEnemy) TakeDamage(amount int) { e.Health.ApplyDamage(amount) }

// patrol drifts between the spawn bounds at hover height.
func (e *FlyingEnemy) patrol(hover float64) {
	e.Body.VX = e.spec.Speed * e.direction
	e.targetY = e.SpawnY + hover
	switch {
	case e.Body.X > e.SpawnX+e.spec.PatrolRange:
		e.direction = -1
	case e.Body.X < e.SpawnX-e.spec.PatrolRange:
		e.direction = 1
	}
}

func (e *FlyingEnemy) Update(env *Env) bool {
	if !e.IsAlive() {
		return false
	}

	e.phase += e.spec.HoverSpeed
	hover := math.Sin(e.phase) * e.spec.HoverAmplitude

	if target, ok := env.target(); ok {
		e.facing = e.aimAt(target).dir
	} else {
		e.facing = e.direction
	}
	e.state.OnPhysics(e, env, hover)

	e.Body.X += e.Body.VX
	e.Body.Y += (e.targetY - e.Body.Y) * e.spec.Smoothing
	e.cooldown.Tick()
	e.bounce(env.Tiles)

	e.anim.SetFlip(e.facing < 0, false)
	playAny(e.anim, env.Now, "idle")

	return e.Body.Y <= e.spec.FallLimit
}

// bounce turns the enemy around on the first tile it touches and pushes it
// back out.
func (e *FlyingEnemy) bounce(tiles []common.Rect) {
	for _, t := range tiles {
		if !e.Body.Rect().Intersects(t) {
			continue
		}
		e.direction = -e.direction
		e.facing = -e.facing
		switch {
		case e.Body.VX > 0:
			e.Body.X = t.X - e.Body.Width
		case e.Body.VX < 0:
			e.Body.X = t.Right()
		}
		switch {
		case e.targetY > e.Body.Y:
			e.Body.Y = t.Y - e.Body.Height
		case e.targetY < e.Body.Y:
			e.Body.Y = t.Bottom()
		}
		return
	}
}

// fire launches a projectile from the centre toward the target with a little
// jitter on each axis.
func (e *FlyingEnemy) fire(env *Env, target common.Rect) {
	e.charging = false
	e.sounds.play(e.deps.Audio, "fire")

	dir := e.aimAt(target).delta
	if dir.Length() > 0 {
		dir = dir.Normalize()
	}
	j := e.shot.Jitter
	dir = dir.Add(cp.Vector{X: (e.deps.Rand.Float64()*2 - 1) * j, Y: (e.deps.Rand.Float64()*2 - 1) * j})
	v := dir.Mult(e.shot.Speed)

	size := e.shot.MinSize
	if e.shot.MaxSize > e.shot.MinSize {
		size += e.deps.Rand.IntN(e.shot.MaxSize - e.shot.MinSize + 1)
	}
	env.spawn(NewProjectile(e.Body.CenterX(), e.Body.CenterY(), v.X, v.Y, float64(size), e.shot, e.deps))
}

// Reset puts the enemy back at its spawn record with full health and a fresh
// hover phase.
func (e *FlyingEnemy) Reset() {
	e.Body = component.NewBody(e.SpawnX, e.SpawnY, e.spec.Width, e.spec.Height)
	e.Health.Reset()
	e.direction = 1
	e.facing = -1
	e.phase = e.deps.Rand.Float64() * 2 * math.Pi
	e.targetY = e.SpawnY
	e.fireDelay = 0
	e.charging = false
	e.cooldown = component.Cooldown{}
	e.state = stateFlyingIdle
}

// ApplySpec swaps in reloaded tuning.
func (e *FlyingEnemy) ApplySpec(spec *prefabs.FlyingEnemySpec, shot *prefabs.ProjectileSpec) {
	e.spec = spec
	e.shot = shot
	e.Body.Width, e.Body.Height = spec.Width, spec.Height
	e.Health.SetMax(spec.Health)
	e.sounds = newSounds(spec.Audio)
	e.anim = newAnimator(e.deps.Sprites, spec.Animation, spec.Width, spec.Height, spec.Placeholder.RGBA8())
}

func (e *FlyingEnemy) Draw(dst component.Canvas, cam *Camera, now time.Duration) {
	if !e.IsAlive() || !cam.Visible(e.Body.Rect()) {
		return
	}
	r := cam.Apply(e.Body.Rect())
	e.anim.Draw(dst, r.X, r.Y, now)

	if e.state == stateFlyingAttacking && e.fireDelay > 0 {
		wound := e.spec.FireDelay - e.fireDelay
		c := e.spec.ChargeColor.RGBA8()
		alpha := min(255, wound*12)
		dst.FillCircle(r.CenterX(), r.CenterY(), float64(10+wound/2), color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha)})
	}
}
