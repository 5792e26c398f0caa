package obj

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/prefabs"
)

// groundState is the interface each concrete ground enemy state implements.
type groundState interface {
	Enter(e *GroundEnemy)
	OnPhysics(e *GroundEnemy, env *Env)
	Name() string
}

type groundWalkingState struct{}

func (groundWalkingState) Name() string { return "walking" }
func (groundWalkingState) Enter(e *GroundEnemy) {
	e.cooldown.Start(e.spec.CooldownFrames)
}
func (groundWalkingState) OnPhysics(e *GroundEnemy, env *Env) {
	if e.cooldown.Ready() {
		if target, ok := env.target(); ok {
			dx := target.CenterX() - e.Body.CenterX()
			dist := cp.Vector{X: dx, Y: target.CenterY() - e.Body.CenterY()}.Length()
			if dist <= e.spec.DetectionRange {
				e.direction = common.Direction(dx)
				e.setState(stateGroundAttacking)
			}
		}
	}
	e.cooldown.Tick()
}

type groundAttackingState struct{}

func (groundAttackingState) Name() string { return "attacking" }
func (groundAttackingState) Enter(e *GroundEnemy) {
	e.attackTimer = e.spec.AttackFrames
}
func (groundAttackingState) OnPhysics(e *GroundEnemy, env *Env) {
	e.attackTimer--
	if e.attackTimer <= 0 {
		e.setState(stateGroundWalking)
	}
}

var (
	stateGroundWalking   groundState = &groundWalkingState{}
	stateGroundAttacking groundState = &groundAttackingState{}
)

// GroundEnemy patrols a platform and charges the player when close.
type GroundEnemy struct {
	Body   component.Body
	Health *component.Health

	SpawnX, SpawnY float64
	Patrol         float64

	spec        *prefabs.EnemySpec
	deps        Deps
	sounds      sounds
	anim        *component.AnimationPlayer
	state       groundState
	direction   float64
	attackTimer int
	cooldown    component.Cooldown
}

func NewGroundEnemy(x, y, patrol float64, spec *prefabs.EnemySpec, deps Deps) *GroundEnemy {
	deps = deps.withDefaults()
	e := &GroundEnemy{
		Body:      component.NewBody(x, y, spec.Width, spec.Height),
		Health:    component.NewHealth(spec.Health),
		SpawnX:    x,
		SpawnY:    y,
		Patrol:    patrol,
		spec:      spec,
		deps:      deps,
		sounds:    newSounds(spec.Audio),
		anim:      newAnimator(deps.Sprites, spec.Animation, spec.Width, spec.Height, spec.Placeholder.RGBA8()),
		state:     stateGroundWalking,
		direction: 1,
	}
	e.Health.OnDeath = func(*component.Health) { e.sounds.play(e.deps.Audio, "die") }
	return e
}

func (e *GroundEnemy) Kind() Kind { return KindGroundEnemy }
func (e *GroundEnemy) sealed()    {}

func (e *GroundEnemy) Bounds() common.Rect               { return e.Body.Rect() }
func (e *GroundEnemy) CheckCollision(r common.Rect) bool { return e.IsAlive() && e.Body.Rect().Intersects(r) }
func (e *GroundEnemy) IsAlive() bool                     { return e.Health.IsAlive() }

// Attacking reports whether the enemy is mid-charge.
func (e *GroundEnemy) Attacking() bool { return e.state == stateGroundAttacking }

// FacingRight mirrors the patrol direction.
func (e *GroundEnemy) FacingRight() bool { return e.direction > 0 }

func (e *GroundEnemy) State() string { return e.state.Name() }

func (e *GroundEnemy) setState(s groundState) {
	e.state = s
	s.Enter(e)
}

func (e *GroundEnemy) TakeDamage(amount int) { e.Health.ApplyDamage(amount) }

func (e *GroundEnemy) Update(env *Env) bool {
	if !e.IsAlive() {
		return false
	}

	e.state.OnPhysics(e, env)

	if !e.Body.Grounded {
		e.Body.VY += e.spec.Gravity
	}
	e.Body.VX = e.spec.Speed * e.direction
	if e.Attacking() {
		e.Body.VX *= e.spec.AttackSpeed
	}

	c := component.Resolve(&e.Body, env.Tiles)
	if c.Horizontal && e.Body.VX != 0 {
		e.direction = -common.Sign(e.Body.VX)
	}
	if e.Body.Grounded && !c.Horizontal && !e.groundAhead(env.Tiles) {
		e.direction = -e.direction
	}

	switch {
	case e.Body.X > e.SpawnX+e.Patrol:
		e.direction = -1
	case e.Body.X < e.SpawnX-e.Patrol:
		e.direction = 1
	}

	if e.Attacking() {
		playAny(e.anim, env.Now, "attack", "walking")
	} else {
		playAny(e.anim, env.Now, "walking")
	}
	e.anim.SetFlip(e.FacingRight(), false)

	return e.Body.Y <= e.spec.FallLimit
}

// groundAhead probes a thin strip just past the leading foot.
func (e *GroundEnemy) groundAhead(tiles []common.Rect) bool {
	probe := common.NewRect(e.Body.X+e.spec.LedgeLookAhead*e.direction, e.Body.Bottom(), e.Body.Width, e.spec.LedgeProbeHeight)
	for _, t := range tiles {
		if probe.Intersects(t) {
			return true
		}
	}
	return false
}

// Reset puts the enemy back at its spawn record with full health.
func (e *GroundEnemy) Reset() {
	e.Body = component.NewBody(e.SpawnX, e.SpawnY, e.spec.Width, e.spec.Height)
	e.Health.Reset()
	e.direction = 1
	e.attackTimer = 0
	e.cooldown = component.Cooldown{}
	e.state = stateGroundWalking
}

// ApplySpec swaps in reloaded tuning.
func (e *GroundEnemy) ApplySpec(spec *prefabs.EnemySpec) {
	e.spec = spec
	e.Body.Width, e.Body.Height = spec.Width, spec.Height
	e.Health.SetMax(spec.Health)
	e.sounds = newSounds(spec.Audio)
	e.anim = newAnimator(e.deps.Sprites, spec.Animation, spec.Width, spec.Height, spec.Placeholder.RGBA8())
}

func (e *GroundEnemy) Draw(dst component.Canvas, cam *Camera, now time.Duration) {
	if !e.IsAlive() || !cam.Visible(e.Body.Rect()) {
		return
	}
	r := cam.Apply(e.Body.Rect())
	e.anim.Draw(dst, r.X, r.Y, now)
}
