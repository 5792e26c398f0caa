package obj

import (
	"time"

	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/fx"
	"github.com/milk9111/mageknight/prefabs"
)

// playerState is the interface each concrete player state implements.
type playerState interface {
	Enter(p *Player, now time.Duration)
	OnPhysics(p *Player, env *Env)
	Name() string
}

type playerIdleState struct{}

func (playerIdleState) Name() string { return "idle" }
func (playerIdleState) Enter(p *Player, now time.Duration) {
	playAny(p.anim, now, "idle")
}
func (playerIdleState) OnPhysics(p *Player, env *Env) {
	if p.Body.VX != 0 {
		p.setState(statePlayerMoving, env.Now)
	}
}

type playerMovingState struct{}

func (playerMovingState) Name() string { return "moving" }
func (playerMovingState) Enter(p *Player, now time.Duration) {
	playAny(p.anim, now, "walking", "idle")
}
func (playerMovingState) OnPhysics(p *Player, env *Env) {
	if p.Body.VX == 0 {
		p.setState(statePlayerIdle, env.Now)
		return
	}
	if p.Body.Grounded {
		p.footstep(env.Now)
	}
}

var (
	statePlayerIdle   playerState = &playerIdleState{}
	statePlayerMoving playerState = &playerMovingState{}
)

// Player is the controllable knight.
type Player struct {
	Body   component.Body
	Health *component.Health
	Sword  *Sword

	SpawnX, SpawnY float64
	Facing         float64
	Dead           bool

	// Footsteps holds the live dust puffs kicked up while walking.
	Footsteps []*fx.Particle

	spec      *prefabs.PlayerSpec
	controls  Controls
	deps      Deps
	sounds    sounds
	anim      *component.AnimationPlayer
	state     playerState
	steps     footsteps
	respawn   int
	knockback int
	swung     bool
}

func NewPlayer(x, y float64, spec *prefabs.PlayerSpec, controls Controls, deps Deps) *Player {
	deps = deps.withDefaults()
	if controls == nil {
		controls = NewHeld()
	}
	p := &Player{
		Body:     component.NewBody(x, y, spec.Width, spec.Height),
		Health:   component.NewHealth(spec.MaxHealth),
		SpawnX:   x,
		SpawnY:   y,
		Facing:   1,
		spec:     spec,
		controls: controls,
		deps:     deps,
		sounds:   newSounds(spec.Audio),
		anim:     newAnimator(deps.Sprites, spec.Animation, spec.Width, spec.Height, spec.Placeholder.RGBA8()),
		state:    statePlayerIdle,
		steps:    newFootsteps(spec.FootstepIntervalMS, spec.FootstepVariants),
	}
	p.Sword = NewSword(&spec.Sword, deps.Sprites)
	p.Health.OnDamage = func(*component.Health, int) { p.sounds.play(p.deps.Audio, "hit") }
	p.Health.OnDeath = func(*component.Health) { p.Die() }
	return p
}

func (p *Player) Kind() Kind { return KindPlayer }
func (p *Player) sealed()    {}

func (p *Player) Bounds() common.Rect { return p.Body.Rect() }

func (p *Player) CheckCollision(r common.Rect) bool { return p.Body.Rect().Intersects(r) }

func (p *Player) IsAlive() bool { return !p.Dead }

// State names the current movement state.
func (p *Player) State() string { return p.state.Name() }

// Swung reports whether a new sword swing started during the last Update.
func (p *Player) Swung() bool { return p.swung }

// Invulnerable reports whether the post-hit window is running.
func (p *Player) Invulnerable() bool { return p.Health.Invulnerable() }

func (p *Player) setState(s playerState, now time.Duration) {
	if p.state == s {
		return
	}
	p.state = s
	s.Enter(p, now)
}

// Update runs one tick. The player is never removed from the world, so it
// always returns true.
func (p *Player) Update(env *Env) bool {
	p.swung = false
	p.Footsteps = fx.UpdateParticles(p.Footsteps)

	if p.Dead {
		p.respawn++
		if p.respawn > p.spec.RespawnFrames {
			p.Respawn()
		}
		return true
	}

	p.Health.Tick()
	p.handleInput(env.Now)

	p.Body.VY += p.spec.Gravity
	component.Resolve(&p.Body, env.Tiles)

	if p.knockback > 0 {
		p.knockback--
		p.Body.VX *= 0.8
	}

	if p.Body.Y > env.LevelHeight {
		p.Die()
		return true
	}

	p.state.OnPhysics(p, env)
	p.animate(env.Now)
	p.Sword.Update(p.Body.Rect(), p.Facing, env.Now)
	return true
}

func (p *Player) handleInput(now time.Duration) {
	if p.knockback == 0 {
		p.Body.VX = 0
		if p.controls.IsPressed(ActionMoveLeft) {
			p.Body.VX = -p.spec.MoveSpeed
			p.Facing = -1
		}
		if p.controls.IsPressed(ActionMoveRight) {
			p.Body.VX = p.spec.MoveSpeed
			p.Facing = 1
		}
	}

	if p.controls.IsPressed(ActionJump) && p.Body.Grounded {
		p.Body.VY = p.spec.JumpSpeed
		p.Body.Grounded = false
		p.sounds.play(p.deps.Audio, "jump")
	}

	if p.controls.IsPressed(ActionAttack) && p.Sword.Attack(now) {
		p.swung = true
		p.sounds.play(p.deps.Audio, "sword")
	}
}

// animate picks the clip for the current frame; attack beats jump beats the
// movement state's own clip.
func (p *Player) animate(now time.Duration) {
	p.anim.SetFlip(p.Facing < 0, false)
	switch {
	case p.Sword.Attacking():
		playAny(p.anim, now, "attack", "idle")
	case !p.Body.Grounded:
		playAny(p.anim, now, "jump", "idle")
	default:
		p.state.Enter(p, now)
	}
}

func (p *Player) footstep(now time.Duration) {
	side, variant, ok := p.steps.step(now)
	if !ok {
		return
	}
	p.sounds.play(p.deps.Audio, "footstep", side, variant)
	p.Footsteps = append(p.Footsteps, fx.NewParticle(p.Body.CenterX(), p.Body.Bottom(), p.deps.Rand))
}

// ApplyKnockback throws the player away from a hit. dir is the sign of the
// push; kx and ky are the horizontal and vertical impulses.
func (p *Player) ApplyKnockback(dir, kx, ky float64) {
	p.Body.VX = kx * dir
	p.Body.VY = ky
	p.Body.Grounded = false
	p.knockback = p.spec.KnockbackFrames
}

// TakeDamage removes health and kills the player at zero. Invulnerability is
// gated by the caller.
func (p *Player) TakeDamage(amount int) {
	if p.Dead {
		return
	}
	p.Health.ApplyDamage(amount)
}

// Die enters the death state. Normal updates are suspended until Respawn.
func (p *Player) Die() {
	if p.Dead {
		return
	}
	p.Dead = true
	p.respawn = 0
	p.Health.Kill()
	p.Body.VX, p.Body.VY = 0, 0
}

// Respawn restores the exact spawn state.
func (p *Player) Respawn() {
	p.Dead = false
	p.respawn = 0
	p.knockback = 0
	p.Body.X, p.Body.Y = p.SpawnX, p.SpawnY
	p.Body.VX, p.Body.VY = 0, 0
	p.Body.Grounded = false
	p.Health.Reset()
	p.Sword.Reset(0)
	p.Footsteps = nil
	p.state = statePlayerIdle
}

// Visible implements the invulnerability blink.
func (p *Player) Visible(blinkFrames int) bool {
	if blinkFrames <= 0 || !p.Health.Invulnerable() {
		return true
	}
	return (p.Health.IFrames/blinkFrames)%2 == 0
}

// ApplySpec swaps in reloaded tuning while keeping position and health.
func (p *Player) ApplySpec(spec *prefabs.PlayerSpec) {
	p.spec = spec
	p.Body.Width, p.Body.Height = spec.Width, spec.Height
	p.Health.SetMax(spec.MaxHealth)
	p.sounds = newSounds(spec.Audio)
	p.steps = newFootsteps(spec.FootstepIntervalMS, spec.FootstepVariants)
	p.anim = newAnimator(p.deps.Sprites, spec.Animation, spec.Width, spec.Height, spec.Placeholder.RGBA8())
	p.Sword = NewSword(&spec.Sword, p.deps.Sprites)
}

// Draw renders dust, the body and the sword. Callers skip it while Visible is
// false.
func (p *Player) Draw(dst component.Canvas, cam *Camera, now time.Duration) {
	for _, d := range p.Footsteps {
		d.Draw(dst, cam.X, cam.Y)
	}
	if p.Dead {
		return
	}
	r := cam.Apply(p.Body.Rect())
	p.anim.Draw(dst, r.X, r.Y, now)
	p.Sword.Draw(dst, cam, now)
}
