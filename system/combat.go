package system

import (
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/fx"
	"github.com/milk9111/mageknight/obj"
	"github.com/milk9111/mageknight/prefabs"
)

func newRand() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// StrikeFor returns what touching a hostile does to the player. Projectiles
// and flying enemies hit harder than a walking ground enemy; a charging one
// hits hardest of the ground kind.
func StrikeFor(spec *prefabs.CombatSpec, a obj.Actor) (component.Strike, bool) {
	var s prefabs.StrikeSpec
	switch a := a.(type) {
	case *obj.GroundEnemy:
		s = spec.Ground
		if a.Attacking() {
			s = spec.GroundAttacking
		}
	case *obj.FlyingEnemy:
		s = spec.Flying
	case *obj.Projectile:
		s = spec.Projectile
	default:
		return component.Strike{}, false
	}
	return component.Strike{
		Damage:     s.Damage,
		KnockbackX: s.KnockbackX,
		KnockbackY: s.KnockbackY,
		Color:      s.Color.RGBA8(),
	}, true
}

// resolveContacts applies contact damage from each hostile overlapping the
// player. The first hit starts the invulnerability window, which gates the
// rest.
func (w *World) resolveContacts(removed map[obj.Actor]bool) {
	p := w.Player
	for _, a := range w.Hostiles {
		if p.Dead || p.Invulnerable() {
			return
		}
		if removed[a] || !a.IsAlive() || !a.CheckCollision(p.Bounds()) {
			continue
		}
		strike, ok := StrikeFor(&w.cfg.Combat, a)
		if !ok {
			continue
		}
		w.hitPlayer(a, strike)
		if a.Kind() == obj.KindProjectile {
			a.TakeDamage(strike.Damage)
			removed[a] = true
		}
	}
}

func (w *World) hitPlayer(a obj.Actor, strike component.Strike) {
	p := w.Player
	pb, ab := p.Bounds(), a.Bounds()

	dir := common.Direction(pb.CenterX() - ab.CenterX())
	p.ApplyKnockback(dir, strike.KnockbackX, strike.KnockbackY)
	p.Health.StartIFrames(w.cfg.Combat.InvulnerableFrames)
	p.TakeDamage(strike.Damage)

	x := (pb.CenterX() + ab.CenterX()) / 2
	y := (pb.CenterY() + ab.CenterY()) / 2
	w.addEffect(x, y, strike.Color)

	hit := component.Hit{Strike: strike, X: x, Y: y, Source: a.Kind().String()}
	w.Hits = append(w.Hits, hit)
	w.logger.Debug("player hit",
		"source", hit.Source,
		"damage", strike.Damage,
		"health", p.Health.Current,
		"dead", p.Dead)
}

// resolveMelee runs once per swing: every enemy under the sword takes the
// sword's damage and sparks at its centre.
func (w *World) resolveMelee(removed map[obj.Actor]bool) {
	sword := w.Player.Sword
	for _, a := range w.Hostiles {
		if removed[a] || !a.IsAlive() {
			continue
		}
		switch a.Kind() {
		case obj.KindGroundEnemy, obj.KindFlyingEnemy:
		default:
			continue
		}
		if !a.CheckCollision(sword.Rect) {
			continue
		}
		a.TakeDamage(sword.Damage)
		b := a.Bounds()
		w.addEffect(b.CenterX(), b.CenterY(), w.cfg.Combat.HitEffect.Color.RGBA8())
		w.logger.Debug("sword hit", "kind", a.Kind(), "alive", a.IsAlive())
	}
}

func (w *World) addEffect(x, y float64, c color.RGBA) {
	spec := w.cfg.Combat.HitEffect
	w.Effects = append(w.Effects, fx.NewHitEffect(x, y, c, spec.Particles, spec.Lifetime, w.deps.Rand))
}
