package obj

import (
	"time"

	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/component"
)

// Kind tags the concrete actor variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindGroundEnemy
	KindFlyingEnemy
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindGroundEnemy:
		return "ground_enemy"
	case KindFlyingEnemy:
		return "flying_enemy"
	case KindProjectile:
		return "projectile"
	}
	return "unknown"
}

// Actor is implemented by Player, GroundEnemy, FlyingEnemy and Projectile only.
type Actor interface {
	Kind() Kind
	// Update advances one tick and returns false when the actor should be removed.
	Update(env *Env) bool
	Draw(dst component.Canvas, cam *Camera, now time.Duration)
	// CheckCollision tests the actor's hitbox against r.
	CheckCollision(r common.Rect) bool
	IsAlive() bool
	TakeDamage(amount int)
	Bounds() common.Rect

	sealed()
}

// Env is the read-only world view handed to actors each tick.
type Env struct {
	Tiles       []common.Rect
	LevelHeight float64
	Player      *Player
	Now         time.Duration
	// Spawn queues a new actor; it joins the world after the tick.
	Spawn func(Actor)
}

func (e *Env) spawn(a Actor) {
	if e.Spawn != nil {
		e.Spawn(a)
	}
}

// target returns the player rect when there is a living player to react to.
func (e *Env) target() (common.Rect, bool) {
	if e.Player == nil || e.Player.Dead {
		return common.Rect{}, false
	}
	return e.Player.Bounds(), true
}

var (
	_ Actor = (*Player)(nil)
	_ Actor = (*GroundEnemy)(nil)
	_ Actor = (*FlyingEnemy)(nil)
	_ Actor = (*Projectile)(nil)
)
