package obj

import (
	"time"

	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/prefabs"
)

// Sword is the player's melee weapon. A swing lasts as long as its attack clip.
type Sword struct {
	Rect   common.Rect
	Damage int

	spec      *prefabs.SwordSpec
	anim      *component.AnimationPlayer
	attacking bool
	facing    float64
}

func NewSword(spec *prefabs.SwordSpec, src Sprites) *Sword {
	s := &Sword{
		Rect:   common.NewRect(0, 0, spec.Width, spec.Height).Inflate(spec.Inflate, spec.Inflate),
		Damage: spec.Damage,
		spec:   spec,
		facing: 1,
	}
	s.anim = component.NewAnimationPlayer()
	s.anim.Transformer = src.Transformer()
	fw := max(spec.Attack.FrameW, 1)
	s.anim.Add(src.Clip(spec.Idle, fw, fw, spec.Color))
	s.anim.Add(src.Clip(spec.Attack, fw, fw, spec.Color))
	s.anim.SetScale(spec.Width/float64(fw), spec.Height/float64(fw))
	_ = s.anim.Play(spec.Idle.Name, 0, false)
	return s
}

func (s *Sword) Attacking() bool { return s.attacking }

// Attack starts a swing unless one is already running. It reports whether a
// new swing began.
func (s *Sword) Attack(now time.Duration) bool {
	if s.attacking {
		return false
	}
	s.attacking = true
	_ = s.anim.Play(s.spec.Attack.Name, now, true)
	return true
}

// Update pins the hitbox beside the owner and ends a finished swing.
func (s *Sword) Update(owner common.Rect, facing float64, now time.Duration) {
	s.facing = facing
	s.Rect = s.Rect.Centered(owner.CenterX()+s.spec.OffsetX*facing, owner.CenterY()+s.spec.OffsetY)
	s.anim.SetFlip(facing < 0, false)
	if s.attacking && s.anim.Complete(now) {
		s.Reset(now)
	}
}

// Reset drops any swing in progress.
func (s *Sword) Reset(now time.Duration) {
	s.attacking = false
	_ = s.anim.Play(s.spec.Idle.Name, now, true)
}

func (s *Sword) Draw(dst component.Canvas, cam *Camera, now time.Duration) {
	r := cam.Apply(s.Rect)
	s.anim.Draw(dst, r.X+s.spec.DrawShift, r.Y, now)
}
