package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/mageknight/obj"
)

func TestStrikeFor(t *testing.T) {
	w, _ := newTestWorld(t, writeLevel(t, flatLevel...))
	spec := &w.cfg.Combat

	walking := obj.NewGroundEnemy(0, 0, 100, &w.cfg.Enemy, w.deps)
	charging := obj.NewGroundEnemy(0, 0, 100, &w.cfg.Enemy, w.deps)
	charging.Update(&obj.Env{Player: w.Player})
	if !charging.Attacking() {
		t.Fatalf("setup: enemy not charging")
	}

	tests := []struct {
		name    string
		actor   obj.Actor
		damage  int
		kx, ky  float64
		col     color.RGBA
		hostile bool
	}{
		{"ground", walking, 1, 10, -8, color.RGBA{R: 255, G: 100, B: 100, A: 255}, true},
		{"ground attacking", charging, 1, 15, -10, color.RGBA{R: 255, G: 50, B: 50, A: 255}, true},
		{"flying", obj.NewFlyingEnemy(0, 0, &w.cfg.FlyingEnemy, &w.cfg.Projectile, w.deps), 2, 12, -12, color.RGBA{G: 255, B: 100, A: 255}, true},
		{"projectile", obj.NewProjectile(0, 0, 0, 0, 8, &w.cfg.Projectile, w.deps), 2, 12, -12, color.RGBA{G: 255, B: 100, A: 255}, true},
		{"player", w.Player, 0, 0, 0, color.RGBA{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := StrikeFor(spec, tt.actor)
			if ok != tt.hostile {
				t.Fatalf("ok = %v", ok)
			}
			if !ok {
				return
			}
			if s.Damage != tt.damage || s.KnockbackX != tt.kx || s.KnockbackY != tt.ky || s.Color != tt.col {
				t.Fatalf("strike = %+v", s)
			}
		})
	}
}

func TestChargingEnemyKillsLastHealth(t *testing.T) {
	w, _ := newTestWorld(t, writeLevel(t, flatLevel...))
	enemy := obj.NewGroundEnemy(64, 32, 100, &w.cfg.Enemy, w.deps)
	w.Hostiles = append(w.Hostiles, enemy)
	w.Player.Health.Set(1)

	w.Update()

	if !enemy.Attacking() {
		t.Fatalf("enemy state = %s", enemy.State())
	}
	if w.Player.Health.Current != 0 || !w.Player.Dead {
		t.Fatalf("health=%d dead=%v", w.Player.Health.Current, w.Player.Dead)
	}
	if len(w.Hits) != 1 || w.Hits[0].Source != "ground_enemy" || w.Hits[0].KnockbackX != 15 {
		t.Fatalf("hits = %+v", w.Hits)
	}
	if len(w.Effects) != 1 {
		t.Fatalf("effects = %d", len(w.Effects))
	}
}

func TestContactStartsInvulnerability(t *testing.T) {
	w, _ := newTestWorld(t, writeLevel(t, flatLevel...))
	w.Hostiles = append(w.Hostiles,
		obj.NewGroundEnemy(64, 32, 100, &w.cfg.Enemy, w.deps),
		obj.NewGroundEnemy(60, 32, 100, &w.cfg.Enemy, w.deps),
	)

	w.Update()

	if len(w.Hits) != 1 {
		t.Fatalf("hits = %d, want the window to gate the second enemy", len(w.Hits))
	}
	if w.Player.Health.Current != w.Player.Health.Max-1 {
		t.Fatalf("health = %d", w.Player.Health.Current)
	}
	if w.Player.Health.IFrames != w.cfg.Combat.InvulnerableFrames {
		t.Fatalf("iframes = %d", w.Player.Health.IFrames)
	}
	if w.Player.Body.VX >= 0 || w.Player.Body.VY != -10 {
		t.Fatalf("knockback velocity = %v,%v, want pushed left and up", w.Player.Body.VX, w.Player.Body.VY)
	}
}

func TestProjectileContact(t *testing.T) {
	w, _ := newTestWorld(t, writeLevel(t, flatLevel...))
	shot := obj.NewProjectile(70, 64, 0, 0, 8, &w.cfg.Projectile, w.deps)
	w.Hostiles = append(w.Hostiles, shot)

	w.Update()

	if w.Player.Health.Current != w.Player.Health.Max-2 {
		t.Fatalf("health = %d", w.Player.Health.Current)
	}
	if shot.IsAlive() || len(w.Hostiles) != 0 {
		t.Fatalf("projectile survived the hit")
	}
}

func TestContactIgnoredWhileInvulnerable(t *testing.T) {
	w, _ := newTestWorld(t, writeLevel(t, flatLevel...))
	w.Hostiles = append(w.Hostiles, obj.NewProjectile(70, 64, 0, 0, 8, &w.cfg.Projectile, w.deps))
	w.Player.Health.StartIFrames(30)

	w.Update()

	if w.Player.Health.Current != w.Player.Health.Max || len(w.Hits) != 0 {
		t.Fatalf("hit through invulnerability: health=%d", w.Player.Health.Current)
	}
	if len(w.Hostiles) != 1 {
		t.Fatalf("projectile consumed without a hit")
	}
}

func TestSwordHitsOncePerSwing(t *testing.T) {
	w, held := newTestWorld(t, writeLevel(t, flatLevel...))
	enemy := obj.NewGroundEnemy(100, 32, 100, &w.cfg.Enemy, w.deps)
	w.Hostiles = append(w.Hostiles, enemy)

	held.Set(obj.ActionAttack, true)
	w.Update()
	if got := enemy.Health.Current; got != enemy.Health.Max-w.cfg.Player.Sword.Damage {
		t.Fatalf("enemy health = %d", got)
	}
	if len(w.Effects) == 0 {
		t.Fatalf("no hit effect")
	}

	held.Step()
	w.Update()
	if got := enemy.Health.Current; got != enemy.Health.Max-1 {
		t.Fatalf("held attack hit again: health = %d", got)
	}
}

func TestEffectsExpire(t *testing.T) {
	w, _ := newTestWorld(t, writeLevel(t, flatLevel...))
	w.addEffect(10, 10, color.RGBA{R: 255, A: 255})
	for range w.cfg.Combat.HitEffect.Lifetime + 1 {
		w.Update()
	}
	if len(w.Effects) != 0 {
		t.Fatalf("effects = %d", len(w.Effects))
	}
}
