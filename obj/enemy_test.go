package obj

import (
	"testing"

	"github.com/milk9111/mageknight/common"
)

func newTestGround(t *testing.T, x, y, patrol float64) (*GroundEnemy, *recordingAudio) {
	t.Helper()
	cfg := testConfig(t)
	audio := &recordingAudio{}
	return NewGroundEnemy(x, y, patrol, &cfg.Enemy, testDeps(audio)), audio
}

func TestGroundEnemyReversesOnWall(t *testing.T) {
	e, _ := newTestGround(t, 100, 96, 1000)
	tiles := append(floor(0, 160, 10), common.NewRect(166, 128, 32, 32))
	env := &Env{Tiles: tiles}

	for range 3 {
		if !e.Update(env) {
			t.Fatalf("enemy removed")
		}
	}
	if e.FacingRight() {
		t.Fatalf("still walking into the wall")
	}
	if right := e.Body.X + e.Body.Width; right != 166 {
		t.Fatalf("right edge = %v, want snapped to 166", right)
	}
}

func TestGroundEnemyTurnsAtLedge(t *testing.T) {
	e, _ := newTestGround(t, 20, 96, 1000)
	env := &Env{Tiles: floor(0, 160, 3)}

	flips := 0
	facing := e.FacingRight()
	for i := range 300 {
		e.Update(env)
		if i > 0 && e.Body.Y != 96 {
			t.Fatalf("tick %d: walked off the ledge, y=%v", i, e.Body.Y)
		}
		if e.FacingRight() != facing {
			facing = e.FacingRight()
			flips++
		}
	}
	if flips < 2 {
		t.Fatalf("flips = %d, want patrol between both ledges", flips)
	}
}

func TestGroundEnemyPatrolWindow(t *testing.T) {
	e, _ := newTestGround(t, 200, 96, 20)
	env := &Env{Tiles: floor(0, 160, 20)}

	for range 200 {
		e.Update(env)
		if e.Body.X > 200+20+1 || e.Body.X < 200-20-1 {
			t.Fatalf("x = %v left the patrol window", e.Body.X)
		}
	}
}

func TestGroundEnemyAttackCycle(t *testing.T) {
	e, _ := newTestGround(t, 200, 96, 1000)
	p, _, _ := newTestPlayer(t, 100, 96)
	env := &Env{Tiles: floor(0, 160, 20), Player: p}

	e.Update(env)
	if !e.Attacking() {
		t.Fatalf("state = %s, want attacking", e.State())
	}
	if e.Body.VX != -3 {
		t.Fatalf("charge vx = %v, want -3", e.Body.VX)
	}

	for range e.spec.AttackFrames {
		e.Update(env)
	}
	if e.Attacking() {
		t.Fatalf("attack outlasted %d frames", e.spec.AttackFrames)
	}

	e.Update(env)
	if e.Attacking() {
		t.Fatalf("attacked again during cooldown")
	}
	if e.cooldown.Ready() {
		t.Fatalf("cooldown not running after attack")
	}
}

func TestGroundEnemyIgnoresDeadPlayer(t *testing.T) {
	e, _ := newTestGround(t, 200, 96, 1000)
	p, _, _ := newTestPlayer(t, 180, 96)
	p.Die()

	e.Update(&Env{Tiles: floor(0, 160, 20), Player: p})
	if e.Attacking() {
		t.Fatalf("charged a dead player")
	}
}

func TestGroundEnemyRemoval(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *GroundEnemy)
		sound bool
	}{
		{"killed", func(e *GroundEnemy) { e.TakeDamage(e.Health.Max) }, true},
		{"fell", func(e *GroundEnemy) { e.Body.Y = e.spec.FallLimit + 1 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, audio := newTestGround(t, 200, 96, 1000)
			tt.setup(e)
			if e.Update(&Env{}) {
				t.Fatalf("enemy kept")
			}
			if audio.played("die.mp3") != tt.sound {
				t.Fatalf("die sound played = %v", audio.played("die.mp3"))
			}
		})
	}
}

func TestGroundEnemyReset(t *testing.T) {
	e, _ := newTestGround(t, 200, 96, 1000)
	e.Body.X, e.Body.Y = 10, 10
	e.TakeDamage(e.Health.Max)

	e.Reset()
	if !e.IsAlive() || e.Body.X != 200 || e.Body.Y != 96 || e.Attacking() {
		t.Fatalf("after reset: alive=%v body=%+v state=%s", e.IsAlive(), e.Body, e.State())
	}
}

func newTestFlying(t *testing.T, x, y float64) (*FlyingEnemy, *recordingAudio) {
	t.Helper()
	cfg := testConfig(t)
	audio := &recordingAudio{}
	return NewFlyingEnemy(x, y, &cfg.FlyingEnemy, &cfg.Projectile, testDeps(audio)), audio
}

func TestFlyingEnemyFiresAtPlayer(t *testing.T) {
	e, audio := newTestFlying(t, 300, 100)
	p, _, _ := newTestPlayer(t, 458, 108)

	var spawned []Actor
	env := &Env{Player: p, Spawn: func(a Actor) { spawned = append(spawned, a) }}

	states := map[string]bool{}
	for i := range 40 {
		env.Now = tick(i)
		if !e.Update(env) {
			t.Fatalf("flying enemy removed")
		}
		states[e.State()] = true
	}

	for _, s := range []string{"pursuing", "attacking", "retreating"} {
		if !states[s] {
			t.Fatalf("never entered %s: %v", s, states)
		}
	}
	if len(spawned) != 1 {
		t.Fatalf("spawned %d actors, want 1", len(spawned))
	}
	shot, ok := spawned[0].(*Projectile)
	if !ok {
		t.Fatalf("spawned %T", spawned[0])
	}
	if shot.VX <= 0 {
		t.Fatalf("projectile vx = %v, want toward the player", shot.VX)
	}
	if speed := shot.Velocity().Length(); speed < 3 || speed > 5 {
		t.Fatalf("projectile speed = %v", speed)
	}
	if !audio.played("enemies/flying-enemy/charge.wav") || !audio.played("enemies/flying-enemy/projectiles.wav") {
		t.Fatalf("clips = %+v", audio.clips)
	}
}

func TestFlyingEnemyIdlesWithoutPlayer(t *testing.T) {
	e, _ := newTestFlying(t, 300, 100)
	env := &Env{}
	for range 50 {
		e.Update(env)
	}
	if e.State() != "idle" {
		t.Fatalf("state = %s", e.State())
	}
	if e.Body.X <= 300 {
		t.Fatalf("did not patrol: x=%v", e.Body.X)
	}
}

func TestFlyingEnemyHitboxInset(t *testing.T) {
	e, _ := newTestFlying(t, 0, 0)
	tests := []struct {
		name string
		r    common.Rect
		want bool
	}{
		{"centre", common.NewRect(30, 30, 10, 10), true},
		{"wing tip", common.NewRect(0, 0, 10, 10), false},
		{"outside", common.NewRect(100, 100, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.CheckCollision(tt.r); got != tt.want {
				t.Fatalf("CheckCollision(%+v) = %v", tt.r, got)
			}
		})
	}
}

func TestFlyingEnemyBouncesOffTiles(t *testing.T) {
	e, _ := newTestFlying(t, 100, 100)
	env := &Env{Tiles: []common.Rect{common.NewRect(181, 0, 32, 400)}}

	e.Update(env)
	if e.direction != -1 {
		t.Fatalf("direction = %v after hitting a wall", e.direction)
	}
	if e.Body.X+e.Body.Width > 181 {
		t.Fatalf("still inside the wall: x=%v", e.Body.X)
	}
}

func TestProjectileLifetime(t *testing.T) {
	cfg := testConfig(t)
	p := NewProjectile(0, 0, 1, 0, 8, &cfg.Projectile, testDeps(nil))
	env := &Env{}
	for i := 1; i < cfg.Projectile.Lifetime; i++ {
		if !p.Update(env) {
			t.Fatalf("expired after %d frames", i)
		}
	}
	if p.Update(env) {
		t.Fatalf("outlived its lifetime")
	}
}

func TestProjectileRemoval(t *testing.T) {
	cfg := testConfig(t)
	tests := []struct {
		name  string
		tiles []common.Rect
		hit   bool
	}{
		{"tile", []common.Rect{common.NewRect(4, -16, 32, 32)}, false},
		{"damaged", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(0, 0, 4, 0, 8, &cfg.Projectile, testDeps(nil))
			if tt.hit {
				p.TakeDamage(1)
			}
			if p.Update(&Env{Tiles: tt.tiles}) {
				t.Fatalf("projectile survived")
			}
			if p.IsAlive() {
				t.Fatalf("IsAlive after removal")
			}
		})
	}
}
