package obj

import (
	"testing"
	"time"

	"github.com/milk9111/mageknight/common"
)

func newTestPlayer(t *testing.T, x, y float64) (*Player, *Held, *recordingAudio) {
	t.Helper()
	cfg := testConfig(t)
	held := NewHeld()
	audio := &recordingAudio{}
	return NewPlayer(x, y, &cfg.Player, held, testDeps(audio)), held, audio
}

func TestPlayerJumpsOnlyWhenGrounded(t *testing.T) {
	p, held, audio := newTestPlayer(t, 64, 96)
	env := &Env{Tiles: floor(0, 160, 10), LevelHeight: 480}
	held.Set(ActionJump, true)

	p.Update(env)
	if !p.Body.Grounded || p.Body.VY != 0 {
		t.Fatalf("after landing grounded=%v vy=%v", p.Body.Grounded, p.Body.VY)
	}
	if audio.played("jump.wav") {
		t.Fatalf("jumped while airborne")
	}

	p.Update(env)
	if p.Body.VY != -19 || p.Body.Y != 96-19 {
		t.Fatalf("jump vy=%v y=%v", p.Body.VY, p.Body.Y)
	}
	if !audio.played("jump.wav") {
		t.Fatalf("jump sound not played")
	}

	p.Update(env)
	if p.Body.VY != -18 {
		t.Fatalf("mid-air jump re-applied impulse: vy=%v", p.Body.VY)
	}
}

func TestPlayerHorizontalInput(t *testing.T) {
	tests := []struct {
		name   string
		left   bool
		right  bool
		vx     float64
		facing float64
	}{
		{"none", false, false, 0, 1},
		{"left", true, false, -4, -1},
		{"right", false, true, 4, 1},
		{"both", true, true, 4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, held, _ := newTestPlayer(t, 64, 96)
			held.Set(ActionMoveLeft, tt.left)
			held.Set(ActionMoveRight, tt.right)
			p.Update(&Env{Tiles: floor(0, 160, 10), LevelHeight: 480})
			if p.Body.VX != tt.vx || p.Facing != tt.facing {
				t.Fatalf("vx=%v facing=%v, want %v %v", p.Body.VX, p.Facing, tt.vx, tt.facing)
			}
		})
	}
}

func TestPlayerRespawnRestoresSpawnState(t *testing.T) {
	p, _, _ := newTestPlayer(t, 50, 50)
	env := &Env{LevelHeight: 480}

	p.Body.X, p.Body.Y = 300, 200
	p.Body.VX, p.Body.VY = 3, 7
	p.Health.Set(2)
	p.Die()

	for i := 0; i < p.spec.RespawnFrames; i++ {
		p.Update(env)
	}
	if !p.Dead {
		t.Fatalf("respawned before the delay elapsed")
	}
	p.Update(env)
	if p.Dead {
		t.Fatalf("still dead after %d frames", p.spec.RespawnFrames+1)
	}
	if p.Body.X != 50 || p.Body.Y != 50 || p.Body.VX != 0 || p.Body.VY != 0 {
		t.Fatalf("body = %+v", p.Body)
	}
	if p.Health.Current != p.Health.Max {
		t.Fatalf("health = %d/%d", p.Health.Current, p.Health.Max)
	}
}

func TestPlayerDiesBelowLevel(t *testing.T) {
	p, _, _ := newTestPlayer(t, 50, 500)
	p.Update(&Env{LevelHeight: 480})
	if !p.Dead || p.IsAlive() {
		t.Fatalf("player survived falling out of the level")
	}
}

func TestPlayerTakeDamageToZeroKills(t *testing.T) {
	p, _, audio := newTestPlayer(t, 50, 50)
	p.Health.Set(1)
	p.TakeDamage(1)
	if !p.Dead || p.Health.Current != 0 {
		t.Fatalf("dead=%v health=%d", p.Dead, p.Health.Current)
	}
	if !audio.played("hit.mp3") {
		t.Fatalf("hit sound not played")
	}

	p.TakeDamage(1)
	if p.Health.Current != 0 {
		t.Fatalf("health went below zero: %d", p.Health.Current)
	}
}

func TestPlayerHealthHooks(t *testing.T) {
	p, _, audio := newTestPlayer(t, 50, 50)
	p.Health.ApplyDamage(1)
	if !audio.played("hit.mp3") || p.Dead {
		t.Fatalf("after one hit: sound=%v dead=%v", audio.played("hit.mp3"), p.Dead)
	}
	p.Health.ApplyDamage(p.Health.Current)
	if !p.Dead {
		t.Fatalf("emptying health did not kill the player")
	}
}

func TestPlayerKnockbackSurvivesInput(t *testing.T) {
	p, _, _ := newTestPlayer(t, 200, 50)
	p.ApplyKnockback(-1, 15, -10)
	if p.Body.VX != -15 || p.Body.VY != -10 || p.Body.Grounded {
		t.Fatalf("after knockback body = %+v", p.Body)
	}

	p.Update(&Env{LevelHeight: 480})
	if p.Body.X != 185 {
		t.Fatalf("x = %v, want 185", p.Body.X)
	}
	if p.Body.VX != -12 {
		t.Fatalf("vx = %v, want decayed -12", p.Body.VX)
	}

	for range p.spec.KnockbackFrames {
		p.Update(&Env{LevelHeight: 480})
	}
	if p.Body.VX != 0 {
		t.Fatalf("knockback never released: vx=%v", p.Body.VX)
	}
}

func TestPlayerSwingLastsForAttackClip(t *testing.T) {
	p, held, audio := newTestPlayer(t, 64, 96)
	env := &Env{Tiles: floor(0, 160, 10), LevelHeight: 480}
	held.Set(ActionAttack, true)

	p.Update(env)
	if !p.Swung() || !p.Sword.Attacking() {
		t.Fatalf("swing did not start")
	}
	if !audio.played("sword.wav") {
		t.Fatalf("sword sound not played")
	}

	env.Now = tick(1)
	p.Update(env)
	if p.Swung() {
		t.Fatalf("held attack started a second swing")
	}

	held.Set(ActionAttack, false)
	env.Now = 500 * time.Millisecond
	p.Update(env)
	if p.Sword.Attacking() {
		t.Fatalf("swing still running after the clip finished")
	}
}

func TestPlayerSwordFollowsFacing(t *testing.T) {
	p, held, _ := newTestPlayer(t, 100, 96)
	env := &Env{Tiles: floor(0, 160, 10), LevelHeight: 480}

	p.Update(env)
	right := p.Sword.Rect.CenterX()
	held.Set(ActionMoveLeft, true)
	p.Update(env)
	left := p.Sword.Rect.CenterX()

	if want := p.Body.CenterX() - 30; left != want {
		t.Fatalf("left sword centre = %v, want %v", left, want)
	}
	if right <= left {
		t.Fatalf("sword did not swap sides: right=%v left=%v", right, left)
	}
	if p.Sword.Rect.Width != 68 || p.Sword.Rect.Height != 68 {
		t.Fatalf("sword rect = %+v", p.Sword.Rect)
	}
}

func TestPlayerFootsteps(t *testing.T) {
	p, held, audio := newTestPlayer(t, 64, 96)
	env := &Env{Tiles: floor(0, 160, 20), LevelHeight: 480}
	held.Set(ActionMoveRight, true)

	dust := false
	for i := range 80 {
		env.Now = tick(i)
		p.Update(env)
		dust = dust || len(p.Footsteps) > 0
	}

	var steps []string
	for _, c := range audio.clips {
		if c.channel == 1 {
			steps = append(steps, c.path)
		}
	}
	want := []string{
		"footsteps/footstep-l0.ogg",
		"footsteps/footstep-r0.ogg",
		"footsteps/footstep-l1.ogg",
		"footsteps/footstep-r1.ogg",
	}
	if len(steps) < len(want) {
		t.Fatalf("steps = %v", steps)
	}
	for i, w := range want {
		if steps[i] != w {
			t.Fatalf("step %d = %q, want %q", i, steps[i], w)
		}
	}
	if !dust {
		t.Fatalf("no dust kicked up")
	}
}

func TestPlayerBlink(t *testing.T) {
	p, _, _ := newTestPlayer(t, 0, 0)
	if !p.Visible(5) {
		t.Fatalf("hidden without i-frames")
	}
	p.Health.StartIFrames(60)
	if !p.Visible(5) {
		t.Fatalf("60/5 is even, should be visible")
	}
	p.Health.IFrames = 55
	if p.Visible(5) {
		t.Fatalf("55/5 is odd, should be hidden")
	}
}

func TestPlayerDrawSkipsWhenDead(t *testing.T) {
	p, _, _ := newTestPlayer(t, 0, 0)
	c := &recordingCanvas{}
	cam := NewCamera(common.BaseWidth, common.BaseHeight, 1000, 1000)
	p.Draw(c, cam, 0)
	if c.blits == 0 {
		t.Fatalf("live player drew nothing")
	}
	c.blits = 0
	p.Die()
	p.Draw(c, cam, 0)
	if c.blits != 0 {
		t.Fatalf("dead player drew %d images", c.blits)
	}
}
