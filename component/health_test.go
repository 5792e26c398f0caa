package component

import "testing"

func TestHealthStaysInBounds(t *testing.T) {
	tests := []struct {
		name string
		ops  func(h *Health)
		want int
	}{
		{name: "overkill clamps to zero", ops: func(h *Health) { h.ApplyDamage(99) }, want: 0},
		{name: "negative damage ignored", ops: func(h *Health) { h.ApplyDamage(-3) }, want: 5},
		{name: "set above max", ops: func(h *Health) { h.Set(12) }, want: 5},
		{name: "set below zero", ops: func(h *Health) { h.Set(-1) }, want: 0},
		{name: "shrinking max clamps current", ops: func(h *Health) { h.SetMax(3) }, want: 3},
		{name: "damage after death ignored", ops: func(h *Health) { h.Kill(); h.ApplyDamage(1) }, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(5)
			tt.ops(h)
			if h.Current != tt.want {
				t.Fatalf("Current = %d, want %d", h.Current, tt.want)
			}
			if h.Current < 0 || h.Current > h.Max {
				t.Fatalf("Current %d outside [0,%d]", h.Current, h.Max)
			}
		})
	}
}

func TestHealthCallbacks(t *testing.T) {
	h := NewHealth(2)
	var damaged, died int
	h.OnDamage = func(*Health, int) { damaged++ }
	h.OnDeath = func(*Health) { died++ }

	h.ApplyDamage(1)
	h.ApplyDamage(1)
	h.ApplyDamage(1)
	if damaged != 2 || died != 1 {
		t.Fatalf("damaged=%d died=%d, want 2 and 1", damaged, died)
	}
}

func TestHealthIFrames(t *testing.T) {
	h := NewHealth(3)
	h.StartIFrames(2)
	if !h.Invulnerable() {
		t.Fatal("expected invulnerable after StartIFrames")
	}
	h.Tick()
	h.Tick()
	if h.Invulnerable() {
		t.Fatal("i-frames did not run out")
	}
	h.Tick()
	if h.IFrames != 0 {
		t.Fatalf("IFrames = %d, want 0", h.IFrames)
	}
}

func TestCooldown(t *testing.T) {
	var c Cooldown
	if !c.Ready() {
		t.Fatal("zero cooldown should be ready")
	}
	c.Start(2)
	if c.Ready() {
		t.Fatal("started cooldown reported ready")
	}
	c.Tick()
	if c.Tick() {
		t.Fatal("cooldown still running after two ticks")
	}
	if !c.Ready() {
		t.Fatal("cooldown not ready after running out")
	}
}
