package component

// Health tracks hit points and the post-hit invulnerability window.
type Health struct {
	Max     int
	Current int
	IFrames int

	OnDamage func(h *Health, amount int)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health component with max/current initialized.
func NewHealth(max int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

// IsAlive reports whether any health is left.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// Invulnerable reports whether i-frames are running.
func (h *Health) Invulnerable() bool {
	return h != nil && h.IFrames > 0
}

// ApplyDamage subtracts amount, clamped at zero. Returns true if damage was applied.
func (h *Health) ApplyDamage(amount int) bool {
	if h == nil || h.Current <= 0 || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	if h.OnDamage != nil {
		h.OnDamage(h, amount)
	}
	if h.Current == 0 && h.OnDeath != nil {
		h.OnDeath(h)
	}
	return true
}

// Kill drops health to zero without triggering callbacks.
func (h *Health) Kill() {
	if h == nil {
		return
	}
	h.Current = 0
}

// Reset restores full health and clears i-frames.
func (h *Health) Reset() {
	if h == nil {
		return
	}
	h.Current = h.Max
	h.IFrames = 0
}

// StartIFrames sets invulnerability frames.
func (h *Health) StartIFrames(frames int) {
	if h == nil || frames <= 0 {
		return
	}
	h.IFrames = frames
}

// Tick advances the i-frame timer by one frame.
func (h *Health) Tick() {
	if h == nil || h.IFrames <= 0 {
		return
	}
	h.IFrames--
}

// Set assigns the current value clamped to [0, Max].
func (h *Health) Set(v int) {
	if h == nil {
		return
	}
	h.Current = min(max(v, 0), h.Max)
}

// SetMax changes the maximum and clamps Current if needed.
func (h *Health) SetMax(v int) {
	if h == nil {
		return
	}
	h.Max = max(v, 1)
	if h.Current > h.Max {
		h.Current = h.Max
	}
}
