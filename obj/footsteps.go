package obj

import "time"

// footsteps alternates left and right step sounds at a fixed interval. The
// variant index advances after each right step.
type footsteps struct {
	interval time.Duration
	variants int
	last     time.Duration
	started  bool
	right    bool
	index    int
}

func newFootsteps(intervalMS, variants int) footsteps {
	return footsteps{interval: time.Duration(intervalMS) * time.Millisecond, variants: max(variants, 1)}
}

// step reports whether a step is due at now and which side/variant it is.
func (f *footsteps) step(now time.Duration) (side string, variant int, ok bool) {
	if f.started && now-f.last <= f.interval {
		return "", 0, false
	}
	f.started = true
	f.last = now
	side, variant = "l", f.index
	if f.right {
		side = "r"
		f.index = (f.index + 1) % f.variants
	}
	f.right = !f.right
	return side, variant, true
}
