package component

// Cooldown counts down once per tick.
type Cooldown struct {
	Remaining int
}

func (c *Cooldown) Start(frames int) { c.Remaining = max(frames, 0) }

// Tick decrements the counter and reports whether it is still running.
func (c *Cooldown) Tick() bool {
	if c.Remaining > 0 {
		c.Remaining--
	}
	return c.Remaining > 0
}

func (c *Cooldown) Ready() bool { return c.Remaining <= 0 }
