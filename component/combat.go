package component

import "image/color"

// Strike is what a hostile does to the player on contact.
type Strike struct {
	Damage     int
	KnockbackX float64
	KnockbackY float64
	Color      color.RGBA
}

// Hit records one landed strike, for effects and logging.
type Hit struct {
	Strike
	X, Y   float64
	Source string
}
