package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

type fadePhase int

const (
	fadeIdle fadePhase = iota
	fadeOut            // darkening
	fadeHold           // fully black until In
	fadeIn             // clearing
)

// fade darkens the screen to black and back, used around a respawn and when
// play starts.
type fade struct {
	phase    fadePhase
	frames   int
	duration int
	overlay  *ebiten.Image
}

func newFade(duration int) *fade {
	overlay := ebiten.NewImage(1, 1)
	overlay.Fill(color.Black)
	return &fade{duration: max(duration, 1), overlay: overlay}
}

// Out starts darkening unless the screen is already dark.
func (f *fade) Out() {
	if f.phase == fadeOut || f.phase == fadeHold {
		return
	}
	f.phase, f.frames = fadeOut, 0
}

// Black jumps straight to a fully dark screen.
func (f *fade) Black() { f.phase, f.frames = fadeHold, 0 }

// In clears the screen, starting from however dark it currently is.
func (f *fade) In() {
	if f.phase == fadeIdle {
		return
	}
	start := f.Alpha()
	f.phase = fadeIn
	f.frames = int((1 - start) * float64(f.duration))
}

func (f *fade) Update() {
	switch f.phase {
	case fadeOut:
		f.frames++
		if f.frames >= f.duration {
			f.phase, f.frames = fadeHold, 0
		}
	case fadeIn:
		f.frames++
		if f.frames >= f.duration {
			f.phase, f.frames = fadeIdle, 0
		}
	}
}

// Alpha is the overlay opacity in [0,1].
func (f *fade) Alpha() float64 {
	switch f.phase {
	case fadeOut:
		return min(float64(f.frames)/float64(f.duration), 1)
	case fadeHold:
		return 1
	case fadeIn:
		return max(1-float64(f.frames)/float64(f.duration), 0)
	}
	return 0
}

func (f *fade) Draw(screen *ebiten.Image) {
	alpha := f.Alpha()
	if alpha <= 0 {
		return
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(f.overlay, op)
}
