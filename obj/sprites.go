package obj

import (
	"image"
	"image/color"
	"image/draw"
	"math/rand/v2"
	"time"

	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/prefabs"
)

// Sprites turns clip specs into clips. Implementations fall back to a
// placeholder rather than fail.
type Sprites interface {
	Clip(spec prefabs.ClipSpec, w, h int, placeholder color.Color) *component.Clip
	Transformer() component.Transformer
}

// Deps are the collaborators every actor is built with.
type Deps struct {
	Audio   Audio
	Sprites Sprites
	Rand    *rand.Rand
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = NopAudio{}
	}
	if d.Sprites == nil {
		d.Sprites = SolidSprites{}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(1, 1))
	}
	return d
}

// SolidSprites builds single-colour clips. Strips with a frame count and fps
// keep their timing so animation-driven state (sword swings) behaves the same.
type SolidSprites struct{}

func (SolidSprites) Clip(spec prefabs.ClipSpec, w, h int, placeholder color.Color) *component.Clip {
	return PlaceholderClip(spec, w, h, placeholder)
}

func (SolidSprites) Transformer() component.Transformer { return component.ScaleFlip{} }

// PlaceholderClip is a clip of solid w x h frames.
func PlaceholderClip(spec prefabs.ClipSpec, w, h int, c color.Color) *component.Clip {
	if c == nil {
		c = color.White
	}
	img := image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1)))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	n := 1
	var durations []time.Duration
	if spec.FrameCount > 0 && spec.FPS > 0 {
		n = spec.FrameCount
		d := time.Duration(float64(time.Second) / spec.FPS)
		for range n {
			durations = append(durations, d)
		}
	}
	frames := make([]image.Image, n)
	for i := range frames {
		frames[i] = img
	}
	clip, _ := component.NewClip(spec.Name, frames, durations, spec.Loop)
	return clip
}

// newAnimator loads every clip of spec, scales them to w x h and starts the
// initial clip.
func newAnimator(src Sprites, spec prefabs.AnimationSpec, w, h float64, placeholder color.Color) *component.AnimationPlayer {
	p := component.NewAnimationPlayer()
	p.Transformer = src.Transformer()
	sw, sh := spec.SpriteW, spec.SpriteH
	if sw <= 0 {
		sw = w
	}
	if sh <= 0 {
		sh = h
	}
	for _, cs := range spec.Clips {
		p.Add(src.Clip(cs, int(sw), int(sh), placeholder))
	}
	if len(spec.Clips) == 0 {
		p.Add(src.Clip(prefabs.ClipSpec{Name: "idle", Loop: true}, int(sw), int(sh), placeholder))
	}
	p.SetScale(spec.Scale(w, h))
	initial := spec.Initial
	if initial == "" && len(spec.Clips) > 0 {
		initial = spec.Clips[0].Name
	}
	if initial == "" {
		initial = "idle"
	}
	_ = p.Play(initial, 0, false)
	return p
}

// playAny starts the first clip of names the animator knows.
func playAny(p *component.AnimationPlayer, now time.Duration, names ...string) {
	for _, n := range names {
		if p.Has(n) {
			_ = p.Play(n, now, false)
			return
		}
	}
}
