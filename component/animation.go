package component

import (
	"errors"
	"fmt"
	"image"
	"time"
)

// DefaultFrameDuration is used for frames without explicit timing.
const DefaultFrameDuration = 100 * time.Millisecond

// ClipNotFoundError is returned by Play for names that were never added.
type ClipNotFoundError struct {
	Name string
}

func (e *ClipNotFoundError) Error() string {
	return fmt.Sprintf("animation: clip %q not found", e.Name)
}

var errNoFrames = errors.New("animation: clip has no frames")

// Clip is an immutable, shareable sequence of timed frames.
type Clip struct {
	Name      string
	Frames    []image.Image
	Durations []time.Duration
	Loop      bool

	total time.Duration
}

// NewClip builds a clip. Durations shorter than frames are padded with
// DefaultFrameDuration and longer ones are trimmed. Non-positive durations are
// replaced by the default.
func NewClip(name string, frames []image.Image, durations []time.Duration, loop bool) (*Clip, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: %s", errNoFrames, name)
	}
	d := make([]time.Duration, len(frames))
	var total time.Duration
	for i := range d {
		d[i] = DefaultFrameDuration
		if i < len(durations) && durations[i] > 0 {
			d[i] = durations[i]
		}
		total += d[i]
	}
	return &Clip{Name: name, Frames: frames, Durations: d, Loop: loop, total: total}, nil
}

// Total is the sum of all frame durations.
func (c *Clip) Total() time.Duration { return c.total }

// FrameAt selects the frame shown after elapsed playback time. Looping clips
// wrap; non-looping clips hold the last frame and report completion.
func (c *Clip) FrameAt(elapsed time.Duration) (int, bool) {
	last := len(c.Frames) - 1
	if elapsed < 0 {
		elapsed = 0
	}
	if !c.Loop && elapsed >= c.total {
		return last, true
	}
	if c.Loop {
		elapsed %= c.total
	}
	var acc time.Duration
	for i, d := range c.Durations {
		acc += d
		if elapsed < acc {
			return i, false
		}
	}
	return last, false
}

// cacheKey names a frame by clip and index, since frames need not be
// comparable values.
type cacheKey struct {
	clip   *Clip
	index  int
	sx, sy float64
	fx, fy bool
}

// AnimationPlayer is the per-actor playback cursor over a table of clips.
// Time is supplied by the caller so playback is deterministic.
type AnimationPlayer struct {
	Transformer Transformer

	clips   map[string]*Clip
	current *Clip
	start   time.Duration
	playing bool

	scaleX, scaleY float64
	flipX, flipY   bool
	cache          map[cacheKey]image.Image
}

func NewAnimationPlayer() *AnimationPlayer {
	return &AnimationPlayer{
		Transformer: ScaleFlip{},
		clips:       make(map[string]*Clip),
		scaleX:      1,
		scaleY:      1,
		cache:       make(map[cacheKey]image.Image),
	}
}

// Add registers a clip under its name, replacing any previous one.
func (p *AnimationPlayer) Add(c *Clip) {
	if c == nil {
		return
	}
	p.clips[c.Name] = c
}

// Has reports whether a clip was added under name.
func (p *AnimationPlayer) Has(name string) bool {
	_, ok := p.clips[name]
	return ok
}

// Play switches to the named clip. Playing the current clip again is a no-op
// unless forceRestart is set. Unknown names leave the state unchanged.
func (p *AnimationPlayer) Play(name string, now time.Duration, forceRestart bool) error {
	c, ok := p.clips[name]
	if !ok {
		return &ClipNotFoundError{Name: name}
	}
	if !forceRestart && p.playing && p.current == c {
		return nil
	}
	p.current = c
	p.start = now
	p.playing = true
	return nil
}

func (p *AnimationPlayer) IsPlaying() bool { return p.playing }

// Current returns the bound clip name, or "" when nothing was played yet.
func (p *AnimationPlayer) Current() string {
	if p.current == nil {
		return ""
	}
	return p.current.Name
}

// CurrentFrame returns the frame for now without changing playback state.
func (p *AnimationPlayer) CurrentFrame(now time.Duration) (image.Image, bool) {
	if p.current == nil {
		return nil, false
	}
	i, done := p.current.FrameAt(now - p.start)
	return p.current.Frames[i], done
}

// Complete reports whether a non-looping clip has run out at now.
func (p *AnimationPlayer) Complete(now time.Duration) bool {
	if p.current == nil || p.current.Loop {
		return false
	}
	_, done := p.current.FrameAt(now - p.start)
	return done
}

func (p *AnimationPlayer) SetScale(sx, sy float64) {
	if sx == p.scaleX && sy == p.scaleY {
		return
	}
	p.scaleX, p.scaleY = sx, sy
	clear(p.cache)
}

func (p *AnimationPlayer) SetFlip(fx, fy bool) {
	if fx == p.flipX && fy == p.flipY {
		return
	}
	p.flipX, p.flipY = fx, fy
	clear(p.cache)
}

func (p *AnimationPlayer) Flip() (bool, bool) { return p.flipX, p.flipY }

// Size is the scaled size of the first frame of the current clip.
func (p *AnimationPlayer) Size() (float64, float64) {
	if p.current == nil {
		return 0, 0
	}
	b := p.current.Frames[0].Bounds()
	return float64(b.Dx()) * p.scaleX, float64(b.Dy()) * p.scaleY
}

// Draw blits the transformed current frame at x, y. A finished non-looping
// clip is drawn one last time and then stops playing.
func (p *AnimationPlayer) Draw(dst Blitter, x, y float64, now time.Duration) bool {
	if !p.playing || p.current == nil {
		return false
	}
	i, done := p.current.FrameAt(now - p.start)
	if done && !p.current.Loop {
		p.playing = false
	}
	dst.Blit(p.transformed(i), x, y)
	return true
}

func (p *AnimationPlayer) transformed(i int) image.Image {
	frame := p.current.Frames[i]
	if p.scaleX == 1 && p.scaleY == 1 && !p.flipX && !p.flipY {
		return frame
	}
	key := cacheKey{clip: p.current, index: i, sx: p.scaleX, sy: p.scaleY, fx: p.flipX, fy: p.flipY}
	if img, ok := p.cache[key]; ok {
		return img
	}
	tr := p.Transformer
	if tr == nil {
		tr = ScaleFlip{}
	}
	img := tr.Transform(frame, p.scaleX, p.scaleY, p.flipX, p.flipY)
	p.cache[key] = img
	return img
}
