package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/prefabs"
)

// Loader decodes sprite sheets into ebiten images and cuts them into clips.
// Failures are logged once per path and replaced with solid placeholders.
type Loader struct {
	logger *log.Logger
	images map[string]*ebiten.Image
	warned map[string]bool
}

func NewLoader(logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		logger: logger,
		images: make(map[string]*ebiten.Image),
		warned: make(map[string]bool),
	}
}

// Image loads and caches an image.
func (l *Loader) Image(path string) (*ebiten.Image, error) {
	if img, ok := l.images[path]; ok {
		return img, nil
	}
	b, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}
	decoded, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	img := ebiten.NewImageFromImage(decoded)
	l.images[path] = img
	return img, nil
}

// ImageOr returns the image at path, or a w x h placeholder filled with c.
func (l *Loader) ImageOr(path string, w, h int, c color.Color) *ebiten.Image {
	if path != "" {
		img, err := l.Image(path)
		if err == nil {
			return img
		}
		l.warn(path, err)
	}
	return Placeholder(w, h, c)
}

// Placeholder is a solid w x h image.
func Placeholder(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	if c == nil {
		c = color.White
	}
	img.Fill(c)
	return img
}

func (l *Loader) warn(path string, err error) {
	if l.warned[path] {
		return
	}
	l.warned[path] = true
	l.logger.Warn("asset missing, using fallback", "path", path, "err", err)
}

// Clip builds the clip described by spec: the Aseprite export when there is
// one, else a fixed-width strip, else a square grid, else a solid block.
func (l *Loader) Clip(spec prefabs.ClipSpec, w, h int, placeholder color.Color) *component.Clip {
	if spec.Sheet == "" {
		return l.placeholderClip(spec, w, h, placeholder)
	}
	sheet, err := l.Image(spec.Sheet)
	if err != nil {
		l.warn(spec.Sheet, err)
		return l.placeholderClip(spec, w, h, placeholder)
	}

	if spec.Meta != "" {
		meta, err := LoadFile(spec.Meta)
		if err == nil {
			var clip *component.Clip
			clip, err = component.ClipFromAseprite(spec.Name, sheet, meta, spec.Loop)
			if err == nil {
				return clip
			}
		}
		l.warn(spec.Meta, err)
	}

	if spec.FrameW > 0 {
		d := component.DefaultFrameDuration
		if spec.FPS > 0 {
			d = time.Duration(float64(time.Second) / spec.FPS)
		}
		clip, err := component.FixedClip(spec.Name, sheet, spec.FrameW, spec.FrameCount, d, spec.Loop)
		if err == nil {
			return clip
		}
		l.warn(spec.Sheet, err)
	}

	return component.ClipFromGrid(spec.Name, sheet, spec.Loop)
}

func (l *Loader) placeholderClip(spec prefabs.ClipSpec, w, h int, c color.Color) *component.Clip {
	img := Placeholder(w, h, c)
	n := 1
	var durations []time.Duration
	if spec.FrameCount > 0 && spec.FPS > 0 {
		n = spec.FrameCount
		for range n {
			durations = append(durations, time.Duration(float64(time.Second)/spec.FPS))
		}
	}
	frames := make([]image.Image, n)
	for i := range frames {
		frames[i] = img
	}
	clip, _ := component.NewClip(spec.Name, frames, durations, spec.Loop)
	return clip
}

// Transformer scales and mirrors frames on the GPU.
func (l *Loader) Transformer() component.Transformer { return Transform{} }

// Transform is a component.Transformer backed by ebiten draw calls.
type Transform struct{}

func (Transform) Transform(src image.Image, sx, sy float64, flipX, flipY bool) image.Image {
	img, ok := src.(*ebiten.Image)
	if !ok {
		img = ebiten.NewImageFromImage(src)
	}
	b := img.Bounds()
	w, h := int(float64(b.Dx())*sx), int(float64(b.Dy())*sy)
	if w <= 0 || h <= 0 {
		return ebiten.NewImage(1, 1)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Min.X), -float64(b.Min.Y))
	op.GeoM.Scale(sx, sy)
	if flipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(w), 0)
	}
	if flipY {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, float64(h))
	}
	dst := ebiten.NewImage(w, h)
	dst.DrawImage(img, op)
	return dst
}
