package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/prefabs"
)

// background is a sky fill with two ridge layers scrolled against the
// player's position. The near ridge moves twice as fast as the far one.
type background struct {
	spec prefabs.BackgroundSpec
	far  *ebiten.Image
	near *ebiten.Image
}

func newBackground(spec prefabs.BackgroundSpec) *background {
	return &background{
		spec: spec,
		far:  ridge(common.BaseWidth, common.BaseHeight/2, 5, 0.8, spec.Far.RGBA8()),
		near: ridge(common.BaseWidth, common.BaseHeight/3, 9, 0.6, spec.Near.RGBA8()),
	}
}

// ridge draws a repeating silhouette: the sum of two sines, so the left and
// right edges line up when tiled.
func ridge(w, h, peaks int, rough float64, col color.RGBA) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		t := float64(x) / float64(w) * 2 * math.Pi
		v := 0.5 + 0.3*math.Sin(t*float64(peaks)) + 0.2*rough*math.Sin(t*float64(peaks*3)+1)
		top := int(float64(h) * (1 - common.Clamp(v, 0, 1)))
		for y := top; y < h; y++ {
			img.SetRGBA(x, y, col)
		}
	}
	return ebiten.NewImageFromImage(img)
}

func (b *background) Draw(screen *ebiten.Image, playerCenterX float64) {
	screen.Fill(b.spec.Sky.RGBA8())
	offset := -playerCenterX * b.spec.Parallax
	b.tile(screen, b.far, offset, common.BaseHeight-b.far.Bounds().Dy())
	b.tile(screen, b.near, offset*2, common.BaseHeight-b.near.Bounds().Dy())
}

func (b *background) tile(screen, img *ebiten.Image, offset float64, y int) {
	w := float64(img.Bounds().Dx())
	start := math.Mod(offset, w)
	if start > 0 {
		start -= w
	}
	for x := start; x < common.BaseWidth; x += w {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, float64(y))
		screen.DrawImage(img, op)
	}
}
