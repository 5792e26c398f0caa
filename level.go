package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"

	"github.com/milk9111/mageknight/assets"
	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/levels"
	"github.com/milk9111/mageknight/obj"
	"github.com/milk9111/mageknight/prefabs"
)

// maxOutline bounds the level size, in pixels per side, that gets a
// precomputed outline image.
const maxOutline = 8192

// levelView renders the static part of a level: solid tiles, their outline
// and death zones.
type levelView struct {
	grid       *levels.Grid
	tileImg    *ebiten.Image
	spikeImg   *ebiten.Image
	outlineImg *ebiten.Image
}

func newLevelView(grid *levels.Grid, spec prefabs.GraphicsSpec, loader *assets.Loader) *levelView {
	size := int(grid.TileSize)
	if size <= 0 {
		size = common.TileSize
	}
	return &levelView{
		grid:       grid,
		tileImg:    tileImage(loader, spec, size),
		spikeImg:   triangleImage(size, spec.DeathZone.RGBA8()),
		outlineImg: tileOutline(grid, spec.Outline.RGBA8()),
	}
}

// tileOutline rings the solid tile mass with a 2px border.
func tileOutline(grid *levels.Grid, col color.RGBA) *ebiten.Image {
	w, h := int(grid.Width()), int(grid.Height())
	if len(grid.Tiles) == 0 || w > maxOutline || h > maxOutline {
		return nil
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	for _, t := range grid.Tiles {
		r := image.Rect(int(t.X), int(t.Y), int(t.Right()), int(t.Bottom()))
		draw.Draw(mask, r, image.Opaque, image.Point{}, draw.Src)
	}
	return ebiten.NewImageFromImage(component.Outline(mask, 2, col))
}

// tileImage uses the tile sheet when it loads, else a flat tile with a
// lighter top edge.
func tileImage(loader *assets.Loader, spec prefabs.GraphicsSpec, size int) *ebiten.Image {
	if spec.TileSheet != "" {
		if img, err := loader.Image(spec.TileSheet); err == nil {
			return img
		}
	}
	img := ebiten.NewImage(size, size)
	img.Fill(spec.Tile.RGBA8())
	edge := ebiten.NewImage(size, 3)
	edge.Fill(spec.TileEdge.RGBA8())
	img.DrawImage(edge, nil)
	return img
}

// triangleImage builds an upward-pointing filled triangle.
func triangleImage(size int, col color.RGBA) *ebiten.Image {
	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	cx := float64(size) / 2
	for y := 0; y < size; y++ {
		half := float64(y) / float64(max(size-1, 1)) * float64(size) / 2
		for x := 0; x < size; x++ {
			fx := float64(x) + 0.5
			if fx >= cx-half && fx <= cx+half {
				rgba.SetRGBA(x, y, col)
			}
		}
	}
	return ebiten.NewImageFromImage(rgba)
}

func (l *levelView) Draw(screen *ebiten.Image, cam *obj.Camera) {
	if l.outlineImg != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-cam.X, -cam.Y)
		screen.DrawImage(l.outlineImg, op)
	}
	l.drawRects(screen, cam, l.grid.Tiles, l.tileImg)
	l.drawRects(screen, cam, l.grid.DeathZones, l.spikeImg)
}

func (l *levelView) drawRects(screen *ebiten.Image, cam *obj.Camera, rects []common.Rect, img *ebiten.Image) {
	b := img.Bounds()
	for _, r := range rects {
		if !cam.Visible(r) {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.Width/float64(b.Dx()), r.Height/float64(b.Dy()))
		op.GeoM.Translate(r.X-cam.X, r.Y-cam.Y)
		screen.DrawImage(img, op)
	}
}
