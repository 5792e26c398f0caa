package obj

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/prefabs"
)

func testConfig(t *testing.T) *prefabs.Config {
	t.Helper()
	cfg, err := prefabs.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	return cfg
}

type playedClip struct {
	path    string
	channel int
}

type recordingAudio struct {
	clips []playedClip
	loops []string
}

func (a *recordingAudio) PlayClip(path string, channel int) {
	a.clips = append(a.clips, playedClip{path, channel})
}
func (a *recordingAudio) PlayLoop(path string) { a.loops = append(a.loops, path) }

func (a *recordingAudio) played(path string) bool {
	for _, c := range a.clips {
		if c.path == path {
			return true
		}
	}
	return false
}

func testDeps(audio Audio) Deps {
	return Deps{Audio: audio, Rand: rand.New(rand.NewPCG(7, 7))}
}

// floor lays a row of tiles with their top edge at y.
func floor(x0, y float64, n int) []common.Rect {
	tiles := make([]common.Rect, n)
	for i := range tiles {
		tiles[i] = common.NewRect(x0+float64(i*common.TileSize), y, common.TileSize, common.TileSize)
	}
	return tiles
}

func tick(n int) time.Duration {
	return time.Duration(n) * time.Second / common.TPS
}

type recordingCanvas struct {
	blits   int
	rects   int
	circles int
}

func (c *recordingCanvas) Blit(image.Image, float64, float64)                       { c.blits++ }
func (c *recordingCanvas) FillRect(float64, float64, float64, float64, color.Color) { c.rects++ }
func (c *recordingCanvas) FillCircle(float64, float64, float64, color.Color)        { c.circles++ }

func msDur(ms int) time.Duration { return time.Duration(ms) * time.Millisecond }
