package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"golang.org/x/image/colornames"

	"github.com/milk9111/mageknight/assets"
	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/fx"
	"github.com/milk9111/mageknight/obj"
	"github.com/milk9111/mageknight/prefabs"
	"github.com/milk9111/mageknight/system"
)

// fadeFrames is how long the screen takes to go dark or clear.
const fadeFrames = 20

// errQuit ends the run loop without reporting a failure.
var errQuit = errors.New("quit")

type gameState int

const (
	stateTitle gameState = iota
	statePlaying
	statePaused
)

func (s gameState) String() string {
	switch s {
	case stateTitle:
		return "title"
	case statePlaying:
		return "playing"
	case statePaused:
		return "paused"
	}
	return "unknown"
}

type GameOptions struct {
	Level string
	Debug bool
}

type Game struct {
	frames   int
	state    gameState
	quitting bool

	cfg    *prefabs.Config
	opts   GameOptions
	logger *log.Logger
	rng    *rand.Rand

	input  *Input
	loader *assets.Loader
	mixer  *assets.Mixer
	world  *system.World

	canvas *Canvas
	view   *levelView
	bg     *background
	light  *lighting
	fog    *fx.Fog
	flies  *fx.Fireflies
	fade   *fade

	title   *ebitenui.UI
	pause   *ebitenui.UI
	watcher *prefabs.Watcher
}

func NewGame(cfg *prefabs.Config, opts GameOptions, logger *log.Logger) (*Game, error) {
	input, err := NewInput(cfg.Controls)
	if err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	g := &Game{
		cfg:    cfg,
		opts:   opts,
		logger: logger,
		rng:    rand.New(rand.NewPCG(seed, seed>>1|1)),
		input:  input,
		loader: assets.NewLoader(logger.WithPrefix("assets")),
		canvas: NewCanvas(),
		fade:   newFade(fadeFrames),
	}
	g.mixer = assets.NewMixer(audio.NewContext(cfg.Mixer.SampleRate), cfg.Mixer, logger.WithPrefix("audio"))

	deps := obj.Deps{Audio: g.mixer, Sprites: g.loader, Rand: g.rng}
	g.world, err = system.NewWorld(cfg, opts.Level, input, deps, logger.WithPrefix("world"))
	if err != nil {
		return nil, err
	}

	g.buildGraphics()
	g.title = newTitleMenu(g)
	g.pause = newPauseMenu(g)
	return g, nil
}

// buildGraphics (re)creates everything derived from the graphics spec.
func (g *Game) buildGraphics() {
	spec := g.cfg.Graphics
	g.view = newLevelView(g.world.Grid, spec, g.loader)
	g.bg = newBackground(spec.Background)
	g.light = newLighting(spec.Overlay)
	g.fog = fx.NewFog(spec.Fog.Count, common.BaseWidth, common.BaseHeight, spec.Fog.Speed, spec.Fog.Alpha, spec.Fog.Color.RGBA8(), g.rng)
	g.flies = fx.NewFireflies(spec.Fireflies.Count, common.BaseWidth, common.BaseHeight, spec.Fireflies.Color.RGBA8(), g.rng)
}

// Watch reloads spec files under dir while the game runs.
func (g *Game) Watch(dir string) error {
	w, err := prefabs.NewWatcher(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	g.watcher = w
	g.logger.Info("watching prefabs", "dir", dir)
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) start() {
	g.setState(statePlaying)
	g.fade.Black()
	g.fade.In()
	g.mixer.PlayLoop(g.cfg.Mixer.Music)
}

func (g *Game) resume() {
	g.setState(statePlaying)
	g.mixer.ResumeMusic()
}

func (g *Game) quit() { g.quitting = true }

func (g *Game) setState(s gameState) {
	if g.state == s {
		return
	}
	g.logger.Debug("state", "from", g.state, "to", s)
	g.state = s
}

func (g *Game) Update() error {
	g.frames++
	g.reload()
	g.input.Update()

	switch g.state {
	case stateTitle:
		g.title.Update()
	case statePlaying:
		if g.input.IsJustPressed(obj.ActionPause) {
			g.setState(statePaused)
			g.mixer.StopMusic()
			break
		}
		wasDead := g.world.Player.Dead
		g.world.Update()
		switch dead := g.world.Player.Dead; {
		case dead && !wasDead:
			g.fade.Out()
		case wasDead && !dead:
			g.fade.In()
		}
		g.fade.Update()
		g.fog.Update()
		g.flies.Update()
	case statePaused:
		if g.input.IsJustPressed(obj.ActionPause) {
			g.resume()
			break
		}
		g.pause.Update()
	}

	if g.quitting {
		return errQuit
	}
	return nil
}

// reload applies spec files edited since the last tick.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			g.logger.Warn("watcher", "err", err)
		}
	default:
	}

	for _, path := range g.watcher.Drain() {
		if err := g.cfg.Reload(path); err != nil {
			g.logger.Warn("reload failed", "file", path, "err", err)
			continue
		}
		switch filepath.Base(path) {
		case prefabs.ControlsFile:
			if err := g.input.Apply(g.cfg.Controls); err != nil {
				g.logger.Warn("controls rejected", "err", err)
			}
		case prefabs.MixerFile:
			g.mixer.ApplySpec(g.cfg.Mixer)
		case prefabs.GraphicsFile:
			g.buildGraphics()
			g.world.Camera.Smooth = g.cfg.Graphics.Camera.Smoothing
		default:
			g.world.ApplyConfig(g.cfg)
		}
		g.logger.Info("reloaded", "file", filepath.Base(path))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.world
	cam := w.Camera
	body := w.Player.Bounds()

	g.canvas.Target(screen)
	g.bg.Draw(screen, body.CenterX())
	g.view.Draw(screen, cam)
	w.DrawHostiles(g.canvas)
	g.fog.Draw(g.canvas)
	g.light.Draw(screen, g.canvas, body.CenterX()-cam.X, body.CenterY()-cam.Y)
	w.DrawPlayer(g.canvas)
	w.DrawEffects(g.canvas)
	g.flies.Draw(g.canvas, cam.X, cam.Y)

	if g.state == stateTitle {
		g.drawTitle(screen)
		g.title.Draw(screen)
		return
	}

	g.fade.Draw(screen)
	drawHUD(screen, g.canvas, w.Player.Health)
	if g.opts.Debug {
		drawDebug(screen, g.canvas, w, g.input.Scheme())
	}
	if g.state == statePaused {
		g.pause.Draw(screen)
	}
}

// drawTitle pulses the game name above the menu.
func (g *Game) drawTitle(screen *ebiten.Image) {
	pulse := 0.5 + 0.5*math.Sin(float64(g.frames)*0.08)
	c := color.NRGBA{R: colornames.Gold.R, G: colornames.Gold.G, B: colornames.Gold.B, A: uint8(80 + 175*pulse)}
	drawCentered(screen, "MAGE KNIGHT", common.BaseWidth/2, common.BaseHeight/4, c)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}
