// spsa previews one animation clip from the prefab specs, the way the game
// cuts it: Aseprite metadata, a fixed strip, or a square grid.
//
// Usage:
//
//	spsa --prefab player --clip walking
//	spsa --prefab sword --clip attack --scale 6
//	spsa --prefab enemy --list
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/cobra"

	"github.com/milk9111/mageknight/assets"
	"github.com/milk9111/mageknight/component"
	"github.com/milk9111/mageknight/prefabs"
)

const size = 512

var (
	flagPrefab string
	flagClip   string
	flagScale  float64
	flagList   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "spsa",
	Short:        "Preview a sprite sheet animation clip",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagPrefab, "prefab", "player", "player, enemy, flying_enemy or sword")
	rootCmd.Flags().StringVar(&flagClip, "clip", "", "clip name (default: the prefab's first clip)")
	rootCmd.Flags().Float64Var(&flagScale, "scale", 4, "draw scale")
	rootCmd.Flags().BoolVar(&flagList, "list", false, "print the prefab's clips and exit")
}

// clipSpecs returns the clips of a prefab and the frame size the game uses.
func clipSpecs(cfg *prefabs.Config, prefab string) ([]prefabs.ClipSpec, int, int, color.Color, error) {
	switch prefab {
	case "player":
		a := cfg.Player.Animation
		return a.Clips, int(a.SpriteW), int(a.SpriteH), cfg.Player.Placeholder.RGBA8(), nil
	case "enemy":
		a := cfg.Enemy.Animation
		return a.Clips, int(a.SpriteW), int(a.SpriteH), cfg.Enemy.Placeholder.RGBA8(), nil
	case "flying_enemy":
		a := cfg.FlyingEnemy.Animation
		return a.Clips, int(a.SpriteW), int(a.SpriteH), cfg.FlyingEnemy.Placeholder.RGBA8(), nil
	case "sword":
		s := cfg.Player.Sword
		return []prefabs.ClipSpec{s.Idle, s.Attack}, int(s.Width), int(s.Height), s.Color.RGBA8(), nil
	}
	return nil, 0, 0, nil, fmt.Errorf("unknown prefab %q", prefab)
}

func run(cmd *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "spsa"})

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		return fmt.Errorf("load prefabs: %w", err)
	}
	specs, w, h, placeholder, err := clipSpecs(cfg, flagPrefab)
	if err != nil {
		return err
	}
	if len(specs) == 0 {
		return fmt.Errorf("prefab %s has no clips", flagPrefab)
	}

	if flagList {
		names := make([]string, 0, len(specs))
		for _, s := range specs {
			names = append(names, s.Name)
		}
		sort.Strings(names)
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
		return nil
	}

	loader := assets.NewLoader(logger)
	anim := component.NewAnimationPlayer()
	anim.Transformer = loader.Transformer()
	for _, s := range specs {
		anim.Add(loader.Clip(s, w, h, placeholder))
	}
	name := flagClip
	if name == "" {
		name = specs[0].Name
	}
	if err := anim.Play(name, 0, true); err != nil {
		return err
	}
	anim.SetScale(flagScale, flagScale)

	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle(fmt.Sprintf("spsa: %s/%s", flagPrefab, name))
	return ebiten.RunGame(&preview{anim: anim, clip: name})
}

// preview loops one clip. Space restarts it, F flips it.
type preview struct {
	anim  *component.AnimationPlayer
	clip  string
	ticks int
}

func (p *preview) now() time.Duration { return time.Duration(p.ticks) * time.Second / 60 }

func (p *preview) Update() error {
	p.ticks++
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || !p.anim.IsPlaying() {
		_ = p.anim.Play(p.clip, p.now(), true)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		fx, fy := p.anim.Flip()
		p.anim.SetFlip(!fx, fy)
	}
	return nil
}

func (p *preview) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff})
	w, h := p.anim.Size()
	p.anim.Draw(blitter{screen}, (size-w)/2, (size-h)/2, p.now())
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %.0fx%.0f  [space] restart  [f] flip", p.clip, w, h))
}

func (p *preview) Layout(outsideWidth, outsideHeight int) (int, int) {
	return size, size
}

type blitter struct{ dst *ebiten.Image }

func (b blitter) Blit(img image.Image, x, y float64) {
	e, ok := img.(*ebiten.Image)
	if !ok {
		e = ebiten.NewImageFromImage(img)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterNearest
	b.dst.DrawImage(e, op)
}
