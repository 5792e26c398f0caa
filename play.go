package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/mageknight/common"
	"github.com/milk9111/mageknight/prefabs"
)

var (
	flagDebug       bool
	flagWatch       bool
	flagScale       float64
	flagBaseMonitor bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Open the game window on the title menu.

Controls (default scheme, Tab switches to arrows):
  A/D         - Move
  W/Space     - Jump
  J           - Swing the sword
  Esc/P       - Pause

Examples:
  mageknight play
  mageknight play --level training
  mageknight play --watch --debug`,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "draw hitboxes and the FPS counter")
	cmd.Flags().BoolVar(&flagWatch, "watch", false, "reload prefabs/*.yaml when they change on disk")
	cmd.Flags().Float64Var(&flagScale, "scale", 2, "window scale relative to the 640x480 base resolution")
	cmd.Flags().BoolVarP(&flagBaseMonitor, "monitor", "m", false, "use the first monitor instead of the primary one")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	if flagDebug && flagLogLevel == "info" {
		logger.SetLevel(log.DebugLevel)
	}
	if flagScale <= 0 {
		return fmt.Errorf("--scale must be positive, got %v", flagScale)
	}

	cfg, err := prefabs.LoadConfig()
	if err != nil {
		return fmt.Errorf("load prefabs: %w", err)
	}

	game, err := NewGame(cfg, GameOptions{
		Level: flagLevel,
		Debug: flagDebug,
	}, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	if flagWatch {
		if err := game.Watch(prefabs.Dir); err != nil {
			logger.Warn("hot reload disabled", "dir", prefabs.Dir, "err", err)
		}
	}

	if flagBaseMonitor {
		if monitors := ebiten.AppendMonitors(nil); len(monitors) > 0 {
			ebiten.SetMonitor(monitors[0])
		}
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(common.BaseWidth*flagScale), int(common.BaseHeight*flagScale))
	ebiten.SetWindowTitle("Mage Knight")
	ebiten.SetTPS(common.TPS)

	logger.Info("starting", "level", game.world.Level.Name, "scale", flagScale, "watch", flagWatch)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Debug("window closed")
	return nil
}
