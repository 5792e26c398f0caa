package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/milk9111/mageknight/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Parse level files and report their contents",
	Long: `Parse every embedded level, or only --level, and print tile and spawn
counts. Exits non-zero when a level has rows of unequal length.

Examples:
  mageknight validate
  mageknight validate --level ./mylevel.yaml`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	names := levels.Names()
	if flagLevel != "" {
		names = []string{flagLevel}
	}
	if len(names) == 0 {
		return fmt.Errorf("no levels found")
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, name := range names {
		summary, err := validateLevel(name)
		if err != nil {
			failed++
			var malformed *levels.MalformedMapError
			if errors.As(err, &malformed) {
				logger.Error("malformed level", "level", name, "row", malformed.Row, "want", malformed.Want, "got", malformed.Got)
			} else {
				logger.Error("invalid level", "level", name, "err", err)
			}
			continue
		}
		fmt.Fprintln(out, summary)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d levels failed validation", failed, len(names))
	}
	return nil
}

func validateLevel(name string) (string, error) {
	lvl, err := levels.Load(name)
	if err != nil {
		return "", err
	}
	g, err := lvl.Grid()
	if err != nil {
		return "", err
	}
	spawn := "default"
	if g.PlayerSpawn != nil {
		spawn = fmt.Sprintf("%.0f,%.0f", g.PlayerSpawn.X, g.PlayerSpawn.Y)
	}
	return fmt.Sprintf("%-12s %3dx%-3d tiles=%-4d death=%-3d ground=%-2d flying=%-2d spawn=%s",
		lvl.Name, g.Cols, g.Rows, len(g.Tiles), len(g.DeathZones),
		len(g.GroundSpawns), len(g.FlyingSpawns), spawn), nil
}
