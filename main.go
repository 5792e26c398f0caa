// mageknight is a side-scrolling platformer.
//
// Usage:
//
//	mageknight                 - Play the default level
//	mageknight play            - Play a level
//	mageknight validate        - Check level files
//
// Global flags:
//
//	--level <name>      - Level name in levels/ or a path to a .yaml file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagLevel    string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mageknight",
	Short: "A side-scrolling sword platformer",
	Long: `Mage Knight is a side-scrolling platformer. Walk, jump and swing a
sword through tile levels patrolled by walking and flying enemies.

Examples:
  mageknight
  mageknight play --level training --watch
  mageknight validate`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "level name in levels/ (basename, .yaml optional) or a file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: debug, info, warn, error")

	addPlayFlags(rootCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
}

func newLogger() (*log.Logger, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "mageknight",
	})
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}
