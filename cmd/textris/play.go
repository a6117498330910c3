package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/textris/internal/games/textris"
	"github.com/vovakirdan/textris/internal/platform/tui"
	"github.com/vovakirdan/textris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing right away.

Controls:
  Left/Right, A/D, H/L  - Shift the falling letter
  Down, S, J            - Push it one row down
  Space                 - Drop it to the bottom
  P                     - Pause
  Q/Ctrl+C              - Quit

When the game ends and the score makes the top 5, you are asked for a
name. Then choose Restart or Main Menu.

Examples:
  textris play
  textris play --seed 42
  textris play --config ./my-textris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rc := runtimeConfig()
	opts := tui.Options{Store: store, Logger: logger, MaxScores: cfg.Scoring.MaxScores}

	game, err := registry.Create(textris.GameID)
	if err != nil {
		return err
	}
	result, err := tui.Run(game, rc, opts)
	if err != nil {
		return err
	}
	if !result.BackToMenu {
		return nil
	}

	// Main Menu from a direct game opens the menu loop.
	result.Config.Seed = 0
	return menuLoop(store, cfg.Scoring.MaxScores, result.Config)
}
