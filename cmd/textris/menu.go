package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/textris/internal/core"
	"github.com/vovakirdan/textris/internal/games/textris"
	"github.com/vovakirdan/textris/internal/platform/tui"
	"github.com/vovakirdan/textris/internal/registry"
	"github.com/vovakirdan/textris/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start textris in interactive menu mode.

Menu entries:
  Start Game   - Play; after game over pick Restart or Main Menu
  Scoreboard   - Top 5 names and scores
  Exit         - Leave

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Q            - Quit

Examples:
  textris menu
  textris menu --fps 60
  textris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return menuLoop(store, cfg.Scoring.MaxScores, runtimeConfig())
}

// menuLoop shows the main menu until the player exits.
func menuLoop(store *storage.Store, maxScores int, rc core.RuntimeConfig) error {
	opts := tui.Options{Store: store, Logger: logger, MaxScores: maxScores}

	for {
		menu, err := tui.RunMenu(store, textris.GameID, rc)
		if err != nil {
			return err
		}
		rc = menu.Config

		switch menu.Choice {
		case tui.ChoiceScoreboard:
			goBack, err := tui.RunScoreboard(store, textris.GameID, maxScores, rc.ScreenW, rc.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.ChoiceStart:
			game, err := registry.Create(textris.GameID)
			if err != nil {
				return err
			}
			result, err := tui.Run(game, rc, opts)
			if err != nil {
				return err
			}
			rc = result.Config
			rc.Seed = 0 // only the first game follows --seed
			if !result.BackToMenu {
				return nil
			}

		default:
			return nil
		}
	}
}
