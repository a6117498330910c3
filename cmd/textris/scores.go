package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/textris/internal/games/textris"
	"github.com/vovakirdan/textris/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top scores",
	Long: `Display the scoreboard: the best scores with the names they were
entered under.

Examples:
  textris scores
  textris scores --db ./scores.db
  textris scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.ClearScores(textris.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(textris.GameID, cfg.Scoring.MaxScores)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Top %d - Textris\n\n", cfg.Scoring.MaxScores)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'textris play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-*s  %s\n", "Rank", storage.MaxNameLen, "Name", "Score")
	fmt.Fprintf(out, "  %-4s  %-*s  %s\n", "----", storage.MaxNameLen, "----", "-----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-*s  %d\n", i+1, storage.MaxNameLen, entry.Name, entry.Score)
	}
	return nil
}
