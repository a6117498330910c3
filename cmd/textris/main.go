// textris is a word-forming falling-letter puzzle for the terminal.
//
// Usage:
//
//	textris play               - Play a game
//	textris menu               - Start menu with scoreboard
//	textris scores             - Show the top scores
//	textris simulate           - Run a headless game with a random player
//	textris check <word>...    - Look words up in the dictionary
//	textris wordlist <file>    - Normalize a word list
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.textris/scores.db)
//	--config <path>     - Use a custom configuration file
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file (the TUI logs nowhere otherwise)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/textris/internal/config"
	"github.com/vovakirdan/textris/internal/core"
	"github.com/vovakirdan/textris/internal/dictionary"
	"github.com/vovakirdan/textris/internal/games/textris"
	"github.com/vovakirdan/textris/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// logger is configured in the root command's PersistentPreRunE.
var (
	logger    = log.Default()
	logCloser io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "textris",
	Short: "Textris - spell words with falling letters",
	Long: `Textris is a falling-block puzzle where every block is a letter.
Steer each letter as it falls; when it lands, any 3 to 5 letter word it
completes horizontally or downward is cleared and scores 10 points per
letter. The game ends when a new letter has nowhere to appear.

Available commands:
  play      - Play a game directly
  menu      - Main menu with scoreboard
  scores    - View the top scores
  simulate  - Headless game with a random player
  check     - Dictionary lookups
  wordlist  - Normalize a word list file

Examples:
  textris play
  textris menu --fps 60
  textris simulate --seed 7 --ticks 2000
  textris check bean zebra xyzzy`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.textris/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(wordlistCmd)
}

// interactive commands own the terminal, so they log only to --log-file.
var interactive = map[string]bool{"play": true, "menu": true}

func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		out, logCloser = f, f
	case interactive[cmd.Name()]:
		out = io.Discard
	}

	logger = log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "textris",
	})
	log.SetDefault(logger)
	return nil
}

// loadConfig loads the game configuration and its word list and hands both
// to the game package.
func loadConfig() (config.TextrisConfig, *dictionary.Dictionary, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}
	dict, err := dictionary.LoadPathOrDefault(cfg.Dictionary.Path)
	if err != nil {
		return cfg, nil, fmt.Errorf("load word list: %w", err)
	}
	textris.SetDefaults(textris.Options{Config: &cfg, Dictionary: dict, Logger: logger})
	return cfg, dict, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. Interactive commands keep working
// without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
