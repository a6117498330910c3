package main

import (
	"fmt"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"lukechampine.com/frand"

	"github.com/vovakirdan/textris/internal/letters"
	"github.com/vovakirdan/textris/internal/runner"
	"github.com/vovakirdan/textris/internal/session"
)

var (
	flagTicks    uint64
	flagInterval time.Duration
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game with a random player",
	Long: `Play one game without a terminal UI. A random player shifts every
new letter a few columns and drops it; gravity ticks at --interval.
Prints the final score and the cleared words.

Use --log-level debug to see every session event.

Examples:
  textris simulate
  textris simulate --seed 7 --ticks 2000
  textris simulate --interval 10ms --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Stop after this many gravity ticks (0 = until game over)")
	simulateCmd.Flags().DurationVar(&flagInterval, "interval", time.Millisecond, "Time between gravity ticks")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, dict, err := loadConfig()
	if err != nil {
		return err
	}
	table, err := cfg.LetterTable()
	if err != nil {
		return err
	}

	obs := runner.NewChannelObserver(1024)
	sess, err := session.New(dict, letters.NewSeeded(table, flagSeed), cfg.SessionOptions(),
		session.Observers{obs, session.LogObserver(logger)})
	if err != nil {
		return err
	}

	r := runner.New(sess, runner.Config{
		TickInterval:   flagInterval,
		StopOnGameOver: true,
		MaxTicks:       flagTicks,
	})

	var player letters.RNG = frand.New()
	if flagSeed != 0 {
		player = rand.New(rand.NewSource(flagSeed))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("simulation started", "seed", flagSeed, "interval", flagInterval, "ticks", flagTicks)
	sum, err := runner.Autoplay(ctx, r, obs, player)
	if err != nil && ctx.Err() == nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Score:     %d\n", sum.Score)
	fmt.Fprintf(out, "Ticks:     %d\n", sum.Ticks)
	fmt.Fprintf(out, "Game over: %t\n", sum.GameOver)
	fmt.Fprintf(out, "Words:     %d\n", len(sum.Words))
	if len(sum.Words) > 0 {
		fmt.Fprintf(out, "           %s\n", strings.Join(sum.Words, " "))
	}
	if sum.Dropped > 0 {
		logger.Warn("events dropped", "count", sum.Dropped)
	}
	return nil
}
