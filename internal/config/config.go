// Package config provides YAML-based game configuration loading for textris.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/textris/internal/letters"
	"github.com/vovakirdan/textris/internal/session"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// TextrisConfig contains all configuration for the game.
type TextrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Letters    LettersConfig    `yaml:"letters"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
}

// BoardConfig defines the grid size.
type BoardConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// TimingConfig defines how fast tiles fall and how long cleared words flash.
type TimingConfig struct {
	FallInterval time.Duration `yaml:"fall_interval"`
	ClearFlash   time.Duration `yaml:"clear_flash"`
}

// ScoringConfig defines point values and the scoreboard size.
type ScoringConfig struct {
	PointsPerLetter int `yaml:"points_per_letter"`
	MaxScores       int `yaml:"max_scores"`
}

// LettersConfig defines the letter distribution. Weights are keyed by
// lowercase letter and must sum to UpperBound.
type LettersConfig struct {
	UpperBound int            `yaml:"upper_bound"`
	Weights    map[string]int `yaml:"weights"`
}

// DictionaryConfig selects the word list. An empty path uses the built-in list.
type DictionaryConfig struct {
	Path string `yaml:"path"`
}

// Minimum playable board.
const (
	MinColumns = 3
	MinRows    = 3
)

// Validate checks that the configuration can drive a game.
func (c TextrisConfig) Validate() error {
	if c.Board.Columns < MinColumns || c.Board.Rows < MinRows {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d", ErrInvalid,
			c.Board.Columns, c.Board.Rows, MinColumns, MinRows)
	}
	if c.Timing.FallInterval <= 0 {
		return fmt.Errorf("%w: fall_interval must be positive", ErrInvalid)
	}
	if c.Timing.ClearFlash < 0 {
		return fmt.Errorf("%w: clear_flash must not be negative", ErrInvalid)
	}
	if c.Scoring.PointsPerLetter <= 0 {
		return fmt.Errorf("%w: points_per_letter must be positive", ErrInvalid)
	}
	if c.Scoring.MaxScores <= 0 {
		return fmt.Errorf("%w: max_scores must be positive", ErrInvalid)
	}
	if _, err := c.LetterTable(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// LetterTable builds the cumulative letter table from the weights.
func (c TextrisConfig) LetterTable() (*letters.Table, error) {
	weights := make(map[rune]int, len(c.Letters.Weights))
	for key, w := range c.Letters.Weights {
		r := []rune(key)
		if len(r) != 1 {
			return nil, fmt.Errorf("%w: weight key %q is not a single letter", letters.ErrBadWeights, key)
		}
		weights[r[0]] = w
	}
	return letters.NewTable(weights, c.Letters.UpperBound)
}

// SessionOptions converts the board and scoring settings.
func (c TextrisConfig) SessionOptions() session.Options {
	return session.Options{
		Columns:         c.Board.Columns,
		Rows:            c.Board.Rows,
		PointsPerLetter: c.Scoring.PointsPerLetter,
	}
}
