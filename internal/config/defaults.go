package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/textris/internal/board"
	"github.com/vovakirdan/textris/internal/letters"
	"github.com/vovakirdan/textris/internal/session"
)

//go:embed defaults/textris.yaml
var defaultTextrisYAML []byte

// DefaultTextrisConfig returns the built-in configuration.
func DefaultTextrisConfig() TextrisConfig {
	weights := make(map[string]int, len(letters.DefaultWeights))
	for r, w := range letters.DefaultWeights {
		weights[string(r)] = w
	}

	return TextrisConfig{
		Board: BoardConfig{
			Columns: board.DefaultColumns,
			Rows:    board.DefaultRows,
		},
		Timing: TimingConfig{
			FallInterval: 500 * time.Millisecond,
			ClearFlash:   400 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			PointsPerLetter: session.DefaultPointsPerLetter,
			MaxScores:       5,
		},
		Letters: LettersConfig{
			UpperBound: letters.UpperBound,
			Weights:    weights,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTextrisYAML
}
