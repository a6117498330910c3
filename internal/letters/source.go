package letters

import (
	"math/rand"

	"lukechampine.com/frand"
)

// RNG is the random source a Source draws from.
// *math/rand.Rand and *frand.RNG both satisfy it.
type RNG interface {
	Intn(n int) int
}

// Source produces weighted random letters.
type Source struct {
	table *Table
	rng   RNG
}

// NewSource creates a letter source over table using rng.
func NewSource(table *Table, rng RNG) *Source {
	return &Source{table: table, rng: rng}
}

// NewSeeded creates a source with a deterministic RNG for seed.
// Seed 0 selects a fast non-deterministic generator.
func NewSeeded(table *Table, seed int64) *Source {
	if seed == 0 {
		return NewSource(table, frand.New())
	}
	return NewSource(table, rand.New(rand.NewSource(seed)))
}

// NextLetter draws a letter.
func (s *Source) NextLetter() rune {
	return s.table.Resolve(s.rng.Intn(s.table.Upper()))
}
