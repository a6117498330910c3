package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordSet map[string]bool

func (w wordSet) IsValid(word string) bool { return w[word] }

func words(ws ...string) wordSet {
	set := wordSet{}
	for _, w := range ws {
		set[w] = true
	}
	return set
}

func TestDetectWordsEmptyCell(t *testing.T) {
	b := New(5, 8)
	assert.Empty(t, b.DetectWords(Position{Column: 2, Row: 7}, words("cat")))
}

func TestDetectWordsSimpleHorizontal(t *testing.T) {
	b := New(5, 8)
	for i, ch := range "cat" {
		require.True(t, b.PlaceTile(NewTile(ch, i, 3)))
	}

	got := b.DetectWords(Position{Column: 0, Row: 3}, words("cat"))

	require.Len(t, got, 1)
	assert.Equal(t, WordMatch{Word: "cat", Start: Position{Column: 0, Row: 3}, Orientation: Horizontal}, got[0])
}

func TestDetectWordsFromAnyCellOfTheRun(t *testing.T) {
	b := fromRows(t,
		".....",
		".cat.",
	)

	for col := 1; col <= 3; col++ {
		got := b.DetectWords(Position{Column: col, Row: 1}, words("cat"))
		require.Len(t, got, 1, "from column %d", col)
		assert.Equal(t, Position{Column: 1, Row: 1}, got[0].Start)
	}
}

func TestDetectWordsShortRunsNeverMatch(t *testing.T) {
	b := fromRows(t,
		".....",
		"...o.",
		".at..",
		"..x..",
	)
	lex := words("at", "a", "t", "to", "ox", "tx")

	assert.Empty(t, b.DetectWords(Position{Column: 1, Row: 2}, lex))
	assert.Empty(t, b.DetectWords(Position{Column: 3, Row: 1}, lex))
}

func TestDetectWordsOnlyMatchingWindows(t *testing.T) {
	b := fromRows(t,
		".....",
		"beans",
	)

	got := b.DetectWords(Position{Column: 4, Row: 1}, words("bean"))

	require.Len(t, got, 1)
	assert.Equal(t, WordMatch{Word: "bean", Start: Position{Column: 0, Row: 1}, Orientation: Horizontal}, got[0])
}

func TestDetectWordsReportsOverlaps(t *testing.T) {
	b := fromRows(t,
		".....",
		"beans",
	)

	got := b.DetectWords(Position{Column: 2, Row: 1}, words("bea", "ans", "bean", "beans"))

	assert.Equal(t, []WordMatch{
		{Word: "bea", Start: Position{Column: 0, Row: 1}, Orientation: Horizontal},
		{Word: "ans", Start: Position{Column: 2, Row: 1}, Orientation: Horizontal},
		{Word: "bean", Start: Position{Column: 0, Row: 1}, Orientation: Horizontal},
		{Word: "beans", Start: Position{Column: 0, Row: 1}, Orientation: Horizontal},
	}, got, "windows are ordered by length, then by offset")
}

func TestDetectWordsHorizontalBeforeVertical(t *testing.T) {
	b := fromRows(t,
		"......",
		"..dog.",
		"..a...",
		"..y...",
	)

	got := b.DetectWords(Position{Column: 2, Row: 1}, words("dog", "day"))

	assert.Equal(t, []WordMatch{
		{Word: "dog", Start: Position{Column: 2, Row: 1}, Orientation: Horizontal},
		{Word: "day", Start: Position{Column: 2, Row: 1}, Orientation: Vertical},
	}, got)
}

func TestDetectWordsVerticalScansDownwardOnly(t *testing.T) {
	b := fromRows(t,
		".c.",
		".a.",
		".t.",
		".s.",
	)
	lex := words("cat", "ats")

	// From the middle of the column only the cells at and below count:
	// "ats" is found, "cat" above is not.
	got := b.DetectWords(Position{Column: 1, Row: 1}, lex)
	assert.Equal(t, []WordMatch{
		{Word: "ats", Start: Position{Column: 1, Row: 1}, Orientation: Vertical},
	}, got)

	// The same column scanned from the top finds both.
	got = b.DetectWords(Position{Column: 1, Row: 0}, lex)
	assert.Equal(t, []WordMatch{
		{Word: "cat", Start: Position{Column: 1, Row: 0}, Orientation: Vertical},
		{Word: "ats", Start: Position{Column: 1, Row: 1}, Orientation: Vertical},
	}, got)
}

func TestDetectWordsHorizontalExtendsBothWays(t *testing.T) {
	b := fromRows(t,
		".....",
		"dogs.",
	)

	got := b.DetectWords(Position{Column: 3, Row: 1}, words("dog"))
	require.Len(t, got, 1)
	assert.Equal(t, Position{Column: 0, Row: 1}, got[0].Start)
}

func TestDetectWordsLongRunUsesWindowsUpToFive(t *testing.T) {
	b := fromRows(t,
		".......",
		"stripes",
	)

	got := b.DetectWords(Position{Column: 0, Row: 1}, words("stripes", "strip", "ripe", "pes"))

	assert.Equal(t, []WordMatch{
		{Word: "pes", Start: Position{Column: 4, Row: 1}, Orientation: Horizontal},
		{Word: "ripe", Start: Position{Column: 2, Row: 1}, Orientation: Horizontal},
		{Word: "strip", Start: Position{Column: 0, Row: 1}, Orientation: Horizontal},
	}, got)
}

func TestDetectWordsLowercasesLetters(t *testing.T) {
	b := fromRows(t,
		"...",
		"CAT",
	)
	got := b.DetectWords(Position{Column: 0, Row: 1}, words("cat"))
	require.Len(t, got, 1)
	assert.Equal(t, "cat", got[0].Word)
}

func TestDetectWordsGapEndsRun(t *testing.T) {
	b := fromRows(t,
		".....",
		"ca.at",
	)
	assert.Empty(t, b.DetectWords(Position{Column: 0, Row: 1}, words("cat", "caat")))
}
