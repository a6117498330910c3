package board

import "strings"

// Window lengths scanned over every run.
const (
	MinWordLen = 3
	MaxWordLen = 5
)

// DetectWords scans the runs through from for dictionary words.
//
// The horizontal run extends left and right from from while cells are
// occupied. The vertical run starts at from and extends downward only; tiles
// above from are never part of it. Windows of length 3, 4 and 5 slide over each
// run left-to-right (top-to-bottom), and every window lex accepts is reported,
// overlaps included. Horizontal matches come first.
func (b *Board) DetectWords(from Position, lex Lexicon) []WordMatch {
	if b.CellAt(from).Empty() {
		return nil
	}

	var matches []WordMatch

	left := from.Column
	for b.occupied(left-1, from.Row) {
		left--
	}
	right := from.Column
	for b.occupied(right+1, from.Row) {
		right++
	}
	var hrun []rune
	for col := left; col <= right; col++ {
		hrun = append(hrun, b.Cell(col, from.Row).tile.Letter)
	}
	matches = append(matches, scanRun(hrun, Position{Column: left, Row: from.Row}, Horizontal, lex)...)

	var vrun []rune
	for row := from.Row; b.occupied(from.Column, row); row++ {
		vrun = append(vrun, b.Cell(from.Column, row).tile.Letter)
	}
	matches = append(matches, scanRun(vrun, from, Vertical, lex)...)

	return matches
}

// scanRun slides windows of MinWordLen..MaxWordLen over run.
func scanRun(run []rune, start Position, o Orientation, lex Lexicon) []WordMatch {
	if len(run) < MinWordLen || lex == nil {
		return nil
	}

	var matches []WordMatch
	for size := MinWordLen; size <= MaxWordLen && size <= len(run); size++ {
		for offset := 0; offset+size <= len(run); offset++ {
			word := strings.ToLower(string(run[offset : offset+size]))
			if !lex.IsValid(word) {
				continue
			}
			anchor := start
			if o == Horizontal {
				anchor.Column += offset
			} else {
				anchor.Row += offset
			}
			matches = append(matches, WordMatch{Word: word, Start: anchor, Orientation: o})
		}
	}
	return matches
}
