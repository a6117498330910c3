// Package board implements the letter grid: tile placement and movement,
// gravity, and word detection around a freshly locked tile.
package board

import (
	"fmt"
	"strings"
)

// Default board dimensions.
const (
	DefaultColumns = 5
	DefaultRows    = 8
)

// Board owns a fixed columns x rows grid of cells stored in a flat slice.
// Neighbors are found by coordinate arithmetic only.
type Board struct {
	columns int
	rows    int
	cells   []Cell
}

// New creates an empty board. Non-positive dimensions panic.
func New(columns, rows int) *Board {
	if columns <= 0 || rows <= 0 {
		panic(fmt.Sprintf("board: invalid dimensions %dx%d", columns, rows))
	}
	b := &Board{
		columns: columns,
		rows:    rows,
		cells:   make([]Cell, columns*rows),
	}
	for i := range b.cells {
		b.cells[i].pos = Position{Column: i % columns, Row: i / columns}
	}
	return b
}

// Columns returns the board width.
func (b *Board) Columns() int {
	return b.columns
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// InBounds reports whether (column, row) lies on the board.
func (b *Board) InBounds(column, row int) bool {
	return column >= 0 && column < b.columns && row >= 0 && row < b.rows
}

// Cell returns the cell at (column, row). Out-of-bounds coordinates are a
// programmer error and panic.
func (b *Board) Cell(column, row int) *Cell {
	if !b.InBounds(column, row) {
		panic(fmt.Sprintf("board: cell (%d,%d) out of bounds %dx%d", column, row, b.columns, b.rows))
	}
	return &b.cells[row*b.columns+column]
}

// CellAt is Cell addressed by position.
func (b *Board) CellAt(p Position) *Cell {
	return b.Cell(p.Column, p.Row)
}

// occupied reports whether (column, row) is in bounds and holds a tile.
func (b *Board) occupied(column, row int) bool {
	return b.InBounds(column, row) && !b.Cell(column, row).Empty()
}

// PlaceTile binds t into the cell at its coordinates. It fails, leaving the
// board unchanged, when the cell is out of bounds or occupied.
func (b *Board) PlaceTile(t *Tile) bool {
	if t == nil || !b.InBounds(t.Column, t.Row) {
		return false
	}
	c := b.Cell(t.Column, t.Row)
	if !c.Empty() {
		return false
	}
	c.tile = t
	return true
}

// holds reports whether t is the tile resting at its own coordinates.
func (b *Board) holds(t *Tile) bool {
	return t != nil && b.InBounds(t.Column, t.Row) && b.Cell(t.Column, t.Row).tile == t
}

// CanMove reports whether t can step one cell in direction d.
func (b *Board) CanMove(t *Tile, d Direction) bool {
	if !b.holds(t) {
		return false
	}
	dc, dr := d.delta()
	col, row := t.Column+dc, t.Row+dr
	return b.InBounds(col, row) && b.Cell(col, row).Empty()
}

// Move steps t one cell in direction d. It is a no-op returning false when
// CanMove is false.
func (b *Board) Move(t *Tile, d Direction) bool {
	if !b.CanMove(t, d) {
		return false
	}
	dc, dr := d.delta()
	b.relocate(t, t.Column+dc, t.Row+dr)
	return true
}

func (b *Board) relocate(t *Tile, column, row int) {
	b.Cell(t.Column, t.Row).tile = nil
	t.Column, t.Row = column, row
	b.Cell(column, row).tile = t
}

// ApplyGravity lets every unsupported tile fall until it rests on the floor or
// another tile. Each column is compacted bottom-up in a single pass, so the
// result is always fully settled. Returns the number of tiles that moved.
func (b *Board) ApplyGravity() int {
	moved := 0
	for col := 0; col < b.columns; col++ {
		landing := b.rows - 1
		for row := b.rows - 1; row >= 0; row-- {
			t := b.Cell(col, row).tile
			if t == nil {
				continue
			}
			if row != landing {
				b.relocate(t, col, landing)
				moved++
			}
			landing--
		}
	}
	return moved
}

// Settled reports whether no tile has an empty cell below it.
func (b *Board) Settled() bool {
	for col := 0; col < b.columns; col++ {
		for row := 0; row < b.rows-1; row++ {
			if !b.Cell(col, row).Empty() && b.Cell(col, row+1).Empty() {
				return false
			}
		}
	}
	return true
}

// RemoveWord clears the cells covered by m, then applies gravity.
func (b *Board) RemoveWord(m WordMatch) {
	b.RemoveWords([]WordMatch{m})
}

// RemoveWords clears the cells covered by every match, then applies gravity
// once. Overlapping matches share cells, so a batch removes each covered cell
// exactly once and never touches tiles that fall into a cleared row.
func (b *Board) RemoveWords(matches []WordMatch) {
	if len(matches) == 0 {
		return
	}
	for _, m := range matches {
		for _, p := range m.Positions() {
			if b.InBounds(p.Column, p.Row) {
				b.CellAt(p).tile = nil
			}
		}
	}
	b.ApplyGravity()
}

// Clear empties every cell.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i].tile = nil
	}
}

// Tiles returns every resting tile in row-major order.
func (b *Board) Tiles() []*Tile {
	var out []*Tile
	for i := range b.cells {
		if t := b.cells[i].tile; t != nil {
			out = append(out, t)
		}
	}
	return out
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].tile != nil {
			n++
		}
	}
	return n
}

// String renders the board one row per line, '.' marking empty cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.columns + 1) * b.rows)
	for row := 0; row < b.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < b.columns; col++ {
			if t := b.Cell(col, row).tile; t != nil {
				sb.WriteRune(t.Letter)
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
