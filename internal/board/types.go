package board

import "fmt"

// Direction is a legal tile movement. Tiles never move up.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of Left, Right or Down.
func (d Direction) Valid() bool {
	return d == Left || d == Right || d == Down
}

// delta returns the column/row offset of one step in direction d.
func (d Direction) delta() (dc, dr int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	default:
		panic(fmt.Sprintf("board: invalid direction %d", int(d)))
	}
}

// Orientation is the axis a word runs along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Position addresses a cell. Row 0 is the top of the board.
type Position struct {
	Column int
	Row    int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Column, p.Row)
}

// Tile is a single letter unit. While resting on a board its coordinates
// always match the cell holding it.
type Tile struct {
	Letter rune
	Column int
	Row    int
}

// NewTile creates an unplaced tile at the given coordinates.
func NewTile(letter rune, column, row int) *Tile {
	return &Tile{Letter: letter, Column: column, Row: row}
}

// Position returns the tile's coordinates.
func (t *Tile) Position() Position {
	return Position{Column: t.Column, Row: t.Row}
}

// Cell is one grid location holding at most one tile.
type Cell struct {
	pos  Position
	tile *Tile
}

// Position returns the cell's coordinates.
func (c *Cell) Position() Position {
	return c.pos
}

// Tile returns the occupant, or nil.
func (c *Cell) Tile() *Tile {
	return c.tile
}

// Empty reports whether the cell has no tile.
func (c *Cell) Empty() bool {
	return c.tile == nil
}

// WordMatch is a dictionary word found on the board, anchored at the cell
// holding its first letter.
type WordMatch struct {
	Word        string
	Start       Position
	Orientation Orientation
}

// Positions returns every cell covered by the match.
func (m WordMatch) Positions() []Position {
	out := make([]Position, 0, len(m.Word))
	for i := range len(m.Word) {
		p := m.Start
		if m.Orientation == Horizontal {
			p.Column += i
		} else {
			p.Row += i
		}
		out = append(out, p)
	}
	return out
}

// Lexicon answers word membership queries.
type Lexicon interface {
	IsValid(word string) bool
}
