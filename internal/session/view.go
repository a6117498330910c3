package session

import "github.com/vovakirdan/textris/internal/board"

// View is a point-in-time copy of a session for rendering and tests.
type View struct {
	Columns   int
	Rows      int
	Letters   [][]rune // [row][column], 0 for an empty cell
	Active    *board.Tile
	Next      rune
	Score     int
	State     State
	Busy      bool
	LastWords []board.WordMatch
}

// View copies the current session state.
func (s *GameSession) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Columns:   s.board.Columns(),
		Rows:      s.board.Rows(),
		Letters:   make([][]rune, s.board.Rows()),
		Next:      s.next,
		Score:     s.score,
		State:     s.state,
		Busy:      s.busy,
		LastWords: append([]board.WordMatch(nil), s.lastWords...),
	}
	for row := range v.Letters {
		v.Letters[row] = make([]rune, v.Columns)
		for col := range v.Letters[row] {
			if t := s.board.Cell(col, row).Tile(); t != nil {
				v.Letters[row][col] = t.Letter
			}
		}
	}
	if s.active != nil {
		active := *s.active
		v.Active = &active
	}
	return v
}

// Letter returns the letter at (column, row), or 0.
func (v View) Letter(column, row int) rune {
	if row < 0 || row >= len(v.Letters) || column < 0 || column >= len(v.Letters[row]) {
		return 0
	}
	return v.Letters[row][column]
}

// String renders the board like board.Board.String.
func (v View) String() string {
	out := make([]rune, 0, (v.Columns+1)*v.Rows)
	for row, line := range v.Letters {
		if row > 0 {
			out = append(out, '\n')
		}
		for _, r := range line {
			if r == 0 {
				r = '.'
			}
			out = append(out, r)
		}
	}
	return string(out)
}
