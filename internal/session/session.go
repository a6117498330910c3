// Package session drives a single game: spawning tiles, letting them fall,
// locking them, clearing words and detecting game over.
//
// All state is guarded by one mutex, so Tick and the player commands may be
// called from different goroutines without interleaving. Observers are
// notified after the state lock is released, in the order events occurred.
package session

import (
	"errors"
	"sync"

	"github.com/samber/lo"

	"github.com/vovakirdan/textris/internal/board"
	"github.com/vovakirdan/textris/internal/dictionary"
)

// State is the phase of the session state machine.
type State string

const (
	StateSpawning State = "spawning"
	StateFalling  State = "falling"
	StateLocking  State = "locking"
	StateClearing State = "clearing"
	StateGameOver State = "game_over"
)

// DefaultPointsPerLetter is the score for each letter of a cleared word.
const DefaultPointsPerLetter = 10

var (
	// ErrNoDictionary is returned when a session is created without words.
	ErrNoDictionary = errors.New("session: dictionary is required")
	// ErrNoLetters is returned when a session is created without a letter source.
	ErrNoLetters = errors.New("session: letter source is required")
)

// LetterSource supplies letters for new tiles.
type LetterSource interface {
	NextLetter() rune
}

// Options configures a session.
type Options struct {
	Columns         int
	Rows            int
	PointsPerLetter int
}

// DefaultOptions returns the reference 5x8 board.
func DefaultOptions() Options {
	return Options{
		Columns:         board.DefaultColumns,
		Rows:            board.DefaultRows,
		PointsPerLetter: DefaultPointsPerLetter,
	}
}

// GameSession owns the board, the active tile and the score.
type GameSession struct {
	mu sync.Mutex

	opts     Options
	board    *board.Board
	dict     *dictionary.Dictionary
	letters  LetterSource
	observer Observer

	active    *board.Tile
	next      rune
	score     int
	state     State
	busy      bool
	lastWords []board.WordMatch

	pending []Event
}

// New creates a session in the Spawning state. The first Tick spawns a tile.
// A missing or empty dictionary is fatal.
func New(dict *dictionary.Dictionary, letters LetterSource, opts Options, observer Observer) (*GameSession, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, ErrNoDictionary
	}
	if letters == nil {
		return nil, ErrNoLetters
	}
	def := DefaultOptions()
	if opts.Columns <= 0 {
		opts.Columns = def.Columns
	}
	if opts.Rows <= 0 {
		opts.Rows = def.Rows
	}
	if opts.PointsPerLetter <= 0 {
		opts.PointsPerLetter = def.PointsPerLetter
	}

	return &GameSession{
		opts:     opts,
		board:    board.New(opts.Columns, opts.Rows),
		dict:     dict,
		letters:  letters,
		observer: observer,
		next:     letters.NextLetter(),
		state:    StateSpawning,
	}, nil
}

// update runs fn under the state lock, then delivers the events it produced.
func (s *GameSession) update(fn func()) {
	events := s.locked(fn)
	if s.observer == nil {
		return
	}
	for _, evt := range events {
		s.observer.Notify(evt)
	}
}

// locked runs fn with the lock held and takes the events it queued.
func (s *GameSession) locked(fn func()) []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.pending = nil }()

	fn()
	return s.pending
}

func (s *GameSession) emit(evt Event) {
	s.pending = append(s.pending, evt)
}

// Tick advances the state machine by one step: spawn a tile when none is
// active, otherwise move the active tile down or lock it. No-op while the
// board is busy or the game is over.
func (s *GameSession) Tick() {
	s.update(func() {
		if s.busy {
			return
		}
		switch s.state {
		case StateSpawning:
			s.spawn()
		case StateFalling:
			if !s.stepDown() {
				s.lock()
			}
		}
	})
}

// MoveCurrent shifts the active tile one cell. It only acts while Falling and
// not busy; reports whether the tile moved. Unknown directions are ignored.
func (s *GameSession) MoveCurrent(dir board.Direction) bool {
	if !dir.Valid() {
		return false
	}
	moved := false
	s.update(func() {
		if s.busy || s.state != StateFalling {
			return
		}
		from := s.active.Position()
		if s.board.Move(s.active, dir) {
			moved = true
			s.emit(TileMovedEvent{Tile: *s.active, From: from})
		}
	})
	return moved
}

// DropToBottom moves the active tile down until blocked and locks it
// immediately. It only acts while Falling and not busy.
func (s *GameSession) DropToBottom() bool {
	dropped := false
	s.update(func() {
		if s.busy || s.state != StateFalling {
			return
		}
		from := s.active.Position()
		for s.board.Move(s.active, board.Down) {
		}
		if s.active.Position() != from {
			s.emit(TileMovedEvent{Tile: *s.active, From: from})
		}
		s.lock()
		dropped = true
	})
	return dropped
}

// Reset empties the board and zeroes the score, returning to Spawning.
// The dictionary and letter source are kept. Safe to call at any time.
func (s *GameSession) Reset() {
	s.update(func() {
		s.board.Clear()
		s.active = nil
		s.busy = false
		s.lastWords = nil
		s.state = StateSpawning
		if s.score != 0 {
			s.emit(ScoreChangedEvent{Score: 0, Delta: -s.score})
			s.score = 0
		}
	})
}

// SetBusy marks the board as busy while a presentation of cleared words is in
// flight. Tick and player commands are ignored until it is cleared.
func (s *GameSession) SetBusy(busy bool) {
	s.mu.Lock()
	s.busy = busy
	s.mu.Unlock()
}

// Busy reports the board-busy flag.
func (s *GameSession) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Score returns the current score.
func (s *GameSession) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// IsGameOver reports whether the session has ended.
func (s *GameSession) IsGameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateGameOver
}

// State returns the current state machine phase.
func (s *GameSession) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Options returns the options the session was built with.
func (s *GameSession) Options() Options {
	return s.opts
}

// spawnPosition is the top row, middle column.
func (s *GameSession) spawnPosition() board.Position {
	return board.Position{Column: s.opts.Columns / 2, Row: 0}
}

func (s *GameSession) spawn() {
	pos := s.spawnPosition()
	tile := board.NewTile(s.next, pos.Column, pos.Row)

	if !s.board.PlaceTile(tile) {
		s.active = nil
		s.state = StateGameOver
		s.emit(GameOverEvent{Score: s.score})
		return
	}

	s.next = s.letters.NextLetter()
	s.active = tile
	s.state = StateFalling
	s.emit(TileSpawnedEvent{Tile: *tile, Next: s.next})
}

func (s *GameSession) stepDown() bool {
	from := s.active.Position()
	if !s.board.Move(s.active, board.Down) {
		return false
	}
	s.emit(TileMovedEvent{Tile: *s.active, From: from})
	return true
}

// lock releases the active tile, clears any words it completed and spawns
// the next tile.
func (s *GameSession) lock() {
	s.state = StateLocking
	locked := s.active
	s.active = nil
	s.emit(TileLockedEvent{Tile: *locked})

	s.state = StateClearing
	s.clear(locked.Position())

	s.state = StateSpawning
	s.spawn()
}

func (s *GameSession) clear(at board.Position) {
	matches := s.board.DetectWords(at, s.dict)
	if len(matches) == 0 {
		return
	}
	s.lastWords = matches

	s.board.RemoveWords(matches)
	for _, m := range matches {
		s.emit(WordClearedEvent{Match: m, Points: s.points(m)})
	}

	delta := lo.SumBy(matches, s.points)
	s.score += delta
	s.emit(ScoreChangedEvent{Score: s.score, Delta: delta})
}

func (s *GameSession) points(m board.WordMatch) int {
	return len(m.Word) * s.opts.PointsPerLetter
}
