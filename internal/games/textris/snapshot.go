package textris

import (
	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/textris/internal/board"
	"github.com/vovakirdan/textris/internal/session"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateFlashing    GameStateType = "flashing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Score        int
	State        GameStateType
	SessionState session.State
	Active       *board.Tile
	Next         rune
	Words        int
	Fingerprint  uint64 // xxhash of the settled board layout
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.sess == nil {
		return Snapshot{Tick: g.tick, State: StateGameOver}
	}
	v := g.sess.View()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case v.State == session.StateGameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.flash.active():
		state = StateFlashing
	}

	return Snapshot{
		Tick:         g.tick,
		Score:        v.Score,
		State:        state,
		SessionState: v.State,
		Active:       v.Active,
		Next:         v.Next,
		Words:        len(g.words),
		Fingerprint:  Fingerprint(v),
	}
}

// Fingerprint hashes the letters of a view. The falling tile is part of the
// board, so two views with the same tiles in the same cells hash equal.
func Fingerprint(v session.View) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(v.String())
	return d.Sum64()
}
