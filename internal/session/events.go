package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/textris/internal/board"
)

// Event is something that happened inside a session. Events carry copies of
// tiles so observers never share state with the board.
type Event interface {
	isEvent()
}

// TileSpawnedEvent is sent when a new tile enters the board.
type TileSpawnedEvent struct {
	Tile board.Tile
	Next rune // Letter of the tile after this one
}

// TileMovedEvent is sent when the active tile changes position.
type TileMovedEvent struct {
	Tile board.Tile // Tile at its new position
	From board.Position
}

// TileLockedEvent is sent when the active tile comes to rest.
type TileLockedEvent struct {
	Tile board.Tile
}

// WordClearedEvent is sent for every word removed from the board.
type WordClearedEvent struct {
	Match  board.WordMatch
	Points int
}

// ScoreChangedEvent is sent when the score changes.
type ScoreChangedEvent struct {
	Score int
	Delta int
}

// GameOverEvent is sent once when a tile cannot be spawned.
type GameOverEvent struct {
	Score int
}

func (TileSpawnedEvent) isEvent()  {}
func (TileMovedEvent) isEvent()    {}
func (TileLockedEvent) isEvent()   {}
func (WordClearedEvent) isEvent()  {}
func (ScoreChangedEvent) isEvent() {}
func (GameOverEvent) isEvent()     {}

// Observer receives session events.
type Observer interface {
	Notify(evt Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(evt Event)

// Notify calls f(evt).
func (f ObserverFunc) Notify(evt Event) {
	f(evt)
}

// Observers fans events out to several observers in order.
type Observers []Observer

// Notify forwards evt to every non-nil observer.
func (o Observers) Notify(evt Event) {
	for _, obs := range o {
		if obs != nil {
			obs.Notify(evt)
		}
	}
}

// LogObserver logs events at debug level, except game over at info.
func LogObserver(logger *log.Logger) Observer {
	return ObserverFunc(func(evt Event) {
		switch e := evt.(type) {
		case TileSpawnedEvent:
			logger.Debug("tile spawned", "letter", string(e.Tile.Letter), "pos", e.Tile.Position(), "next", string(e.Next))
		case TileMovedEvent:
			logger.Debug("tile moved", "letter", string(e.Tile.Letter), "from", e.From, "to", e.Tile.Position())
		case TileLockedEvent:
			logger.Debug("tile locked", "letter", string(e.Tile.Letter), "pos", e.Tile.Position())
		case WordClearedEvent:
			logger.Debug("word cleared", "word", e.Match.Word, "start", e.Match.Start, "orientation", e.Match.Orientation, "points", e.Points)
		case ScoreChangedEvent:
			logger.Debug("score changed", "score", e.Score, "delta", e.Delta)
		case GameOverEvent:
			logger.Info("game over", "score", e.Score)
		}
	})
}
