// Package textris adapts a word-forming session to the terminal platform:
// fixed-rate frames drive the fall timer, actions drive the falling tile
// and cleared words flash before play resumes.
package textris

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/textris/internal/board"
	"github.com/vovakirdan/textris/internal/config"
	"github.com/vovakirdan/textris/internal/core"
	"github.com/vovakirdan/textris/internal/dictionary"
	"github.com/vovakirdan/textris/internal/letters"
	"github.com/vovakirdan/textris/internal/registry"
	"github.com/vovakirdan/textris/internal/session"
)

// GameID is the registry and score storage identifier.
const GameID = "textris"

// Options wires a game to its collaborators. Zero fields fall back to the
// loaded configuration, the built-in dictionary and a seeded letter source.
type Options struct {
	Config     *config.TextrisConfig
	ConfigPath string
	Dictionary *dictionary.Dictionary
	Letters    session.LetterSource
	Observer   session.Observer
	Logger     *log.Logger
}

// Game implements registry.Game for textris.
type Game struct {
	opts Options
	cfg  config.TextrisConfig
	dict *dictionary.Dictionary
	sess *session.GameSession
	tick uint64

	fallFrames  int
	fallCounter int
	flashFrames int
	flash       flash
	words       []string // every word cleared this game, in order

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
	err      error // load failure; no session runs while set
}

var (
	defaultsMu sync.RWMutex
	defaults   Options
)

// SetDefaults sets the options used by games created through the registry.
func SetDefaults(opts Options) {
	defaultsMu.Lock()
	defaults = opts
	defaultsMu.Unlock()
}

func currentDefaults() Options {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New(currentDefaults())
	})
}

// New creates a game. Call Reset before the first Step.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Textris"
}

// Load reads the configuration and the dictionary. It runs once; later calls
// return the first result. A word list that cannot be read is an error.
func (g *Game) Load() error {
	if g.dict != nil || g.err != nil {
		return g.err
	}
	g.cfg = g.loadConfig()
	dict, err := g.loadDictionary()
	if err != nil {
		g.err = err
		return err
	}
	g.dict = dict
	return nil
}

// Err returns the load failure that keeps the game from starting, if any.
func (g *Game) Err() error {
	return g.err
}

// Reset starts a new game. The configuration and dictionary are loaded on
// the first call and reused afterwards. If loading fails no session is
// created and Err reports why.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if err := g.Load(); err != nil {
		g.opts.Logger.Error("textris not started", "err", err)
		g.sess = nil
		g.Resize(rc.ScreenW, rc.ScreenH)
		return
	}

	src := g.opts.Letters
	if src == nil {
		table, err := g.cfg.LetterTable()
		if err != nil {
			g.opts.Logger.Warn("invalid letter weights, using defaults", "err", err)
			table = letters.DefaultTable()
		}
		src = letters.NewSeeded(table, rc.Seed)
	}

	observers := session.Observers{session.ObserverFunc(g.onEvent), g.opts.Observer}
	sess, err := session.New(g.dict, src, g.cfg.SessionOptions(), observers)
	if err != nil {
		// Both collaborators are guaranteed above.
		panic(err)
	}

	g.sess = sess
	g.tick = 0
	g.fallFrames = framesFor(g.cfg.Timing.FallInterval, rc.TickRate, 1)
	g.fallCounter = 0
	g.flashFrames = framesFor(g.cfg.Timing.ClearFlash, rc.TickRate, 0)
	g.flash = flash{}
	g.words = nil
	g.paused = false
	g.Resize(rc.ScreenW, rc.ScreenH)

	// Spawn the first tile right away.
	g.sess.Tick()
}

func (g *Game) loadConfig() config.TextrisConfig {
	if g.opts.Config != nil {
		return *g.opts.Config
	}
	cfg, err := config.Load(g.opts.ConfigPath)
	if err != nil {
		g.opts.Logger.Warn("config not loaded, using defaults", "err", err)
		return config.DefaultTextrisConfig()
	}
	return cfg
}

func (g *Game) loadDictionary() (*dictionary.Dictionary, error) {
	if g.opts.Dictionary != nil {
		return g.opts.Dictionary, nil
	}
	dict, err := dictionary.LoadPathOrDefault(g.cfg.Dictionary.Path)
	if err != nil {
		return nil, fmt.Errorf("textris: word list %q: %w", g.cfg.Dictionary.Path, err)
	}
	return dict, nil
}

// framesFor converts a duration into a frame count at tickRate, never
// returning less than floor.
func framesFor(d time.Duration, tickRate, floor int) int {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	n := int(math.Round(d.Seconds() * float64(tickRate)))
	return max(n, floor)
}

// Resize adapts the layout to a new screen without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minSize()
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.sess == nil || g.tooSmall || g.sess.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.flash.active() {
		g.updateFlash()
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)

	g.fallCounter++
	if g.fallCounter >= g.fallFrames {
		g.fallCounter = 0
		g.sess.Tick()
	}

	g.startFlash()
	return core.StepResult{State: g.State()}
}

// handleInput applies at most one tile command per frame.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionDrop):
		if g.sess.DropToBottom() {
			g.fallCounter = 0
		}
	case in.Has(core.ActionDown):
		if g.sess.MoveCurrent(board.Down) {
			g.fallCounter = 0
		}
	case in.Has(core.ActionLeft):
		g.sess.MoveCurrent(board.Left)
	case in.Has(core.ActionRight):
		g.sess.MoveCurrent(board.Right)
	}
}

// onEvent runs synchronously inside Step.
func (g *Game) onEvent(evt session.Event) {
	switch e := evt.(type) {
	case session.WordClearedEvent:
		g.words = append(g.words, e.Match.Word)
		g.flash.add(e.Match)
	case session.GameOverEvent:
		g.opts.Logger.Debug("textris game over", "score", e.Score, "words", len(g.words))
	}
}

// State returns the platform-facing state.
func (g *Game) State() core.GameState {
	if g.sess == nil {
		return core.GameState{GameOver: g.err != nil}
	}
	return core.GameState{
		Score:    g.sess.Score(),
		GameOver: g.sess.IsGameOver(),
		Paused:   g.paused || g.tooSmall,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *session.GameSession {
	return g.sess
}

// Words returns the words cleared so far, oldest first.
func (g *Game) Words() []string {
	return append([]string(nil), g.words...)
}

// Config returns the configuration the game is running with.
func (g *Game) Config() config.TextrisConfig {
	return g.cfg
}
