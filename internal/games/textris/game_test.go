package textris

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/textris/internal/board"
	"github.com/vovakirdan/textris/internal/config"
	"github.com/vovakirdan/textris/internal/core"
	"github.com/vovakirdan/textris/internal/registry"
	"github.com/vovakirdan/textris/internal/session"
)

// cycleLetters repeats a fixed sequence forever.
type cycleLetters struct {
	seq []rune
	i   int
}

func (c *cycleLetters) NextLetter() rune {
	r := c.seq[c.i%len(c.seq)]
	c.i++
	return r
}

func newTestGame(t *testing.T, seq string, mutate ...func(*config.TextrisConfig)) *Game {
	t.Helper()
	cfg := config.DefaultTextrisConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	opts := Options{Config: &cfg}
	if seq != "" {
		opts.Letters = &cycleLetters{seq: []rune(seq)}
	}
	g := New(opts)
	g.Reset(core.DefaultConfig())
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.FrameOf(actions...))
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists(GameID))

	g, err := registry.Create(GameID)
	require.NoError(t, err)
	assert.Equal(t, "Textris", g.Title())
}

func TestFramesFor(t *testing.T) {
	assert.Equal(t, 15, framesFor(500*time.Millisecond, 30, 1))
	assert.Equal(t, 12, framesFor(400*time.Millisecond, 30, 0))
	assert.Equal(t, 1, framesFor(time.Millisecond, 30, 1))
	assert.Equal(t, 0, framesFor(0, 30, 0))
}

func TestResetSpawnsFirstTile(t *testing.T) {
	g := newTestGame(t, "cat")

	snap := g.Snapshot()
	require.NotNil(t, snap.Active)
	assert.Equal(t, board.Position{Column: 2, Row: 0}, snap.Active.Position())
	assert.Equal(t, 'c', snap.Active.Letter)
	assert.Equal(t, 'a', snap.Next)
	assert.Equal(t, StatePlaying, snap.State)
}

func TestTileFallsOnFallInterval(t *testing.T) {
	g := newTestGame(t, "cat")

	for range g.fallFrames - 1 {
		step(g)
	}
	assert.Equal(t, 0, g.Snapshot().Active.Row)

	step(g)
	assert.Equal(t, 1, g.Snapshot().Active.Row)
}

func TestClearedWordFlashesAndHoldsBusy(t *testing.T) {
	g := newTestGame(t, "cat")

	step(g, core.ActionLeft)
	step(g, core.ActionDrop)
	step(g, core.ActionDrop)
	step(g, core.ActionRight)
	res := step(g, core.ActionDrop)

	assert.Equal(t, 30, res.State.Score)
	assert.Equal(t, []string{"cat"}, g.Words())
	assert.True(t, g.Session().Busy())
	assert.Equal(t, StateFlashing, g.Snapshot().State)
	assert.Len(t, g.flash.cells, 3)

	// Commands are ignored while the word is shown.
	before := g.Snapshot().Active.Position()
	step(g, core.ActionLeft)
	assert.Equal(t, before, g.Snapshot().Active.Position())

	for range g.flashFrames - 2 {
		step(g)
	}
	assert.Equal(t, StateFlashing, g.Snapshot().State)

	step(g)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
	assert.False(t, g.Session().Busy())

	step(g, core.ActionLeft)
	assert.Equal(t, before.Column-1, g.Snapshot().Active.Column)
}

func TestZeroFlashClearsImmediately(t *testing.T) {
	g := newTestGame(t, "cat", func(c *config.TextrisConfig) { c.Timing.ClearFlash = 0 })

	step(g, core.ActionLeft)
	step(g, core.ActionDrop)
	step(g, core.ActionDrop)
	step(g, core.ActionRight)
	step(g, core.ActionDrop)

	assert.Equal(t, 30, g.State().Score)
	assert.False(t, g.Session().Busy())
	assert.Equal(t, StatePlaying, g.Snapshot().State)
}

func TestGameOverWhenColumnFills(t *testing.T) {
	g := newTestGame(t, "q")

	for i := 0; i < g.cfg.Board.Rows; i++ {
		require.False(t, g.State().GameOver, "drop %d", i)
		step(g, core.ActionDrop)
	}

	state := g.State()
	assert.True(t, state.GameOver)
	assert.Zero(t, state.Score)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	tick := g.Snapshot().Fingerprint
	step(g, core.ActionLeft)
	assert.Equal(t, tick, g.Snapshot().Fingerprint, "input after game over is ignored")
}

func TestPauseFreezesFall(t *testing.T) {
	g := newTestGame(t, "cat")

	step(g, core.ActionPause)
	assert.True(t, g.State().Paused)
	for range g.fallFrames * 3 {
		step(g, core.ActionLeft)
	}
	snap := g.Snapshot()
	assert.Equal(t, StatePaused, snap.State)
	assert.Equal(t, board.Position{Column: 2, Row: 0}, snap.Active.Position())

	step(g, core.ActionPause)
	assert.False(t, g.State().Paused)
}

func TestMissingWordListKeepsGameFromStarting(t *testing.T) {
	cfg := config.DefaultTextrisConfig()
	cfg.Dictionary.Path = filepath.Join(t.TempDir(), "missing.txt")
	g := New(Options{Config: &cfg, Logger: log.New(io.Discard)})

	require.Error(t, g.Load())
	g.Reset(core.DefaultConfig())

	assert.Nil(t, g.Session(), "no session without a word list")
	assert.ErrorContains(t, g.Err(), "missing.txt")
	assert.True(t, g.State().GameOver)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	step(g, core.ActionDrop)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Textris could not start")
}

func TestTooSmallWindow(t *testing.T) {
	cfg := config.DefaultTextrisConfig()
	g := New(Options{Config: &cfg})
	rc := core.DefaultConfig()
	rc.ScreenW = 10
	g.Reset(rc)

	assert.True(t, g.State().Paused)
	assert.Equal(t, StatePausedSmall, g.Snapshot().State)

	screen := core.NewScreen(40, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	assert.Equal(t, StatePlaying, g.Snapshot().State)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, "cat")
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "T E X T R I S")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Next")
	assert.Contains(t, out, "C")
	assert.Contains(t, out, "A", "next letter preview")
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := newTestGame(t, "q")
	for range g.cfg.Board.Rows {
		step(g, core.ActionDrop)
	}
	require.True(t, g.State().GameOver)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultTextrisConfig()
	rc := core.DefaultConfig()
	rc.Seed = 42

	g1 := New(Options{Config: &cfg})
	g2 := New(Options{Config: &cfg})
	g1.Reset(rc)
	g2.Reset(rc)

	script := []core.Action{core.ActionNone, core.ActionLeft, core.ActionNone, core.ActionDrop, core.ActionRight, core.ActionDown}
	for i := range 600 {
		a := script[i%len(script)]
		step(g1, a)
		step(g2, a)
		require.Equal(t, g1.Snapshot(), g2.Snapshot(), "diverged at frame %d", i)
	}
}

func TestFingerprint(t *testing.T) {
	g := newTestGame(t, "cat")
	v := g.Session().View()
	assert.Equal(t, Fingerprint(v), Fingerprint(g.Session().View()))

	step(g, core.ActionLeft)
	assert.NotEqual(t, Fingerprint(v), Fingerprint(g.Session().View()))
}

func TestObserverReceivesEvents(t *testing.T) {
	var cleared []string
	cfg := config.DefaultTextrisConfig()
	g := New(Options{
		Config:  &cfg,
		Letters: &cycleLetters{seq: []rune("cat")},
		Observer: session.ObserverFunc(func(evt session.Event) {
			if e, ok := evt.(session.WordClearedEvent); ok {
				cleared = append(cleared, e.Match.Word)
			}
		}),
	})
	g.Reset(core.DefaultConfig())

	step(g, core.ActionLeft)
	step(g, core.ActionDrop)
	step(g, core.ActionDrop)
	step(g, core.ActionRight)
	step(g, core.ActionDrop)

	assert.Equal(t, []string{"cat"}, cleared)
}

func TestFlashKeepsWordLetters(t *testing.T) {
	var f flash
	f.add(board.WordMatch{Word: "cat", Start: board.Position{Column: 1, Row: 7}, Orientation: board.Vertical})

	require.Len(t, f.cells, 3)
	assert.Equal(t, flashCell{Pos: board.Position{Column: 1, Row: 7}, Letter: 'c'}, f.cells[0])
	assert.Equal(t, flashCell{Pos: board.Position{Column: 1, Row: 9}, Letter: 't'}, f.cells[2])
	assert.True(t, f.pending)
}
