package tui

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/textris/internal/core"
	"github.com/vovakirdan/textris/internal/storage"
)

// endingGame is over after a fixed number of steps.
type endingGame struct {
	steps  int
	after  int
	score  int
	resets int
	last   core.InputFrame
}

func (g *endingGame) ID() string    { return "stub" }
func (g *endingGame) Title() string { return "Stub" }
func (g *endingGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.resets++
}
func (g *endingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *endingGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.steps >= g.after}
}
func (g *endingGame) Step(in core.InputFrame) core.StepResult {
	g.last = in.Clone()
	g.steps++
	return core.StepResult{State: g.State()}
}

// failingGame cannot load its resources.
type failingGame struct {
	endingGame
	err error
}

func (g *failingGame) Load() error { return g.err }

func TestPrepare(t *testing.T) {
	assert.NoError(t, Prepare(&endingGame{}), "games without resources are ready")

	boom := errors.New("word list missing")
	assert.ErrorIs(t, Prepare(&failingGame{err: boom}), boom)

	_, err := Run(&failingGame{err: boom}, core.DefaultConfig(), Options{})
	assert.ErrorIs(t, err, boom, "the terminal is never taken over")
}

func newTestModel(t *testing.T, g *endingGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, core.DefaultConfig(), Options{Store: store, Logger: log.New(io.Discard)})
	m.Init()
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func typeText(t *testing.T, m Model, s string) Model {
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModelForwardsKeysToGame(t *testing.T) {
	g := &endingGame{after: 100}
	m := newTestModel(t, g, nil)

	m = update(t, m, keyMsg("left"))
	m = update(t, m, keyMsg(" "))
	m = update(t, m, TickMsg{})

	assert.True(t, g.last.Has(core.ActionLeft))
	assert.True(t, g.last.Has(core.ActionDrop))
	assert.True(t, m.inputFrame.Empty(), "frame is cleared after each tick")
}

func TestModelQualifyingScoreAsksForName(t *testing.T) {
	store := openStore(t)
	g := &endingGame{after: 1, score: 120}
	m := newTestModel(t, g, store)

	m = update(t, m, TickMsg{})
	require.Equal(t, phaseNameEntry, m.phase)
	assert.Contains(t, m.View(), "GAME OVER")

	// q types into the name field instead of quitting.
	m = typeText(t, m, "quinn")
	assert.False(t, m.quitting)
	m = update(t, m, keyMsg("enter"))

	assert.Equal(t, phaseChoice, m.phase)
	assert.Equal(t, 1, m.rank)

	top, err := store.TopScores("stub", 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "quinn", top[0].Name)
	assert.Equal(t, 120, top[0].Score)
}

func TestModelZeroScoreSkipsNameEntry(t *testing.T) {
	store := openStore(t)
	g := &endingGame{after: 1}
	m := newTestModel(t, g, store)

	m = update(t, m, TickMsg{})
	assert.Equal(t, phaseChoice, m.phase)
}

func TestModelEscSkipsSaving(t *testing.T) {
	store := openStore(t)
	g := &endingGame{after: 1, score: 40}
	m := newTestModel(t, g, store)

	m = update(t, m, TickMsg{})
	m = update(t, m, keyMsg("esc"))
	assert.Equal(t, phaseChoice, m.phase)

	top, err := store.TopScores("stub", 5)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestModelRestartAndMenuChoices(t *testing.T) {
	g := &endingGame{after: 1, score: 10}
	m := newTestModel(t, g, nil)

	m = update(t, m, TickMsg{})
	require.Equal(t, phaseChoice, m.phase)

	m = update(t, m, keyMsg("enter"))
	assert.Equal(t, phasePlaying, m.phase)
	assert.Equal(t, 2, g.resets)

	m = update(t, m, TickMsg{})
	require.Equal(t, phaseChoice, m.phase)
	m = update(t, m, keyMsg("down"))
	m = update(t, m, keyMsg("enter"))
	assert.True(t, m.ToMenu())
	assert.Empty(t, m.View())
}

func TestModelQuitKey(t *testing.T) {
	g := &endingGame{after: 100}
	m := newTestModel(t, g, nil)

	next, cmd := m.Update(keyMsg("q"))
	assert.True(t, next.(Model).quitting)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
