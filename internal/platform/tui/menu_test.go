package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/textris/internal/core"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	require.True(t, ok)
	return nm
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(nil, "textris", core.DefaultConfig())
	assert.Contains(t, m.View(), "Start Game")
	assert.Contains(t, m.View(), "Scoreboard")
	assert.Contains(t, m.View(), "Exit")

	m = menuUpdate(t, m, keyMsg("up"))
	assert.Equal(t, 0, m.cursor, "cursor stays on the first entry")

	m = menuUpdate(t, m, keyMsg("down"))
	m = menuUpdate(t, m, keyMsg("enter"))
	assert.Equal(t, ChoiceScoreboard, m.Chosen())
}

func TestMenuStartAndQuit(t *testing.T) {
	m := NewMenuModel(nil, "textris", core.DefaultConfig())
	assert.Equal(t, ChoiceStart, menuUpdate(t, m, keyMsg("enter")).Chosen())
	assert.Equal(t, ChoiceExit, menuUpdate(t, m, keyMsg("q")).Chosen())
	assert.Equal(t, ChoiceScoreboard, menuUpdate(t, m, keyMsg("tab")).Chosen())
}

func TestMenuTracksResize(t *testing.T) {
	m := NewMenuModel(nil, "textris", core.DefaultConfig())
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Equal(t, 100, m.Config().ScreenW)
	assert.Equal(t, 40, m.Config().ScreenH)
}
