package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreboardShowsTopNames(t *testing.T) {
	store := openStore(t)
	for _, e := range []struct {
		name  string
		score int
	}{{"ann", 50}, {"bob", 90}, {"cid", 70}, {"dee", 10}, {"eve", 30}, {"fay", 20}} {
		_, err := store.SaveScore("textris", e.name, e.score)
		require.NoError(t, err)
	}

	m := NewScoreboardModel(store, "textris", 5, 80, 24)
	require.Len(t, m.scores, 5)
	assert.Equal(t, "bob", m.scores[0].Name)

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "TOP 5")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "90")
	assert.NotContains(t, out, "dee")
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "textris", 0, 80, 24)
	assert.Equal(t, 5, m.limit)
	assert.Contains(t, ansi.Strip(m.View()), "No scores recorded yet.")
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, "textris", 5, 80, 24)
	next, _ := m.Update(keyMsg("esc"))
	assert.True(t, next.(ScoreboardModel).IsGoingBack())
}
