package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priests-devils/game"
	"priests-devils/river"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) playModel {
	t.Helper()
	s, err := game.New(river.DefaultTotals(), game.Options{})
	require.NoError(t, err)
	return newPlayModel(s, time.Millisecond)
}

func press(t *testing.T, m playModel, msgs ...tea.Msg) (playModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(playModel)
	}
	return m, cmd
}

func TestPlayModelInitialView(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, m.Init())
	assert.Equal(t, minInterval, m.interval)
	view := m.View()
	assert.Contains(t, view, "Priests and Devils")
	assert.Contains(t, view, "Step: 0")
	assert.Contains(t, view, readyText)
}

func TestPlayModelBoardAndCross(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyRunes("d"), keyRunes("d"))
	assert.Equal(t, []river.Kind{river.Devil, river.Devil}, m.session.Passengers())

	m, _ = press(t, m, keyRunes("p"))
	assert.True(t, m.isError)
	assert.Equal(t, "Boat can only carry 2 characters!", m.status)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.isError)
	assert.Equal(t, river.Position{PriestsLeft: 3, DevilsLeft: 1, DevilsRight: 2, Boat: river.Right}, m.session.Position())
	assert.Contains(t, m.View(), "Step: 1")

	m, _ = press(t, m, keyRunes("u"))
	assert.Equal(t, river.Start(river.DefaultTotals()), m.session.Position())
	m, _ = press(t, m, keyRunes("u"))
	assert.Equal(t, "No more moves to undo!", m.status)
}

func TestPlayModelUnload(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyRunes("p"), keyRunes("x"))
	assert.Empty(t, m.session.Passengers())
	m, _ = press(t, m, keyRunes("m"))
	assert.Equal(t, "Select at least one character to move!", m.status)
}

func TestPlayModelDefeatAndReset(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, keyRunes("p"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, game.Lost, m.session.Status())
	assert.Equal(t, defeatText, m.status)

	m, _ = press(t, m, keyRunes("d"))
	assert.Equal(t, "The game is over, press r to play again.", m.status)

	m, _ = press(t, m, keyRunes("r"))
	assert.Equal(t, game.Playing, m.session.Status())
	assert.Equal(t, readyText, m.status)
}

func TestPlayModelAutoSolve(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m, keyRunes("s"))
	require.NotNil(t, cmd)
	require.NotNil(t, m.replay)
	assert.Equal(t, game.Replaying, m.session.Status())

	m, _ = press(t, m, keyRunes("d"))
	assert.Equal(t, "Auto solve is running.", m.status)

	// a tick from an older replay is ignored
	m, cmd = press(t, m, replayTickMsg{gen: m.gen - 1})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.session.Steps())

	for i := 0; i < 11; i++ {
		m, cmd = press(t, m, replayTickMsg{gen: m.gen})
	}
	assert.Nil(t, cmd)
	assert.Nil(t, m.replay)
	assert.Equal(t, game.Won, m.session.Status())
	assert.Equal(t, 11, m.session.Steps())
	assert.Contains(t, m.status, "Solved in 11 steps")
}

func TestPlayModelQuit(t *testing.T) {
	m := newTestModel(t)
	m, cmd := press(t, m, keyRunes("s"), keyRunes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
	assert.Equal(t, game.Playing, m.session.Status())
}
