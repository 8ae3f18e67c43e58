package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pomo-cli/pomo/internal/config"
	"github.com/pomo-cli/pomo/internal/domain"
)

func testModel(settings domain.Settings, callbacks Callbacks) Model {
	return NewModel(domain.NewTimer(settings), config.DefaultThemeConfig(), callbacks)
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func TestModel_SpaceStartsTimerAndArmsTick(t *testing.T) {
	m := testModel(domain.DefaultSettings(), Callbacks{})

	m, cmd := update(t, m, keyMsg(" "))

	assert.True(t, m.timer.Running())
	assert.NotNil(t, cmd, "starting should arm a tick chain")
}

func TestModel_SpacePausesAndInvalidatesTicks(t *testing.T) {
	m := testModel(domain.DefaultSettings(), Callbacks{})

	m, _ = update(t, m, keyMsg(" "))
	seq := m.tickSeq
	m, cmd := update(t, m, keyMsg(" "))

	assert.False(t, m.timer.Running())
	assert.Nil(t, cmd)
	assert.NotEqual(t, seq, m.tickSeq, "pause should invalidate the live tick chain")
}

func TestModel_TickDecrementsAndRearms(t *testing.T) {
	m := testModel(domain.DefaultSettings(), Callbacks{})

	m, _ = update(t, m, keyMsg(" "))
	before := m.timer.SecondsLeft()

	m, cmd := update(t, m, tickMsg{seq: m.tickSeq})

	assert.Equal(t, before-1, m.timer.SecondsLeft())
	assert.NotNil(t, cmd, "a running timer should re-arm the next tick")
}

func TestModel_StaleTickIsDropped(t *testing.T) {
	m := testModel(domain.DefaultSettings(), Callbacks{})

	m, _ = update(t, m, keyMsg(" "))
	stale := m.tickSeq
	m, _ = update(t, m, keyMsg(" ")) // pause bumps the sequence
	m, _ = update(t, m, keyMsg(" ")) // resume arms a fresh chain
	before := m.timer.SecondsLeft()

	m, _ = update(t, m, tickMsg{seq: stale})

	assert.Equal(t, before, m.timer.SecondsLeft(), "a tick from a dead chain must not advance the countdown")
}

func TestModel_TickWhilePausedIsNoop(t *testing.T) {
	m := testModel(domain.DefaultSettings(), Callbacks{})
	before := m.timer.SecondsLeft()

	m, cmd := update(t, m, tickMsg{seq: m.tickSeq})

	assert.Equal(t, before, m.timer.SecondsLeft())
	assert.Nil(t, cmd)
}

func TestModel_CompletionFiresCallbackAndStopsChain(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.WorkMinutes = 1

	var got *domain.Completion
	m := testModel(settings, Callbacks{
		OnComplete: func(c domain.Completion) { got = &c },
	})

	m, _ = update(t, m, keyMsg(" "))
	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		m, cmd = update(t, m, tickMsg{seq: m.tickSeq})
	}

	require.NotNil(t, got)
	assert.Equal(t, domain.ModeWork, got.Finished)
	assert.Equal(t, domain.ModeShortBreak, got.Next)
	assert.Equal(t, 60, got.FinishedSeconds)
	assert.False(t, m.timer.Running())
	assert.Nil(t, cmd, "a paused post-completion timer must not re-arm ticks")
}

func TestModel_CompletionRearmsWhenAutoStartEnabled(t *testing.T) {
	settings := domain.DefaultSettings()
	settings.WorkMinutes = 1
	settings.AutoStartNext = true

	m := testModel(settings, Callbacks{})

	m, _ = update(t, m, keyMsg(" "))
	var cmd tea.Cmd
	for i := 0; i < 60; i++ {
		m, cmd = update(t, m, tickMsg{seq: m.tickSeq})
	}

	assert.True(t, m.timer.Running())
	assert.NotNil(t, cmd, "auto-start should keep the tick chain alive")
	assert.Equal(t, domain.ModeShortBreak, m.timer.Mode())
}

func TestModel_ModeKeysSwitchAndPause(t *testing.T) {
	m := testModel(domain.DefaultSettings(), Callbacks{})

	m, _ = update(t, m, keyMsg(" "))
	m, _ = update(t, m, keyMsg("2"))

	assert.Equal(t, domain.ModeShortBreak, m.timer.Mode())
	assert.False(t, m.timer.Running())
	assert.Equal(t, 5*60, m.timer.SecondsLeft())
}

func TestModel_SettingsFormSavesAndRederives(t *testing.T) {
	var saved *domain.Settings
	m := testModel(domain.DefaultSettings(), Callbacks{
		SaveSettings: func(s domain.Settings) { saved = &s },
	})

	m, _ = update(t, m, keyMsg("e"))
	require.NotNil(t, m.form)

	// Work minutes field: replace "25" with "30".
	m.form.inputs[fieldWork].SetValue("30")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	require.Nil(t, m.form)
	require.NotNil(t, saved)
	assert.Equal(t, 30, saved.WorkMinutes)
	assert.Equal(t, 30*60, m.timer.SecondsLeft(), "replacing settings re-derives the countdown")
}

func TestModel_SettingsFormEscCancels(t *testing.T) {
	m := testModel(domain.DefaultSettings(), Callbacks{})

	m, _ = update(t, m, keyMsg("e"))
	m.form.inputs[fieldWork].SetValue("99")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})

	assert.Nil(t, m.form)
	assert.Equal(t, 25, m.timer.Settings().WorkMinutes)
}
