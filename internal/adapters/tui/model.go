// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pomo-cli/pomo/internal/config"
	"github.com/pomo-cli/pomo/internal/domain"
)

// tickMsg is sent once per second while the timer runs. The sequence
// number identifies the tick chain that produced it: every transition out
// of Running invalidates the old chain, so a stale message arriving after
// a pause edge is dropped instead of mutating state.
type tickMsg struct {
	seq int
}

// Callbacks wires the model to the application layer. All of them are
// optional and best effort.
type Callbacks struct {
	// OnComplete fires once per natural interval completion, before the
	// next interval is displayed. The application layer plays the alert
	// and records history here.
	OnComplete func(domain.Completion)

	// FetchStats returns today's aggregated history, used for the stats
	// footer. Called at startup and after every completion.
	FetchStats func() *domain.DailyStats

	// SaveSettings persists replaced preferences.
	SaveSettings func(domain.Settings)
}

// Model represents the TUI state over the session controller.
type Model struct {
	timer     *domain.Timer
	theme     config.ThemeConfig
	callbacks Callbacks

	width   int
	height  int
	tickSeq int
	stats   *domain.DailyStats
	form    *settingsForm
}

// NewModel creates a TUI model owning the given timer.
func NewModel(timer *domain.Timer, theme config.ThemeConfig, callbacks Callbacks) Model {
	m := Model{
		timer:     timer,
		theme:     theme,
		callbacks: callbacks,
	}
	if callbacks.FetchStats != nil {
		m.stats = callbacks.FetchStats()
	}
	return m
}

// Init initializes the TUI. The timer starts paused, so no tick chain is
// armed yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// armTick starts a fresh tick chain and invalidates any previous one.
func (m *Model) armTick() tea.Cmd {
	m.tickSeq++
	seq := m.tickSeq
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{seq: seq}
	})
}

// dropTicks invalidates the current tick chain without arming a new one.
func (m *Model) dropTicks() {
	m.tickSeq++
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if msg.seq != m.tickSeq || !m.timer.Running() {
			return m, nil
		}

		if completion := m.timer.Tick(); completion != nil {
			if m.callbacks.OnComplete != nil {
				m.callbacks.OnComplete(*completion)
			}
			if m.callbacks.FetchStats != nil {
				m.stats = m.callbacks.FetchStats()
			}
		}

		if m.timer.Running() {
			seq := m.tickSeq
			return m, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tickMsg{seq: seq}
			})
		}

		// Completed into a paused interval: tear the chain down.
		m.dropTicks()
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

// updateKeys handles keys on the main timer screen.
func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case " ", "s":
		m.timer.Toggle()
		if m.timer.Running() {
			return m, m.armTick()
		}
		m.dropTicks()

	case "r":
		m.timer.Reset()
		m.dropTicks()

	case "1":
		m.timer.Switch(domain.ModeWork)
		m.dropTicks()

	case "2":
		m.timer.Switch(domain.ModeShortBreak)
		m.dropTicks()

	case "3":
		m.timer.Switch(domain.ModeLongBreak)
		m.dropTicks()

	case "tab":
		m.timer.Switch(nextMode(m.timer.Mode()))
		m.dropTicks()

	case "c":
		m.timer.ClearRounds()

	case "e":
		form := newSettingsForm(m.timer.Settings())
		m.form = &form
		return m, form.focusCmd()
	}

	return m, nil
}

// updateForm routes keys to the settings editor overlay.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	done, saved, cmd := m.form.update(msg)
	if !done {
		return m, cmd
	}

	m.form = nil
	if saved != nil {
		// Settings replacement re-derives the countdown from the current
		// mode; the running flag is untouched, so a live tick chain stays
		// valid.
		m.timer.ApplySettings(*saved)
		if m.callbacks.SaveSettings != nil {
			m.callbacks.SaveSettings(m.timer.Settings())
		}
	}
	return m, nil
}

// nextMode cycles through the three mode tabs.
func nextMode(m domain.Mode) domain.Mode {
	switch m {
	case domain.ModeWork:
		return domain.ModeShortBreak
	case domain.ModeShortBreak:
		return domain.ModeLongBreak
	default:
		return domain.ModeWork
	}
}

// modeColor returns the theme color for the given mode.
func (m Model) modeColor(mode domain.Mode) lipgloss.Color {
	if mode == domain.ModeWork {
		return lipgloss.Color(m.theme.ColorWork)
	}
	return lipgloss.Color(m.theme.ColorBreak)
}

// clockColor returns the countdown color, accounting for pause state.
func (m Model) clockColor() lipgloss.Color {
	if !m.timer.Running() {
		return lipgloss.Color(m.theme.ColorPaused)
	}
	return m.modeColor(m.timer.Mode())
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.form != nil {
		return m.viewSettingsForm()
	}

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s pomo", m.theme.IconApp)))

	sections = append(sections, m.viewTabs())
	sections = append(sections, "")
	sections = append(sections, renderBigClock(m.timer.Clock(), m.clockColor()))

	if !m.timer.Running() {
		pauseBadge := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(m.theme.ColorPaused)).
			Padding(0, 1).
			Render(fmt.Sprintf("%s PAUSED", m.theme.IconPaused))
		sections = append(sections, "")
		sections = append(sections, pauseBadge)
	}

	sections = append(sections, "")
	sections = append(sections, m.viewProgress())

	roundsStyle := lipgloss.NewStyle().Foreground(m.modeColor(domain.ModeWork))
	sections = append(sections, "")
	sections = append(sections, roundsStyle.Render(fmt.Sprintf("Rounds: %d / %d",
		m.timer.Rounds(), m.timer.Settings().RoundsUntilLongBreak)))

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	if m.stats != nil && (m.stats.WorkIntervals > 0 || m.stats.BreaksTaken > 0) {
		statsText := fmt.Sprintf("Today: %d work, %d breaks, %s focused",
			m.stats.WorkIntervals, m.stats.BreaksTaken, domain.FormatDuration(m.stats.TotalWorkTime))
		sections = append(sections, helpStyle.Render(statsText))
	}

	sections = append(sections, "")
	toggleLabel := "[space] start"
	if m.timer.Running() {
		toggleLabel = "[space] pause"
	}
	sections = append(sections, helpStyle.Render(fmt.Sprintf(
		"%s  [r]eset  [1/2/3] mode  [c]lear rounds  [e]dit settings  [q]uit", toggleLabel)))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewTabs renders the three mode tabs with the active one highlighted.
func (m Model) viewTabs() string {
	tabs := make([]string, 0, 3)
	modes := []domain.Mode{domain.ModeWork, domain.ModeShortBreak, domain.ModeLongBreak}

	for _, mode := range modes {
		label := domain.ModeLabel(mode)
		if mode == m.timer.Mode() {
			active := lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(m.modeColor(mode)).
				Padding(0, 1)
			tabs = append(tabs, active.Render(label))
		} else {
			inactive := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.ColorHelp)).
				Padding(0, 1)
			tabs = append(tabs, inactive.Render(label))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
}

// viewProgress renders the countdown progress bar with a mode gradient.
func (m Model) viewProgress() string {
	var bar progress.Model
	switch {
	case !m.timer.Running():
		bar = progress.New(progress.WithGradient(m.theme.PausedGradientStart, m.theme.PausedGradientEnd))
	case m.timer.Mode() == domain.ModeWork:
		bar = progress.New(progress.WithGradient(m.theme.WorkGradientStart, m.theme.WorkGradientEnd))
	default:
		bar = progress.New(progress.WithGradient(m.theme.BreakGradientStart, m.theme.BreakGradientEnd))
	}

	width := m.width - 4
	if width > 60 {
		width = 60
	}
	if width > 0 {
		bar.Width = width
	}

	return bar.ViewAs(m.timer.Progress())
}

// viewSettingsForm renders the settings editor overlay.
func (m Model) viewSettingsForm() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle)).MarginBottom(1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	sections = append(sections, titleStyle.Render("Settings"))
	sections = append(sections, m.form.view(m.theme))
	sections = append(sections, "")
	sections = append(sections, helpStyle.Render("tab/shift+tab move · space toggle · enter save · esc cancel"))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
