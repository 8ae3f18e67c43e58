package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pomo-cli/pomo/internal/config"
	"github.com/pomo-cli/pomo/internal/domain"
)

const (
	fieldWork = iota
	fieldShortBreak
	fieldLongBreak
	fieldRounds
	fieldAutoStart
	fieldSound
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Work (minutes)",
	"Short break (minutes)",
	"Long break (minutes)",
	"Rounds until long break",
	"Auto-start next interval",
	"Sound alert",
}

// settingsForm is the inline preferences editor. The four duration and
// round fields are text inputs; the two booleans are space-toggled.
type settingsForm struct {
	inputs    [4]textinput.Model
	autoStart bool
	sound     bool
	focus     int
}

func newSettingsForm(s domain.Settings) settingsForm {
	f := settingsForm{
		autoStart: s.AutoStartNext,
		sound:     s.Sound,
	}

	values := [4]int{s.WorkMinutes, s.ShortBreakMinutes, s.LongBreakMinutes, s.RoundsUntilLongBreak}
	for i := range f.inputs {
		ti := textinput.New()
		ti.CharLimit = 3
		ti.Width = 5
		ti.Prompt = ""
		ti.SetValue(strconv.Itoa(values[i]))
		f.inputs[i] = ti
	}
	f.inputs[0].Focus()

	return f
}

func (f *settingsForm) focusCmd() tea.Cmd {
	return textinput.Blink
}

// update handles one key. It reports done=true when the form closes;
// saved is non-nil only when the user confirmed.
func (f *settingsForm) update(msg tea.KeyMsg) (done bool, saved *domain.Settings, cmd tea.Cmd) {
	switch msg.String() {
	case "esc":
		return true, nil, nil

	case "enter":
		s := f.settings()
		return true, &s, nil

	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return false, nil, textinput.Blink

	case "shift+tab", "up":
		f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		return false, nil, textinput.Blink

	case " ":
		switch f.focus {
		case fieldAutoStart:
			f.autoStart = !f.autoStart
		case fieldSound:
			f.sound = !f.sound
		}
		return false, nil, nil
	}

	if f.focus < len(f.inputs) {
		// Numeric fields accept digits only.
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				if r < '0' || r > '9' {
					return false, nil, nil
				}
			}
		}
		var c tea.Cmd
		f.inputs[f.focus], c = f.inputs[f.focus].Update(msg)
		return false, nil, c
	}

	return false, nil, nil
}

func (f *settingsForm) setFocus(idx int) {
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Blur()
	}
	f.focus = idx
	if f.focus < len(f.inputs) {
		f.inputs[f.focus].Focus()
	}
}

// settings builds the edited preferences. Blank or zero entries clamp to
// the minimum of one.
func (f *settingsForm) settings() domain.Settings {
	parse := func(i int) int {
		n, err := strconv.Atoi(f.inputs[i].Value())
		if err != nil {
			return 1
		}
		return n
	}

	return domain.Settings{
		WorkMinutes:          parse(fieldWork),
		ShortBreakMinutes:    parse(fieldShortBreak),
		LongBreakMinutes:     parse(fieldLongBreak),
		RoundsUntilLongBreak: parse(fieldRounds),
		AutoStartNext:        f.autoStart,
		Sound:                f.sound,
	}.Normalized()
}

func (f *settingsForm) view(theme config.ThemeConfig) string {
	labelStyle := lipgloss.NewStyle().Width(26)
	focusedLabel := labelStyle.Bold(true).Foreground(lipgloss.Color(theme.ColorWork))

	rows := make([]string, 0, fieldCount)
	for i := 0; i < fieldCount; i++ {
		label := labelStyle.Render(fieldLabels[i])
		if i == f.focus {
			label = focusedLabel.Render("> " + fieldLabels[i])
		}

		var value string
		switch i {
		case fieldAutoStart:
			value = checkbox(f.autoStart)
		case fieldSound:
			value = checkbox(f.sound)
		default:
			value = f.inputs[i].View()
		}

		rows = append(rows, fmt.Sprintf("%s %s", label, value))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
