package domain

import "fmt"

// Mode represents the kind of interval currently active.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// ModeLabel returns a human-readable label for the mode.
func ModeLabel(m Mode) string {
	switch m {
	case ModeWork:
		return "Pomodoro"
	case ModeShortBreak:
		return "Short Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// Completion describes a natural interval completion produced by Tick.
type Completion struct {
	Finished        Mode
	Next            Mode
	FinishedSeconds int
}

// Timer is the session controller: it owns the current mode, the
// countdown, the running flag and the completed-round count, and
// transitions between modes on natural completion.
//
// None of its operations can fail; invalid settings are clamped before
// they reach the timer.
type Timer struct {
	settings        Settings
	mode            Mode
	running         bool
	secondsLeft     int
	roundsCompleted int
}

// NewTimer creates a paused work timer with a full countdown.
func NewTimer(settings Settings) *Timer {
	s := settings.Normalized()
	return &Timer{
		settings:    s,
		mode:        ModeWork,
		secondsLeft: s.DurationSeconds(ModeWork),
	}
}

// Settings returns the timer's current preferences.
func (t *Timer) Settings() Settings { return t.settings }

// Mode returns the current interval kind.
func (t *Timer) Mode() Mode { return t.mode }

// Running reports whether the countdown is advancing.
func (t *Timer) Running() bool { return t.running }

// SecondsLeft returns the remaining seconds in the current interval.
func (t *Timer) SecondsLeft() int { return t.secondsLeft }

// Rounds returns the number of work intervals completed since the last clear.
func (t *Timer) Rounds() int { return t.roundsCompleted }

// Toggle flips the running flag without touching mode or countdown.
func (t *Timer) Toggle() {
	t.running = !t.running
}

// Reset pauses the timer and restores the full duration of the current
// mode. Completed rounds are kept.
func (t *Timer) Reset() {
	t.running = false
	t.secondsLeft = t.settings.DurationSeconds(t.mode)
}

// Switch changes the mode manually. The timer pauses and the countdown
// restarts at the new mode's full duration; remaining time never carries
// over. Rounds are unaffected.
func (t *Timer) Switch(m Mode) {
	t.running = false
	t.mode = m
	t.secondsLeft = t.settings.DurationSeconds(m)
}

// ClearRounds zeroes the completed-round count and nothing else.
func (t *Timer) ClearRounds() {
	t.roundsCompleted = 0
}

// ApplySettings replaces the preferences wholesale. The countdown is
// re-derived from the now-current mode even mid-interval; partial
// progress is discarded rather than rescaled.
func (t *Timer) ApplySettings(s Settings) {
	t.settings = s.Normalized()
	t.secondsLeft = t.settings.DurationSeconds(t.mode)
}

// Tick advances the countdown by one second while running. When the
// countdown reaches zero it returns the completion transition that was
// applied; otherwise nil.
func (t *Timer) Tick() *Completion {
	if !t.running {
		return nil
	}

	t.secondsLeft--
	if t.secondsLeft > 0 {
		return nil
	}
	t.secondsLeft = 0

	return t.complete()
}

// complete applies the natural-completion transition. The timer pauses,
// the next mode is selected, the countdown resets, and auto-start decides
// whether it keeps running.
func (t *Timer) complete() *Completion {
	t.running = false

	finished := t.mode
	finishedSeconds := t.settings.DurationSeconds(finished)

	var next Mode
	if finished == ModeWork {
		t.roundsCompleted++
		if t.roundsCompleted%t.settings.RoundsUntilLongBreak == 0 {
			next = ModeLongBreak
		} else {
			next = ModeShortBreak
		}
	} else {
		next = ModeWork
	}

	t.mode = next
	t.secondsLeft = t.settings.DurationSeconds(next)
	t.running = t.settings.AutoStartNext

	return &Completion{
		Finished:        finished,
		Next:            next,
		FinishedSeconds: finishedSeconds,
	}
}

// TotalSeconds returns the full duration of the current mode, floored at
// one second so progress never divides by zero.
func (t *Timer) TotalSeconds() int {
	total := t.settings.DurationSeconds(t.mode)
	if total < 1 {
		total = 1
	}
	return total
}

// Progress returns the completion fraction (0.0 to 1.0) of the current
// interval.
func (t *Timer) Progress() float64 {
	p := 1 - float64(t.secondsLeft)/float64(t.TotalSeconds())
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Clock returns the remaining time formatted as MM:SS.
func (t *Timer) Clock() string {
	return FormatClock(t.secondsLeft)
}

// FormatClock formats a second count as MM:SS with zero padding.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
