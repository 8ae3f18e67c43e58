// Package notification provides audible and desktop completion alerts.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/pomo-cli/pomo/internal/domain"
	"github.com/pomo-cli/pomo/internal/ports"
)

// Notifier implements ports.Alerter using beeep. Every operation is best
// effort: an unavailable audio or notification subsystem is skipped
// silently, never surfaced.
type Notifier struct {
	desktop bool
}

// Ensure Notifier implements ports.Alerter.
var _ ports.Alerter = (*Notifier)(nil)

// New creates a notifier. desktop controls whether completion banners are
// shown in addition to the tone.
func New(desktop bool) *Notifier {
	return &Notifier{desktop: desktop}
}

// Tone plays a short audible tone.
func (n *Notifier) Tone() {
	_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
}

// IntervalComplete shows a desktop notification for the finished mode.
func (n *Notifier) IntervalComplete(finished domain.Mode) {
	if !n.desktop {
		return
	}

	var title, message string
	switch finished {
	case domain.ModeWork:
		title = "🍅 Pomodoro Complete!"
		message = "Great job! Time for a break."
	default:
		title = "☕ Break Over!"
		message = "Ready to focus?"
	}

	_ = beeep.Notify(title, message, "")
}
