package ports

import "github.com/pomo-cli/pomo/internal/domain"

// Alerter signals interval completion to the user. Both operations are
// best effort: an unavailable audio or notification subsystem is skipped
// silently.
type Alerter interface {
	// Tone plays a short audible tone.
	Tone()

	// IntervalComplete shows a desktop notification for the finished mode.
	IntervalComplete(finished domain.Mode)
}
