package domain

// Settings holds the user-configurable timer preferences.
// All numeric fields are minutes or counts and are clamped to >= 1
// at the editing boundary rather than rejected.
type Settings struct {
	WorkMinutes          int
	ShortBreakMinutes    int
	LongBreakMinutes     int
	RoundsUntilLongBreak int
	AutoStartNext        bool
	Sound                bool
}

// DefaultSettings returns the standard pomodoro preferences.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:          25,
		ShortBreakMinutes:    5,
		LongBreakMinutes:     15,
		RoundsUntilLongBreak: 4,
		AutoStartNext:        false,
		Sound:                true,
	}
}

// Normalized returns a copy with every numeric field clamped to at least 1.
func (s Settings) Normalized() Settings {
	s.WorkMinutes = clampMin(s.WorkMinutes, 1)
	s.ShortBreakMinutes = clampMin(s.ShortBreakMinutes, 1)
	s.LongBreakMinutes = clampMin(s.LongBreakMinutes, 1)
	s.RoundsUntilLongBreak = clampMin(s.RoundsUntilLongBreak, 1)
	return s
}

// DurationSeconds returns the full interval length for the given mode.
func (s Settings) DurationSeconds(m Mode) int {
	switch m {
	case ModeShortBreak:
		return s.ShortBreakMinutes * 60
	case ModeLongBreak:
		return s.LongBreakMinutes * 60
	default:
		return s.WorkMinutes * 60
	}
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}
