package domain

import "testing"

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.WorkMinutes != 25 {
		t.Errorf("WorkMinutes = %d, want 25", s.WorkMinutes)
	}
	if s.ShortBreakMinutes != 5 {
		t.Errorf("ShortBreakMinutes = %d, want 5", s.ShortBreakMinutes)
	}
	if s.LongBreakMinutes != 15 {
		t.Errorf("LongBreakMinutes = %d, want 15", s.LongBreakMinutes)
	}
	if s.RoundsUntilLongBreak != 4 {
		t.Errorf("RoundsUntilLongBreak = %d, want 4", s.RoundsUntilLongBreak)
	}
	if s.AutoStartNext {
		t.Error("AutoStartNext should default to false")
	}
	if !s.Sound {
		t.Error("Sound should default to true")
	}
}

func TestSettings_Normalized(t *testing.T) {
	s := Settings{
		WorkMinutes:          0,
		ShortBreakMinutes:    -5,
		LongBreakMinutes:     15,
		RoundsUntilLongBreak: 0,
	}

	n := s.Normalized()

	if n.WorkMinutes != 1 || n.ShortBreakMinutes != 1 || n.RoundsUntilLongBreak != 1 {
		t.Errorf("Normalized() = %+v, want all numeric fields >= 1", n)
	}
	if n.LongBreakMinutes != 15 {
		t.Error("Normalized() must not alter valid values")
	}
}

func TestSettings_DurationSeconds(t *testing.T) {
	s := DefaultSettings()

	tests := []struct {
		mode Mode
		want int
	}{
		{ModeWork, 25 * 60},
		{ModeShortBreak, 5 * 60},
		{ModeLongBreak, 15 * 60},
	}

	for _, tt := range tests {
		if got := s.DurationSeconds(tt.mode); got != tt.want {
			t.Errorf("DurationSeconds(%v) = %d, want %d", tt.mode, got, tt.want)
		}
	}
}
