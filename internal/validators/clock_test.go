package validators

import "testing"

func TestIsClock(t *testing.T) {
	cases := map[string]bool{
		"09:00": true,
		"23:59": true,
		"00:00": true,
		"9:00":  false,
		"24:00": false,
		"09:60": false,
		"0900":  false,
		"":      false,
		"09:0a": false,
	}
	for in, want := range cases {
		if got := IsClock(in); got != want {
			t.Errorf("IsClock(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestClockBefore(t *testing.T) {
	if !ClockBefore("09:00", "09:30") {
		t.Error("expected 09:00 before 09:30")
	}
	if ClockBefore("10:00", "09:30") {
		t.Error("expected 10:00 not before 09:30")
	}
	if ClockBefore("09:00", "09:00") {
		t.Error("equal clocks are not ordered")
	}
}
