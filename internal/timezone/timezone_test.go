package timezone

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Kolkata")

	d, err := ParseDate("2025-01-06", loc)
	if err != nil {
		t.Fatal(err)
	}
	if d.Weekday() != time.Monday || d.Hour() != 0 || d.Location() != loc {
		t.Errorf("ParseDate = %v", d)
	}

	// 2025-01-05T20:00Z is already the 6th in Kolkata.
	d, err = ParseDate("2025-01-05T20:00:00Z", loc)
	if err != nil {
		t.Fatal(err)
	}
	if d.Day() != 6 {
		t.Errorf("day = %d, want 6", d.Day())
	}

	for _, bad := range []string{"", "06-01-2025", "2025-02-30"} {
		if _, err := ParseDate(bad, loc); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestParseTimestamp(t *testing.T) {
	loc := time.UTC

	cases := map[string]time.Time{
		"2025-01-06T09:00:00Z":           time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		"2025-01-06T14:30:00+05:30":      time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC),
		"2025-01-06T09:00":               time.Date(2025, 1, 6, 9, 0, 0, 0, loc),
		"2025-01-06T09:00:00.000":        time.Date(2025, 1, 6, 9, 0, 0, 0, loc),
		"2025-01-06T09:00:00.123456789Z": time.Date(2025, 1, 6, 9, 0, 0, 123456000, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseTimestamp(in, loc)
		if err != nil {
			t.Errorf("%s: %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%s = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseTimestamp("next tuesday", loc); err == nil {
		t.Error("expected error")
	}
}

func TestDayBoundsAndClock(t *testing.T) {
	loc, _ := time.LoadLocation("America/New_York")
	at := time.Date(2025, 1, 6, 15, 0, 0, 0, time.UTC) // 10:00 in New York

	start, end := DayBounds(at, loc)
	if start.Format(time.RFC3339) != "2025-01-06T00:00:00-05:00" {
		t.Errorf("start = %v", start)
	}
	if end.Sub(start) != 24*time.Hour-time.Millisecond {
		t.Errorf("window = %v", end.Sub(start))
	}
	if got := Clock(at, loc); got != "10:00" {
		t.Errorf("Clock = %q", got)
	}
}

func TestLocation(t *testing.T) {
	if Location("") != time.Local || Location(LocalName) != time.Local || Location("Nowhere/Else") != time.Local {
		t.Error("fallbacks should be time.Local")
	}
	if Location("UTC") != time.UTC {
		t.Error("UTC should resolve to time.UTC")
	}
	if IsValid("Nowhere/Else") {
		t.Error("unknown zone reported valid")
	}
}
