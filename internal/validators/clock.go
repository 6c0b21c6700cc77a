package validators

import "time"

// IsClock reports whether hm is a zero-padded 24h wall-clock time (HH:MM).
func IsClock(hm string) bool {
	if len(hm) != 5 || hm[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", hm)
	return err == nil
}

// ClockBefore compares two valid HH:MM values. Zero padding makes the
// lexical order match the chronological one.
func ClockBefore(a, b string) bool {
	return a < b
}
