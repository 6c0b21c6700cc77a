package timezone

import (
	"strings"
	"time"
)

// LocalName selects the server's own zone.
const LocalName = "Local"

const (
	dateLayout      = "2006-01-02"
	clockLayout     = "15:04"
	localDateTime   = "2006-01-02T15:04"
	localDateTimeS  = "2006-01-02T15:04:05"
	localDateTimeMS = "2006-01-02T15:04:05.000"
)

func IsValid(tz string) bool {
	if tz == "" || tz == LocalName {
		return true
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves a zone name. Empty, "Local" and unknown names fall back
// to the server zone.
func Location(tz string) *time.Location {
	if tz == "" || tz == LocalName {
		return time.Local
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	return time.Local
}

func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// ParseDate accepts YYYY-MM-DD, or a full RFC 3339 timestamp whose calendar
// date is taken in loc. The result is midnight of that date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// ParseTimestamp accepts ISO 8601 timestamps. Values without an offset are
// read as wall-clock time in loc. Precision is cut to microseconds so the
// value survives a round trip through postgres unchanged.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Truncate(time.Microsecond), nil
	}
	var lastErr error
	for _, layout := range []string{localDateTimeMS, localDateTimeS, localDateTime, dateLayout} {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t.Truncate(time.Microsecond), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// DayBounds returns the inclusive window [00:00:00.000, 23:59:59.999] of the
// calendar day containing t, in loc.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	t = t.In(loc)
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}

// Clock formats the wall-clock HH:MM of t in loc.
func Clock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(clockLayout)
}
