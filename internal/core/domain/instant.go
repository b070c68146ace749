package domain

import "time"

// Instant is a timestamp counted in nanoseconds since the Unix epoch, the
// representation all dates use when crossing the HTTP boundary.
type Instant int64

// InstantOf converts a wall-clock time to an Instant.
func InstantOf(t time.Time) Instant {
	if t.IsZero() {
		return 0
	}
	return Instant(t.UnixNano())
}

// Time converts the instant back to a UTC wall-clock value.
func (i Instant) Time() time.Time {
	return time.Unix(0, int64(i)).UTC()
}

// DayOf truncates a time to midnight UTC, the granularity used for
// attendance dates and date-only input fields.
func DayOf(t time.Time) time.Time {
	return t.UTC().Truncate(24 * time.Hour)
}
