package sqlite

import (
	"time"
)

// FormatTimeForDB formats a time.Time value as epoch seconds for consistent database storage
func FormatTimeForDB(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// ParseTimeFromDB converts epoch seconds from the database back to a time.Time
func ParseTimeFromDB(seconds int64) time.Time {
	if seconds == 0 {
		return time.Time{}
	}
	return time.Unix(seconds, 0)
}
