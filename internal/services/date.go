package services

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date form accepted in requests.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form at UTC midnight.
// The boolean reports whether the input held a valid date; callers fall
// back to their own default when it is false.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}
