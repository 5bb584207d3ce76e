package domain

import (
	"strings"
	"time"
)

// ParseInstant parses an ISO-8601 instant with an explicit zone designator
// ("Z" or a numeric offset) and returns it in UTC.
func ParseInstant(s string) (time.Time, error) {
	var verr ValidationError
	s = strings.TrimSpace(s)
	if s == "" {
		verr.Add("datetime", "is required")
		return time.Time{}, verr.Err()
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		verr.Add("datetime", "must be an ISO-8601 instant such as 1990-06-15T18:30:00Z")
		return time.Time{}, verr.Err()
	}
	return t.UTC(), nil
}
