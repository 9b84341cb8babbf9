package shared

import "time"

// ParseDate accepts RFC3339 or YYYY-MM-DD. An empty value parses to the zero
// time so the engine can reject it as a missing period bound.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", value)
}
