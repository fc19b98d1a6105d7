package utils

import "time"

// ParseDate interpreta uma data no formato YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value)
}
