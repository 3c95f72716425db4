// Package timeconv maps "HH:MM" wall-clock strings to minute-of-day offsets.
// Schedule intervals are stored and compared as these offsets.
package timeconv

import (
	"fmt"
	"time"
)

// ToMinutes converts a "HH:MM" string to minutes since midnight.
// Malformed input is rejected rather than producing a bogus offset.
func ToMinutes(s string) (int, error) {
	const op = "timeconv.ToMinutes"

	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return t.Hour()*60 + t.Minute(), nil
}
