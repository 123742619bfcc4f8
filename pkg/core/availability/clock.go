package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// parseClock converts a zero-padded "HH:MM" string to minutes since midnight.
// Lexicographic comparison of two well-formed clock strings is equivalent to
// comparing their minute values, which is why Validate can compare strings
// directly; parsing is only needed for arithmetic.
func parseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}

	return hours*60 + minutes, nil
}
