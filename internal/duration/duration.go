// Package duration parses the short window strings accepted by
// "roman history --since": Nh (hours), Nd (days), Nw (weeks), Nm (months).
package duration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"
)

// ErrInvalid is returned for strings that are not a count followed by a unit.
var ErrInvalid = errors.New("invalid duration")

var window = regexp.MustCompile(`^(\d{1,6})([hdwm])$`)

const day = 24 * time.Hour

var units = map[string]time.Duration{
	"h": time.Hour,
	"d": day,
	"w": 7 * day,
	"m": 30 * day,
}

// Parse converts "12h", "7d", "4w" or "3m" into a time.Duration.
// A month is 30 days. Zero counts and windows longer than a time.Duration
// can hold are rejected.
func Parse(s string) (time.Duration, error) {
	m := window.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q (use 12h, 7d, 4w or 3m)", ErrInvalid, s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("%w: %q must be greater than zero", ErrInvalid, s)
	}
	unit := units[m[2]]
	if int64(n) > math.MaxInt64/int64(unit) {
		return 0, fmt.Errorf("%w: %q is too long", ErrInvalid, s)
	}
	return time.Duration(n) * unit, nil
}

// Since returns the instant d before now.
func Since(now time.Time, s string) (time.Time, error) {
	d, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-d), nil
}
