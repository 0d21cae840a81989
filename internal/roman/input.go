// input.go normalises raw lines before they reach the validator or the
// encoder.
//
// Only the line terminator is stripped. Anything else that is not a letter,
// including interior or surrounding spaces, makes the line malformed rather
// than being silently trimmed.

package roman

import (
	"fmt"
	"strconv"
	"strings"
)

// Input bounds, in bytes, after the line terminator is removed.
const (
	MaxNumeralLength = 19
	MaxIntegerLength = 8
)

func trimTerminator(raw string) string {
	raw = strings.TrimSuffix(raw, "\n")
	return strings.TrimSuffix(raw, "\r")
}

// NormaliseNumeral strips the line terminator, checks that raw is a bounded
// run of ASCII letters and returns it upper-cased. The result is ready for
// IsValid but has not been validated.
func NormaliseNumeral(raw string) (string, error) {
	s := trimTerminator(raw)
	if s == "" {
		return "", ErrEmptyInput
	}
	if len(s) > MaxNumeralLength {
		return "", fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLong, len(s), MaxNumeralLength)
	}
	for i := range len(s) {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return "", fmt.Errorf("%w: %q is not a letter", ErrMalformedInput, c)
		}
	}
	return strings.ToUpper(s), nil
}

// ParseInt strips the line terminator and parses raw as a decimal integer.
// The range is not checked here; see FromInt.
func ParseInt(raw string) (int, error) {
	s := trimTerminator(raw)
	if s == "" {
		return 0, ErrEmptyInput
	}
	if len(s) > MaxIntegerLength {
		return 0, fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLong, len(s), MaxIntegerLength)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	return n, nil
}
