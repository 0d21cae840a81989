// errors.go defines sentinel errors for conversion failures.
//
// Each sentinel is one failure category at the boundary. Range and grammar
// failures also have typed errors carrying the offending value so callers can
// build messages without re-parsing.

package roman

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput     = errors.New("empty input")
	ErrInputTooLong   = errors.New("input too long")
	ErrMalformedInput = errors.New("malformed input")
	ErrInvalidNumeral = errors.New("invalid roman numeral")
	ErrOutOfRange     = errors.New("out of range")
	ErrUnknownEngine  = errors.New("unknown validator engine")
)

// NumeralError reports a well-formed alphabetic string that is not a
// standard-form Roman numeral.
type NumeralError struct {
	Numeral string
}

func (e *NumeralError) Error() string {
	return fmt.Sprintf("%s is not a valid Roman numeral", e.Numeral)
}

// Is reports ErrInvalidNumeral so errors.Is works on wrapped values.
func (e *NumeralError) Is(target error) bool { return target == ErrInvalidNumeral }

// RangeError reports an integer outside [Min, Max].
type RangeError struct {
	Value int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%d out of range (%d-%d)", e.Value, Min, Max)
}

// Is reports ErrOutOfRange so errors.Is works on wrapped values.
func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }
