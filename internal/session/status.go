// status.go maps conversion failures to process exit statuses.
//
// The numbers are fixed: scripts that drive the session with --test read
// them. Out-of-range integers share status 5 with invalid numerals but keep
// their own message.

package session

import (
	"errors"
	"fmt"

	"github.com/jpl-au/roman/internal/roman"
)

// Status is the exit status of one session step.
type Status int

const (
	StatusOK             Status = 0
	StatusInputError     Status = 1 // reading input failed or hit EOF
	StatusEmpty          Status = 2
	StatusInvalidInput   Status = 4 // malformed or too long
	StatusInvalidNumeral Status = 5 // grammar or range
)

// ErrInput wraps failures to read from the input stream.
var ErrInput = errors.New("input error")

// StatusError carries the status of a failed step alongside its cause.
type StatusError struct {
	Status Status
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v (status %d)", e.Err, e.Status)
}

func (e *StatusError) Unwrap() error { return e.Err }

// ExitCode returns the status as a process exit code.
func (e *StatusError) ExitCode() int { return int(e.Status) }

// StatusOf classifies err.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrInput):
		return StatusInputError
	case errors.Is(err, roman.ErrEmptyInput):
		return StatusEmpty
	case errors.Is(err, roman.ErrInvalidNumeral), errors.Is(err, roman.ErrOutOfRange):
		return StatusInvalidNumeral
	default:
		return StatusInvalidInput
	}
}

// message is the line shown to the user for err.
func message(err error) string {
	var ne *roman.NumeralError
	switch {
	case errors.Is(err, ErrInput):
		return "Input error."
	case errors.As(err, &ne):
		return ne.Numeral + " is not a valid Roman numeral."
	case errors.Is(err, roman.ErrOutOfRange):
		return fmt.Sprintf("Out of range (%d-%d).", roman.Min, roman.Max)
	default:
		return "Invalid input."
	}
}
