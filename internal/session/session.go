// Package session runs the interactive converter: a menu that loops over
// Roman-to-integer and integer-to-Roman prompts until the user quits.
//
// In Once mode the menu text is hidden and the session ends after the first
// conversion with that conversion's status, which lets scripts drive the
// binary one value at a time and read the exit code.
package session

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpl-au/roman/internal/roman"
)

// Prompts shown before each conversion.
const (
	NumeralPrompt = "Enter a Roman numeral or 'Q' to quit: "
	IntegerPrompt = "Enter a number up to 3999 or 'Q' to quit: "
)

// Conversion describes one attempted conversion, passed to Options.Record.
type Conversion struct {
	Action string // "decode" or "encode"
	Input  string
	Output string // empty on failure
	Err    error
}

// Options configures a session.
type Options struct {
	Engine   roman.Engine
	Once     bool
	Prompter Prompter           // nil means a Line prompter on the session's streams
	Record   func(c Conversion) // called after every conversion attempt
}

// Session holds the streams and options of one run.
type Session struct {
	out    io.Writer
	errOut io.Writer
	p      Prompter
	opts   Options
}

// New creates a session reading from in, writing results and prompts to out
// and failures to errOut.
func New(in io.Reader, out, errOut io.Writer, opts Options) *Session {
	p := opts.Prompter
	if p == nil {
		p = NewLine(in, out)
	}
	return &Session{out: out, errOut: errOut, p: p, opts: opts}
}

// Run executes the menu loop. It returns nil when the user quits and a
// *StatusError when the session ends on a failure. In Once mode a
// successful conversion also returns nil.
func (s *Session) Run(ctx context.Context) error {
	for {
		var line string
		var err error
		if s.opts.Once {
			line, err = s.p.Ask(ctx, "", menuLength)
		} else {
			line, err = s.p.Menu(ctx)
		}
		if err != nil {
			return s.askFailed(ctx, err)
		}

		switch {
		case line == "":
			return s.fail(roman.ErrEmptyInput)
		case isQuit(line):
			return nil
		case line == "1":
			if err := s.repeat(ctx, s.toInt); err != nil || s.opts.Once {
				return err
			}
		case line == "2":
			if err := s.repeat(ctx, s.toRoman); err != nil || s.opts.Once {
				return err
			}
		default:
			fmt.Fprintln(s.errOut, "\nInvalid input.")
		}
	}
}

// repeat runs one conversion prompt until the user quits. Only a failure to
// read input ends the loop early; in Once mode the first result ends it.
func (s *Session) repeat(ctx context.Context, convert func(context.Context) (bool, error)) error {
	for {
		quit, err := convert(ctx)
		switch {
		case quit:
			return nil
		case ctx.Err() != nil:
			return ctx.Err()
		case s.opts.Once, StatusOf(err) == StatusInputError:
			return err
		}
	}
}

// toInt prompts for a numeral and prints its value.
func (s *Session) toInt(ctx context.Context) (bool, error) {
	line, err := s.p.Ask(ctx, NumeralPrompt, roman.MaxNumeralLength)
	if err != nil {
		return false, s.askFailed(ctx, err)
	}
	if isQuit(line) {
		return true, nil
	}

	n, err := roman.ToInt(line, s.opts.Engine)
	c := Conversion{Action: "decode", Input: line, Err: err}
	if err == nil {
		c.Output = strconv.Itoa(n)
	}
	s.record(c)
	if err != nil {
		return false, s.fail(err)
	}
	fmt.Fprintln(s.out, n)
	return false, nil
}

// toRoman prompts for an integer and prints its numeral.
func (s *Session) toRoman(ctx context.Context) (bool, error) {
	line, err := s.p.Ask(ctx, IntegerPrompt, roman.MaxIntegerLength)
	if err != nil {
		return false, s.askFailed(ctx, err)
	}
	if isQuit(line) {
		return true, nil
	}

	numeral, err := convertInt(line)
	s.record(Conversion{Action: "encode", Input: line, Output: numeral, Err: err})
	if err != nil {
		return false, s.fail(err)
	}
	fmt.Fprintln(s.out, numeral)
	return false, nil
}

func convertInt(line string) (string, error) {
	n, err := roman.ParseInt(line)
	if err != nil {
		return "", err
	}
	return roman.FromInt(n)
}

// fail reports err to the user and wraps it with its status.
func (s *Session) fail(err error) error {
	fmt.Fprintln(s.errOut, message(err))
	return &StatusError{Status: StatusOf(err), Err: err}
}

// askFailed is fail for prompt errors; a cancelled ctx is returned as is.
func (s *Session) askFailed(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return s.fail(err)
}

func (s *Session) record(c Conversion) {
	if s.opts.Record != nil {
		s.opts.Record(c)
	}
}

func isQuit(line string) bool {
	return strings.EqualFold(line, "q")
}
