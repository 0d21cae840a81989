// Package verify drives the session the way an external harness would: one
// scripted Once-mode session per value, reading results off stdout and
// statuses off the returned error.
//
// Three suites run against the selected engine: a round trip of every value
// in [1, 3999], a set of numerals that must be rejected and a set of integer
// inputs that must be rejected. Each rejection case names the status it must
// produce.
package verify

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jpl-au/roman/internal/roman"
	"github.com/jpl-au/roman/internal/session"
)

// Menu options.
const (
	optionToInt   = "1"
	optionToRoman = "2"
)

// Case is a single rejection check.
type Case struct {
	Input string
	Want  session.Status
}

// InvalidNumerals must fail option 1 with the given status.
var InvalidNumerals = []Case{
	// repeats
	{"VV", session.StatusInvalidNumeral},
	{"LL", session.StatusInvalidNumeral},
	{"DD", session.StatusInvalidNumeral},
	{"IIII", session.StatusInvalidNumeral},
	{"XXXX", session.StatusInvalidNumeral},
	{"CCCC", session.StatusInvalidNumeral},
	{"MMMM", session.StatusInvalidNumeral},
	{"VIV", session.StatusInvalidNumeral},
	{"DCD", session.StatusInvalidNumeral},

	// subtraction and ordering
	{"IL", session.StatusInvalidNumeral},
	{"IC", session.StatusInvalidNumeral},
	{"XM", session.StatusInvalidNumeral},
	{"XD", session.StatusInvalidNumeral},
	{"VC", session.StatusInvalidNumeral},
	{"LC", session.StatusInvalidNumeral},
	{"DM", session.StatusInvalidNumeral},
	{"IXCM", session.StatusInvalidNumeral},

	// structure
	{"IIX", session.StatusInvalidNumeral},
	{"XXC", session.StatusInvalidNumeral},
	{"IXIX", session.StatusInvalidNumeral},
	{"MCMC", session.StatusInvalidNumeral},
	{"XCX", session.StatusInvalidNumeral},
	{"XLX", session.StatusInvalidNumeral},
	{"XCL", session.StatusInvalidNumeral},
	{"XLC", session.StatusInvalidNumeral},
	{"ICX", session.StatusInvalidNumeral},
	{"MCMCM", session.StatusInvalidNumeral},

	{"IXI", session.StatusInvalidNumeral},
	{"XCIXIX", session.StatusInvalidNumeral},
	{"IIV", session.StatusInvalidNumeral},
	{"XXL", session.StatusInvalidNumeral},
	{"CCD", session.StatusInvalidNumeral},
	{"MMMCMCM", session.StatusInvalidNumeral},
	{"IIIIX", session.StatusInvalidNumeral},
	{"MCMXCIVI", session.StatusInvalidNumeral},

	{"IIIIIIIIIIIIIIIIIIII", session.StatusInvalidInput},

	// garbage
	{"ABC", session.StatusInvalidNumeral},
	{"M1X", session.StatusInvalidInput},
	{"IX!", session.StatusInvalidInput},
	{"MXI$", session.StatusInvalidInput},
	{" ", session.StatusInvalidInput},
	{"I V", session.StatusInvalidInput},
	{"IV I", session.StatusInvalidInput},
	{"MCM XCVIII", session.StatusInvalidInput},
	{"MCM XCV III", session.StatusInvalidInput},
	{"MM M", session.StatusInvalidInput},
}

// InvalidIntegers must fail option 2 with the given status.
var InvalidIntegers = []Case{
	// out of range
	{"0", session.StatusInvalidNumeral},
	{"-5", session.StatusInvalidNumeral},
	{"4000", session.StatusInvalidNumeral},

	// garbage
	{"19$98", session.StatusInvalidInput},
	{"19 98", session.StatusInvalidInput},
	{"1998a", session.StatusInvalidInput},
	{"1998 a", session.StatusInvalidInput},
	{"19.98", session.StatusInvalidInput},
}

// Total is the number of checks in a full run.
var Total = roman.Max + len(InvalidNumerals) + len(InvalidIntegers)

// Failure describes one failed check.
type Failure struct {
	Suite  string `json:"suite"` // "round-trip", "numerals" or "integers"
	Input  string `json:"input"`
	Detail string `json:"detail"`
}

// Report summarises a run.
type Report struct {
	Engine   roman.Engine  `json:"engine"`
	Passed   int           `json:"passed"`
	Total    int           `json:"total"`
	Failures []Failure     `json:"failures,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// OK reports whether every check passed.
func (r Report) OK() bool { return r.Passed == r.Total }

// Options configures Run.
type Options struct {
	Engine roman.Engine
	Step   func() // called after every check, for progress
}

// Run executes all three suites. It returns early only when ctx is done.
func Run(ctx context.Context, opts Options) (Report, error) {
	start := time.Now()
	r := Report{Engine: opts.Engine, Total: Total}

	tick := func() {
		if opts.Step != nil {
			opts.Step()
		}
	}

	for n := roman.Min; n <= roman.Max; n++ {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		r.add(roundTrip(ctx, opts.Engine, n))
		tick()
	}
	for _, c := range InvalidNumerals {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		r.add(reject(ctx, opts.Engine, "numerals", optionToInt, session.NumeralPrompt, c))
		tick()
	}
	for _, c := range InvalidIntegers {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		r.add(reject(ctx, opts.Engine, "integers", optionToRoman, session.IntegerPrompt, c))
		tick()
	}

	r.Duration = time.Since(start)
	return r, nil
}

func (r *Report) add(f *Failure) {
	if f != nil {
		r.Failures = append(r.Failures, *f)
		return
	}
	r.Passed++
}

// roundTrip encodes n then decodes the result.
func roundTrip(ctx context.Context, engine roman.Engine, n int) *Failure {
	in := strconv.Itoa(n)
	numeral, status := drive(ctx, engine, optionToRoman, session.IntegerPrompt, in)
	if status != session.StatusOK {
		return &Failure{Suite: "round-trip", Input: in, Detail: fmt.Sprintf("encode: status %d", status)}
	}
	back, status := drive(ctx, engine, optionToInt, session.NumeralPrompt, numeral)
	if status != session.StatusOK || back != in {
		return &Failure{
			Suite:  "round-trip",
			Input:  in,
			Detail: fmt.Sprintf("%s decoded to %q (status %d)", numeral, back, status),
		}
	}
	return nil
}

func reject(ctx context.Context, engine roman.Engine, suite, option, prompt string, c Case) *Failure {
	out, status := drive(ctx, engine, option, prompt, c.Input)
	if status == c.Want {
		return nil
	}
	return &Failure{
		Suite:  suite,
		Input:  c.Input,
		Detail: fmt.Sprintf("status %d, want %d (output %q)", status, c.Want, out),
	}
}

// drive runs one Once-mode session with "<option>\n<input>\n" on stdin and
// returns stdout with the prompt removed.
func drive(ctx context.Context, engine roman.Engine, option, prompt, input string) (string, session.Status) {
	var out, errOut bytes.Buffer
	s := session.New(strings.NewReader(option+"\n"+input+"\n"), &out, &errOut, session.Options{
		Engine: engine,
		Once:   true,
	})
	err := s.Run(ctx)
	result := strings.TrimSpace(strings.ReplaceAll(out.String(), prompt, ""))
	return result, session.StatusOf(err)
}
