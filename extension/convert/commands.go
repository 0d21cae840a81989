// commands.go implements to-int, to-roman and validate.
//
// Each command converts its single argument, logs the attempt and exits
// with the same status the interactive session would use for that input.

package convert

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jpl-au/roman/cmd"
	"github.com/jpl-au/roman/internal/log"
	"github.com/jpl-au/roman/internal/roman"
	"github.com/jpl-au/roman/internal/session"
	"github.com/spf13/cobra"
)

// Result is the JSON shape of a conversion.
type Result struct {
	Numeral string `json:"numeral"`
	Value   int    `json:"value"`
	Engine  string `json:"engine,omitempty"`
}

// Verdict is the JSON shape of a validation.
type Verdict struct {
	Numeral string `json:"numeral"`
	Valid   bool   `json:"valid"`
	Engine  string `json:"engine"`
	Error   string `json:"error,omitempty"`
}

func (e *Extension) newToIntCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-int <numeral>",
		Short: "Convert a Roman numeral to an integer",
		Long: `Convert a Roman numeral to an integer. Case is ignored.

  roman to-int MCMXCVIII       # 1998
  roman to-int xiv -o json     # {"numeral":"XIV","value":14,"engine":"state"}

Exits 5 for an invalid numeral and 4 for malformed input.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runToInt,
	}
}

func (e *Extension) runToInt(c *cobra.Command, args []string) error {
	engine := e.ctx.Engine()
	n, err := roman.ToInt(args[0], engine)

	b := log.Event("convert:to-int", "decode").Engine(engine.String()).Input(args[0])
	if err == nil {
		b.Output(strconv.Itoa(n))
	}
	b.Write(err)

	if err != nil {
		return cmd.Fail(c, err)
	}
	if cmd.JSON() {
		numeral, _ := roman.NormaliseNumeral(args[0])
		return cmd.PrintJSON(Result{Numeral: numeral, Value: n, Engine: engine.String()})
	}
	fmt.Fprintln(cmd.Out(), n)
	return nil
}

func (e *Extension) newToRomanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-roman <number>",
		Short: "Convert an integer (1-3999) to a Roman numeral",
		Long: `Convert an integer in 1-3999 to its canonical Roman numeral.

  roman to-roman 3888          # MMMDCCCLXXXVIII

Exits 5 when the number is out of range and 4 for malformed input.`,
		Args: cobra.ExactArgs(1),
		RunE: e.runToRoman,
	}
}

func (e *Extension) runToRoman(c *cobra.Command, args []string) error {
	n, err := roman.ParseInt(args[0])
	var numeral string
	if err == nil {
		numeral, err = roman.FromInt(n)
	}

	log.Event("convert:to-roman", "encode").Input(args[0]).Output(numeral).Write(err)

	if err != nil {
		return cmd.Fail(c, err)
	}
	if cmd.JSON() {
		return cmd.PrintJSON(Result{Numeral: numeral, Value: n})
	}
	fmt.Fprintln(cmd.Out(), numeral)
	return nil
}

func (e *Extension) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <numeral>",
		Short: "Check whether a string is a well-formed Roman numeral",
		Long: `Print "valid" or "invalid" for a candidate numeral.

  roman validate MCMXCIV       # valid
  roman validate IXC           # invalid, exit 5
  roman validate "I V"         # malformed input, exit 4`,
		Args: cobra.ExactArgs(1),
		RunE: e.runValidate,
	}
}

func (e *Extension) runValidate(c *cobra.Command, args []string) error {
	engine := e.ctx.Engine()
	numeral, err := roman.Check(args[0], engine)

	verdict := "valid"
	if err != nil {
		verdict = "invalid"
	}
	log.Event("convert:validate", "validate").Engine(engine.String()).Input(args[0]).Output(verdict).Write(err)

	// Malformed input is a usage error, not a verdict.
	if err != nil && !errors.Is(err, roman.ErrInvalidNumeral) {
		return cmd.Fail(c, err)
	}

	if cmd.JSON() {
		v := Verdict{Numeral: numeral, Valid: err == nil, Engine: engine.String()}
		if err != nil {
			v.Error = err.Error()
		}
		if perr := cmd.PrintJSON(v); perr != nil {
			return perr
		}
	} else {
		fmt.Fprintln(cmd.Out(), verdict)
	}

	if err != nil {
		return cmd.Exit(c, session.StatusOf(err))
	}
	return nil
}
