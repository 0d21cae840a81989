// run.go implements the "roman session" command.
//
// Prompter choice: a terminal on both stdin and stdout gets the survey
// selector, anything else (pipes, --test) reads plain bounded lines so
// scripts see exactly the prompts and statuses they expect.

package session

import (
	"os"
	"strconv"

	"github.com/jpl-au/roman/cmd"
	"github.com/jpl-au/roman/extension"
	"github.com/jpl-au/roman/internal/log"
	"github.com/jpl-au/roman/internal/session"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newSessionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "session",
		Short: "Run the interactive converter",
		Long: `Run the interactive menu: convert numerals to integers and back until Q.

  roman session
  printf '2\n1998\n' | roman session --test    # MCMXCVIII, exit 0
  printf '1\nIIII\n' | roman session --test    # exit 5

--test hides the menu and exits after one conversion with its status:
0 ok, 1 input error, 2 empty, 4 invalid input, 5 invalid numeral or range.`,
		Args: cobra.NoArgs,
		RunE: e.runSession,
	}
	c.Flags().Bool(extension.FlagTest, false, "Hide the menu and exit after one conversion")
	return c
}

func (e *Extension) runSession(c *cobra.Command, _ []string) error {
	once, _ := c.Flags().GetBool(extension.FlagTest)
	engine := e.ctx.Engine()

	opts := session.Options{
		Engine: engine,
		Once:   once,
		Record: func(conv session.Conversion) {
			source := "session:to-int"
			if conv.Action == "encode" {
				source = "session:to-roman"
			}
			b := log.Event(source, conv.Action).Input(conv.Input).Output(conv.Output)
			if conv.Action == "decode" {
				b.Engine(engine.String())
			}
			b.Detail("once", strconv.FormatBool(once)).Write(conv.Err)
		},
	}
	if !once && interactive() {
		opts.Prompter = session.NewSurvey()
	}

	err := session.New(c.InOrStdin(), cmd.Out(), c.ErrOrStderr(), opts).Run(c.Context())
	if err != nil {
		// The session has already told the user what went wrong.
		c.SilenceErrors = true
		c.SilenceUsage = true
	}
	return err
}

func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
