// guide.go implements the "roman guide" command for documentation access.
//
// Guides are embedded in the binary via the guide package. Terminal output
// gets glamour rendering; a pipe or redirect gets raw markdown.

package core

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/roman/cmd"
	"github.com/jpl-au/roman/guide"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [topic]",
		Short: "Show the roman usage guide",
		Long: `Outputs the roman guide or one of its topics.

  roman guide            # overview
  roman guide numerals   # the rules a numeral must follow
  roman guide session    # interactive mode and exit statuses`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			topics, _ := guide.List()
			return topics, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(c *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			content, err := guide.Get(name)
			if err != nil {
				available, listErr := guide.List()
				if listErr != nil {
					return listErr
				}
				return cmd.Fail(c, fmt.Errorf("guide %q not found. Available: %s", name, strings.Join(available, ", ")))
			}

			if term.IsTerminal(int(os.Stdout.Fd())) {
				rendered, err := glamour.Render(content, "dark")
				if err == nil {
					fmt.Fprint(cmd.Out(), rendered)
					return nil
				}
			}

			fmt.Fprint(cmd.Out(), content)
			return nil
		},
	}
}
