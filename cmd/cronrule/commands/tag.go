package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaiserkarel/cronrule/natural"
)

func newTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tag PHRASE...",
		Short:   "Show how a date phrase is normalized and tagged",
		Example: `  cronrule tag 3rd wednesday in november at 5pm`,
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			res := natural.Parse(strings.Join(args, " "))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "normalized: %s\n", res.Text)
			for _, tok := range res.Tokens {
				fmt.Fprintln(out, tok.String())
			}
			if rest := res.Untagged(); len(rest) > 0 {
				fmt.Fprintf(out, "untagged: %s\n", strings.Join(rest, " "))
			}
		},
	}
}
