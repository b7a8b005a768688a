package commands

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	cron "github.com/kaiserkarel/cronrule"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		next int
		from string
	)
	cmd := &cobra.Command{
		Use:   "check EXPR",
		Short: "Parse a rule and list its next activations",
		Example: `  cronrule check "0 0,15,30,45 9-17 1-31!SAT-SUN *"
  cronrule check "@weekly" --next 3 --location UTC`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := cron.Parse(args[0])
			if err != nil {
				return err
			}
			s, err := a.settings()
			if err != nil {
				return err
			}
			loc, err := s.TimeLocation()
			if err != nil {
				return err
			}

			t := time.Now().In(loc)
			if from != "" {
				if t, err = time.ParseInLocation(time.RFC3339, from, loc); err != nil {
					return errors.Wrap(err, "parsing --from")
				}
				t = t.In(loc)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rule: %s\n", rule)
			for i := 0; i < next; i++ {
				t = rule.Next(t)
				if t.IsZero() {
					fmt.Fprintln(out, "no further activations")
					break
				}
				fmt.Fprintln(out, t.Format(time.RFC3339))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&next, "next", "n", 5, "number of activations to list")
	cmd.Flags().StringVar(&from, "from", "", "RFC3339 instant to search from (default now)")
	return cmd
}
