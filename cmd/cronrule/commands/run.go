package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	cron "github.com/kaiserkarel/cronrule"
	"github.com/kaiserkarel/cronrule/internal/config"
	"github.com/kaiserkarel/cronrule/internal/shell"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Dispatch the crontab until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			log := a.logger(s)

			tab, err := config.LoadCrontab(s.Crontab)
			if err != nil {
				return err
			}
			loc, err := s.TimeLocation()
			if err != nil {
				return err
			}
			if tab.Location != "" {
				if loc, err = config.ResolveLocation(tab.Location); err != nil {
					return err
				}
			}

			d, err := cron.New(
				cron.WithLogger(log),
				cron.WithLocation(loc),
				cron.WithPollInterval(s.Poll),
			)
			if err != nil {
				return err
			}
			if err := schedule(d, tab, log); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			err = d.Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().String(config.KeyCrontab, "crontab.yaml", "crontab file listing the tasks")
	_ = a.v.BindPFlag(config.KeyCrontab, cmd.Flags().Lookup(config.KeyCrontab))
	return cmd
}

// schedule registers one shell command per crontab entry, in file order.
func schedule(d *cron.Dispatcher, tab *config.Crontab, log zerolog.Logger) error {
	for _, e := range tab.Tasks {
		id, err := d.Add(e.Schedule, &shell.Command{
			Name:  e.Name,
			Line:  e.Command,
			Shell: tab.Shell,
			Dir:   e.Dir,
			Env:   e.Env,
			Log:   log.With().Str("command", e.Name).Logger(),
		})
		if err != nil {
			return errors.Wrapf(err, "scheduling %s", e.Name)
		}
		log.Debug().Int("id", id).Str("name", e.Name).Str("schedule", e.Schedule).Msg("task scheduled")
	}
	return nil
}
