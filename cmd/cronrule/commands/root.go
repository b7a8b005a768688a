// Package commands holds the cronrule command tree.
package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cron "github.com/kaiserkarel/cronrule"
	"github.com/kaiserkarel/cronrule/internal/config"
	"github.com/kaiserkarel/cronrule/internal/logging"
)

type app struct {
	v       *viper.Viper
	cfgFile string
}

// NewRootCmd builds the cronrule command with its subcommands. Every call
// gets its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "cronrule",
		Short: "Run shell commands on second-resolution cron rules",
		Long: `cronrule evaluates five-field rules (second minute hour day month) once
per second and runs every matching crontab entry in order. Day fields may
carry weekday conditions, e.g. "1-7&MON" or "1-31!SAT-SUN".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ReadFile(a.v, a.cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "settings file (yaml, toml or json)")
	flags.String(config.KeyLogLevel, "info", "log level (trace, debug, info, warn, error, off)")
	flags.Bool(config.KeyLogJSON, false, "log JSON lines instead of console output")
	flags.String(config.KeyLocation, "Local", "IANA time zone rules are evaluated in")
	flags.Duration(config.KeyPoll, cron.DefaultPollInterval, "clock poll interval while waiting for the next second")
	for _, key := range []string{config.KeyLogLevel, config.KeyLogJSON, config.KeyLocation, config.KeyPoll} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	root.AddCommand(newRunCmd(a), newCheckCmd(a), newTagCmd())
	return root
}

// settings resolves flags, environment and config file, in that order.
func (a *app) settings() (config.Settings, error) {
	return config.LoadSettings(a.v)
}

func (a *app) logger(s config.Settings) zerolog.Logger {
	return logging.New(logging.Config{
		Level: s.LogLevel,
		JSON:  s.LogJSON,
	}, os.Stderr)
}
