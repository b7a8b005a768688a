// Package shell runs crontab commands as dispatcher actions.
package shell

import (
	"bytes"
	"os"
	"os/exec"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	cron "github.com/kaiserkarel/cronrule"
)

// DefaultShell interprets command lines when none is configured.
const DefaultShell = "/bin/sh"

// maxOutput caps how much combined output is attached to a log line.
const maxOutput = 4 << 10

// Command is a cron.Action running Line through a shell.
type Command struct {
	Name  string
	Line  string
	Shell string
	Dir   string
	Env   map[string]string

	Log zerolog.Logger
}

var _ cron.Action = (*Command)(nil)

// Invoke runs the command to completion. A non-zero exit is an error.
func (c *Command) Invoke(ctx cron.Context) error {
	shell := c.Shell
	if shell == "" {
		shell = DefaultShell
	}

	cmd := exec.CommandContext(ctx, shell, "-c", c.Line)
	cmd.Dir = c.Dir
	cmd.Env = append(os.Environ(), c.environ(ctx)...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	output := truncate(out.String(), maxOutput)

	c.Log.Debug().Str("name", c.Name).Int("task", ctx.Task().ID).Str("output", output).Msg("command output")
	if err != nil {
		return errors.Wrapf(err, "command %s", c.Name)
	}
	return nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// environ returns the configured variables plus the tick details, sorted for
// stable output.
func (c *Command) environ(ctx cron.Context) []string {
	env := []string{
		"CRONRULE_TASK=" + c.Name,
		"CRONRULE_TICK=" + ctx.Now().Format(time.RFC3339),
	}
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+c.Env[k])
	}
	return env
}
