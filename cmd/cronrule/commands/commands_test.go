package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cron "github.com/kaiserkarel/cronrule"
	"github.com/kaiserkarel/cronrule/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", "0 0 12 * *", "--from", "2024-01-01T00:00:00Z", "--location", "UTC", "-n", "2")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "rule: "))
	assert.Equal(t, "2024-01-01T12:00:00Z", lines[1])
	assert.Equal(t, "2024-01-02T12:00:00Z", lines[2])
}

func TestCheck_Never(t *testing.T) {
	out, err := execute(t, "check", "0 0 0 31 2", "--location", "UTC")
	require.NoError(t, err)
	assert.Contains(t, out, "no further activations")
}

func TestCheck_InvalidRule(t *testing.T) {
	_, err := execute(t, "check", "* * *")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cron.ErrWrongFieldCount))
}

func TestTag(t *testing.T) {
	out, err := execute(t, "tag", "3rd", "blorp")
	require.NoError(t, err)
	assert.Contains(t, out, "normalized: 3rd blorp")
	assert.Contains(t, out, "3rd[ordinal(3), ordinal_day(3)]")
	assert.Contains(t, out, "untagged: blorp")
}

func TestRun_EmptyCrontab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crontab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tasks: []\n"), 0o600))

	_, err := execute(t, "run", "--crontab", path, "--log-level", "off")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cron.ErrEmptyTaskList))
}

func TestRun_MissingCrontab(t *testing.T) {
	_, err := execute(t, "run", "--crontab", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSchedule(t *testing.T) {
	tab := &config.Crontab{Tasks: []config.Entry{
		{Name: "a", Schedule: "0 * * * *", Command: "true"},
		{Name: "b", Schedule: "@hourly", Command: "true"},
	}}
	d, err := cron.New()
	require.NoError(t, err)
	require.NoError(t, schedule(d, tab, zerolog.Nop()))

	tasks, err := d.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "0 * * * *", tasks[0].Expression)
	assert.Equal(t, "@hourly", tasks[1].Expression)
}

func TestApp_Logger(t *testing.T) {
	a := &app{v: config.NewViper()}
	assert.Equal(t, zerolog.WarnLevel, a.logger(config.Settings{LogLevel: "warn"}).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, a.logger(config.Settings{LogLevel: "bogus"}).GetLevel())
	assert.Equal(t, zerolog.Disabled, a.logger(config.Settings{LogLevel: "off"}).GetLevel())
}
