package cron

import (
	"strconv"
	"time"
)

// Log is emitted after an action has run.
type Log struct {
	ID      string
	Task    Task
	Tick    time.Time
	Started time.Time
	Ended   time.Time
	Err     error
}

func newLog(task Task, tick, started time.Time) Log {
	return Log{
		ID:      strconv.Itoa(task.ID) + "@" + tick.Format(time.RFC3339),
		Task:    task,
		Tick:    tick,
		Started: started,
	}
}

// Took returns how long the invocation ran.
func (l Log) Took() time.Duration {
	return l.Ended.Sub(l.Started)
}
