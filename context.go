package cron

import (
	"context"
	"time"
)

// Context is handed to an action. Besides cancellation it carries the task
// being run and the instant captured for the current tick; every action in
// the same tick sees the same Now.
type Context interface {
	context.Context
	Task() Task
	Now() time.Time
}

type ctx struct {
	context.Context
	task Task
	now  time.Time
}

func (c *ctx) Task() Task {
	return c.task
}

func (c *ctx) Now() time.Time {
	return c.now
}

// FromContext derives an action Context for task at the tick instant now.
func FromContext(parent context.Context, task Task, now time.Time) Context {
	return &ctx{
		Context: parent,
		task:    task,
		now:     now,
	}
}
