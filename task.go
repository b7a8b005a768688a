package cron

// Action is invoked by the dispatcher whenever its task's rule matches.
type Action interface {
	Invoke(ctx Context) error
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(ctx Context) error

// Invoke calls f(ctx).
func (f ActionFunc) Invoke(ctx Context) error {
	return f(ctx)
}

// Task is a single registered schedule, a rule plus the action it triggers.
type Task struct {
	// Sequential identifier, never reused within a Dispatcher.
	ID int

	// Raw expression the rule was parsed from.
	Expression string

	Rule Rule

	Action Action
}
