package cron

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	// DefaultPollInterval is the default period between clock reads while
	// waiting for the next second.
	DefaultPollInterval = 10 * time.Millisecond

	// DefaultFirstID is the id handed to the first task.
	DefaultFirstID = 1
)

var errSameSecond = errors.New("still in the same second")

// New is the constructor for Dispatcher
func New(opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		mu:     sync.Mutex{},
		nextID: DefaultFirstID,
		log:    zerolog.Nop(),
	}

	for _, opt := range opts {
		err := opt(d)
		if err != nil {
			return nil, err
		}
	}

	if d.tab == nil {
		d.tab = NewMemoryTab()
	}
	if d.clock == nil {
		d.clock = WallClock()
	}
	if d.location == nil {
		d.location = time.Local
	}
	if d.poll == 0 {
		d.poll = DefaultPollInterval
	}
	if d.parser == nil {
		d.parser = NewParser(WithParserLogger(d.log))
	}
	return d, nil
}

// Dispatcher runs actions whose rules match the current second. All work
// happens on the goroutine calling Run; actions run one after another in
// registration order.
type Dispatcher struct {
	mu     sync.Mutex
	nextID int
	tab    Tab
	parser *Parser

	clock    Clock
	location *time.Location
	poll     time.Duration

	log     zerolog.Logger
	reports chan Log

	running atomic.Bool
}

// Add parses expr and registers action under a fresh id. Parse errors are
// returned as is (wrapped with the expression) and nothing is registered.
func (d *Dispatcher) Add(expr string, action Action) (int, error) {
	if action == nil {
		return 0, errors.Errorf("cron: nil action for %q", expr)
	}

	rule, err := d.parser.Parse(expr)
	if err != nil {
		return 0, errors.Wrapf(err, "task %q", expr)
	}

	d.mu.Lock()
	id := d.nextID
	d.nextID++
	d.mu.Unlock()

	task := Task{ID: id, Expression: expr, Rule: rule, Action: action}
	if err := d.tab.Put(task); err != nil {
		return 0, errors.Wrapf(err, "storing task %d", id)
	}

	d.log.Debug().Int("task", id).Str("expr", expr).Msg("task added")
	return id, nil
}

// AddFunc registers a function as the action.
func (d *Dispatcher) AddFunc(expr string, fn func(Context) error) (int, error) {
	if fn == nil {
		return d.Add(expr, nil)
	}
	return d.Add(expr, ActionFunc(fn))
}

// Remove drops the task with the given id and returns the index it had.
// Remaining tasks keep their ids; a removed id is never handed out again.
func (d *Dispatcher) Remove(id int) (int, error) {
	idx, err := d.tab.Remove(id)
	if err != nil {
		return -1, errors.Wrapf(err, "removing task %d", id)
	}
	d.log.Debug().Int("task", id).Int("index", idx).Msg("task removed")
	return idx, nil
}

// Tasks returns the registered tasks in registration order.
func (d *Dispatcher) Tasks() ([]Task, error) {
	return d.tab.All()
}

// Location returns the location ticks are evaluated in.
func (d *Dispatcher) Location() *time.Location {
	return d.location
}

// IsRunning returns true while Run is looping.
func (d *Dispatcher) IsRunning() bool {
	return d.running.Load()
}

// Run dispatches until ctx is done. It returns ErrEmptyTaskList right away
// when no task is registered, otherwise ctx.Err() once cancelled.
//
// Every iteration reads the clock once; missed seconds are not caught up.
func (d *Dispatcher) Run(ctx context.Context) error {
	tasks, err := d.tab.All()
	if err != nil {
		return errors.Wrap(err, "reading tab")
	}
	if len(tasks) == 0 {
		return ErrEmptyTaskList
	}

	d.running.Store(true)
	defer d.running.Store(false)

	d.log.Info().Int("tasks", len(tasks)).Str("location", d.location.String()).Msg("dispatcher started")
	for {
		if err := ctx.Err(); err != nil {
			d.log.Info().Msg("dispatcher stopped")
			return err
		}

		now := d.clock.Now().In(d.location)
		d.Tick(ctx, now)

		if err := d.waitNextSecond(ctx, now); err != nil {
			d.log.Info().Msg("dispatcher stopped")
			return err
		}
	}
}

// Tick runs one iteration against the captured instant now: every task is
// matched against the same now and matching actions are invoked in
// registration order. Action failures are logged, never returned. Tick
// returns the number of actions invoked.
func (d *Dispatcher) Tick(ctx context.Context, now time.Time) int {
	tasks, err := d.tab.All()
	if err != nil {
		d.log.Error().Err(err).Msg("reading tab")
		return 0
	}

	fired := 0
	for _, task := range tasks {
		if ctx.Err() != nil {
			break
		}
		if !task.Rule.Matches(now) {
			continue
		}
		fired++
		_ = d.invoke(ctx, task, now)
	}
	return fired
}

func (d *Dispatcher) invoke(ctx context.Context, task Task, now time.Time) (err error) {
	report := newLog(task, now, d.clock.Now())
	log := d.log.With().Int("task", task.ID).Str("expr", task.Expression).Time("tick", now).Logger()
	log.Info().Msg("invoking action")

	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("panic: %v", r)
		}
		if err != nil {
			err = &ActionError{TaskID: task.ID, Expression: task.Expression, Err: err}
		}

		report.Ended = d.clock.Now()
		report.Err = err
		if err != nil {
			log.Error().Err(err).Dur("took", report.Took()).Msg("action failed")
		} else {
			log.Info().Dur("took", report.Took()).Msg("action finished")
		}
		d.emit(report)
	}()

	return task.Action.Invoke(FromContext(ctx, task, now))
}

func (d *Dispatcher) emit(report Log) {
	if d.reports == nil {
		return
	}
	select {
	case d.reports <- report:
	default:
		d.log.Warn().Str("log", report.ID).Msg("log channel full, dropping report")
	}
}

// waitNextSecond polls the clock until its Unix second differs from last's.
func (d *Dispatcher) waitNextSecond(ctx context.Context, last time.Time) error {
	second := last.Unix()
	b := backoff.WithContext(backoff.NewConstantBackOff(d.poll), ctx)

	err := backoff.Retry(func() error {
		if d.clock.Now().Unix() == second {
			return errSameSecond
		}
		return nil
	}, b)

	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}
