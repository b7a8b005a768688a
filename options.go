package cron

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Option is a constructor function
type Option func(*Dispatcher) error

// WithTab sets a storage backend for the dispatcher
func WithTab(tab Tab) Option {
	return func(d *Dispatcher) error {
		if tab == nil {
			return errors.New("cron: nil tab")
		}
		d.tab = tab
		return nil
	}
}

// WithLog sets a channel receiving a Log per invocation. Sends never block;
// a Log is dropped when the channel is full.
func WithLog(log chan Log) Option {
	return func(d *Dispatcher) error {
		d.reports = log
		return nil
	}
}

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Dispatcher) error {
		d.log = log
		return nil
	}
}

// WithClock replaces the wall clock, mostly useful in tests.
func WithClock(clock Clock) Option {
	return func(d *Dispatcher) error {
		if clock == nil {
			return errors.New("cron: nil clock")
		}
		d.clock = clock
		return nil
	}
}

// WithLocation sets the location ticks are evaluated in.
//
// Location defaults to time.Local.
func WithLocation(location *time.Location) Option {
	return func(d *Dispatcher) error {
		if location == nil {
			return errors.New("cron: nil location")
		}
		d.location = location
		return nil
	}
}

// WithPollInterval sets how often the clock is re-read while waiting for the
// next second.
func WithPollInterval(interval time.Duration) Option {
	return func(d *Dispatcher) error {
		if interval <= 0 || interval >= time.Second {
			return errors.Errorf("cron: poll interval %s must be within (0, 1s)", interval)
		}
		d.poll = interval
		return nil
	}
}

// WithParser sets the parser used by Add.
func WithParser(p *Parser) Option {
	return func(d *Dispatcher) error {
		if p == nil {
			return errors.New("cron: nil parser")
		}
		d.parser = p
		return nil
	}
}

// WithFirstID sets the id handed to the first task. Pass 2 to keep ids
// compatible with schedulers that pre-incremented their counter.
func WithFirstID(id int) Option {
	return func(d *Dispatcher) error {
		if id < 0 {
			return errors.Errorf("cron: negative first id %d", id)
		}
		d.nextID = id
		return nil
	}
}
