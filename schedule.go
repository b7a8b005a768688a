package cron

import (
	"time"

	robfig "github.com/robfig/cron"
)

// Schedule describes a job's duty cycle. It is the robfig/cron interface, so
// a Rule can be handed to a robfig runner as well as to a Dispatcher.
type Schedule = robfig.Schedule

var _ Schedule = Rule{}

// searchLimit bounds Next for rules that never match, e.g. "0 0 0 31 2".
const searchLimit = 5

// Next returns the first instant strictly after t, at second resolution, that
// matches the rule. It returns the zero time if there is none within five years.
func (r Rule) Next(t time.Time) time.Time {
	loc := t.Location()
	t = t.Truncate(time.Second).Add(time.Second)
	limit := t.AddDate(searchLimit, 0, 0)

	for t.Before(limit) {
		y, mo, d := t.Date()
		h, mi, s := t.Clock()

		switch {
		case !r.months.Contains(int(mo)):
			t = advance(t, time.Date(y, mo+1, 1, 0, 0, 0, 0, loc), time.Second)
		case !r.matchDay(t):
			t = advance(t, time.Date(y, mo, d+1, 0, 0, 0, 0, loc), time.Second)
		case !r.hours.Contains(h):
			t = advance(t, time.Date(y, mo, d, h+1, 0, 0, 0, loc), time.Second)
		case !r.minutes.Contains(mi):
			t = advance(t, time.Date(y, mo, d, h, mi+1, 0, 0, loc), time.Second)
		case !r.seconds.Contains(s):
			t = t.Add(time.Second)
		default:
			return t
		}
	}
	return time.Time{}
}

// advance moves to next, falling back to a fixed step when wall clock
// normalisation around a DST change would not move forward.
func advance(t, next time.Time, step time.Duration) time.Time {
	if !next.After(t) {
		return t.Add(step)
	}
	return next
}
