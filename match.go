package cron

import "time"

// Match reports whether t satisfies rule. t is evaluated in its own location.
func Match(rule Rule, t time.Time) bool {
	return rule.Matches(t)
}

// Matches reports whether t satisfies all five fields of the rule.
func (r Rule) Matches(t time.Time) bool {
	return r.seconds.Contains(t.Second()) &&
		r.minutes.Contains(t.Minute()) &&
		r.hours.Contains(t.Hour()) &&
		r.months.Contains(int(t.Month())) &&
		r.matchDay(t)
}

// matchDay ORs the day clauses.
func (r Rule) matchDay(t time.Time) bool {
	if r.days == nil {
		return true
	}
	for _, c := range r.days {
		if c.matches(t) {
			return true
		}
	}
	return false
}
