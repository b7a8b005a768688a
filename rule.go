package cron

import (
	"strconv"
	"strings"
	"time"
)

// Set is an immutable set of small integers (0-63) used for a single rule field.
// The zero value is the empty set; Any returns the wildcard.
type Set struct {
	bits uint64
	any  bool
}

// Any returns the wildcard set, matching every value.
func Any() Set {
	return Set{any: true}
}

// NewSet returns a set containing the given values. Values outside 0-63 are ignored.
func NewSet(values ...int) Set {
	var s Set
	for _, v := range values {
		if v >= 0 && v < 64 {
			s.bits |= 1 << uint(v)
		}
	}
	return s
}

// IsAny reports whether the set is the wildcard.
func (s Set) IsAny() bool { return s.any }

// Empty reports whether the set holds no values and is not the wildcard.
func (s Set) Empty() bool { return !s.any && s.bits == 0 }

// Contains reports whether v is in the set. The wildcard contains everything.
func (s Set) Contains(v int) bool {
	if s.any {
		return true
	}
	if v < 0 || v >= 64 {
		return false
	}
	return s.bits&(1<<uint(v)) != 0
}

// Values returns the members in ascending order; nil for the wildcard.
func (s Set) Values() []int {
	if s.any {
		return nil
	}
	var res []int
	for v := 0; v < 64; v++ {
		if s.bits&(1<<uint(v)) != 0 {
			res = append(res, v)
		}
	}
	return res
}

func (s Set) union(o Set) Set {
	return Set{bits: s.bits | o.bits, any: s.any || o.any}
}

// String renders the set as a comma separated list, or "*".
func (s Set) String() string {
	if s.any {
		return "*"
	}
	values := s.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Weekday is a weekday ordinal where Monday is 0 and Sunday is 6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayTokens = [...]string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayTokens[w]
}

// WeekdayOf converts a time.Weekday to its Monday-based ordinal.
func WeekdayOf(d time.Weekday) Weekday {
	return Weekday((int(d) + 6) % 7)
}

// ParseWeekday resolves a three letter weekday token, case-insensitive.
func ParseWeekday(token string) (Weekday, bool) {
	token = strings.ToUpper(token)
	for i, t := range weekdayTokens {
		if t == token {
			return Weekday(i), true
		}
	}
	return 0, false
}

// Condition qualifies a day clause with a weekday operand.
type Condition int

const (
	// ConditionNone matches on the day of month alone.
	ConditionNone Condition = iota
	// ConditionAnd requires the weekday to be in the operand ("&").
	ConditionAnd
	// ConditionExcept requires the weekday to be outside the operand ("!").
	ConditionExcept
)

func (c Condition) String() string {
	switch c {
	case ConditionAnd:
		return "&"
	case ConditionExcept:
		return "!"
	default:
		return ""
	}
}

// DayClause is one comma separated item of the day-of-month field.
type DayClause struct {
	Days      Set
	Condition Condition
	// Weekdays holds Weekday ordinals; only meaningful when Condition is not ConditionNone.
	Weekdays Set
}

func (c DayClause) matches(t time.Time) bool {
	if !c.Days.Contains(t.Day()) {
		return false
	}
	wd := int(WeekdayOf(t.Weekday()))
	switch c.Condition {
	case ConditionAnd:
		return c.Weekdays.Contains(wd)
	case ConditionExcept:
		return !c.Weekdays.Contains(wd)
	default:
		return true
	}
}

func (c DayClause) String() string {
	s := c.Days.String()
	if c.Condition == ConditionNone {
		return s
	}
	days := c.Weekdays.Values()
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = Weekday(d).String()
	}
	return s + c.Condition.String() + strings.Join(names, ",")
}

// Rule is a normalized schedule. A Rule is immutable once parsed.
type Rule struct {
	expr    string
	seconds Set
	minutes Set
	hours   Set
	months  Set
	// nil means any day
	days []DayClause
}

// Expression returns the raw expression the rule was parsed from.
func (r Rule) Expression() string { return r.expr }

func (r Rule) Seconds() Set { return r.seconds }
func (r Rule) Minutes() Set { return r.minutes }
func (r Rule) Hours() Set   { return r.hours }
func (r Rule) Months() Set  { return r.months }

// Days returns a copy of the day clauses. A nil result means any day of month.
func (r Rule) Days() []DayClause {
	if r.days == nil {
		return nil
	}
	res := make([]DayClause, len(r.days))
	copy(res, r.days)
	return res
}

// AnyDay reports whether the day-of-month field is the wildcard.
func (r Rule) AnyDay() bool { return r.days == nil }

// String renders the normalized rule in field order.
func (r Rule) String() string {
	days := "*"
	if r.days != nil {
		parts := make([]string, len(r.days))
		for i, c := range r.days {
			parts[i] = c.String()
		}
		days = strings.Join(parts, " | ")
	}
	return strings.Join([]string{
		r.seconds.String(),
		r.minutes.String(),
		r.hours.String(),
		"[" + days + "]",
		r.months.String(),
	}, " ")
}
