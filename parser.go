package cron

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const weekdayPattern = `(MON|TUE|WED|THU|FRI|SAT|SUN)`

var (
	plainItem = regexp.MustCompile(`^(\d+)(?:-(\d+))?$`)
	dayItem   = regexp.MustCompile(`^(\d+)(?:-(\d+))?(?:([&!])` + weekdayPattern + `(?:-` + weekdayPattern + `)?)?$`)
	// conditional suffixes are only valid on the day field
	conditional = regexp.MustCompile(`[&!]`)
)

// domain is the inclusive value range of a field.
type domain struct {
	min, max int
}

var domains = map[Field]domain{
	FieldSecond: {0, 59},
	FieldMinute: {0, 59},
	FieldHour:   {0, 23},
	FieldDay:    {1, 31},
	FieldMonth:  {1, 12},
}

var descriptors = map[string]string{
	"@YEARLY":   "0 0 0 1 1",
	"@ANNUALLY": "0 0 0 1 1",
	"@MONTHLY":  "0 0 0 1 *",
	"@WEEKLY":   "0 0 0 1-31&MON *",
	"@DAILY":    "0 0 0 * *",
	"@MIDNIGHT": "0 0 0 * *",
	"@HOURLY":   "0 0 * * *",
	"@MINUTELY": "0 * * * *",
	"@SECONDLY": "* * * * *",
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithParserLogger sets the logger used to trace normalized rules.
func WithParserLogger(log zerolog.Logger) ParserOption {
	return func(p *Parser) {
		p.log = log
	}
}

// Parser turns raw expressions into Rules. Expressions have five fields:
// second, minute, hour, day-of-month and month.
type Parser struct {
	log zerolog.Logger
}

// NewParser returns a parser. Without options it does not log.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses expr with the default parser.
func Parse(expr string) (Rule, error) {
	return defaultParser.Parse(expr)
}

// MustParse is like Parse but panics on error.
func MustParse(expr string) Rule {
	r, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return r
}

// Parse validates expr eagerly and returns the normalized rule.
func (p *Parser) Parse(expr string) (Rule, error) {
	normalized := strings.ToUpper(strings.TrimSpace(expr))
	if d, ok := descriptors[normalized]; ok {
		normalized = d
	}

	fields := strings.Fields(normalized)
	if len(fields) != 5 {
		return Rule{}, parseError(ErrWrongFieldCount, FieldNone, "", expr, "expected 5 fields, got %d", len(fields))
	}

	rule := Rule{expr: expr}
	var err error
	if rule.seconds, err = parseField(fields[0], FieldSecond, expr); err != nil {
		return Rule{}, err
	}
	if rule.minutes, err = parseField(fields[1], FieldMinute, expr); err != nil {
		return Rule{}, err
	}
	if rule.hours, err = parseField(fields[2], FieldHour, expr); err != nil {
		return Rule{}, err
	}
	if rule.days, err = parseDays(fields[3], expr); err != nil {
		return Rule{}, err
	}
	if rule.months, err = parseField(fields[4], FieldMonth, expr); err != nil {
		return Rule{}, err
	}

	p.log.Debug().Str("expr", expr).Str("rule", rule.String()).Msg("parsed rule")
	return rule, nil
}

func parseField(raw string, field Field, expr string) (Set, error) {
	if raw == "*" {
		return Any(), nil
	}

	var set Set
	for _, item := range strings.Split(raw, ",") {
		if conditional.MatchString(item) {
			return Set{}, parseError(ErrInvalidFieldSyntax, field, item, expr, "weekday conditions are only allowed on the day-of-month field")
		}
		m := plainItem.FindStringSubmatch(item)
		if m == nil {
			return Set{}, parseError(ErrInvalidFieldSyntax, field, item, expr, "expected a number or a range")
		}
		values, err := expand(m[1], m[2], field, item, expr)
		if err != nil {
			return Set{}, err
		}
		set = set.union(values)
	}
	return set, nil
}

func parseDays(raw, expr string) ([]DayClause, error) {
	if raw == "*" {
		return nil, nil
	}

	var clauses []DayClause
	for _, item := range strings.Split(raw, ",") {
		m := dayItem.FindStringSubmatch(item)
		if m == nil {
			return nil, parseError(ErrInvalidFieldSyntax, FieldDay, item, expr, "expected a day, a day range or a day with a weekday condition")
		}
		days, err := expand(m[1], m[2], FieldDay, item, expr)
		if err != nil {
			return nil, err
		}
		clause := DayClause{Days: days}
		switch m[3] {
		case "&":
			clause.Condition = ConditionAnd
		case "!":
			clause.Condition = ConditionExcept
		}
		if clause.Condition != ConditionNone {
			clause.Weekdays = expandWeekdays(m[4], m[5])
		}
		clauses = append(clauses, clause)
	}
	return clauses, nil
}

// expand turns a literal or a low-high range into a set. Literals outside the
// field's domain are rejected; range bounds are clamped and swapped when reversed.
func expand(low, high string, field Field, item, expr string) (Set, error) {
	dom := domains[field]

	if high == "" {
		v, err := strconv.Atoi(low)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return Set{}, parseError(ErrInvalidFieldSyntax, field, item, expr, "%v", err)
		}
		if err != nil || v < dom.min || v > dom.max {
			return Set{}, parseError(ErrValueOutOfDomain, field, item, expr, "%s is outside %d-%d", low, dom.min, dom.max)
		}
		return NewSet(v), nil
	}

	lo, err := bound(low, dom)
	if err != nil {
		return Set{}, parseError(ErrInvalidFieldSyntax, field, item, expr, "%v", err)
	}
	hi, err := bound(high, dom)
	if err != nil {
		return Set{}, parseError(ErrInvalidFieldSyntax, field, item, expr, "%v", err)
	}
	if lo > hi {
		lo, hi = hi, lo
	}

	var set Set
	for v := lo; v <= hi; v++ {
		set.bits |= 1 << uint(v)
	}
	return set, nil
}

// bound parses a range endpoint and clamps it to d. Digits too large for an
// int clamp to d.max.
func bound(s string, d domain) (int, error) {
	v, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return d.max, nil
	}
	if err != nil {
		return 0, err
	}
	return clamp(v, d), nil
}

func clamp(v int, d domain) int {
	if v < d.min {
		return d.min
	}
	if v > d.max {
		return d.max
	}
	return v
}

// expandWeekdays expects tokens already validated by the day grammar.
func expandWeekdays(first, last string) Set {
	lo, _ := ParseWeekday(first)
	if last == "" {
		return NewSet(int(lo))
	}
	hi, _ := ParseWeekday(last)
	if lo > hi {
		lo, hi = hi, lo
	}
	var set Set
	for d := lo; d <= hi; d++ {
		set.bits |= 1 << uint(d)
	}
	return set
}
