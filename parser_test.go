package cron

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Wildcards(t *testing.T) {
	rule, err := Parse("* * * * *")
	require.NoError(t, err)

	assert.True(t, rule.Seconds().IsAny())
	assert.True(t, rule.Minutes().IsAny())
	assert.True(t, rule.Hours().IsAny())
	assert.True(t, rule.AnyDay())
	assert.Nil(t, rule.Days())
	assert.True(t, rule.Months().IsAny())
	assert.Equal(t, "* * * * *", rule.Expression())
}

func TestParser_Parse_Lists(t *testing.T) {
	rule, err := Parse("0,30  5-7,9\t23 * 1,12")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 30}, rule.Seconds().Values())
	assert.Equal(t, []int{5, 6, 7, 9}, rule.Minutes().Values())
	assert.Equal(t, []int{23}, rule.Hours().Values())
	assert.Equal(t, []int{1, 12}, rule.Months().Values())
}

func TestParser_Parse_ReversedRanges(t *testing.T) {
	pairs := []struct {
		field    int
		low, hi  int
		template string
	}{
		{0, 10, 50, "%s * * * *"},
		{1, 3, 40, "* %s * * *"},
		{2, 4, 20, "* * %s * *"},
		{3, 2, 28, "* * * %s *"},
		{4, 3, 9, "* * * * %s"},
	}

	for _, p := range pairs {
		forward, err := Parse(fmt.Sprintf(p.template, fmt.Sprintf("%d-%d", p.low, p.hi)))
		require.NoError(t, err)
		backward, err := Parse(fmt.Sprintf(p.template, fmt.Sprintf("%d-%d", p.hi, p.low)))
		require.NoError(t, err)

		assert.Equal(t, forward.String(), backward.String(), "field %d", p.field)
	}
}

func TestParser_Parse_ClampsRanges(t *testing.T) {
	rule, err := Parse("70-80 70-80 30-99 0-40 0-20")
	require.NoError(t, err)

	assert.Equal(t, []int{59}, rule.Seconds().Values())
	assert.Equal(t, []int{59}, rule.Minutes().Values())
	assert.Equal(t, []int{23}, rule.Hours().Values())
	require.Len(t, rule.Days(), 1)
	assert.Len(t, rule.Days()[0].Days.Values(), 31)
	assert.Equal(t, 1, rule.Days()[0].Days.Values()[0])
	assert.Len(t, rule.Months().Values(), 12)

	rule, err = Parse("0-99999999999999999999 99999999999999999999-58 * 1-99999999999999999999&MON *")
	require.NoError(t, err)
	assert.Len(t, rule.Seconds().Values(), 60)
	assert.Equal(t, []int{58, 59}, rule.Minutes().Values())
	assert.Len(t, rule.Days()[0].Days.Values(), 31)
}

func TestParser_Parse_DayClauses(t *testing.T) {
	rule, err := Parse("0 0 0 1-7&fri,15,20-25!sat-mon *")
	require.NoError(t, err)

	days := rule.Days()
	require.Len(t, days, 3)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, days[0].Days.Values())
	assert.Equal(t, ConditionAnd, days[0].Condition)
	assert.Equal(t, []int{int(Friday)}, days[0].Weekdays.Values())

	assert.Equal(t, []int{15}, days[1].Days.Values())
	assert.Equal(t, ConditionNone, days[1].Condition)

	assert.Equal(t, ConditionExcept, days[2].Condition)
	assert.Equal(t, []int{int(Monday), int(Tuesday), int(Wednesday), int(Thursday), int(Friday), int(Saturday)}, days[2].Weekdays.Values())
}

func TestParser_Parse_Descriptors(t *testing.T) {
	tests := map[string]string{
		"@hourly":  "0 0 * * *",
		"@DAILY":   "0 0 0 * *",
		"@monthly": "0 0 0 1 *",
		"@weekly":  "0 0 0 1-31&MON *",
		"@yearly":  "0 0 0 1 1",
	}
	for descriptor, expr := range tests {
		got, err := Parse(descriptor)
		require.NoError(t, err, descriptor)
		want, err := Parse(expr)
		require.NoError(t, err, expr)
		assert.Equal(t, want.String(), got.String(), descriptor)
		assert.Equal(t, descriptor, got.Expression())
	}
}

func TestParser_Parse_Errors(t *testing.T) {
	tests := []struct {
		expr  string
		kind  error
		field Field
	}{
		{"* * *", ErrWrongFieldCount, FieldNone},
		{"", ErrWrongFieldCount, FieldNone},
		{"* * * * * *", ErrWrongFieldCount, FieldNone},
		{"99 0 0 1 1", ErrValueOutOfDomain, FieldSecond},
		{"0 65 0 1 1", ErrValueOutOfDomain, FieldMinute},
		{"0 0 24 1 1", ErrValueOutOfDomain, FieldHour},
		{"0 0 0 32 1", ErrValueOutOfDomain, FieldDay},
		{"0 0 0 0 1", ErrValueOutOfDomain, FieldDay},
		{"0 0 0 1 13", ErrValueOutOfDomain, FieldMonth},
		{"0 0 0 1 0", ErrValueOutOfDomain, FieldMonth},
		{"99999999999999999999 * * * *", ErrValueOutOfDomain, FieldSecond},
		{"0 0 0 99999999999999999999 *", ErrValueOutOfDomain, FieldDay},
		{"*/5 * * * *", ErrInvalidFieldSyntax, FieldSecond},
		{"1,,2 * * * *", ErrInvalidFieldSyntax, FieldSecond},
		{"0 1- * * *", ErrInvalidFieldSyntax, FieldMinute},
		{"0 0 1&MON * *", ErrInvalidFieldSyntax, FieldHour},
		{"0 0 0 1&FOO *", ErrInvalidFieldSyntax, FieldDay},
		{"0 0 0 1-7&MON- *", ErrInvalidFieldSyntax, FieldDay},
		{"0 0 0 MON *", ErrInvalidFieldSyntax, FieldDay},
		{"0 0 0 * JAN", ErrInvalidFieldSyntax, FieldMonth},
	}

	for _, tt := range tests {
		_, err := Parse(tt.expr)
		require.Error(t, err, tt.expr)
		assert.True(t, errors.Is(err, tt.kind), "%q: %v", tt.expr, err)

		var pe *ParseError
		require.True(t, errors.As(err, &pe), tt.expr)
		assert.Equal(t, tt.field, pe.Field, tt.expr)
		assert.Equal(t, tt.expr, pe.Expression)
	}
}

func TestParser_Parse_ErrorNamesFieldAndItem(t *testing.T) {
	_, err := Parse("0 0 0 1,40 *")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day-of-month")
	assert.Contains(t, err.Error(), `"40"`)
}

func TestMustParse(t *testing.T) {
	assert.NotPanics(t, func() { MustParse("0 0 12 * *") })
	assert.Panics(t, func() { MustParse("0 0 12") })
}
