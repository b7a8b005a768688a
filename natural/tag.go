package natural

import (
	"fmt"
	"time"

	cron "github.com/kaiserkarel/cronrule"
)

// Tag is a classification attached to a token by one of the scanners. The set
// of tags is closed; switch on the concrete type to inspect one.
type Tag interface {
	// Type is the tag's name as used in grammar definitions, e.g. "scalar_day".
	Type() string
	String() string
	tag()
}

type Ordinal struct{ N int }
type OrdinalDay struct{ N int }
type Scalar struct{ N int }
type ScalarDay struct{ N int }
type ScalarMonth struct{ N int }
type ScalarYear struct{ N int }

func (Ordinal) Type() string     { return "ordinal" }
func (OrdinalDay) Type() string  { return "ordinal_day" }
func (Scalar) Type() string      { return "scalar" }
func (ScalarDay) Type() string   { return "scalar_day" }
func (ScalarMonth) Type() string { return "scalar_month" }
func (ScalarYear) Type() string  { return "scalar_year" }

func (t Ordinal) String() string     { return fmt.Sprintf("ordinal(%d)", t.N) }
func (t OrdinalDay) String() string  { return fmt.Sprintf("ordinal_day(%d)", t.N) }
func (t Scalar) String() string      { return fmt.Sprintf("scalar(%d)", t.N) }
func (t ScalarDay) String() string   { return fmt.Sprintf("scalar_day(%d)", t.N) }
func (t ScalarMonth) String() string { return fmt.Sprintf("scalar_month(%d)", t.N) }
func (t ScalarYear) String() string  { return fmt.Sprintf("scalar_year(%d)", t.N) }

// MonthName is a repeater for a named month.
type MonthName struct{ Month time.Month }

// DayName is a repeater for a named weekday, using the cron weekday ordinals.
type DayName struct{ Day cron.Weekday }

// Portion is a part of the day.
type Portion string

const (
	AM        Portion = "am"
	PM        Portion = "pm"
	Morning   Portion = "morning"
	Afternoon Portion = "afternoon"
	Evening   Portion = "evening"
	Night     Portion = "night"
)

// DayPortion is a repeater for a part of the day.
type DayPortion struct{ Portion Portion }

// Time is a repeater for a clock time such as "5", "5:30" or "17:30:15".
// Ambiguous times may still be moved to the afternoon by a day portion.
type Time struct {
	Hour, Minute, Second int
	Ambiguous            bool
}

// Unit is a repeater for a span of time.
type Unit string

const (
	Year      Unit = "year"
	Season    Unit = "season"
	Month     Unit = "month"
	Fortnight Unit = "fortnight"
	Week      Unit = "week"
	Weekend   Unit = "weekend"
	Weekday   Unit = "weekday"
	Day       Unit = "day"
	Hour      Unit = "hour"
	Minute    Unit = "minute"
	Second    Unit = "second"
)

// TimeUnit is a repeater for a unit of time.
type TimeUnit struct{ Unit Unit }

func (MonthName) Type() string  { return "repeater_month_name" }
func (DayName) Type() string    { return "repeater_day_name" }
func (DayPortion) Type() string { return "repeater_day_portion" }
func (Time) Type() string       { return "repeater_time" }
func (TimeUnit) Type() string   { return "repeater_unit" }

func (t MonthName) String() string  { return "month_name(" + t.Month.String() + ")" }
func (t DayName) String() string    { return "day_name(" + t.Day.String() + ")" }
func (t DayPortion) String() string { return "day_portion(" + string(t.Portion) + ")" }
func (t Time) String() string {
	s := fmt.Sprintf("time(%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Ambiguous {
		s += ", ambiguous"
	}
	return s + ")"
}
func (t TimeUnit) String() string { return "unit(" + string(t.Unit) + ")" }

// SeparatorKind distinguishes separators.
type SeparatorKind string

const (
	Comma       SeparatorKind = "comma"
	SlashOrDash SeparatorKind = "slash_or_dash"
	At          SeparatorKind = "at"
	In          SeparatorKind = "in"
)

type Separator struct{ Kind SeparatorKind }

func (t Separator) Type() string   { return "separator_" + string(t.Kind) }
func (t Separator) String() string { return "separator(" + string(t.Kind) + ")" }

// Direction is where a pointer points.
type Direction string

const (
	Past   Direction = "past"
	Future Direction = "future"
)

type Pointer struct{ Direction Direction }

func (Pointer) Type() string     { return "pointer" }
func (t Pointer) String() string { return "pointer(" + string(t.Direction) + ")" }

// Grab selects which occurrence a grabber refers to.
type Grab string

const (
	Last Grab = "last"
	This Grab = "this"
	Next Grab = "next"
)

type Grabber struct{ Grab Grab }

func (Grabber) Type() string     { return "grabber" }
func (t Grabber) String() string { return "grabber(" + string(t.Grab) + ")" }

// Timezone carries an upper-cased zone abbreviation.
type Timezone struct{ Zone string }

func (Timezone) Type() string     { return "timezone" }
func (t Timezone) String() string { return "timezone(" + t.Zone + ")" }

func (Ordinal) tag()     {}
func (OrdinalDay) tag()  {}
func (Scalar) tag()      {}
func (ScalarDay) tag()   {}
func (ScalarMonth) tag() {}
func (ScalarYear) tag()  {}
func (MonthName) tag()   {}
func (DayName) tag()     {}
func (DayPortion) tag()  {}
func (Time) tag()        {}
func (TimeUnit) tag()    {}
func (Separator) tag()   {}
func (Pointer) tag()     {}
func (Grabber) tag()     {}
func (Timezone) tag()    {}
