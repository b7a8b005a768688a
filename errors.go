package cron

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrWrongFieldCount is returned when an expression does not have exactly five fields.
	ErrWrongFieldCount = errors.New("wrong field count")
	// ErrInvalidFieldSyntax is returned when a field item fails the field grammar.
	ErrInvalidFieldSyntax = errors.New("invalid field syntax")
	// ErrValueOutOfDomain is returned when a literal falls outside its field's domain.
	ErrValueOutOfDomain = errors.New("value out of domain")

	// ErrEmptyTaskList is returned by Run when no task is registered. Hosts usually treat it as fatal.
	ErrEmptyTaskList = errors.New("no tasks registered")
	// ErrTaskNotFound is returned when removing an unknown task id.
	ErrTaskNotFound = errors.New("task not found")
)

// Field identifies a position in a cron expression.
type Field int

const (
	FieldNone Field = iota
	FieldSecond
	FieldMinute
	FieldHour
	FieldDay
	FieldMonth
)

func (f Field) String() string {
	switch f {
	case FieldSecond:
		return "second"
	case FieldMinute:
		return "minute"
	case FieldHour:
		return "hour"
	case FieldDay:
		return "day-of-month"
	case FieldMonth:
		return "month"
	default:
		return "expression"
	}
}

// ParseError describes why an expression was rejected. It unwraps to one of
// ErrWrongFieldCount, ErrInvalidFieldSyntax or ErrValueOutOfDomain.
type ParseError struct {
	Kind       error
	Field      Field
	Item       string
	Expression string
	Reason     string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cron: %v in %s", e.Kind, e.Field)
	if e.Item != "" {
		msg += fmt.Sprintf(" item %q", e.Item)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Kind }

// Cause makes ParseError play along with errors.Cause.
func (e *ParseError) Cause() error { return e.Kind }

func parseError(kind error, field Field, item, expr, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:       kind,
		Field:      field,
		Item:       item,
		Expression: expr,
		Reason:     fmt.Sprintf(format, args...),
	}
}

// ActionError wraps a failed (or panicking) action invocation.
type ActionError struct {
	TaskID     int
	Expression string
	Err        error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("cron: task %d (%s): %v", e.TaskID, e.Expression, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }
