package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLimitArguments is returned when Limit is called with zero or more
	// than two arguments.
	ErrLimitArguments = errors.New("limit expects one or two arguments")
	// ErrNegativeWindow is returned when a negative offset or limit is
	// given.
	ErrNegativeWindow = errors.New("offset and limit cannot be negative")
	// ErrPageSize is returned when a page size lower than one is given.
	ErrPageSize = errors.New("results per page must be greater than zero")
	// ErrPageNumber is returned when a page number lower than one is given.
	ErrPageNumber = errors.New("page number must be greater than zero")
	// ErrQueryCycle is returned when a query is nested into itself.
	ErrQueryCycle = errors.New("query cannot be nested into itself")
	// ErrNilQuery is returned when a nil sub-query is given.
	ErrNilQuery = errors.New("sub-query is nil")
	// ErrTargetNil is returned when a nil target is given for decoding.
	ErrTargetNil = errors.New("target interface is nil")
	// ErrCursorClosed is returned when a closed cursor is used.
	ErrCursorClosed = errors.New("cursor is closed")
	// ErrNoCurrent is returned when a cursor is decoded before Next is
	// called or after it returns false.
	ErrNoCurrent = errors.New("cursor has no current result")
	// ErrNonPointer is returned when the decoding target is not a pointer.
	ErrNonPointer = errors.New("target must be a pointer")
)

// ErrUnknownOperator is returned when a filter references an operator that was
// never registered.
type ErrUnknownOperator struct {
	Operator string
}

func (e ErrUnknownOperator) Error() string {
	return fmt.Sprintf("unknown operator %q", e.Operator)
}

// ErrInvalidOperand is returned when an operator rejects the operand it was
// given.
type ErrInvalidOperand struct {
	Operator string
	Operand  any
	Reason   string
}

func (e ErrInvalidOperand) Error() string {
	return fmt.Sprintf("invalid operand %v for %q: %s", e.Operand, e.Operator, e.Reason)
}

// ErrInvalidArgument is returned by configuration methods receiving an
// argument of an unexpected type.
type ErrInvalidArgument struct {
	Method   string
	Argument any
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("%s: invalid argument %v (%T)", e.Method, e.Argument, e.Argument)
}

// ErrSyntax is returned when a select or order term does not follow the
// expected grammar.
type ErrSyntax struct {
	Method string
	Term   string
}

func (e ErrSyntax) Error() string {
	return fmt.Sprintf("%s: malformed term %q", e.Method, e.Term)
}

// ErrDuplicateAlias is returned when two select terms share the same alias.
type ErrDuplicateAlias struct {
	Alias string
}

func (e ErrDuplicateAlias) Error() string {
	return fmt.Sprintf("select: duplicate alias %q", e.Alias)
}

// ErrOperatorName is returned when an operator is registered with an invalid
// name or without a function.
type ErrOperatorName struct {
	Name   string
	Reason string
}

func (e ErrOperatorName) Error() string {
	return fmt.Sprintf("cannot register operator %q: %s", e.Name, e.Reason)
}

// ErrDecode is returned when results cannot be copied into the target given to
// Scan.
type ErrDecode struct {
	Source any
	Target any
	Reason error
}

func (e ErrDecode) Error() string {
	return fmt.Sprintf("cannot decode %T into %T: %s", e.Source, e.Target, e.Reason)
}

func (e ErrDecode) Unwrap() error {
	return e.Reason
}
