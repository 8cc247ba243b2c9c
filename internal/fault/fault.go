// Package fault defines the categorical error taxonomy shared by the drift
// services. Stores and services return faults; the gRPC layer maps each
// category to exactly one wire status code.
//
// Faults wrap freely with fmt.Errorf("...: %w", err); Code walks the chain
// and returns the first category it finds.
package fault

import (
	"errors"
	"fmt"
)

// Code is the error category. Each code maps to one gRPC status code at the
// RPC boundary.
type Code int

const (
	// CodeUnknown is an uncategorized error; maps to INTERNAL.
	CodeUnknown Code = iota
	// CodeNotFound: account, reservation, transaction, or payment unknown.
	CodeNotFound
	// CodeInvalidArgument: missing fields, non-positive amounts, currency
	// mismatch, same-account transfer.
	CodeInvalidArgument
	// CodeFailedPrecondition: insufficient funds, wrong reservation or
	// payment state, inactive account.
	CodeFailedPrecondition
	// CodeAlreadyExists: idempotency-key collision that cannot be resolved
	// to a prior compatible row.
	CodeAlreadyExists
	// CodeDeadlineExceeded: outbound RPC timed out.
	CodeDeadlineExceeded
)

func (c Code) String() string {
	switch c {
	case CodeNotFound:
		return "not_found"
	case CodeInvalidArgument:
		return "invalid_argument"
	case CodeFailedPrecondition:
		return "failed_precondition"
	case CodeAlreadyExists:
		return "already_exists"
	case CodeDeadlineExceeded:
		return "deadline_exceeded"
	default:
		return "unknown"
	}
}

// Error is a categorized error.
type Error struct {
	code Code
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// New returns a fault with the given category.
func New(code Code, msg string) error {
	return &Error{code: code, msg: msg}
}

// Newf returns a fault with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a category to an existing error.
func Wrap(code Code, msg string, err error) error {
	return &Error{code: code, msg: msg, err: err}
}

// CodeOf returns the category of err, or CodeUnknown if the chain carries
// none.
func CodeOf(err error) Code {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.code
	}
	return CodeUnknown
}

// Is reports whether err carries the given category.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
