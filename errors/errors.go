package errors

import (
	"fmt"
	"strings"
)

// Error is the structured error type used throughout the layer. Every
// failure that crosses a package boundary carries a dotted identifier
// (e.g. "matlabw:mx:Array:getRank") and a human-readable message. The
// identifier is what the host reports to the user, so it must pinpoint
// the failing operation.
type Error struct {
	// ID is the colon-separated identifier of the failing operation.
	ID string

	// Detail is the human-readable message.
	Detail string

	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.ID)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two errors match when
// their identifiers are equal; messages are not compared.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.ID == t.ID
	}
	return false
}

// New creates an error with an identifier and a message.
func New(id, detail string) *Error {
	return &Error{ID: id, Detail: detail}
}

// Newf creates an error with an identifier and a formatted message.
func Newf(id, format string, args ...any) *Error {
	return &Error{ID: id, Detail: fmt.Sprintf(format, args...)}
}

// Wrap creates an error that carries an underlying cause.
func Wrap(id, detail string, cause error) *Error {
	return &Error{ID: id, Detail: detail, Cause: cause}
}

// Convenience constructors for the recurring failure taxonomy.

// InvalidArray reports an introspection attempt on a null handle. The id
// names the operation that was called.
func InvalidArray(id string) *Error {
	return &Error{ID: id, Detail: "accessing invalid array"}
}

// TypeMismatch reports a typed access whose element type does not match
// the array's class.
func TypeMismatch(id, want, got string) *Error {
	return &Error{ID: id, Detail: fmt.Sprintf("type must match the array class ID (want %s, got %s)", want, got)}
}

// InvalidName reports a null or empty name argument (variable, field,
// property or class name).
func InvalidName(id, what string) *Error {
	return &Error{ID: id, Detail: fmt.Sprintf("invalid %s name", what)}
}

// AllocationFailed reports a host allocation call that returned a null
// handle.
func AllocationFailed(id, what string) *Error {
	return &Error{ID: id, Detail: fmt.Sprintf("failed to create %s", what)}
}

// HostCall reports a non-zero status from a host primitive.
func HostCall(id, op string) *Error {
	return &Error{ID: id, Detail: fmt.Sprintf("host call %s failed", op)}
}

// FieldIndexOutOfRange reports a field index past the end of the schema.
func FieldIndexOutOfRange(id string, index, count int) *Error {
	return &Error{ID: id, Detail: fmt.Sprintf("field index %d out of range (field count %d)", index, count)}
}

// IDOf returns the identifier of err when it is a structured error, or
// the empty string otherwise.
func IDOf(err error) string {
	if e, ok := err.(*Error); ok {
		return e.ID
	}
	return ""
}
