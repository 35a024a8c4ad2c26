package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the programmer-error conditions this package detects
// at the call site rather than panicking on.
var (
	// ErrFieldNumberOutOfRange is returned when a field number falls
	// outside [1, 2^29-1] or, when Config.RejectReservedFieldNumbers is
	// set, inside the reserved range [19000, 19999].
	ErrFieldNumberOutOfRange = errors.New("wire: field number out of range")
	// ErrInvalidWireType is returned when a Tag is built from a WireType
	// value outside the four defined constants.
	ErrInvalidWireType = errors.New("wire: invalid wire type")
	// ErrPackedNotSupported is returned when a packed emission is
	// attempted for a category that has no packed representation
	// (length-delimited scalars: string and bytes).
	ErrPackedNotSupported = errors.New("wire: packed encoding not supported for this category")
	// ErrEnumOutOfRange is returned when an enum value does not fit in
	// an int32, protobuf's wire representation for enums.
	ErrEnumOutOfRange = errors.New("wire: enum value out of int32 range")
	// ErrShortWrite is returned when a ByteSink's Write reports fewer
	// bytes written than requested without also returning an error.
	ErrShortWrite = errors.New("wire: short write to sink")
)

// FieldError wraps an encoding error with the dotted path of field names
// that led to it, so a failure deep inside a submessage surfaces as
// "encoding error at field path a.b.c: <cause>" instead of a bare wire
// error.
type FieldError struct {
	FieldPath []string
	Err       error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("encoding error at field path %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for compatibility.
func (e *FieldError) Is(target error) bool {
	_, ok := target.(*FieldError)
	return ok
}

// newFieldError builds a plain error from a format string, the base case
// that wrapEncodingFieldError then wraps with field names.
func newFieldError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// wrapEncodingFieldError wraps err with fieldName, prepending to any path
// already accumulated by an inner call.
func wrapEncodingFieldError(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FieldError); ok {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Err:       err,
	}
}
