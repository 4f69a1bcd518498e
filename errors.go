package ari

import "fmt"

// Code classifies an Error by the kind of failure, mirroring the small
// integer error kinds of the reference implementation's error model.
type Code int

// The error kinds a codec or value-model operation may report.
const (
	// CodeInvalidArgument marks a null or invalid argument, or an
	// unsupported option.
	CodeInvalidArgument Code = iota + 1
	// CodeMalformed marks malformed input: a bad escape, a bad digit, bad
	// grammar, or a value that cannot be represented.
	CodeMalformed
	// CodeTrailingGarbage marks unconsumed input after an otherwise valid
	// prefix.
	CodeTrailingGarbage
	// CodeSemanticViolation marks a semantic constraint violation, such
	// as a table row whose width disagrees with its declared column
	// count, or bad padding in a byte-string encoding.
	CodeSemanticViolation
	// CodeInvalidSurrogate marks an invalid UTF-16 surrogate pair
	// encountered while unescaping a slash-escaped string.
	CodeInvalidSurrogate
)

// String names c the way the package's other enumerations do.
func (c Code) String() string {
	switch c {
	case CodeInvalidArgument:
		return "invalid argument"
	case CodeMalformed:
		return "malformed input"
	case CodeTrailingGarbage:
		return "trailing garbage"
	case CodeSemanticViolation:
		return "semantic constraint violated"
	case CodeInvalidSurrogate:
		return "invalid surrogate pair"
	default:
		return "unknown error"
	}
}

// Error is the package's error type: a Code, the operation that produced
// it, and an optional wrapped cause for additional detail (a lower-level
// parse failure, for instance).
type Error struct {
	Code Code
	Op   string
	Err  error
}

// Error implements the builtin.error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ari: %s: %s: %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("ari: %s: %s", e.Op, e.Code)
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target names the same Code as e, so callers can test
// errors.Is(err, &ari.Error{Code: ari.CodeMalformed}) without needing a
// specific instance.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewError returns an *Error with the given code, operation name, and
// optional wrapped cause.
func NewError(code Code, op string, cause error) *Error {
	return &Error{Code: code, Op: op, Err: cause}
}

// The package's sentinel errors, one per Code, for errors.Is/errors.As
// comparisons against a dynamic *Error the way part5's ErrNotCmd and
// ErrConNeg work: Error.Is matches by Code alone, so any *Error built by
// NewError with a given code compares equal to the matching sentinel
// regardless of its Op or wrapped cause.
var (
	ErrInvalidArgument   = NewError(CodeInvalidArgument, "", nil)
	ErrMalformed         = NewError(CodeMalformed, "", nil)
	ErrTrailingGarbage   = NewError(CodeTrailingGarbage, "", nil)
	ErrSemanticViolation = NewError(CodeSemanticViolation, "", nil)
	ErrInvalidSurrogate  = NewError(CodeInvalidSurrogate, "", nil)
)
