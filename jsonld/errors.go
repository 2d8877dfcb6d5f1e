package jsonld

import (
	"errors"
	"fmt"
)

// ErrorCode classifies conversion failures for callers that translate them
// into transport-level responses.
type ErrorCode string

const (
	// CodeBadRequest indicates malformed client input or a value that failed
	// domain validation.
	CodeBadRequest ErrorCode = "BAD_REQUEST"
	// CodeInconsistentData indicates that a stored RDF graph violates the
	// bridge's structural assumptions.
	CodeInconsistentData ErrorCode = "INCONSISTENT_DATA"
	// CodeLookupFailure indicates that an external mapping or metadata lookup
	// failed.
	CodeLookupFailure ErrorCode = "LOOKUP_FAILURE"
)

// BadRequestError is a client-fault error: malformed JSON-LD, an unsupported
// keyword, a wrong shape for a requested accessor, or a failed validation.
// The message describes what was expected versus found and embeds the
// offending raw value.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

// BadRequestf constructs a BadRequestError.
func BadRequestf(format string, args ...any) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

// InconsistentDataError indicates that stored data, not client input, violates
// an invariant: named graphs where none are supported, dangling or
// multiply-referenced blank nodes, malformed rdf:type objects.
type InconsistentDataError struct {
	Message string
}

func (e *InconsistentDataError) Error() string { return e.Message }

// InconsistentDataf constructs an InconsistentDataError.
func InconsistentDataf(format string, args ...any) error {
	return &InconsistentDataError{Message: fmt.Sprintf(format, args...)}
}

// LookupError wraps a failure from an external collaborator (mapping or file
// metadata lookup). The failure propagates unchanged; the core never retries.
type LookupError struct {
	// Target identifies what was being looked up (an IRI or URL).
	Target string
	// Err is the underlying failure.
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup of %s failed: %v", e.Target, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// IsBadRequest reports whether err is a client-fault error.
func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}

// IsInconsistentData reports whether err is a stored-data inconsistency.
func IsInconsistentData(err error) bool {
	var target *InconsistentDataError
	return errors.As(err, &target)
}

// IsLookupFailure reports whether err is an external lookup failure.
func IsLookupFailure(err error) bool {
	var target *LookupError
	return errors.As(err, &target)
}

// CodeOf returns the error code for err, defaulting to CodeBadRequest for
// unclassified errors (everything unclassified originates from client input).
func CodeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return ""
	case IsInconsistentData(err):
		return CodeInconsistentData
	case IsLookupFailure(err):
		return CodeLookupFailure
	default:
		return CodeBadRequest
	}
}
