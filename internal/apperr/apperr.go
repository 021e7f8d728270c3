// Package apperr defines the application failure taxonomy shared by the
// service layer and the HTTP transport. Each failure carries a stable kind,
// a human-readable message, and a canonical HTTP status, so that every error
// path in the API produces the same JSON envelope:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "error": {
//	    "message": "Product not found.",
//	    "type": "NotFoundError"
//	  }
//	}
//
// Conventions:
//   - Services and middleware raise *apperr.Error at the point of detection
//     and return it up the call chain; no stage handles a failure locally.
//   - The handlers package owns the single response-mapping stage; anything
//     that is not an *apperr.Error is treated as unclassified and surfaces
//     as a generic 500 while the full detail is logged for operators.
package apperr

import (
	"errors"
	"net/http"
)

// Kind is the stable, client-visible name of a failure class. It is emitted
// verbatim in the envelope "type" field.
type Kind string

// Failure kinds understood by the response mapper.
const (
	// KindNotFound marks an absent resource (HTTP 404).
	KindNotFound Kind = "NotFoundError"
	// KindValidation marks malformed or rule-violating input (HTTP 400).
	KindValidation Kind = "ValidationError"
	// KindUnauthorized marks a missing or incorrect credential (HTTP 401).
	KindUnauthorized Kind = "UnauthorizedError"
	// KindInternal is the defensive fallback for unclassified failures
	// (HTTP 500). Client-facing messages stay generic for this kind.
	KindInternal Kind = "InternalError"
)

// Error is a classified application failure.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Status maps the failure kind to its HTTP status code. Unknown kinds fall
// back to 500 so a mis-constructed error can never downgrade a failure.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NotFound returns a NotFoundError with the given message.
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }

// Validation returns a ValidationError with the given message.
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// Unauthorized returns an UnauthorizedError with the given message.
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }

// Internal returns the generic unclassified failure. The message shown to
// clients is fixed; callers should log the underlying cause themselves.
func Internal() *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong!"}
}

// Envelope is the wire shape of every failure response.
type Envelope struct {
	Error Body `json:"error"`
}

// Body carries the client-facing failure detail inside the envelope.
type Body struct {
	// Message is safe to display to users.
	Message string `json:"message" example:"Product not found."`
	// Type is the failure kind name, stable for programmatic branching.
	Type string `json:"type" example:"NotFoundError"`
}

// Classify returns err as an *Error when it already is one, or wraps it into
// the unclassified Internal kind otherwise. It never returns nil for a
// non-nil err.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal()
}

// Wire converts err into the JSON envelope for its classified kind.
func Wire(err error) Envelope {
	ae := Classify(err)
	return Envelope{Error: Body{Message: ae.Message, Type: string(ae.Kind)}}
}
