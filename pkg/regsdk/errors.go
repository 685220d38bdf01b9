package regsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sablehq/enrolld/pkg/slogx"
)

// ValidationError pinpoints a single invalid field in a request payload.
type ValidationError struct {
	// Type is a machine-readable validation error type, e.g. "string_pattern_mismatch".
	Type string `json:"type"`

	// Loc identifies the error location as a path of field names and indices.
	Loc []any `json:"loc"`

	// Detail is a human-readable error message.
	Detail string `json:"detail"`
}

// Problem is an RFC 9457 problem details response. It implements the error
// interface and is used both by the server (to write HTTP responses) and by
// the SDK client (to represent errors).
type Problem struct {
	// Status is the HTTP status code for this problem
	Status int `json:"-"`

	// Type is a machine-readable URN for the problem, e.g. "urn:error:already-exists"
	Type string `json:"type"`

	// Title is a short human-readable summary
	Title string `json:"title"`

	// Detail is a human-readable explanation
	Detail string `json:"detail"`

	// ValidationErrors carries per-field details for invalid payloads
	ValidationErrors []ValidationError `json:"validation_errors,omitempty"`

	// CorrelationID ties the response to the server-side request log
	CorrelationID string `json:"correlation_id,omitempty"`
}

// Error implements the error interface.
func (p *Problem) Error() string {
	return fmt.Sprintf("%s: %s", p.Type, p.Detail)
}

// WithValidationErrors returns a copy of the problem carrying the given
// per-field validation details.
func (p *Problem) WithValidationErrors(errs []ValidationError) *Problem {
	clone := *p
	clone.ValidationErrors = errs
	return &clone
}

// Write writes the problem to an HTTP response, stamping the correlation
// identifier from the request context.
func (p *Problem) Write(ctx context.Context, w http.ResponseWriter) {
	out := *p
	out.CorrelationID = slogx.RequestIDFromContext(ctx)

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(&out)
}

// Predefined problems. Handlers translate service errors into these.
var (
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = &Problem{
		Status: http.StatusNotFound,
		Type:   "urn:error:not-found",
		Title:  "Not Found",
		Detail: "Resource was not found.",
	}

	// ErrAlreadyExists is returned when a resource already exists with the
	// provided identifying data.
	ErrAlreadyExists = &Problem{
		Status: http.StatusConflict,
		Type:   "urn:error:already-exists",
		Title:  "Already Exists",
		Detail: "A resource already exists with the provided identifying data.",
	}

	// ErrInvalidCredentials is returned when authentication fails. Unknown
	// accounts and wrong passwords report identically.
	ErrInvalidCredentials = &Problem{
		Status: http.StatusUnauthorized,
		Type:   "urn:error:invalid-credentials",
		Title:  "Invalid Credentials",
		Detail: "The presented credentials are invalid.",
	}

	// ErrUserNotValidated is returned when the caller authenticates as a
	// user that has not completed validation.
	ErrUserNotValidated = &Problem{
		Status: http.StatusUnauthorized,
		Type:   "urn:error:user-not-validated",
		Title:  "User Not Validated",
		Detail: "The provided user has not been validated.",
	}

	// ErrUserAlreadyValidated is returned on validation attempts against an
	// already validated user.
	ErrUserAlreadyValidated = &Problem{
		Status: http.StatusConflict,
		Type:   "urn:error:user-already-validated",
		Title:  "User Already Validated",
		Detail: "The provided user is already validated.",
	}

	// ErrIncorrectCode is returned when the submitted validation code does
	// not match.
	ErrIncorrectCode = &Problem{
		Status: http.StatusBadRequest,
		Type:   "urn:error:incorrect-code",
		Title:  "Incorrect Code",
		Detail: "The provided code is incorrect.",
	}

	// ErrExpiredCode is returned when the validation code is past its
	// validity window.
	ErrExpiredCode = &Problem{
		Status: http.StatusBadRequest,
		Type:   "urn:error:expired-code",
		Title:  "Expired Code",
		Detail: "The provided code has expired.",
	}

	// ErrInvalidRequest is returned when the request payload is malformed
	// or fails validation.
	ErrInvalidRequest = &Problem{
		Status: http.StatusUnprocessableEntity,
		Type:   "urn:error:invalid-request",
		Title:  "Invalid Request",
		Detail: "The request payload is malformed or fails validation.",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &Problem{
		Status: http.StatusInternalServerError,
		Type:   "urn:error:server-error",
		Title:  "Server Error",
		Detail: "An internal error prevented the request from completing.",
	}
)
