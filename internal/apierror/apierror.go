// Package apierror provides the standardized error envelope for the API plus
// the typed domain errors the service layer reports. Handlers translate the
// Kind of a DomainError into an HTTP status; internal details (SQL errors,
// stack traces) never reach clients.
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationFields wraps multiple field errors from request binding.
type ValidationFields struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidationFields(fields map[string]string) *ValidationFields {
	return &ValidationFields{Detail: "Erro de validacao", Fields: fields}
}

// ─── Domain error taxonomy ───────────────────────────────────────────────────

// Kind classifies a DomainError so the HTTP layer can pick a status code
// without string matching.
type Kind int

const (
	KindValidation Kind = iota // malformed or out-of-range input
	KindNotFound               // referenced SKU / id does not exist
	KindConflict               // duplicate SKU on create/update
	KindStorage                // persistence failure, not locally recoverable
)

// DomainError is the error type returned by all service operations that fail
// for a business reason. The wrapped cause (if any) is kept for logging only.
type DomainError struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *DomainError) Error() string { return e.Msg }
func (e *DomainError) Unwrap() error { return e.Cause }

func Validation(msg string) *DomainError {
	return &DomainError{Kind: KindValidation, Msg: msg}
}

func NotFound(msg string) *DomainError {
	return &DomainError{Kind: KindNotFound, Msg: msg}
}

func Conflict(msg string) *DomainError {
	return &DomainError{Kind: KindConflict, Msg: msg}
}

// Storage wraps an infrastructure failure. The client-facing message is
// generic; cause carries the real error for the logs.
func Storage(cause error) *DomainError {
	return &DomainError{Kind: KindStorage, Msg: "Erro de armazenamento", Cause: cause}
}

// KindOf extracts the Kind from err, or KindStorage when err is not a
// DomainError (unknown failures are treated as infrastructure).
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}
