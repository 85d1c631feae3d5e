package tables

import "github.com/pkg/errors"

// ErrorKind classifies the ways the pipeline can fail, per its public
// error taxonomy.
type ErrorKind string

const (
	// InvalidSettings means a TfSettings or WordsExtractSettings value
	// failed validation (negative tolerance, non-positive min_rows, an
	// unrecognized Strategy, ...).
	InvalidSettings ErrorKind = "invalid_settings"
	// InvalidPageState means the PageSource reported IsValid() == false.
	InvalidPageState ErrorKind = "invalid_page_state"
	// MissingPage means a page was required but none was given (a nil
	// PageSource, or extractText requested without a page).
	MissingPage ErrorKind = "missing_page"
	// Cancelled means the caller's context was done between pipeline
	// stages.
	Cancelled ErrorKind = "cancelled"
)

// Error is the error type returned by every exported pipeline function.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return string(e.Kind) + ": " + e.Msg + ": " + e.Cause.Error()
	}
	return string(e.Kind) + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Cause }

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapError(kind ErrorKind, cause error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: errors.WithStack(cause)}
}
