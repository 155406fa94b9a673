package coauthors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRecordNotFound is returned by collaborator stores when the requested record does not exist.
var ErrRecordNotFound = errors.New("coauthors: record not found")

// Error is a request-level failure carrying a machine-readable code and the HTTP status to report.
type Error struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports a missing identifier, parent scope or resolved record.
func NotFound(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: http.StatusNotFound}
}

// Unsupported reports an operation that is deliberately not offered.
func Unsupported(code, message string) *Error {
	return &Error{Code: code, Message: message, Status: http.StatusInternalServerError}
}

// WriteConfirmationFailed reports an attach whose write succeeded but whose re-read did not.
func WriteConfirmationFailed(err error) *Error {
	return &Error{
		Code:    "create_item",
		Message: "Author was added; but it could not be retrieved.",
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

// WriteFailed reports an attach whose write did not happen.
func WriteFailed(err error) *Error {
	return &Error{
		Code:    "rest_authors_attach_term",
		Message: "Author could not be added.",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// StoreFailure reports an infrastructure error from a collaborator store.
func StoreFailure(err error) *Error {
	return &Error{
		Code:    "rest_co_authors_store_error",
		Message: "Co-author data could not be read.",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}
