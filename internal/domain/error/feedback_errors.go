// Package error defines domain-specific errors for the password feedback service.
package error

import "errors"

// Password feedback domain errors.
var (
	// ErrInvalidRequest is returned when a feedback request body cannot be decoded.
	ErrInvalidRequest = errors.New("invalid request body")

	// ErrRateLimited is returned when a client exceeds the allowed number of evaluations.
	ErrRateLimited = errors.New("too many requests")

	// ErrLimiterUnavailable is returned when the rate limiter backend cannot be reached.
	ErrLimiterUnavailable = errors.New("rate limiter unavailable")
)

// FeedbackErrorCode defines error codes for password feedback errors.
// Format: PWD-XXYYYY where XX is category and YYYY is specific error.
type FeedbackErrorCode string

const (
	// Request errors (01XXXX)
	ErrCodeInvalidRequest FeedbackErrorCode = "PWD-010001"

	// Throttling errors (02XXXX)
	ErrCodeRateLimited        FeedbackErrorCode = "PWD-020001"
	ErrCodeLimiterUnavailable FeedbackErrorCode = "PWD-020002"
)

// FeedbackError represents a password feedback error with code and message.
type FeedbackError struct {
	Code    FeedbackErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FeedbackError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FeedbackError) Unwrap() error {
	return e.Err
}

// NewFeedbackError creates a new FeedbackError with the given code and message.
func NewFeedbackError(code FeedbackErrorCode, message string, err error) *FeedbackError {
	return &FeedbackError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
