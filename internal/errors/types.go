// Package errors classifies SDK errors by recoverability so the retry
// machinery can decide between backing off and failing fast.
package errors

import "fmt"

// Category determines how an error should be handled by retry logic.
type Category int

const (
	// Recoverable errors should be retried with exponential backoff:
	// 5xx responses, timeouts, connection failures.
	Recoverable Category = iota

	// Irrecoverable errors fail immediately without retry:
	// 400 Bad Request, 401 Unauthorized, 403 Forbidden, 404 Not Found.
	Irrecoverable
)

func (c Category) String() string {
	switch c {
	case Recoverable:
		return "Recoverable"
	case Irrecoverable:
		return "Irrecoverable"
	default:
		return fmt.Sprintf("Unknown(%d)", int(c))
	}
}

// ClassifiedError wraps an error with categorization metadata.
type ClassifiedError struct {
	Category   Category
	StatusCode int    // HTTP status code (0 for non-HTTP errors)
	Body       string // response body, kept for debugging
	Underlying error
}

func (e *ClassifiedError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] HTTP %d: %v", e.Category, e.StatusCode, e.Underlying)
	}
	return fmt.Sprintf("[%s] %v", e.Category, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *ClassifiedError) Unwrap() error {
	return e.Underlying
}

// IsIrrecoverable reports whether err should not be retried.
func IsIrrecoverable(err error) bool {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.Category == Irrecoverable
	}
	return false
}
