package errors

import "fmt"

// ClassifyStatus maps an HTTP status code to a retry category.
// 408 and 429 are the only 4xx codes worth retrying; everything else in
// the 4xx range is a caller mistake. 5xx and unknown codes are retried.
func ClassifyStatus(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429:
			return Recoverable
		default:
			return Irrecoverable
		}
	default:
		return Recoverable
	}
}

// NewHTTPError creates a classified error for a non-success HTTP response.
func NewHTTPError(statusCode int, body, operation string) *ClassifiedError {
	return &ClassifiedError{
		Category:   ClassifyStatus(statusCode),
		StatusCode: statusCode,
		Body:       body,
		Underlying: fmt.Errorf("%s failed: HTTP %d", operation, statusCode),
	}
}

// NewNetworkError creates a classified error for a transport-level failure.
// Network errors are always recoverable as they may be transient.
func NewNetworkError(operation string, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   Recoverable,
		Underlying: fmt.Errorf("%s network error: %w", operation, err),
	}
}
