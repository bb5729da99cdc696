package types

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/el-eden/eleden-client/internal/shardqueue"
)

// ------------------------------
// Shared Interfaces
// ------------------------------

// Executor interface for dependency injection (used by async operations)
type Executor interface {
	Submit(context.Context, string, shardqueue.Job) error
}

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when the backend reports 404 for an entity.
var ErrNotFound = fmt.Errorf("entity not found")

// ------------------------------
// Validation
// ------------------------------

// ValidateIDPresent rejects empty identifiers before they reach the wire.
func ValidateIDPresent(id, field string) error {
	if id == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}

// ValidateRating enforces the survey rating scale.
func ValidateRating(r int) error {
	if r < 1 || r > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", r)
	}
	return nil
}

// ValidateAmount rejects zero or negative payment amounts.
func ValidateAmount(a decimal.Decimal) error {
	if a.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive, got %s", a)
	}
	return nil
}
