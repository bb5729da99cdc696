package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ------------------------------
// Request Types
// ------------------------------

// CreateReservationRequest holds parameters for a new booking.
type CreateReservationRequest struct {
	CustomerName string    `json:"customer_name"`
	Address      string    `json:"address"`
	ServiceID    string    `json:"service_id"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Notes        string    `json:"notes,omitempty"`
}

// SubmitSurveyRequest holds a satisfaction survey response.
type SubmitSurveyRequest struct {
	ReservationID string `json:"reservation_id"`
	Rating        int    `json:"rating"`
	Comments      string `json:"comments,omitempty"`
}

// ConfirmPaymentRequest records a payment against a reservation.
// IdempotencyKey lets the backend drop duplicate confirmations; the SDK
// fills it with a UUID when the caller leaves it empty.
type ConfirmPaymentRequest struct {
	ReservationID  string          `json:"reservation_id"`
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method"`
	IdempotencyKey string          `json:"idempotency_key,omitempty"`
}

// ListParams are the pagination parameters accepted by listing endpoints.
type ListParams struct {
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}
