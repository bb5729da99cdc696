package types

// ------------------------------
// Response Types
// ------------------------------

// EnqueueAck acknowledges that an async write was accepted by the SDK queue.
type EnqueueAck struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
}

// SuggestResponse wraps the address lookup endpoint response.
type SuggestResponse struct {
	Results []AddressSuggestion `json:"results"`
}
