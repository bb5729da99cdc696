package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/el-eden/eleden-client/internal/page"
	"github.com/el-eden/eleden-client/internal/types"
)

// ListReservations retrieves one page of reservations.
func ListReservations(ctx context.Context, httpClient *http.Client, baseURL string, p types.ListParams) (page.Page[types.Reservation], error) {
	return fetchPage[types.Reservation](ctx, httpClient, baseURL, "/api/reservations/", "list reservations", p)
}

// GetReservation retrieves a single reservation by ID.
func GetReservation(ctx context.Context, httpClient *http.Client, baseURL, reservationID string) (*types.Reservation, error) {
	if err := types.ValidateIDPresent(reservationID, "reservationId"); err != nil {
		return nil, err
	}
	return fetchOne[types.Reservation](ctx, httpClient, baseURL, "/api/reservations/"+reservationID+"/", "get reservation")
}

// CreateReservation books a new service request (synchronous).
func CreateReservation(ctx context.Context, httpClient *http.Client, baseURL string, req types.CreateReservationRequest) (*types.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.ServiceID, "serviceId"); err != nil {
		return nil, err
	}
	if req.CustomerName == "" {
		return nil, fmt.Errorf("customer name must not be empty")
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/api/reservations/", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("create reservation: status %d", resp.StatusCode)
	}
	var r types.Reservation
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}

// CancelReservation cancels a reservation. Backend returns 204 No Content.
func CancelReservation(ctx context.Context, httpClient *http.Client, baseURL, reservationID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := types.ValidateIDPresent(reservationID, "reservationId"); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, baseURL+"/api/reservations/"+reservationID+"/", nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("cancel reservation: status %d", resp.StatusCode)
	}
	return nil
}
