package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	clienterrors "github.com/el-eden/eleden-client/internal/errors"
	"github.com/el-eden/eleden-client/internal/job"
	"github.com/el-eden/eleden-client/internal/types"
)

// ConfirmPayment enqueues a payment confirmation via the sharded executor,
// keyed by reservation. An idempotency key is generated when the caller
// left it empty, so worker retries replay the same logical confirmation
// instead of charging twice.
func ConfirmPayment(ctx context.Context, exec types.Executor, httpClient *http.Client, baseURL string, req types.ConfirmPaymentRequest) (*types.EnqueueAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.ReservationID, "reservationId"); err != nil {
		return nil, err
	}
	if err := types.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.IdempotencyKey == "" {
		req.IdempotencyKey = uuid.NewString()
	}

	payJob := job.New(func(jobCtx context.Context) error {
		body, err := json.Marshal(req)
		if err != nil {
			return err
		}
		u := baseURL + "/api/reservations/" + req.ReservationID + "/payments/"
		httpReq, err := http.NewRequestWithContext(jobCtx, http.MethodPost, u, bytes.NewBuffer(body))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(httpReq)
		if err != nil {
			return clienterrors.NewNetworkError("confirm payment", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return clienterrors.NewHTTPError(resp.StatusCode, string(b), "confirm payment")
		}
		return nil
	})

	if err := exec.Submit(ctx, req.ReservationID, payJob); err != nil {
		return nil, err
	}
	return &types.EnqueueAck{ReservationID: req.ReservationID, Status: "enqueued"}, nil
}
