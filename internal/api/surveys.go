package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	clienterrors "github.com/el-eden/eleden-client/internal/errors"
	"github.com/el-eden/eleden-client/internal/job"
	"github.com/el-eden/eleden-client/internal/page"
	"github.com/el-eden/eleden-client/internal/types"
)

// ListSurveys retrieves one page of survey responses.
func ListSurveys(ctx context.Context, httpClient *http.Client, baseURL string, p types.ListParams) (page.Page[types.Survey], error) {
	return fetchPage[types.Survey](ctx, httpClient, baseURL, "/api/surveys/", "list surveys", p)
}

// SubmitSurvey enqueues a survey response via the sharded executor, keyed by
// reservation so writes for one reservation keep FIFO order. The HTTP POST
// happens on a worker; transient backend failures are retried there.
func SubmitSurvey(ctx context.Context, exec types.Executor, httpClient *http.Client, baseURL string, req types.SubmitSurveyRequest) (*types.EnqueueAck, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := types.ValidateIDPresent(req.ReservationID, "reservationId"); err != nil {
		return nil, err
	}
	if err := types.ValidateRating(req.Rating); err != nil {
		return nil, err
	}

	submitJob := job.New(func(jobCtx context.Context) error {
		body, err := json.Marshal(req)
		if err != nil {
			return err
		}
		httpReq, err := http.NewRequestWithContext(jobCtx, http.MethodPost, baseURL+"/api/surveys/", bytes.NewBuffer(body))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(httpReq)
		if err != nil {
			return clienterrors.NewNetworkError("submit survey", err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusCreated {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return clienterrors.NewHTTPError(resp.StatusCode, string(b), "submit survey")
		}
		return nil
	})

	if err := exec.Submit(ctx, req.ReservationID, submitJob); err != nil {
		return nil, err
	}
	return &types.EnqueueAck{ReservationID: req.ReservationID, Status: "enqueued"}, nil
}
