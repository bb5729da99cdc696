package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	client "github.com/el-eden/eleden-client"
)

func TestClient_SubmitSurveyFIFO(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var ratings []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/surveys/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req client.SubmitSurveyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		mu.Lock()
		ratings = append(ratings, req.Rating)
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := client.New(srv.URL, "test-api-key")
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	for _, rating := range []int{1, 2, 3} {
		ack, err := c.SubmitSurvey(ctx, client.SubmitSurveyRequest{
			ReservationID: "res-1",
			Rating:        rating,
		})
		if err != nil {
			t.Fatalf("SubmitSurvey(%d) error: %v", rating, err)
		}
		if ack.Status != "enqueued" {
			t.Fatalf("unexpected ack %#v", ack)
		}
	}

	// Flush the reservation's FIFO lane before asserting.
	if err := c.AwaitSettled(ctx, "res-1"); err != nil {
		t.Fatalf("AwaitSettled error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(ratings) != 3 {
		t.Fatalf("server received %d surveys, want 3", len(ratings))
	}
	for i, want := range []int{1, 2, 3} {
		if ratings[i] != want {
			t.Fatalf("survey order %v, want [1 2 3]", ratings)
		}
	}
}

func TestClient_SubmitSurveyValidation(t *testing.T) {
	t.Parallel()
	c := client.New("http://example.invalid", "test-api-key")
	t.Cleanup(func() { _ = c.Close() })

	if _, err := c.SubmitSurvey(context.Background(), client.SubmitSurveyRequest{Rating: 5}); err == nil {
		t.Fatalf("expected error for missing reservation id")
	}
	if _, err := c.SubmitSurvey(context.Background(), client.SubmitSurveyRequest{ReservationID: "res-1", Rating: 6}); err == nil {
		t.Fatalf("expected error for out-of-range rating")
	}
}
