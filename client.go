// Package client is the Go SDK for the El Edén gardening-services backend.
//
// It wraps the REST API with typed operations and carries the pieces of
// client-side machinery the booking flows depend on: a debounced, race-safe
// address suggester, a drain/enrich/fold report pipeline over paginated
// listings, an idempotency registry guarding payment confirmation, and a
// sharded FIFO queue for asynchronous writes.
package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/el-eden/eleden-client/internal/api"
	"github.com/el-eden/eleden-client/internal/inflight"
	"github.com/el-eden/eleden-client/internal/job"
	"github.com/el-eden/eleden-client/internal/page"
	"github.com/el-eden/eleden-client/internal/shardqueue"
	"github.com/el-eden/eleden-client/internal/suggest"
	"github.com/el-eden/eleden-client/internal/types"
)

// Client talks to one El Edén backend. Construct with New; the zero value
// is not usable.
type Client struct {
	baseURL  string
	http     *http.Client
	exec     executor
	apiKey   string
	payments *inflight.Registry[*EnqueueAck]

	closedOnce uint32 // ensures Close is idempotent
}

// New constructs a Client with the specified baseURL and apiKey.
// Additional options can be provided via functional arguments.
func New(baseURL, apiKey string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if apiKey == "" {
		panic("apiKey cannot be empty")
	}

	c := &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 30 * time.Second},
		payments: inflight.NewRegistry[*EnqueueAck](30 * time.Second),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	if c.exec == nil {
		c.exec = newDefaultExecutor()
	}

	// Wrap HTTP transport to automatically add the Authorization header.
	c.wrapTransportWithAPIKey()

	return c
}

func (c *Client) wrapTransportWithAPIKey() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &apiKeyTransport{
		base:   baseTransport,
		apiKey: c.apiKey,
	}
}

// apiKeyTransport wraps an http.RoundTripper to add the Authorization header.
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid mutating the caller's copy.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	return t.base.RoundTrip(cloned)
}

// Close stops the background executor. Safe to call multiple times.
func (c *Client) Close() error {
	if !atomic.CompareAndSwapUint32(&c.closedOnce, 0, 1) {
		return nil
	}
	if c.exec != nil {
		c.exec.Stop()
	}
	return nil
}

// AwaitSettled blocks until all previously submitted async writes for the
// given reservation have been executed by the internal queue. It works by
// submitting a no-op job and waiting for it to run, which guarantees the
// FIFO lane has flushed.
func (c *Client) AwaitSettled(ctx context.Context, reservationID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	j := job.New(func(context.Context) error {
		close(done)
		return nil
	})
	if err := c.exec.Submit(ctx, reservationID, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// newDefaultExecutor constructs the shardqueue executor, honoring
// ELEDEN_QUEUE_* env overrides and falling back to defaults.
func newDefaultExecutor() *shardqueue.ShardExecutor {
	cfg, err := shardqueue.LoadConfig()
	if err != nil {
		cfg = shardqueue.Config{}
	}
	return shardqueue.NewShardExecutor(cfg)
}

// --------------------------------------------------------------------
// Address suggestions
// --------------------------------------------------------------------

// SuggestAddresses runs a one-shot address lookup (synchronous).
// Interactive inputs should prefer NewAddressSuggester.
func (c *Client) SuggestAddresses(ctx context.Context, query string, limit int) ([]AddressSuggestion, error) {
	return api.SuggestAddresses(ctx, c.http, c.baseURL, query, limit)
}

// NewAddressSuggester returns a debounced, race-safe suggester bound to the
// backend's address lookup endpoint. Callers feed keystrokes via SetQuery
// and observe Snapshot/Updates; Close it when the input goes away.
func (c *Client) NewAddressSuggester(cfg SuggestConfig) *Suggester {
	return suggest.New(cfg, func(ctx context.Context, query string, limit int) ([]AddressSuggestion, error) {
		return api.SuggestAddresses(ctx, c.http, c.baseURL, query, limit)
	})
}

// --------------------------------------------------------------------
// Reservations
// --------------------------------------------------------------------

// CreateReservation books a new service request.
func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	return api.CreateReservation(ctx, c.http, c.baseURL, req)
}

// ListReservations retrieves one page of reservations.
func (c *Client) ListReservations(ctx context.Context, p ListParams) (ReservationPage, error) {
	return api.ListReservations(ctx, c.http, c.baseURL, p)
}

// DrainReservations materializes the whole reservation listing.
func (c *Client) DrainReservations(ctx context.Context, opts DrainOptions) ([]Reservation, error) {
	return page.Drain(ctx, func(ctx context.Context, pageNum, pageSize int) (ReservationPage, error) {
		return api.ListReservations(ctx, c.http, c.baseURL, ListParams{Page: pageNum, PageSize: pageSize})
	}, opts)
}

// GetReservation retrieves a single reservation.
func (c *Client) GetReservation(ctx context.Context, reservationID string) (*Reservation, error) {
	return api.GetReservation(ctx, c.http, c.baseURL, reservationID)
}

// CancelReservation cancels a reservation.
func (c *Client) CancelReservation(ctx context.Context, reservationID string) error {
	return api.CancelReservation(ctx, c.http, c.baseURL, reservationID)
}

// --------------------------------------------------------------------
// Catalogue: services, categories, suppliers
// --------------------------------------------------------------------

// ListServices retrieves one page of the service catalogue.
func (c *Client) ListServices(ctx context.Context, p ListParams) (ServicePage, error) {
	return api.ListServices(ctx, c.http, c.baseURL, p)
}

// DrainServices materializes the whole service catalogue.
func (c *Client) DrainServices(ctx context.Context, opts DrainOptions) ([]Service, error) {
	return page.Drain(ctx, func(ctx context.Context, pageNum, pageSize int) (ServicePage, error) {
		return api.ListServices(ctx, c.http, c.baseURL, ListParams{Page: pageNum, PageSize: pageSize})
	}, opts)
}

// GetService retrieves a single service.
func (c *Client) GetService(ctx context.Context, serviceID string) (*Service, error) {
	return api.GetService(ctx, c.http, c.baseURL, serviceID)
}

// ListCategories retrieves one page of service categories.
func (c *Client) ListCategories(ctx context.Context, p ListParams) (CategoryPage, error) {
	return api.ListCategories(ctx, c.http, c.baseURL, p)
}

// ListSuppliers retrieves one page of suppliers.
func (c *Client) ListSuppliers(ctx context.Context, p ListParams) (SupplierPage, error) {
	return api.ListSuppliers(ctx, c.http, c.baseURL, p)
}

// --------------------------------------------------------------------
// Employees
// --------------------------------------------------------------------

// ListEmployees retrieves one page of employees.
func (c *Client) ListEmployees(ctx context.Context, p ListParams) (EmployeePage, error) {
	return api.ListEmployees(ctx, c.http, c.baseURL, p)
}

// DrainEmployees materializes the whole employee listing.
func (c *Client) DrainEmployees(ctx context.Context, opts DrainOptions) ([]Employee, error) {
	return page.Drain(ctx, func(ctx context.Context, pageNum, pageSize int) (EmployeePage, error) {
		return api.ListEmployees(ctx, c.http, c.baseURL, ListParams{Page: pageNum, PageSize: pageSize})
	}, opts)
}

// GetEmployee retrieves a single employee.
func (c *Client) GetEmployee(ctx context.Context, employeeID string) (*Employee, error) {
	return api.GetEmployee(ctx, c.http, c.baseURL, employeeID)
}

// --------------------------------------------------------------------
// Surveys - async submission via the sharded executor
// --------------------------------------------------------------------

// ListSurveys retrieves one page of survey responses.
func (c *Client) ListSurveys(ctx context.Context, p ListParams) (SurveyPage, error) {
	return api.ListSurveys(ctx, c.http, c.baseURL, p)
}

// DrainSurveys materializes the whole survey listing.
func (c *Client) DrainSurveys(ctx context.Context, opts DrainOptions) ([]Survey, error) {
	return page.Drain(ctx, func(ctx context.Context, pageNum, pageSize int) (SurveyPage, error) {
		return api.ListSurveys(ctx, c.http, c.baseURL, ListParams{Page: pageNum, PageSize: pageSize})
	}, opts)
}

// SubmitSurvey enqueues a survey response. The POST runs on a queue worker
// with retries; FIFO order per reservation is preserved.
func (c *Client) SubmitSurvey(ctx context.Context, req SubmitSurveyRequest) (*EnqueueAck, error) {
	ack, err := api.SubmitSurvey(ctx, c.exec, c.http, c.baseURL, req)
	if err != nil {
		return nil, err
	}
	surveysEnqueuedTotal.Inc()
	return ack, nil
}

// --------------------------------------------------------------------
// Payments - async, idempotency-guarded
// --------------------------------------------------------------------

// ConfirmPayment enqueues a payment confirmation for a reservation.
//
// Duplicate calls for the same reservation within a short window (double
// click, remounted confirmation screen) collapse into one enqueue; the
// duplicates receive the original acknowledgement. Per-reservation FIFO
// order with SubmitSurvey is preserved via the shared queue.
func (c *Client) ConfirmPayment(ctx context.Context, req ConfirmPaymentRequest) (*EnqueueAck, error) {
	if err := types.ValidateIDPresent(req.ReservationID, "reservationId"); err != nil {
		return nil, err
	}
	ack, err := c.payments.Do(ctx, req.ReservationID, func(ctx context.Context) (*EnqueueAck, error) {
		return api.ConfirmPayment(ctx, c.exec, c.http, c.baseURL, req)
	})
	if err != nil {
		return nil, err
	}
	paymentsEnqueuedTotal.Inc()
	return ack, nil
}
