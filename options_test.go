package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPTimeoutAndDebugLogging(t *testing.T) {
	// timeout option sets http timeout
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}

	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatalf("expected error for non-positive timeout")
	}

	// debug logging wraps transport; base transport is still invoked
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c2 := New("http://example.com", "test-api-key", WithHTTPTimeout(2*time.Second), WithDebugLogging(true))
	defer func() { _ = c2.Close() }()
	// Inject base transport after construction for the test
	c2.http.Transport = rt

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c2.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("ELEDEN_DEBUG", "true")
	c := New("http://example.com", "test-api-key")
	defer func() { _ = c.Close() }()
	akt, ok := c.http.Transport.(*apiKeyTransport)
	if !ok {
		t.Fatalf("expected apiKeyTransport at the top of the chain")
	}
	if _, ok := akt.base.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport beneath the API-key wrapper when ELEDEN_DEBUG=true")
	}
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	t.Setenv("ELEDEN_DEBUG", "true")
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	dt := &debugTransport{base: rt}
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := dt.RoundTrip(req); err == nil {
		t.Fatalf("expected error from underlying transport")
	}
}

// The debug transport must wrap a usable base even though options run
// before New installs any transport; a request through the chain exactly as
// New builds it used to hit a nil RoundTripper.
func TestWithDebugLogging_FullChainRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			t.Errorf("authorization header = %q", r.Header.Get("Authorization"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"formatted_address":"Calle Mayor 1"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, "test-api-key", WithDebugLogging(true))
	defer func() { _ = c.Close() }()

	got, err := c.SuggestAddresses(context.Background(), "calle", 5)
	if err != nil {
		t.Fatalf("SuggestAddresses error: %v", err)
	}
	if len(got) != 1 || got[0].FormattedAddress != "Calle Mayor 1" {
		t.Fatalf("unexpected suggestions %#v", got)
	}
}

func TestNew_AutoEnabledDebugRoundTrip(t *testing.T) {
	t.Setenv("ELEDEN_DEBUG", "true")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, "test-api-key")
	defer func() { _ = c.Close() }()

	if err := c.CancelReservation(context.Background(), "res-1"); err != nil {
		t.Fatalf("request through auto-enabled debug transport failed: %v", err)
	}
}

func TestAPIKeyTransportAddsHeader(t *testing.T) {
	var got string
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		got = r.Header.Get("Authorization")
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header)}, nil
	})
	c := New("http://example.com", "secret-key")
	defer func() { _ = c.Close() }()
	c.http.Transport.(*apiKeyTransport).base = rt

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", http.NoBody)
	if _, err := c.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got != "Bearer secret-key" {
		t.Fatalf("authorization header = %q", got)
	}
}

func TestWithQueueConfigRejectsDoubleConfiguration(t *testing.T) {
	c := &Client{http: &http.Client{}, exec: &stubExec{}}
	if err := WithQueueConfig(QueueConfig{})(c); err == nil {
		t.Fatalf("expected error when queue already configured")
	}
}
