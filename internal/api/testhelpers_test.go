package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/el-eden/eleden-client/internal/shardqueue"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// failingExec implements types.Executor and always fails Submit.
type failingExec struct{}

func (f *failingExec) Submit(ctx context.Context, key string, job shardqueue.Job) error {
	return fmt.Errorf("submit failed")
}

// mockExec records submitted keys and runs jobs inline.
type mockExec struct {
	mu   sync.Mutex
	n    int
	keys []string
	errs []error
}

func (m *mockExec) Submit(ctx context.Context, key string, job shardqueue.Job) error {
	m.mu.Lock()
	m.n++
	m.keys = append(m.keys, key)
	m.mu.Unlock()
	err := job.Run(ctx)
	m.mu.Lock()
	m.errs = append(m.errs, err)
	m.mu.Unlock()
	return nil
}
