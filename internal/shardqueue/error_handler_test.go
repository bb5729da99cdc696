package shardqueue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// Error handler is invoked exactly once when a job fails and MaxAttempts=1.
func TestErrorHandler_CalledOnce(t *testing.T) {
	var calls int32
	cfg := Config{Shards: 1, QueueSize: 8, MaxAttempts: 1}
	cfg.ErrorHandler = func(error) { atomic.AddInt32(&calls, 1) }

	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	if err := ex.Submit(context.Background(), "res-1001", JobFunc(func(ctx context.Context) error {
		return errors.New("boom")
	})); err != nil {
		t.Fatalf("submit error job: %v", err)
	}
	if err := ex.Barrier(context.Background(), "res-1001"); err != nil {
		t.Fatalf("barrier: %v", err)
	}

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("error handler calls = %d, want 1", got)
	}
}

// A panic inside ErrorHandler is recovered; subsequent jobs still run.
func TestErrorHandler_PanicRecovered(t *testing.T) {
	cfg := Config{Shards: 1, QueueSize: 8, MaxAttempts: 1}
	cfg.ErrorHandler = func(error) { panic("handler panic") }

	ex := NewShardExecutor(cfg)
	defer ex.Stop()

	if err := ex.Submit(context.Background(), "res-1001", JobFunc(func(ctx context.Context) error {
		return errors.New("boom")
	})); err != nil {
		t.Fatalf("submit error job: %v", err)
	}

	ran := make(chan struct{})
	if err := ex.Submit(context.Background(), "res-1001", JobFunc(func(ctx context.Context) error {
		close(ran)
		return nil
	})); err != nil {
		t.Fatalf("submit follow-up job: %v", err)
	}

	select {
	case <-ran:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("worker did not continue after handler panic")
	}
}

// With a nil ErrorHandler errors are dropped and processing continues.
func TestErrorHandler_Nil_NoCrash(t *testing.T) {
	ex := NewShardExecutor(Config{Shards: 1, QueueSize: 4, MaxAttempts: 1})
	defer ex.Stop()

	if err := ex.Submit(context.Background(), "res-1001", JobFunc(func(ctx context.Context) error {
		return errors.New("ignored")
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := ex.Barrier(context.Background(), "res-1001"); err != nil {
		t.Fatalf("barrier: %v", err)
	}
}
