// Package inflight guards against duplicate submission of the same business
// operation (e.g. confirming payment for a reservation twice from two
// screens). A Registry keys operations by a natural business identifier;
// concurrent calls for one key collapse into a single execution, and the
// completed outcome is retained for a bounded TTL so a late duplicate gets
// the original result instead of a second side effect.
package inflight

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Registry deduplicates operations by key. Safe for concurrent use.
type Registry[V any] struct {
	ttl   time.Duration
	group singleflight.Group

	mu   sync.Mutex
	done map[string]doneEntry[V]

	now func() time.Time // overridable in tests
}

type doneEntry[V any] struct {
	val     V
	expires time.Time
}

const defaultTTL = 30 * time.Second

// NewRegistry constructs a Registry retaining completed results for ttl.
// A non-positive ttl gets a default.
func NewRegistry[V any](ttl time.Duration) *Registry[V] {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Registry[V]{
		ttl:  ttl,
		done: make(map[string]doneEntry[V]),
		now:  time.Now,
	}
}

// Do executes fn for key unless an identical operation is in flight or
// completed within the TTL.
//
//   - Concurrent calls with the same key share one fn execution and all
//     receive its outcome.
//   - A successful outcome is retained for the TTL; repeats within that
//     window return it without running fn again.
//   - Failed outcomes are not retained, so the caller may retry.
func (r *Registry[V]) Do(ctx context.Context, key string, fn func(context.Context) (V, error)) (V, error) {
	r.mu.Lock()
	r.sweepLocked()
	if e, ok := r.done[key]; ok {
		r.mu.Unlock()
		return e.val, nil
	}
	r.mu.Unlock()

	v, err, _ := r.group.Do(key, func() (any, error) {
		val, err := fn(ctx)
		if err != nil {
			return val, err
		}
		r.mu.Lock()
		r.done[key] = doneEntry[V]{val: val, expires: r.now().Add(r.ttl)}
		r.mu.Unlock()
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Forget drops any retained outcome for key, forcing the next Do to run.
func (r *Registry[V]) Forget(key string) {
	r.mu.Lock()
	delete(r.done, key)
	r.mu.Unlock()
	r.group.Forget(key)
}

// sweepLocked removes expired entries. Caller holds r.mu.
func (r *Registry[V]) sweepLocked() {
	now := r.now()
	for k, e := range r.done {
		if now.After(e.expires) {
			delete(r.done, k)
		}
	}
}
