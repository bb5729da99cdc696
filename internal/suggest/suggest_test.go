package suggest

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/el-eden/eleden-client/internal/types"
)

func addr(s string) types.AddressSuggestion {
	return types.AddressSuggestion{FormattedAddress: s}
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestSuggester_DebounceCoalescing(t *testing.T) {
	t.Parallel()
	var calls int32
	var mu sync.Mutex
	var lastQuery string
	fetched := make(chan struct{}, 8)

	s := New(Config{Enabled: true, MinLength: 1, Debounce: 40 * time.Millisecond}, func(ctx context.Context, q string, limit int) ([]types.AddressSuggestion, error) {
		atomic.AddInt32(&calls, 1)
		mu.Lock()
		lastQuery = q
		mu.Unlock()
		fetched <- struct{}{}
		return []types.AddressSuggestion{addr(q)}, nil
	})
	defer s.Close()

	// N rapid keystrokes within one debounce window.
	s.SetQuery("c")
	s.SetQuery("ca")
	s.SetQuery("cal")
	s.SetQuery("calle mayor")

	select {
	case <-fetched:
	case <-time.After(time.Second):
		t.Fatal("no lookup fired")
	}
	// Allow any spurious extra lookups to surface.
	time.Sleep(100 * time.Millisecond)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("expected exactly 1 lookup for the final value, got %d", got)
	}
	mu.Lock()
	q := lastQuery
	mu.Unlock()
	if q != "calle mayor" {
		t.Fatalf("lookup used %q, want the final query", q)
	}
}

func TestSuggester_StalenessLastIssuedWins(t *testing.T) {
	t.Parallel()
	releaseFirst := make(chan struct{})
	firstStarted := make(chan struct{})

	s := New(Config{Enabled: true, MinLength: 1, Debounce: 10 * time.Millisecond}, func(ctx context.Context, q string, limit int) ([]types.AddressSuggestion, error) {
		if q == "first" {
			close(firstStarted)
			<-releaseFirst // resolve after the second request
		}
		return []types.AddressSuggestion{addr(q)}, nil
	})
	defer s.Close()

	s.SetQuery("first")
	select {
	case <-firstStarted:
	case <-time.After(time.Second):
		t.Fatal("first lookup never started")
	}

	s.SetQuery("second")
	waitFor(t, time.Second, func() bool {
		st := s.Snapshot()
		return len(st.Suggestions) == 1 && st.Suggestions[0].FormattedAddress == "second"
	})

	// Now let the earlier request resolve out of order.
	close(releaseFirst)
	time.Sleep(50 * time.Millisecond)

	st := s.Snapshot()
	if len(st.Suggestions) != 1 || st.Suggestions[0].FormattedAddress != "second" {
		t.Fatalf("stale response overwrote newer results: %+v", st.Suggestions)
	}
	if st.Loading || st.Err != "" {
		t.Fatalf("stale response mutated state: %+v", st)
	}
}

func TestSuggester_BelowMinLengthClearsSynchronously(t *testing.T) {
	t.Parallel()
	var calls int32
	fetched := make(chan struct{}, 8)

	s := New(Config{Enabled: true, MinLength: 3, Debounce: 20 * time.Millisecond}, func(ctx context.Context, q string, limit int) ([]types.AddressSuggestion, error) {
		atomic.AddInt32(&calls, 1)
		fetched <- struct{}{}
		return []types.AddressSuggestion{addr(q)}, nil
	})
	defer s.Close()

	s.SetQuery("avenida")
	select {
	case <-fetched:
	case <-time.After(time.Second):
		t.Fatal("initial lookup never fired")
	}
	waitFor(t, time.Second, func() bool { return len(s.Snapshot().Suggestions) == 1 })

	// Dropping below MinLength must clear immediately, with no later timer
	// or in-flight response repopulating the state.
	s.SetQuery("av")
	st := s.Snapshot()
	if len(st.Suggestions) != 0 || st.Loading || st.Err != "" {
		t.Fatalf("state not cleared synchronously: %+v", st)
	}

	time.Sleep(80 * time.Millisecond)
	st = s.Snapshot()
	if len(st.Suggestions) != 0 || st.Loading {
		t.Fatalf("state repopulated after clear: %+v", st)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("short query must not fetch; calls = %d", got)
	}
}

func TestSuggester_ShortQueryCancelsPendingTimer(t *testing.T) {
	t.Parallel()
	var calls int32
	s := New(Config{Enabled: true, MinLength: 3, Debounce: 30 * time.Millisecond}, func(ctx context.Context, q string, limit int) ([]types.AddressSuggestion, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	})
	defer s.Close()

	s.SetQuery("avenida")
	s.SetQuery("av") // before the debounce fires

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Fatalf("cancelled timer still fetched: calls = %d", got)
	}
}

func TestSuggester_WhitespaceOnlyQueryClears(t *testing.T) {
	t.Parallel()
	var calls int32
	s := New(Config{Enabled: true, MinLength: 1, Debounce: 10 * time.Millisecond}, func(ctx context.Context, q string, limit int) ([]types.AddressSuggestion, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	})
	defer s.Close()

	s.SetQuery("   \t ")
	time.Sleep(50 * time.Millisecond)
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("whitespace-only query must not fetch")
	}
}

func TestSuggester_Disabled(t *testing.T) {
	t.Parallel()
	var calls int32
	s := New(Config{Enabled: false, MinLength: 1, Debounce: 10 * time.Millisecond}, func(ctx context.Context, q string, limit int) ([]types.AddressSuggestion, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	})
	defer s.Close()

	s.SetQuery("avenida siempre viva 742")
	time.Sleep(50 * time.Millisecond)
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("disabled suggester must not fetch")
	}
	if st := s.Snapshot(); len(st.Suggestions) != 0 || st.Loading || st.Err != "" {
		t.Fatalf("disabled suggester must stay cleared: %+v", st)
	}
}

func TestSuggester_FetchErrorDegradesLocally(t *testing.T) {
	t.Parallel()
	s := New(Config{Enabled: true, MinLength: 1, Debounce: 10 * time.Millisecond}, func(ctx context.Context, q string, limit int) ([]types.AddressSuggestion, error) {
		return nil, errors.New("503 from lookup service")
	})
	defer s.Close()

	s.SetQuery("calle")
	waitFor(t, time.Second, func() bool { return s.Snapshot().Err != "" })

	st := s.Snapshot()
	if st.Err != lookupFailedMsg {
		t.Fatalf("expected the advisory message, got %q", st.Err)
	}
	if len(st.Suggestions) != 0 || st.Loading {
		t.Fatalf("error state must have empty suggestions, loading off: %+v", st)
	}
}

func TestSuggester_ClearDropsInFlightResponse(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	started := make(chan struct{})

	s := New(Config{Enabled: true, MinLength: 1, Debounce: 10 * time.Millisecond}, func(ctx context.Context, q string, limit int) ([]types.AddressSuggestion, error) {
		close(started)
		<-release
		return []types.AddressSuggestion{addr(q)}, nil
	})
	defer s.Close()

	s.SetQuery("calle")
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("lookup never started")
	}

	s.Clear()
	if st := s.Snapshot(); len(st.Suggestions) != 0 || st.Loading {
		t.Fatalf("Clear must empty state synchronously: %+v", st)
	}

	close(release)
	time.Sleep(50 * time.Millisecond)
	if st := s.Snapshot(); len(st.Suggestions) != 0 {
		t.Fatalf("in-flight response repopulated cleared state: %+v", st)
	}
}

func TestSuggester_CloseCancelsPendingTimer(t *testing.T) {
	t.Parallel()
	var calls int32
	s := New(Config{Enabled: true, MinLength: 1, Debounce: 30 * time.Millisecond}, func(ctx context.Context, q string, limit int) ([]types.AddressSuggestion, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	})

	s.SetQuery("calle")
	s.Close()
	s.Close() // idempotent

	time.Sleep(100 * time.Millisecond)
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatal("closed suggester still fetched")
	}
}

func TestSuggester_UpdatesChannelSignals(t *testing.T) {
	t.Parallel()
	s := New(Config{Enabled: true, MinLength: 1, Debounce: 10 * time.Millisecond}, func(ctx context.Context, q string, limit int) ([]types.AddressSuggestion, error) {
		return []types.AddressSuggestion{addr(q)}, nil
	})
	defer s.Close()

	s.SetQuery("calle")
	select {
	case <-s.Updates():
	case <-time.After(time.Second):
		t.Fatal("no update signal")
	}
}
