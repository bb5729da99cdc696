// Package suggest turns a rapidly-changing text query into a rate-limited,
// race-safe sequence of address lookups.
//
// Two mechanisms make it safe. A debounce timer coalesces keystrokes so at
// most one lookup is issued per settled query. A monotonically increasing
// generation token guards against out-of-order responses: only the response
// carrying the most recently issued generation may touch visible state, so
// a slow early lookup resolving after a later fast one is dropped instead
// of overwriting newer results.
package suggest

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/el-eden/eleden-client/internal/types"
)

// FetchFunc performs the actual lookup. Injected so tests can supply fakes
// with controlled latency.
type FetchFunc func(ctx context.Context, query string, limit int) ([]types.AddressSuggestion, error)

// Config tunes a Suggester. Zero values get defaults in New.
type Config struct {
	// Enabled gates the whole feature; a disabled suggester clears state
	// and never fetches.
	Enabled bool

	// MinLength is the minimum trimmed query length (in runes) that
	// triggers a lookup. Shorter queries clear state synchronously.
	MinLength int

	// Debounce is how long the query must stay unchanged before a lookup
	// is issued.
	Debounce time.Duration

	// Limit caps the number of suggestions requested per lookup.
	Limit int
}

const (
	defaultMinLength = 3
	defaultDebounce  = 300 * time.Millisecond
	defaultLimit     = 5

	// lookupFailedMsg is the user-facing advisory shown near the input.
	lookupFailedMsg = "could not load address suggestions"
)

// State is an immutable snapshot of the suggester's visible output.
// Suggestions is replaced wholesale on every accepted response, never
// mutated in place, so snapshots may be shared freely.
type State struct {
	Suggestions []types.AddressSuggestion
	Loading     bool
	Err         string
}

// Suggester owns the transient query state for one input field. All methods
// are safe for concurrent use; the zero value is not usable, construct with
// New.
type Suggester struct {
	cfg   Config
	fetch FetchFunc

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	gen     uint64 // most recently issued request generation
	pending uint64 // bumped on every SetQuery; invalidates queued timers
	timer   *time.Timer
	state   State
	closed  bool
	updates chan struct{} // capacity 1, coalescing
}

// New constructs a Suggester. fetch must not be nil.
func New(cfg Config, fetch FetchFunc) *Suggester {
	if fetch == nil {
		panic("suggest: nil fetch")
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = defaultMinLength
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}
	if cfg.Limit <= 0 {
		cfg.Limit = defaultLimit
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Suggester{
		cfg:     cfg,
		fetch:   fetch,
		ctx:     ctx,
		cancel:  cancel,
		updates: make(chan struct{}, 1),
	}
}

// SetQuery feeds the current input value. Call it on every keystroke.
//
// When the suggester is disabled or the trimmed query is shorter than
// MinLength the visible state clears synchronously: suggestions empty,
// loading off, error empty, any pending timer cancelled, and any in-flight
// response invalidated so nothing can repopulate the state afterwards.
// Otherwise the debounce timer restarts; only the last value within a
// debounce window triggers a lookup.
func (s *Suggester) SetQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.stopTimerLocked()
	s.pending++

	trimmed := strings.TrimSpace(query)
	if !s.cfg.Enabled || utf8.RuneCountInString(trimmed) < s.cfg.MinLength {
		s.gen++ // in-flight responses are now stale
		s.state = State{}
		s.notifyLocked()
		return
	}

	p := s.pending
	s.timer = time.AfterFunc(s.cfg.Debounce, func() { s.fire(p, trimmed) })
}

// Clear empties the suggestion list synchronously, typically after the user
// picks a suggestion. It also invalidates any in-flight lookup so a pending
// response cannot reopen the list.
func (s *Suggester) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.gen++
	s.state.Suggestions = nil
	s.state.Loading = false
	s.notifyLocked()
}

// Snapshot returns the current visible state.
func (s *Suggester) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Updates returns a coalescing notification channel that receives a signal
// after state changes. Consumers read Snapshot after each signal; missed
// intermediate states are intentional.
func (s *Suggester) Updates() <-chan struct{} {
	return s.updates
}

// Close cancels any pending timer and in-flight lookup. Safe to call more
// than once; the suggester ignores all input afterwards.
func (s *Suggester) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopTimerLocked()
	s.mu.Unlock()
	s.cancel()
}

// ------------------------- internals -------------------------

// fire runs on the timer goroutine once the query has settled.
func (s *Suggester) fire(pending uint64, query string) {
	s.mu.Lock()
	if s.closed || pending != s.pending {
		// A newer SetQuery superseded this timer between its expiry and
		// this call; the synchronous-clear guarantee depends on this check.
		s.mu.Unlock()
		return
	}
	s.gen++
	myGen := s.gen
	s.state = State{Suggestions: s.state.Suggestions, Loading: true, Err: s.state.Err}
	s.notifyLocked()
	s.mu.Unlock()

	lookupsTotal.Inc()
	results, err := s.fetch(s.ctx, query, s.cfg.Limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || myGen != s.gen {
		// A newer request was issued while this one was in flight; drop
		// the response without touching state, whatever it carried.
		staleDroppedTotal.Inc()
		return
	}
	if err != nil {
		log.Debug().Err(err).Str("query", query).Msg("suggest: lookup failed")
		s.state = State{Err: lookupFailedMsg}
	} else {
		s.state = State{Suggestions: results}
	}
	s.notifyLocked()
}

func (s *Suggester) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Suggester) notifyLocked() {
	select {
	case s.updates <- struct{}{}:
	default:
	}
}
