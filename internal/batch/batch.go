// Package batch provides order-preserving bounded concurrent mapping.
//
// The report pipeline uses it to enrich drained summary rows with one
// detail fetch per row without flooding the backend: chunks run strictly
// one after another, everything inside a chunk runs in parallel, so peak
// concurrent outbound requests never exceed the chunk size.
package batch

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Options bound a Map call.
type Options struct {
	// ChunkSize is the maximum number of concurrent fn invocations.
	ChunkSize int
}

const defaultChunkSize = 5

// Map applies fn to every item and returns the results in input order,
// regardless of completion order within a chunk.
//
// A failing fn leaves the zero value of R in its slot and bumps the failed
// counter instead of aborting the batch; one missing detail record must not
// blank an entire report. Callers filter zero-value slots, and the failed
// count lets them surface "N records could not be loaded". Only context
// cancellation stops the batch early, reported via err.
func Map[T, R any](ctx context.Context, items []T, fn func(context.Context, T) (R, error), opts Options) (results []R, failed int, err error) {
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}

	results = make([]R, len(items))
	for start := 0; start < len(items); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}

		var g errgroup.Group
		chunkFailed := make([]bool, end-start)
		for i := start; i < end; i++ {
			i := i
			g.Go(func() error {
				r, err := fn(ctx, items[i])
				if err != nil {
					chunkFailed[i-start] = true
					return nil // isolate per-item failures
				}
				results[i] = r
				return nil
			})
		}
		_ = g.Wait() // workers never return errors
		for _, f := range chunkFailed {
			if f {
				failed++
			}
		}
	}
	return results, failed, nil
}
