// Package page normalizes the two pagination shapes the backend returns and
// drains paginated listings to completion.
//
// Listing endpoints answer either with a bare JSON array (a single
// unpaginated page) or with an envelope {"results": [...], "next": ...}.
// Page's UnmarshalJSON folds both into one internal representation before
// any pipeline logic runs, so nothing downstream ever sees the raw shapes.
package page

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Page is one normalized page of a listing response.
type Page[T any] struct {
	// Results holds the page's items in server order.
	Results []T

	// Next is the opaque continuation marker; nil means the listing is
	// exhausted. A bare-array response always has Next == nil.
	Next *string
}

// envelope mirrors the paginated wire shape.
type envelope[T any] struct {
	Results []T     `json:"results"`
	Next    *string `json:"next"`
}

// UnmarshalJSON accepts either a bare array or a {results, next} envelope.
func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var results []T
		if err := json.Unmarshal(data, &results); err != nil {
			return err
		}
		p.Results = results
		p.Next = nil
		return nil
	}
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	p.Results = env.Results
	p.Next = env.Next
	return nil
}

// FetchFunc retrieves one page. pageNum starts at 1.
type FetchFunc[T any] func(ctx context.Context, pageNum, pageSize int) (Page[T], error)

// Options bound a drain.
type Options struct {
	// PageSize is passed through to every fetch.
	PageSize int

	// MaxPages is a fail-safe ceiling against a backend whose continuation
	// marker never goes away. The drain stops after this many pages.
	MaxPages int
}

const (
	defaultPageSize = 50
	defaultMaxPages = 100
)

// Drain calls fetch until the server reports no continuation or MaxPages
// pages have been fetched, and returns every page's results concatenated in
// page order. Pages are requested strictly sequentially; there is no
// speculative prefetching.
//
// A failed page fetch fails the whole drain. Partial results are never
// returned: a silently truncated report is worse than a loud failure.
func Drain[T any](ctx context.Context, fetch FetchFunc[T], opts Options) ([]T, error) {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = defaultMaxPages
	}

	var items []T
	for pageNum := 1; pageNum <= opts.MaxPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pg, err := fetch(ctx, pageNum, opts.PageSize)
		if err != nil {
			return nil, fmt.Errorf("drain page %d: %w", pageNum, err)
		}
		items = append(items, pg.Results...)
		pagesDrainedTotal.Inc()
		if pg.Next == nil {
			return items, nil
		}
	}
	// Ceiling hit: the backend kept promising more pages. Return what we
	// have; the ceiling exists precisely to terminate this case.
	return items, nil
}
