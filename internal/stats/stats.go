// Package stats folds fully drained item sets into presentation-ready
// summaries: per-category counts, per-employee assignment counts,
// per-month revenue sums.
//
// Fold defines no output order; values are deterministic for a given input
// multiset regardless of iteration order. Consumers that need a stable
// display order sort explicitly via TopN.
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Bucket carries the running accumulators for one group key. Buckets are
// created on first sight of a key and never removed within a fold.
type Bucket struct {
	Count int64
	Sum   decimal.Decimal
}

// KeyFunc extracts the grouping key from an item. Empty keys are grouped
// under Unknown rather than dropped, so totals stay honest.
type KeyFunc[T any] func(T) string

// ValueFunc extracts the numeric value summed per group. Count-only folds
// pass nil.
type ValueFunc[T any] func(T) decimal.Decimal

// Unknown is the bucket key for items whose grouping field is empty.
const Unknown = "unknown"

// Fold groups items by key and accumulates count and, when value is
// non-nil, sum.
func Fold[T any](items []T, key KeyFunc[T], value ValueFunc[T]) map[string]Bucket {
	buckets := make(map[string]Bucket)
	for _, it := range items {
		k := key(it)
		if k == "" {
			k = Unknown
		}
		b := buckets[k]
		b.Count++
		if value != nil {
			b.Sum = b.Sum.Add(value(it))
		}
		buckets[k] = b
	}
	return buckets
}

// Row is one sorted line of a report table.
type Row struct {
	Key string
	Bucket
}

// Less orders rows for display.
type Less func(a, b Row) bool

// ByCountDesc sorts by descending count, ties broken by ascending key so
// the order is total.
func ByCountDesc(a, b Row) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Key < b.Key
}

// BySumDesc sorts by descending sum, ties broken by ascending key.
func BySumDesc(a, b Row) bool {
	if !a.Sum.Equal(b.Sum) {
		return a.Sum.GreaterThan(b.Sum)
	}
	return a.Key < b.Key
}

// ByKeyAsc sorts lexically by key; useful for time-bucket labels, which
// are formatted to sort chronologically.
func ByKeyAsc(a, b Row) bool { return a.Key < b.Key }

// TopN sorts the buckets with less and returns at most n rows. n <= 0
// returns every row.
func TopN(buckets map[string]Bucket, n int, less Less) []Row {
	rows := make([]Row, 0, len(buckets))
	for k, b := range buckets {
		rows = append(rows, Row{Key: k, Bucket: b})
	}
	sort.Slice(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// MonthKey labels t's month so that lexical order equals chronological
// order ("2026-03").
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
