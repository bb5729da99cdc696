package client

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/el-eden/eleden-client/internal/api"
	"github.com/el-eden/eleden-client/internal/batch"
	"github.com/el-eden/eleden-client/internal/stats"
	"github.com/el-eden/eleden-client/internal/types"
)

// ReportOptions tune the statistics pipeline. Zero values get defaults.
type ReportOptions struct {
	// PageSize and MaxPages bound the drains (see DrainOptions).
	PageSize int
	MaxPages int

	// ChunkSize bounds concurrent per-reservation detail fetches.
	ChunkSize int

	// TopN limits the ByCategory and ByEmployee tables; <= 0 keeps all rows.
	TopN int
}

// ReservationReport is the assembled statistics summary.
type ReservationReport struct {
	// TotalReservations is the number of drained reservation rows.
	TotalReservations int

	// FailedDetails counts reservations whose detail record could not be
	// loaded. Those rows are missing from the tables below; surface this
	// number instead of pretending the report is complete.
	FailedDetails int

	// ByCategory counts reservations per service category, most booked
	// first.
	ByCategory []StatRow

	// ByEmployee counts assignments per employee display name, busiest
	// first. Unassigned reservations fold under the "unknown" row.
	ByEmployee []StatRow

	// RevenueByMonth sums paid and completed reservation amounts per
	// scheduled month, in chronological order.
	RevenueByMonth []StatRow
}

// BuildReservationReport drains the reservation listing, enriches every row
// with its detail record under bounded concurrency, and folds the result
// into per-category, per-employee and per-month summaries.
//
// A failed drain fails the whole report; a truncated statistics table is
// worse than a loud error. Individual detail failures only bump
// FailedDetails.
func (c *Client) BuildReservationReport(ctx context.Context, opts ReportOptions) (*ReservationReport, error) {
	drainOpts := DrainOptions{PageSize: opts.PageSize, MaxPages: opts.MaxPages}

	summaries, err := c.DrainReservations(ctx, drainOpts)
	if err != nil {
		return nil, err
	}
	employees, err := c.DrainEmployees(ctx, drainOpts)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.FullName()
	}

	// The listing rows are summaries; category, assignment and amount live
	// on the detail record.
	details, failed, err := batch.Map(ctx, summaries, func(ctx context.Context, r Reservation) (*Reservation, error) {
		return api.GetReservation(ctx, c.http, c.baseURL, r.ID)
	}, batch.Options{ChunkSize: opts.ChunkSize})
	if err != nil {
		return nil, err
	}

	loaded := make([]Reservation, 0, len(details))
	for _, d := range details {
		if d != nil {
			loaded = append(loaded, *d)
		}
	}

	byCategory := stats.Fold(loaded, func(r Reservation) string { return r.CategoryName }, nil)

	byEmployee := stats.Fold(loaded, func(r Reservation) string {
		if r.EmployeeID == "" {
			return ""
		}
		if name, ok := names[r.EmployeeID]; ok {
			return name
		}
		return r.EmployeeID
	}, nil)

	revenue := stats.Fold(billable(loaded), func(r Reservation) string {
		return stats.MonthKey(r.ScheduledFor)
	}, func(r Reservation) decimal.Decimal {
		return r.TotalAmount
	})

	reportsBuiltTotal.Inc()
	return &ReservationReport{
		TotalReservations: len(summaries),
		FailedDetails:     failed,
		ByCategory:        stats.TopN(byCategory, opts.TopN, stats.ByCountDesc),
		ByEmployee:        stats.TopN(byEmployee, opts.TopN, stats.ByCountDesc),
		RevenueByMonth:    stats.TopN(revenue, 0, stats.ByKeyAsc),
	}, nil
}

// billable filters reservations that count towards revenue.
func billable(rs []Reservation) []Reservation {
	out := rs[:0:0]
	for _, r := range rs {
		if r.Status == types.ReservationPaid || r.Status == types.ReservationCompleted {
			out = append(out, r)
		}
	}
	return out
}
