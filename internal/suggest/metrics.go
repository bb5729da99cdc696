package suggest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	lookupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eleden_client",
			Subsystem: "suggest",
			Name:      "lookups_total",
			Help:      "Address lookups issued after debouncing.",
		},
	)

	staleDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eleden_client",
			Subsystem: "suggest",
			Name:      "stale_responses_dropped_total",
			Help:      "Lookup responses discarded because a newer request superseded them.",
		},
	)
)
