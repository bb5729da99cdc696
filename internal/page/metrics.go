package page

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pagesDrainedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "eleden_client",
		Subsystem: "page",
		Name:      "pages_drained_total",
		Help:      "Pages fetched by Drain across all listings.",
	},
)
