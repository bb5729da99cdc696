package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	surveysEnqueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eleden_client",
			Name:      "surveys_enqueued_total",
			Help:      "Survey submissions accepted into the async queue.",
		},
	)

	paymentsEnqueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eleden_client",
			Name:      "payments_accepted_total",
			Help:      "Payment confirmations accepted, including deduplicated repeats served from the idempotency registry.",
		},
	)

	reportsBuiltTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "eleden_client",
			Name:      "reports_built_total",
			Help:      "Reservation reports assembled by the drain/enrich/fold pipeline.",
		},
	)
)
