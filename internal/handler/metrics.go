package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	checkoutsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "checkouts_started_total",
			Help:      "Total number of checkouts that reached the redirect step",
		},
	)

	checkoutsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkout creations",
		},
		[]string{"reason"},
	)

	verificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "verifications_total",
			Help:      "Total number of verification calls by outcome",
		},
		[]string{"outcome"},
	)

	ordersPaid = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "checkout_service",
			Subsystem: "http",
			Name:      "orders_paid_total",
			Help:      "Total number of orders that transitioned into paid",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		checkoutsStarted,
		checkoutsFailed,
		verificationsTotal,
		ordersPaid,
	)
}
