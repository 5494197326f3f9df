// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PaymentsRecorded counts committed payments by source and channel
var PaymentsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jimpitan_payments_recorded_total",
	Help: "Committed payments",
}, []string{"source", "channel"})

// PaymentsRejected counts payments that were refused, by reason
var PaymentsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jimpitan_payments_rejected_total",
	Help: "Payments refused before or during commit",
}, []string{"reason"})

// AmountApplied sums rupiah applied to billing periods
var AmountApplied = promauto.NewCounter(prometheus.CounterOpts{
	Name: "jimpitan_amount_applied_rupiah_total",
	Help: "Rupiah applied to billing periods",
})

// CreditMovement sums rupiah moved into and out of credit balances
var CreditMovement = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jimpitan_credit_movement_rupiah_total",
	Help: "Rupiah added to or consumed from credit balances",
}, []string{"direction"})

// CommitConflicts counts commits rolled back because the ledger moved underneath them
var CommitConflicts = promauto.NewCounter(prometheus.CounterOpts{
	Name: "jimpitan_commit_conflicts_total",
	Help: "Payment commits rolled back after concurrent modification",
})

// OverdueMarked counts periods switched to overdue by the scheduler
var OverdueMarked = promauto.NewCounter(prometheus.CounterOpts{
	Name: "jimpitan_periods_marked_overdue_total",
	Help: "Billing periods marked overdue by the scheduler",
})

// HTTPRequestDuration observes request latency per route
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "jimpitan_http_request_duration_seconds",
	Help:    "HTTP request latency",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "route", "status"})

// ObservePayment records a committed payment
func ObservePayment(source, channel string, applied, creditAdded, creditConsumed int64) {
	PaymentsRecorded.WithLabelValues(source, channel).Inc()
	AmountApplied.Add(float64(applied))
	if creditAdded > 0 {
		CreditMovement.WithLabelValues("added").Add(float64(creditAdded))
	}
	if creditConsumed > 0 {
		CreditMovement.WithLabelValues("consumed").Add(float64(creditConsumed))
	}
}

// GinMiddleware observes every request in HTTPRequestDuration
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
