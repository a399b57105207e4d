// Package metrics collects and exposes Prometheus metrics for the signup endpoint.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Signup outcomes, used as the "outcome" label value.
const (
	OutcomeCreated      = "created"
	OutcomeMissingParam = "missing_param"
	OutcomeInvalidParam = "invalid_param"
	OutcomeServerError  = "server_error"
)

// Recorder is what the signup handler reports to.
type Recorder interface {
	RecordOutcome(outcome string)
	ObserveEmailCheck(d time.Duration)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	requests   *prometheus.CounterVec
	emailCheck prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signup_requests_total",
			Help: "Signup requests by outcome.",
		}, []string{"outcome"}),
		emailCheck: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "signup_email_check_duration_seconds",
			Help:    "Time spent in the email validator.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.requests, c.emailCheck)

	// Pre-create every series so dashboards see zeros before the first request
	for _, o := range []string{OutcomeCreated, OutcomeMissingParam, OutcomeInvalidParam, OutcomeServerError} {
		c.requests.WithLabelValues(o)
	}

	return c
}

// RecordOutcome counts one finished signup request.
func (c *Collector) RecordOutcome(outcome string) {
	c.requests.WithLabelValues(outcome).Inc()
}

// ObserveEmailCheck records how long the email validator took.
func (c *Collector) ObserveEmailCheck(d time.Duration) {
	c.emailCheck.Observe(d.Seconds())
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything.
type Nop struct{}

// RecordOutcome implements Recorder.
func (Nop) RecordOutcome(string) {}

// ObserveEmailCheck implements Recorder.
func (Nop) ObserveEmailCheck(time.Duration) {}
