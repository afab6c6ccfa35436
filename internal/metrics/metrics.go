// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns every platform metric. The zero value is not usable; use NewCollector.
type Collector struct {
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	donations      prometheus.Counter
	donationAmount prometheus.Counter
	authEvents     *prometheus.CounterVec
}

// NewCollector registers the metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ngo_http_requests_total",
			Help: "HTTP requests by method, route template and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ngo_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		donations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ngo_donations_total",
			Help: "Donations recorded.",
		}),
		donationAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ngo_donation_amount_total",
			Help: "Sum of recorded donation amounts.",
		}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ngo_auth_events_total",
			Help: "Auth operations by event and outcome.",
		}, []string{"event", "outcome"}),
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.donations,
		c.donationAmount,
		c.authEvents,
	)
	return c
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordDonation counts one donation. Negative amounts are not added to the sum.
func (c *Collector) RecordDonation(amount float64) {
	c.donations.Inc()
	if amount > 0 {
		c.donationAmount.Add(amount)
	}
}

func (c *Collector) RecordAuthEvent(event, outcome string) {
	c.authEvents.WithLabelValues(event, outcome).Inc()
}

// Handler serves the Prometheus scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
