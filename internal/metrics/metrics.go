// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector is the interface the dispatcher and the API client
// record through.
type MetricsCollector interface {
	RecordCommand(subcommand, outcome string)
	RecordAPIRequest(statusCode int, duration time.Duration)
	SetActiveSessions(n int)
}

// Collector is the Prometheus-backed implementation.
type Collector struct {
	commands       *prometheus.CounterVec
	apiRequests    *prometheus.CounterVec
	apiLatency     prometheus.Histogram
	activeSessions prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "slackbot_commands_total",
			Help: "Slash commands handled, by subcommand and outcome",
		}, []string{"subcommand", "outcome"}),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "slackbot_api_requests_total",
			Help: "Requests sent to the Kerberos.io API, by HTTP status",
		}, []string{"status_code"}),
		apiLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "slackbot_api_request_duration_seconds",
			Help:    "Latency of Kerberos.io API requests",
			Buckets: prometheus.DefBuckets,
		}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slackbot_active_sessions",
			Help: "Users currently holding an in-memory session",
		}),
	}

	reg.MustRegister(c.commands, c.apiRequests, c.apiLatency, c.activeSessions)
	return c
}

func (c *Collector) RecordCommand(subcommand, outcome string) {
	c.commands.WithLabelValues(subcommand, outcome).Inc()
}

func (c *Collector) RecordAPIRequest(statusCode int, duration time.Duration) {
	c.apiRequests.WithLabelValues(strconv.Itoa(statusCode)).Inc()
	c.apiLatency.Observe(duration.Seconds())
}

func (c *Collector) SetActiveSessions(n int) {
	c.activeSessions.Set(float64(n))
}

// Noop discards every observation. Used in tests.
type Noop struct{}

func (Noop) RecordCommand(string, string)        {}
func (Noop) RecordAPIRequest(int, time.Duration) {}
func (Noop) SetActiveSessions(int)               {}
