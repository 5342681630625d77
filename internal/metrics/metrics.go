// Package metrics defines the custom Prometheus metrics of the portal. It is
// the single source of truth for metric names, labels and help strings.
//
// Metrics are registered with the default registry through promauto when the
// package is initialised; /metrics exposes them with promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── HTTP ──────────────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request latency.
// Labels:
//   - route:  the chi route pattern (e.g. "/api/graphql")
//   - method: the HTTP method
//   - status: the response status code
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"route", "method", "status"},
)

// RateLimitedTotal counts requests rejected by the rate limiter.
var RateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limited_total",
		Help:      "Total number of API requests rejected with 429.",
	},
)

// RateLimiterErrorsTotal counts limiter backend failures. Such requests are
// let through.
var RateLimiterErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rate_limiter_errors_total",
		Help:      "Total number of rate limiter failures that let a request through.",
	},
)

// ── GraphQL ───────────────────────────────────────────────────────────────────

// GraphQLOperationsTotal counts executed GraphQL operations.
// Labels:
//   - operation: the operation name, or "anonymous"
//   - result:    "ok" or "error"
var GraphQLOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "graphql_operations_total",
		Help:      "Total number of executed GraphQL operations.",
	},
	[]string{"operation", "result"},
)

// ── Auth ──────────────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "unknown_email" or "wrong_password"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Integrations ──────────────────────────────────────────────────────────────

// UpstreamFailuresTotal counts swallowed integration failures.
// Label:
//   - upstream: "dadata" or "mail"
var UpstreamFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_failures_total",
		Help:      "Total number of outbound integration failures hidden from the caller.",
	},
	[]string{"upstream"},
)
