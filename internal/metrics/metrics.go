package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// nolint:gochecknoglobals
var (
	PlayerOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "roster_player_operations_total",
		Help: "Total number of player operations by outcome",
	}, []string{"operation", "outcome"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "roster_http_request_duration_seconds",
		Help:    "Duration of REST API requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "status"})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roster_http_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter",
	})
)

// Possible outcome label values.
const (
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid"
	OutcomeNotFound   = "not_found"
	OutcomeBadRequest = "bad_request"
	OutcomeError      = "error"
)
