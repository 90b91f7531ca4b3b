package aggregators

import (
	"code-time/internal/shared/metrics"
)

const labelQuery = "query"

const (
	queryTotal    = "total"
	queryWindowed = "windowed"
	queryDaily    = "daily_average"
)

// metricQueryTotal counts aggregate queries by query name and error code.
// A successful query has an empty error_code.
//
// metricQueryDuration observes store latency per query, successful or not.
var (
	metricQueryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "queries_total",
		},
		[]string{labelQuery, metrics.FieldErrorCode},
	)

	metricQueryDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "query_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{labelQuery},
	)
)
