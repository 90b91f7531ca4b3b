package streams

import (
	"code-time/internal/shared/metrics"
)

var (
	streamIngestJob               = "ingest_job"
	metricIngestJobPublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "ingest_job_published_total",
		},
		[]string{"stream_id"},
	)

	metricIngestJobConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "ingest_job_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)

	metricIngestJobWaitSeconds = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "ingest_job_wait_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{"stream_id"},
	)
)
