package ingestors

import (
	"code-time/internal/shared/metrics"
)

var (
	metricIngestionRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "runs_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRawEventsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "raw_events_total",
		},
		[]string{},
	)

	metricIntervalsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "intervals_total",
		},
		[]string{},
	)
)
