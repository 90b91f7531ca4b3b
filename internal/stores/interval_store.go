package stores

import (
	"context"

	"code-time/internal/models"
)

// IntervalStore persists paired intervals and runs the read-side reductions over them.
// Every reduction returns its zero value, not an error, when there is nothing to reduce.
//
//go:generate mockgen -source=interval_store.go -destination=./mocks/interval_store_mock.go -package=mocks
type IntervalStore interface {
	InsertInterval(ctx context.Context, interval *models.Interval) error
	// SumDurations sums the duration of every interval.
	SumDurations(ctx context.Context) (int64, error)
	// SumDurationsSince sums the duration of intervals with begin >= fromMillis.
	SumDurationsSince(ctx context.Context, fromMillis int64) (int64, error)
	// AverageDailyDuration sums durations per UTC day of begin, then averages those sums
	// over the days that have at least one interval.
	AverageDailyDuration(ctx context.Context) (float64, error)
}
