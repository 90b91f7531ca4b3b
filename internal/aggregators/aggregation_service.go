package aggregators

import (
	"context"
	"time"

	"code-time/internal/models"
	"code-time/internal/shared/loggers"
	"code-time/internal/shared/metrics"
	"code-time/internal/shared/svcerrors"
	"code-time/internal/stores"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	// TotalTime returns the sum of all interval durations in ms.
	TotalTime(ctx context.Context) (int64, error)
	// WindowedTotal returns the sum of durations of intervals that began within the last windowSeconds.
	WindowedTotal(ctx context.Context, windowSeconds int64) (int64, error)
	// DailyAverage returns the mean of per-UTC-day duration sums, over days with at least one interval.
	DailyAverage(ctx context.Context) (float64, error)
	// Summarize runs the three queries concurrently.
	Summarize(ctx context.Context, windowSeconds int64) (*models.TimeSummary, error)
}

type aggregationService struct {
	intervalStore stores.IntervalStore
	clock         Clock
}

func NewAggregationService(intervalStore stores.IntervalStore, clock Clock) AggregationService {
	if clock == nil {
		clock = SystemClock
	}
	return &aggregationService{intervalStore: intervalStore, clock: clock}
}

func (s *aggregationService) TotalTime(ctx context.Context) (int64, error) {
	start := time.Now()
	total, err := s.intervalStore.SumDurations(ctx)
	if err != nil {
		svcErr := errTotalTimeFailed(err)
		observeQuery(queryTotal, start, svcErr)
		return 0, svcErr
	}
	observeQuery(queryTotal, start, nil)
	return total, nil
}

func (s *aggregationService) WindowedTotal(ctx context.Context, windowSeconds int64) (int64, error) {
	window, err := models.NewTrailingWindow(windowSeconds)
	if err != nil {
		return 0, errNegativeWindow(err)
	}

	from := window.Since(s.clock.Now())
	loggers.Ctx(ctx).Debug().Msgf("summing durations of intervals beginning at or after %d", from)

	start := time.Now()
	total, err := s.intervalStore.SumDurationsSince(ctx, from)
	if err != nil {
		svcErr := errWindowedTotalFailed(err)
		observeQuery(queryWindowed, start, svcErr)
		return 0, svcErr
	}
	observeQuery(queryWindowed, start, nil)
	return total, nil
}

func (s *aggregationService) DailyAverage(ctx context.Context) (float64, error) {
	start := time.Now()
	average, err := s.intervalStore.AverageDailyDuration(ctx)
	if err != nil {
		svcErr := errDailyAverageFailed(err)
		observeQuery(queryDaily, start, svcErr)
		return 0, svcErr
	}
	observeQuery(queryDaily, start, nil)
	return average, nil
}

func (s *aggregationService) Summarize(ctx context.Context, windowSeconds int64) (*models.TimeSummary, error) {
	if _, err := models.NewTrailingWindow(windowSeconds); err != nil {
		return nil, errNegativeWindow(err)
	}

	summary := &models.TimeSummary{WindowSeconds: windowSeconds}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.TotalTime(gctx)
		summary.TotalMillis = total
		return err
	})
	g.Go(func() error {
		windowed, err := s.WindowedTotal(gctx, windowSeconds)
		summary.WindowMillis = windowed
		return err
	})
	g.Go(func() error {
		average, err := s.DailyAverage(gctx)
		summary.DailyAverageMillis = average
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summary, nil
}

func observeQuery(query string, start time.Time, svcErr *svcerrors.ServiceError) {
	code := metrics.ValueNoError
	if svcErr != nil {
		code = svcErr.Code
	}
	metricQueryTotal.WithLabelValues(query, code).Inc()
	metricQueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}
