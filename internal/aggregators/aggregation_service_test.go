package aggregators_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code-time/internal/aggregators"
	"code-time/internal/models"
	"code-time/internal/shared/svcerrors"
	storemocks "code-time/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 12, 28, 18, 3, 15, 500_000_000, time.UTC)

func fixedClock() aggregators.Clock {
	return aggregators.ClockFunc(func() time.Time { return fixedNow })
}

func newServiceWithMock(t *testing.T) (aggregators.AggregationService, *storemocks.MockIntervalStore) {
	t.Helper()

	ctrl := gomock.NewController(t)
	intervalStore := storemocks.NewMockIntervalStore(ctrl)
	return aggregators.NewAggregationService(intervalStore, fixedClock()), intervalStore
}

func TestTotalTime(t *testing.T) {
	t.Parallel()

	service, intervalStore := newServiceWithMock(t)
	intervalStore.EXPECT().SumDurations(gomock.Any()).Return(int64(93_784_000), nil)

	total, err := service.TotalTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(93_784_000), total)
}

func TestWindowedTotal_Bound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		windowSeconds int64
		expectedFrom  int64
	}{
		{
			name:          "zero window starts at the current second",
			windowSeconds: 0,
			expectedFrom:  fixedNow.Unix() * 1000,
		},
		{
			name:          "one day",
			windowSeconds: 86_400,
			expectedFrom:  (fixedNow.Unix() - 86_400) * 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, intervalStore := newServiceWithMock(t)
			intervalStore.EXPECT().SumDurationsSince(gomock.Any(), tt.expectedFrom).Return(int64(4000), nil)

			total, err := service.WindowedTotal(context.Background(), tt.windowSeconds)
			require.NoError(t, err)
			assert.Equal(t, int64(4000), total)
		})
	}
}

func TestWindowedTotal_ErrNegativeWindow(t *testing.T) {
	t.Parallel()

	service, _ := newServiceWithMock(t)

	_, err := service.WindowedTotal(context.Background(), -1)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_1000", svcErr.Code)
	assert.Equal(t, "invalid_argument", svcErr.Category)
}

func TestDailyAverage(t *testing.T) {
	t.Parallel()

	service, intervalStore := newServiceWithMock(t)
	intervalStore.EXPECT().AverageDailyDuration(gomock.Any()).Return(2000.0, nil)

	average, err := service.DailyAverage(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 2000.0, average, 1e-9)
}

func TestQueries_StoreErrors(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("server selection timeout")

	tests := []struct {
		name         string
		run          func(s aggregators.AggregationService, m *storemocks.MockIntervalStore) error
		expectedCode string
	}{
		{
			name: "total",
			run: func(s aggregators.AggregationService, m *storemocks.MockIntervalStore) error {
				m.EXPECT().SumDurations(gomock.Any()).Return(int64(0), storeErr)
				_, err := s.TotalTime(context.Background())
				return err
			},
			expectedCode: "AGG_9000",
		},
		{
			name: "windowed",
			run: func(s aggregators.AggregationService, m *storemocks.MockIntervalStore) error {
				m.EXPECT().SumDurationsSince(gomock.Any(), gomock.Any()).Return(int64(0), storeErr)
				_, err := s.WindowedTotal(context.Background(), 3600)
				return err
			},
			expectedCode: "AGG_9001",
		},
		{
			name: "daily average",
			run: func(s aggregators.AggregationService, m *storemocks.MockIntervalStore) error {
				m.EXPECT().AverageDailyDuration(gomock.Any()).Return(0.0, storeErr)
				_, err := s.DailyAverage(context.Background())
				return err
			},
			expectedCode: "AGG_9002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, intervalStore := newServiceWithMock(t)
			err := tt.run(service, intervalStore)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.True(t, svcErr.IsStoreError())
			assert.ErrorIs(t, err, storeErr)
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	service, intervalStore := newServiceWithMock(t)
	intervalStore.EXPECT().SumDurations(gomock.Any()).Return(int64(10_000), nil)
	intervalStore.EXPECT().SumDurationsSince(gomock.Any(), (fixedNow.Unix()-3600)*1000).Return(int64(4_000), nil)
	intervalStore.EXPECT().AverageDailyDuration(gomock.Any()).Return(5_000.0, nil)

	summary, err := service.Summarize(context.Background(), 3600)
	require.NoError(t, err)
	assert.Equal(t, &models.TimeSummary{
		TotalMillis:        10_000,
		WindowSeconds:      3600,
		WindowMillis:       4_000,
		DailyAverageMillis: 5_000.0,
	}, summary)
}

func TestSummarize_AnyQueryFailureFailsSummary(t *testing.T) {
	t.Parallel()

	service, intervalStore := newServiceWithMock(t)
	intervalStore.EXPECT().SumDurations(gomock.Any()).Return(int64(10_000), nil).AnyTimes()
	intervalStore.EXPECT().SumDurationsSince(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom")).AnyTimes()
	intervalStore.EXPECT().AverageDailyDuration(gomock.Any()).Return(5_000.0, nil).AnyTimes()

	summary, err := service.Summarize(context.Background(), 3600)
	assert.Nil(t, summary)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_9001", svcErr.Code)
}

func TestSummarize_ErrNegativeWindow_NoQueries(t *testing.T) {
	t.Parallel()

	service, _ := newServiceWithMock(t)

	summary, err := service.Summarize(context.Background(), -60)
	assert.Nil(t, summary)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_1000", svcErr.Code)
}
