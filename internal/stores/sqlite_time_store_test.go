package stores

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"code-time/internal/models"
	"code-time/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteStoreConfig(path string) configs.StoreConfig {
	return configs.StoreConfig{
		Driver:           configs.StoreDriverSQLite,
		SQLitePath:       path,
		OperationTimeout: 5,
	}
}

func newTestSQLiteStore(t *testing.T) *SQLiteTimeStore {
	t.Helper()

	store, err := OpenSQLiteTimeStore(filepath.Join(t.TempDir(), "data", "codetime.db"), 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func collectRawEvents(t *testing.T, store RawEventStore) []models.RawEvent {
	t.Helper()

	var events []models.RawEvent
	err := store.ScanRawEventsByTimestamp(context.Background(), func(event *models.RawEvent) error {
		events = append(events, *event)
		return nil
	})
	require.NoError(t, err)
	return events
}

func TestSQLiteTimeStore_ScanRawEventsByTimestamp_Order(t *testing.T) {
	t.Parallel()

	store := newTestSQLiteStore(t)
	ctx := context.Background()

	inserted := []models.RawEvent{
		{Kind: models.EventLeave, Timestamp: 3000, File: "a.go"},
		{Kind: models.EventEnter, Timestamp: 1000, File: "a.go"},
		{Kind: models.EventLeave, Timestamp: 2000, File: "b.go"},
		{Kind: models.EventEnter, Timestamp: 2000, File: "c.go"},
	}
	for i := range inserted {
		require.NoError(t, store.InsertRawEvent(ctx, &inserted[i]))
	}

	events := collectRawEvents(t, store)
	assert.Equal(t, []models.RawEvent{
		{Kind: models.EventEnter, Timestamp: 1000, File: "a.go"},
		// Equal timestamps keep insertion order
		{Kind: models.EventLeave, Timestamp: 2000, File: "b.go"},
		{Kind: models.EventEnter, Timestamp: 2000, File: "c.go"},
		{Kind: models.EventLeave, Timestamp: 3000, File: "a.go"},
	}, events)
}

func TestSQLiteTimeStore_ScanRawEventsByTimestamp_StopsOnCallbackError(t *testing.T) {
	t.Parallel()

	store := newTestSQLiteStore(t)
	ctx := context.Background()

	for _, ts := range []int64{1000, 2000, 3000} {
		require.NoError(t, store.InsertRawEvent(ctx, &models.RawEvent{Kind: models.EventEnter, Timestamp: ts, File: "a.go"}))
	}

	stop := errors.New("stop")
	calls := 0
	err := store.ScanRawEventsByTimestamp(ctx, func(event *models.RawEvent) error {
		calls++
		if event.Timestamp == 2000 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 2, calls)
}

func TestSQLiteTimeStore_ScanAllowsWritesFromCallback(t *testing.T) {
	t.Parallel()

	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertRawEvent(ctx, &models.RawEvent{Kind: models.EventEnter, Timestamp: 1000, File: "a.go"}))
	require.NoError(t, store.InsertRawEvent(ctx, &models.RawEvent{Kind: models.EventLeave, Timestamp: 4000, File: "a.go"}))

	err := store.ScanRawEventsByTimestamp(ctx, func(event *models.RawEvent) error {
		return store.InsertInterval(ctx, &models.Interval{Begin: event.Timestamp, Duration: 1, File: event.File})
	})
	require.NoError(t, err)

	total, err := store.SumDurations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestSQLiteTimeStore_DeleteRawEvents(t *testing.T) {
	t.Parallel()

	store := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, store.InsertRawEvent(ctx, &models.RawEvent{Kind: models.EventEnter, Timestamp: 1000, File: "a.go"}))
	require.NoError(t, store.InsertInterval(ctx, &models.Interval{Begin: 1000, Duration: 500, File: "a.go"}))

	require.NoError(t, store.DeleteRawEvents(ctx))

	assert.Empty(t, collectRawEvents(t, store))
	// Intervals are untouched
	total, err := store.SumDurations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(500), total)
}

func TestSQLiteTimeStore_EmptyReductions(t *testing.T) {
	t.Parallel()

	store := newTestSQLiteStore(t)
	ctx := context.Background()

	total, err := store.SumDurations(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	since, err := store.SumDurationsSince(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, since)

	average, err := store.AverageDailyDuration(ctx)
	require.NoError(t, err)
	assert.Zero(t, average)
}

func TestSQLiteTimeStore_Reductions(t *testing.T) {
	t.Parallel()

	store := newTestSQLiteStore(t)
	ctx := context.Background()

	day1 := time.Date(2025, 12, 28, 9, 0, 0, 0, time.UTC).UnixMilli()
	day1Late := time.Date(2025, 12, 28, 23, 59, 59, 0, time.UTC).UnixMilli()
	day2 := time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC).UnixMilli()

	intervals := []models.Interval{
		{Begin: day1, Duration: 1_000, File: "a.go"},
		{Begin: day1Late, Duration: 2_000, File: "b.go"},
		{Begin: day2, Duration: 6_000, File: "a.go"},
	}
	for i := range intervals {
		require.NoError(t, store.InsertInterval(ctx, &intervals[i]))
	}

	total, err := store.SumDurations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9_000), total)

	tests := []struct {
		name     string
		from     int64
		expected int64
	}{
		{name: "bound before all", from: 0, expected: 9_000},
		{name: "bound equal to begin is inclusive", from: day1Late, expected: 8_000},
		{name: "bound after first day", from: day2, expected: 6_000},
		{name: "bound after all", from: day2 + 1, expected: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			since, err := store.SumDurationsSince(ctx, tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, since)
		})
	}

	// Day totals are 3000 and 6000
	average, err := store.AverageDailyDuration(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 4_500.0, average, 1e-9)
}

func TestOpen_SQLiteDriver(t *testing.T) {
	t.Parallel()

	store, err := Open(context.Background(), sqliteStoreConfig(filepath.Join(t.TempDir(), "codetime.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	require.NoError(t, store.InsertInterval(context.Background(), &models.Interval{Begin: 1, Duration: 2, File: "a.go"}))
	total, err := store.SumDurations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	cfg := sqliteStoreConfig("unused.db")
	cfg.Driver = "postgres"

	store, err := Open(context.Background(), cfg)
	assert.Nil(t, store)
	assert.ErrorIs(t, err, ErrUnknownDriver)
}
