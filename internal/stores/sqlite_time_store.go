package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"code-time/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteTimeStore implements TimeStore backed by an embedded SQLite database.
type SQLiteTimeStore struct {
	db        *sql.DB
	opTimeout time.Duration

	// Prepared statements
	insertRawEvent *sql.Stmt
	scanRawEvents  *sql.Stmt
	deleteRawEvent *sql.Stmt
	insertInterval *sql.Stmt
	sumDurations   *sql.Stmt
	sumSince       *sql.Stmt
	dailyAverage   *sql.Stmt
}

// OpenSQLiteTimeStore opens (creating if needed) the database file at path, migrates it,
// and returns a ready store.
func OpenSQLiteTimeStore(path string, opTimeout time.Duration) (*SQLiteTimeStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	if err := NewMigrationRunner(db).Run(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite %s: %w", path, err)
	}

	store, err := NewSQLiteTimeStore(db, opTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLiteTimeStore creates a store from an already-opened and migrated database.
func NewSQLiteTimeStore(db *sql.DB, opTimeout time.Duration) (*SQLiteTimeStore, error) {
	s := &SQLiteTimeStore{db: db, opTimeout: opTimeout}

	if err := s.prepareStatements(); err != nil {
		return nil, fmt.Errorf("prepare statements: %w", err)
	}

	return s, nil
}

func (s *SQLiteTimeStore) prepareStatements() error {
	var err error

	s.insertRawEvent, err = s.db.Prepare(`INSERT INTO raw_events (event, ts_ms, file) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}

	s.scanRawEvents, err = s.db.Prepare(`SELECT event, ts_ms, file FROM raw_events ORDER BY ts_ms ASC, id ASC`)
	if err != nil {
		return err
	}

	s.deleteRawEvent, err = s.db.Prepare(`DELETE FROM raw_events`)
	if err != nil {
		return err
	}

	s.insertInterval, err = s.db.Prepare(`INSERT INTO intervals (begin_ms, duration_ms, file) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}

	s.sumDurations, err = s.db.Prepare(`SELECT COALESCE(SUM(duration_ms), 0) FROM intervals`)
	if err != nil {
		return err
	}

	s.sumSince, err = s.db.Prepare(`SELECT COALESCE(SUM(duration_ms), 0) FROM intervals WHERE begin_ms >= ?`)
	if err != nil {
		return err
	}

	s.dailyAverage, err = s.db.Prepare(`
		SELECT AVG(day_total) FROM (
			SELECT SUM(duration_ms) AS day_total
			FROM intervals
			GROUP BY strftime('%Y-%m-%d', begin_ms / 1000.0, 'unixepoch')
		)
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *SQLiteTimeStore) InsertRawEvent(ctx context.Context, event *models.RawEvent) error {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	if _, err := s.insertRawEvent.ExecContext(ctx, string(event.Kind), event.Timestamp, event.File); err != nil {
		return fmt.Errorf("insert raw event: %w", err)
	}
	return nil
}

// ScanRawEventsByTimestamp reads the ordered events fully before calling fn, so fn may
// write to the database without contending with an open read cursor.
func (s *SQLiteTimeStore) ScanRawEventsByTimestamp(ctx context.Context, fn func(event *models.RawEvent) error) error {
	events, err := s.queryRawEvents(ctx)
	if err != nil {
		return err
	}

	for i := range events {
		if err := fn(&events[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteTimeStore) queryRawEvents(ctx context.Context) ([]models.RawEvent, error) {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	rows, err := s.scanRawEvents.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query raw events: %w", err)
	}
	defer rows.Close()

	var events []models.RawEvent
	for rows.Next() {
		var event models.RawEvent
		var kind string
		if err := rows.Scan(&kind, &event.Timestamp, &event.File); err != nil {
			return nil, fmt.Errorf("scan raw event: %w", err)
		}
		event.Kind = models.EventKind(kind)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate raw events: %w", err)
	}
	return events, nil
}

func (s *SQLiteTimeStore) DeleteRawEvents(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	if _, err := s.deleteRawEvent.ExecContext(ctx); err != nil {
		return fmt.Errorf("delete raw events: %w", err)
	}
	return nil
}

func (s *SQLiteTimeStore) InsertInterval(ctx context.Context, interval *models.Interval) error {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	if _, err := s.insertInterval.ExecContext(ctx, interval.Begin, interval.Duration, interval.File); err != nil {
		return fmt.Errorf("insert interval: %w", err)
	}
	return nil
}

func (s *SQLiteTimeStore) SumDurations(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	var total int64
	if err := s.sumDurations.QueryRowContext(ctx).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum durations: %w", err)
	}
	return total, nil
}

func (s *SQLiteTimeStore) SumDurationsSince(ctx context.Context, fromMillis int64) (int64, error) {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	var total int64
	if err := s.sumSince.QueryRowContext(ctx, fromMillis).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum durations since %d: %w", fromMillis, err)
	}
	return total, nil
}

func (s *SQLiteTimeStore) AverageDailyDuration(ctx context.Context) (float64, error) {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	var average sql.NullFloat64
	if err := s.dailyAverage.QueryRowContext(ctx).Scan(&average); err != nil {
		return 0, fmt.Errorf("average daily duration: %w", err)
	}
	if !average.Valid {
		return 0, nil
	}
	return average.Float64, nil
}

// Close releases prepared statements and closes the database.
func (s *SQLiteTimeStore) Close(_ context.Context) error {
	var errs []error
	for _, stmt := range []*sql.Stmt{
		s.insertRawEvent, s.scanRawEvents, s.deleteRawEvent,
		s.insertInterval, s.sumDurations, s.sumSince, s.dailyAverage,
	} {
		if stmt != nil {
			errs = append(errs, stmt.Close())
		}
	}
	errs = append(errs, s.db.Close())
	return errors.Join(errs...)
}
