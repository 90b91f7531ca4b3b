package stores

import (
	"context"

	"code-time/internal/models"
)

// RawEventStore stages parsed event log lines between insertion and pairing.
//
// ScanRawEventsByTimestamp calls fn for every staged event in ascending timestamp order,
// events with equal timestamps in insertion order. Iteration stops at the first error
// returned by fn, and that error is returned unwrapped. Backends may stream from a cursor
// (Mongo) or buffer every staged event before the first call (SQLite), so fn may write
// to the same store.
//
//go:generate mockgen -source=raw_event_store.go -destination=./mocks/raw_event_store_mock.go -package=mocks
type RawEventStore interface {
	InsertRawEvent(ctx context.Context, event *models.RawEvent) error
	ScanRawEventsByTimestamp(ctx context.Context, fn func(*models.RawEvent) error) error
	DeleteRawEvents(ctx context.Context) error
}
