package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"code-time/internal/shared/configs"
)

var (
	ErrUnknownDriver = errors.New("unknown store driver")
)

// TimeStore is the full store used by one process: raw event staging plus intervals.
type TimeStore interface {
	RawEventStore
	IntervalStore
	Close(ctx context.Context) error
}

// Open connects to the store selected by cfg.Driver.
func Open(ctx context.Context, cfg configs.StoreConfig) (TimeStore, error) {
	timeout := time.Duration(cfg.OperationTimeout) * time.Second

	switch cfg.Driver {
	case configs.StoreDriverMongo:
		store, err := NewMongoTimeStore(ctx, MongoOptions{
			URI:                cfg.URI,
			Database:           cfg.Database,
			IntervalCollection: cfg.IntervalCollection,
			EventCollection:    cfg.EventCollection,
			OperationTimeout:   timeout,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case configs.StoreDriverSQLite:
		store, err := OpenSQLiteTimeStore(cfg.SQLitePath, timeout)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

// withTimeout bounds a single store call. A zero timeout only adds cancellation.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
