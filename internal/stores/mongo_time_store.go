package stores

import (
	"context"
	"fmt"
	"time"

	"code-time/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoOptions struct {
	URI                string
	Database           string
	IntervalCollection string
	EventCollection    string
	OperationTimeout   time.Duration
}

// MongoTimeStore keeps intervals and staged raw events in two collections of one database.
type MongoTimeStore struct {
	client    *mongo.Client
	intervals *mongo.Collection
	events    *mongo.Collection
	opTimeout time.Duration
}

// NewMongoTimeStore connects and pings the primary so a bad URI fails here rather than
// on the first insert.
func NewMongoTimeStore(ctx context.Context, opts MongoOptions) (*MongoTimeStore, error) {
	connectCtx, cancel := withTimeout(ctx, opts.OperationTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(opts.Database)
	return &MongoTimeStore{
		client:    client,
		intervals: db.Collection(opts.IntervalCollection),
		events:    db.Collection(opts.EventCollection),
		opTimeout: opts.OperationTimeout,
	}, nil
}

func (s *MongoTimeStore) InsertRawEvent(ctx context.Context, event *models.RawEvent) error {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	if _, err := s.events.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("insert raw event: %w", err)
	}
	return nil
}

// ScanRawEventsByTimestamp streams events sorted by timestamp, then _id. ObjectIDs grow
// with insertion, so equal timestamps keep their log order.
func (s *MongoTimeStore) ScanRawEventsByTimestamp(ctx context.Context, fn func(event *models.RawEvent) error) error {
	findCtx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	sort := bson.D{{Key: "timestamp", Value: 1}, {Key: "_id", Value: 1}}
	cursor, err := s.events.Find(findCtx, bson.D{}, options.Find().SetSort(sort))
	if err != nil {
		return fmt.Errorf("find raw events: %w", err)
	}
	defer cursor.Close(ctx) //nolint:errcheck

	for cursor.Next(ctx) {
		var event models.RawEvent
		if err := cursor.Decode(&event); err != nil {
			return fmt.Errorf("decode raw event: %w", err)
		}
		if err := fn(&event); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("iterate raw events: %w", err)
	}
	return nil
}

func (s *MongoTimeStore) DeleteRawEvents(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	if _, err := s.events.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete raw events: %w", err)
	}
	return nil
}

func (s *MongoTimeStore) InsertInterval(ctx context.Context, interval *models.Interval) error {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	if _, err := s.intervals.InsertOne(ctx, interval); err != nil {
		return fmt.Errorf("insert interval: %w", err)
	}
	return nil
}

func (s *MongoTimeStore) SumDurations(ctx context.Context) (int64, error) {
	return s.aggregateTotal(ctx, sumDurationsPipeline())
}

func (s *MongoTimeStore) SumDurationsSince(ctx context.Context, fromMillis int64) (int64, error) {
	return s.aggregateTotal(ctx, sumDurationsSincePipeline(fromMillis))
}

func (s *MongoTimeStore) AverageDailyDuration(ctx context.Context) (float64, error) {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	cursor, err := s.intervals.Aggregate(ctx, averageDailyDurationPipeline())
	if err != nil {
		return 0, fmt.Errorf("aggregate daily average: %w", err)
	}
	result, _, err := firstAggregate[averageResult](ctx, cursor)
	if err != nil {
		return 0, err
	}
	return result.Average, nil
}

func (s *MongoTimeStore) aggregateTotal(ctx context.Context, pipeline mongo.Pipeline) (int64, error) {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	cursor, err := s.intervals.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate total time: %w", err)
	}
	result, _, err := firstAggregate[totalTimeResult](ctx, cursor)
	if err != nil {
		return 0, err
	}
	return result.TotalTime, nil
}

func (s *MongoTimeStore) Close(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, s.opTimeout)
	defer cancel()

	return s.client.Disconnect(ctx)
}
