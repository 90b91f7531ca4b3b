package stores

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const dayKeyFormat = "%Y-%m-%d"

type totalTimeResult struct {
	TotalTime int64 `bson:"total_time"`
}

type averageResult struct {
	Average float64 `bson:"average"`
}

// sumDurationsPipeline folds every interval into a single total_time document.
func sumDurationsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_time", Value: bson.D{{Key: "$sum", Value: "$duration"}}},
		}}},
	}
}

func sumDurationsSincePipeline(fromMillis int64) mongo.Pipeline {
	match := bson.D{{Key: "$match", Value: bson.D{
		{Key: "begin", Value: bson.D{{Key: "$gte", Value: fromMillis}}},
	}}}
	return append(mongo.Pipeline{match}, sumDurationsPipeline()...)
}

// averageDailyDurationPipeline buckets intervals by the UTC day of begin, sums each
// bucket, then averages the bucket sums.
func averageDailyDurationPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$project", Value: bson.D{
			{Key: "day", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: dayKeyFormat},
				{Key: "date", Value: bson.D{{Key: "$toDate", Value: "$begin"}}},
			}}}},
			{Key: "duration", Value: 1},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$day"},
			{Key: "total_time", Value: bson.D{{Key: "$sum", Value: "$duration"}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$total_time"}}},
		}}},
	}
}

// firstAggregate decodes the first document of an aggregation cursor and closes it.
// found is false when the pipeline produced nothing, which happens on an empty collection.
func firstAggregate[T any](ctx context.Context, cursor *mongo.Cursor) (result T, found bool, err error) {
	defer cursor.Close(ctx) //nolint:errcheck

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return result, false, fmt.Errorf("read aggregate: %w", err)
		}
		return result, false, nil
	}
	if err := cursor.Decode(&result); err != nil {
		return result, false, fmt.Errorf("decode aggregate: %w", err)
	}
	return result, true, nil
}
