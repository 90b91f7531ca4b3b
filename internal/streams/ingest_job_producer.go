package streams

import (
	"context"
	"time"

	"code-time/internal/events"
	"code-time/internal/ingestors"
	"code-time/internal/models"
	"code-time/internal/shared/ulid"
)

type ingestOutcome struct {
	result *models.IngestResult
	err    error
}

// ingestJob carries the requester's context so a worker can skip jobs nobody waits for.
type ingestJob struct {
	ctx   context.Context
	event events.IngestJobEvent
	reply chan ingestOutcome
}

// IngestJobQueue is the set of lanes shared by the producer and the consumer.
type IngestJobQueue = PartitionedQueue[ingestJob]

func NewIngestJobQueue() *IngestJobQueue {
	return NewPartitionedQueue[ingestJob]()
}

// ingestJobProducer publishes one IngestJobEvent per call and blocks until a worker answers.
//
// Partition strategy:
//
//	partitionKey = <log path>
//
// Every job for a log path is handled by the same single worker, so two concurrent
// POST /ingest calls on one file run back to back. The second one usually finds no file
// and reports nothing to ingest.
type ingestJobProducer struct {
	queue *IngestJobQueue
	now   func() time.Time
}

// NewIngestJobProducer returns an IngestionService that routes every run through queue.
func NewIngestJobProducer(queue *IngestJobQueue) ingestors.IngestionService {
	return &ingestJobProducer{
		queue: queue,
		now:   time.Now,
	}
}

func (producer *ingestJobProducer) IngestFile(ctx context.Context, path string) (*models.IngestResult, error) {
	job := ingestJob{
		ctx: ctx,
		event: events.IngestJobEvent{
			JobID:       ulid.NewULID(),
			LogPath:     path,
			RequestedAt: producer.now().UTC(),
		},
		reply: make(chan ingestOutcome, 1),
	}

	if err := producer.queue.Publish(ctx, job.event.PartitionKey(), job); err != nil {
		return nil, err
	}
	metricIngestJobPublishedTotal.WithLabelValues(streamIngestJob).Inc()

	select {
	case outcome := <-job.reply:
		return outcome.result, outcome.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
