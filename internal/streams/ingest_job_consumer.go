package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"code-time/internal/ingestors"
	"code-time/internal/shared/loggers"
	"code-time/internal/shared/metrics"
	"code-time/internal/shared/svcerrors"
	"code-time/internal/shared/ulid"
)

type IngestJobConsumer interface {
	Start(ctx context.Context)
	Stop()
}

type ingestJobConsumer struct {
	queue            *IngestJobQueue
	ingestionService ingestors.IngestionService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewIngestJobConsumer(queue *IngestJobQueue, ingestionService ingestors.IngestionService, logger loggers.Logger) IngestJobConsumer {
	return &ingestJobConsumer{
		queue:            queue,
		ingestionService: ingestionService,
		stopCh:           make(chan struct{}),
		logger:           logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *ingestJobConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.partition(partitionIndex)
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Stop waits for workers to stop. Call it after the HTTP server has drained.
func (consumer *ingestJobConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *ingestJobConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan ingestJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case job := <-ch:
			outcome := consumer.consume(partitionIndex, job)
			job.reply <- outcome

			errorCode := metrics.ValueNoError
			if outcome.err != nil {
				svcErr, ok := svcerrors.AsServiceError(outcome.err)
				if !ok {
					svcErr = svcerrors.NewInternalErrorUndefined(outcome.err)
				}
				errorCode = svcErr.Code
			}
			metricIngestJobConsumedTotal.WithLabelValues(streamIngestJob, errorCode).Inc()
		}
	}
}

// consume runs one job, turning a panic into a SYS_9000 outcome so the lane keeps going.
func (consumer *ingestJobConsumer) consume(partitionIndex int, job ingestJob) (outcome ingestOutcome) {
	ctx := consumer.logger.With().
		Str(loggers.FieldPartitionID, strconv.Itoa(partitionIndex)).
		Str(loggers.FieldJobID, job.event.JobID).
		Logger().WithContext(job.ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("ingest job panic recovered")

			panicErr, ok := r.(error)
			if !ok {
				panicErr = fmt.Errorf("%v", r)
			}
			outcome = ingestOutcome{err: svcerrors.NewInternalErrorPanic(panicErr)}
		}
	}()

	if requestedAt, err := ulid.Timestamp(job.event.JobID); err == nil {
		metricIngestJobWaitSeconds.WithLabelValues(streamIngestJob).Observe(time.Since(requestedAt).Seconds())
	}

	// The requester already gave up
	if err := job.ctx.Err(); err != nil {
		loggers.Ctx(ctx).Debug().Str(loggers.FieldEventLogPath, job.event.LogPath).Msg("skipping abandoned ingest job")
		return ingestOutcome{err: err}
	}

	result, err := consumer.ingestionService.IngestFile(ctx, job.event.LogPath)
	return ingestOutcome{result: result, err: err}
}
