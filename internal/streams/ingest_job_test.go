package streams

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	ingestormocks "code-time/internal/ingestors/mocks"
	"code-time/internal/models"
	"code-time/internal/shared/loggers"
	"code-time/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testLogPath = "/home/dev/.time"

func startPipeline(t *testing.T, ingestionService *ingestormocks.MockIngestionService) *IngestJobQueue {
	t.Helper()

	queue := NewIngestJobQueue()
	consumer := NewIngestJobConsumer(queue, ingestionService, loggers.Nop())
	consumer.Start(context.Background())
	t.Cleanup(consumer.Stop)
	return queue
}

func TestIngestJobProducer_ReturnsWorkerResult(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := ingestormocks.NewMockIngestionService(ctrl)
	expected := &models.IngestResult{RunID: "01HZX3NDEKTSV4RRFFQ69G5FAV", EventCount: 2, IntervalCount: 1}
	ingestionService.EXPECT().IngestFile(gomock.Any(), testLogPath).Return(expected, nil)

	queue := startPipeline(t, ingestionService)

	result, err := NewIngestJobProducer(queue).IngestFile(context.Background(), testLogPath)
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestIngestJobProducer_PassesErrorThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := ingestormocks.NewMockIngestionService(ctrl)
	parseErr := svcerrors.NewParseError("ING_2001", "unknown event kind", nil)
	ingestionService.EXPECT().IngestFile(gomock.Any(), testLogPath).Return(nil, parseErr)

	queue := startPipeline(t, ingestionService)

	result, err := NewIngestJobProducer(queue).IngestFile(context.Background(), testLogPath)
	assert.Nil(t, result)
	assert.Same(t, parseErr, err)
}

func TestIngestJobConsumer_RecoversPanic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := ingestormocks.NewMockIngestionService(ctrl)
	gomock.InOrder(
		ingestionService.EXPECT().IngestFile(gomock.Any(), testLogPath).
			DoAndReturn(func(context.Context, string) (*models.IngestResult, error) {
				panic("boom")
			}),
		ingestionService.EXPECT().IngestFile(gomock.Any(), testLogPath).
			Return(&models.IngestResult{RunID: "01HZX3NDEKTSV4RRFFQ69G5FAW"}, nil),
	)

	queue := startPipeline(t, ingestionService)
	producer := NewIngestJobProducer(queue)

	_, err := producer.IngestFile(context.Background(), testLogPath)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "SYS_9000", svcErr.Code)

	// The lane survives the panic
	result, err := producer.IngestFile(context.Background(), testLogPath)
	require.NoError(t, err)
	assert.Equal(t, "01HZX3NDEKTSV4RRFFQ69G5FAW", result.RunID)
}

func TestIngestJobProducer_SerializesRunsOnSamePath(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	ingestionService := ingestormocks.NewMockIngestionService(ctrl)

	var running, maxRunning atomic.Int32
	ingestionService.EXPECT().IngestFile(gomock.Any(), testLogPath).
		DoAndReturn(func(context.Context, string) (*models.IngestResult, error) {
			n := running.Add(1)
			for {
				current := maxRunning.Load()
				if n <= current || maxRunning.CompareAndSwap(current, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			running.Add(-1)
			return &models.IngestResult{}, nil
		}).
		Times(8)

	queue := startPipeline(t, ingestionService)
	producer := NewIngestJobProducer(queue)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := producer.IngestFile(context.Background(), testLogPath)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxRunning.Load())
}

func TestIngestJobProducer_CanceledRequestSkipsIngestion(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	// No IngestFile call expected
	ingestionService := ingestormocks.NewMockIngestionService(ctrl)

	queue := NewIngestJobQueue()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewIngestJobProducer(queue).IngestFile(ctx, testLogPath)
	assert.True(t, errors.Is(err, context.Canceled))

	consumer := NewIngestJobConsumer(queue, ingestionService, loggers.Nop())
	consumer.Start(context.Background())
	time.Sleep(10 * time.Millisecond)
	consumer.Stop()
}

func TestIngestJobConsumer_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	consumer := NewIngestJobConsumer(NewIngestJobQueue(), ingestormocks.NewMockIngestionService(ctrl), loggers.Nop())
	consumer.Start(context.Background())

	consumer.Stop()
	consumer.Stop()
}
