package ingestors

import (
	"context"
	"fmt"
	"os"
	"strings"

	"code-time/internal/models"
	"code-time/internal/shared/filestorages"
	"code-time/internal/shared/loggers"
	"code-time/internal/shared/metrics"
	"code-time/internal/shared/svcerrors"
	"code-time/internal/shared/ulid"
	"code-time/internal/stores"
)

const archiveDir = "consumed"

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestFile consumes the event log at path: the file is removed before its content is
	// parsed, matched enter/leave pairs are stored as intervals, and the staged raw events
	// are cleared once pairing completes.
	IngestFile(ctx context.Context, path string) (*models.IngestResult, error)
}

type ingestionService struct {
	parser        EventLogParser
	rawEventStore stores.RawEventStore
	intervalStore stores.IntervalStore
	archive       filestorages.FileStorage
}

// NewIngestionService creates an IngestionService. archive may be nil, in which case
// consumed logs are not kept.
func NewIngestionService(parser EventLogParser, rawEventStore stores.RawEventStore, intervalStore stores.IntervalStore, archive filestorages.FileStorage) IngestionService {
	return &ingestionService{
		parser:        parser,
		rawEventStore: rawEventStore,
		intervalStore: intervalStore,
		archive:       archive,
	}
}

func (s *ingestionService) IngestFile(ctx context.Context, path string) (*models.IngestResult, error) {
	runID := ulid.NewULID()
	logger := loggers.Ctx(ctx).With().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldEventLogPath, path).
		Logger()
	ctx = logger.WithContext(ctx)

	result, err := s.ingestFile(ctx, runID, path)
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		metricIngestionRunsTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricIngestionRunsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Int(loggers.FieldEventCount, result.EventCount).
		Int(loggers.FieldIntervalCount, result.IntervalCount).
		Msg("ingestion completed")
	return result, nil
}

func (s *ingestionService) ingestFile(ctx context.Context, runID string, path string) (*models.IngestResult, error) {
	logger := loggers.Ctx(ctx)
	result := &models.IngestResult{RunID: runID}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errReadFailed(path, err)
	}
	content := string(data)

	if s.archive != nil {
		key := fmt.Sprintf("%s/%s.log", archiveDir, runID)
		if _, err := s.archive.Put(ctx, key, strings.NewReader(content)); err != nil {
			return nil, errArchiveFailed(err)
		}
		result.ArchiveKey = key
		logger.Debug().Msgf("archived event log as %s", key)
	}

	// The source goes before parsing: a run that fails later does not see these lines again.
	if err := os.Remove(path); err != nil {
		return nil, errRemoveFailed(path, err)
	}

	// Each event is staged before the next line is parsed; whatever was staged ahead of a
	// failure stays in the store and is paired by the next run.
	err = s.parser.Parse(content, func(event *models.RawEvent) error {
		if err := s.rawEventStore.InsertRawEvent(ctx, event); err != nil {
			return errInsertRawEventFailed(err)
		}
		result.EventCount++
		metricRawEventsTotal.WithLabelValues().Inc()
		return nil
	})
	if err != nil {
		logger.Debug().Msgf("staged %d raw events before failing", result.EventCount)
		return nil, err
	}
	logger.Debug().Msgf("staged %d raw events", result.EventCount)

	intervalCount, err := s.pairRawEvents(ctx)
	if err != nil {
		return nil, err
	}
	result.IntervalCount = intervalCount

	if err := s.rawEventStore.DeleteRawEvents(ctx); err != nil {
		return nil, errDeleteRawEventsFailed(err)
	}

	return result, nil
}

// pairRawEvents replays every staged event in timestamp order through Reduce and stores
// each emitted interval as soon as it is produced.
func (s *ingestionService) pairRawEvents(ctx context.Context) (int, error) {
	var state PairingState
	count := 0

	err := s.rawEventStore.ScanRawEventsByTimestamp(ctx, func(event *models.RawEvent) error {
		next, interval, err := Reduce(state, event)
		if err != nil {
			return err
		}
		state = next

		if interval == nil {
			return nil
		}
		if err := s.intervalStore.InsertInterval(ctx, interval); err != nil {
			return errInsertIntervalFailed(err)
		}
		count++
		metricIntervalsTotal.WithLabelValues().Inc()
		return nil
	})
	if err != nil {
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			return count, svcErr
		}
		return count, errScanRawEventsFailed(err)
	}
	return count, nil
}
