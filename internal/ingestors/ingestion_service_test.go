package ingestors_test

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"code-time/internal/ingestors"
	"code-time/internal/models"
	"code-time/internal/shared/filestorages"
	filestoragemocks "code-time/internal/shared/filestorages/mocks"
	"code-time/internal/shared/svcerrors"
	storemocks "code-time/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	rawEventStore *storemocks.MockRawEventStore
	intervalStore *storemocks.MockIntervalStore
}

func newServiceWithMocks(t *testing.T) (ingestors.IngestionService, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		rawEventStore: storemocks.NewMockRawEventStore(ctrl),
		intervalStore: storemocks.NewMockIntervalStore(ctrl),
	}
	service := ingestors.NewIngestionService(ingestors.NewEventLogParser(), m.rawEventStore, m.intervalStore, nil)
	return service, m
}

func writeEventLog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".time")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// replay feeds events to the scan callback the way a store would.
func replay(events ...models.RawEvent) func(context.Context, func(*models.RawEvent) error) error {
	return func(_ context.Context, fn func(*models.RawEvent) error) error {
		for i := range events {
			if err := fn(&events[i]); err != nil {
				return err
			}
		}
		return nil
	}
}

func requireServiceError(t *testing.T, err error, code string) *svcerrors.ServiceError {
	t.Helper()

	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, code, svcErr.Code)
	return svcErr
}

func TestIngestFile_Success(t *testing.T) {
	t.Parallel()

	service, m := newServiceWithMocks(t)
	ctx := context.Background()
	path := writeEventLog(t, "enter 1000 \"a.txt\"\nleave 5000 \"a.txt\"\n")

	enter := models.RawEvent{Kind: models.EventEnter, Timestamp: 1000, File: "a.txt"}
	leave := models.RawEvent{Kind: models.EventLeave, Timestamp: 5000, File: "a.txt"}

	gomock.InOrder(
		m.rawEventStore.EXPECT().InsertRawEvent(gomock.Any(), &enter).Return(nil),
		m.rawEventStore.EXPECT().InsertRawEvent(gomock.Any(), &leave).Return(nil),
		m.rawEventStore.EXPECT().ScanRawEventsByTimestamp(gomock.Any(), gomock.Any()).DoAndReturn(replay(enter, leave)),
		m.intervalStore.EXPECT().InsertInterval(gomock.Any(), &models.Interval{Begin: 1000, Duration: 4000, File: "a.txt"}).Return(nil),
		m.rawEventStore.EXPECT().DeleteRawEvents(gomock.Any()).Return(nil),
	)

	result, err := service.IngestFile(ctx, path)
	require.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 2, result.EventCount)
	assert.Equal(t, 1, result.IntervalCount)
	assert.Empty(t, result.ArchiveKey)

	_, err = os.Stat(path)
	assert.ErrorIs(t, err, fs.ErrNotExist, "event log should be consumed")
}

func TestIngestFile_EmptyLog(t *testing.T) {
	t.Parallel()

	service, m := newServiceWithMocks(t)
	path := writeEventLog(t, "")

	m.rawEventStore.EXPECT().ScanRawEventsByTimestamp(gomock.Any(), gomock.Any()).DoAndReturn(replay())
	m.rawEventStore.EXPECT().DeleteRawEvents(gomock.Any()).Return(nil)

	result, err := service.IngestFile(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, result.EventCount)
	assert.Zero(t, result.IntervalCount)
}

func TestIngestFile_ErrReadFailed_MissingFile(t *testing.T) {
	t.Parallel()

	service, _ := newServiceWithMocks(t)

	result, err := service.IngestFile(context.Background(), filepath.Join(t.TempDir(), "missing"))
	assert.Nil(t, result)
	svcErr := requireServiceError(t, err, "ING_1000")
	assert.True(t, svcErr.IsIOError())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestIngestFile_ErrTimestampInvalid_SourceAlreadyRemoved(t *testing.T) {
	t.Parallel()

	service, m := newServiceWithMocks(t)
	path := writeEventLog(t, "enter 1000 \"a.txt\"\nleave 5000 \"a.txt\"\nenter 99999999999999999999 \"b.txt\"\n")

	// Lines ahead of the bad timestamp are staged; no pairing and no cleanup follow.
	gomock.InOrder(
		m.rawEventStore.EXPECT().InsertRawEvent(gomock.Any(), &models.RawEvent{Kind: models.EventEnter, Timestamp: 1000, File: "a.txt"}).Return(nil),
		m.rawEventStore.EXPECT().InsertRawEvent(gomock.Any(), &models.RawEvent{Kind: models.EventLeave, Timestamp: 5000, File: "a.txt"}).Return(nil),
	)

	_, err := service.IngestFile(context.Background(), path)
	requireServiceError(t, err, "ING_2000")

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, fs.ErrNotExist)
}

func TestIngestFile_StoreFailures(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")
	enter := models.RawEvent{Kind: models.EventEnter, Timestamp: 1000, File: "a.txt"}
	leave := models.RawEvent{Kind: models.EventLeave, Timestamp: 5000, File: "a.txt"}

	tests := []struct {
		name         string
		setup        func(m serviceMocks)
		expectedCode string
	}{
		{
			name: "insert raw event fails",
			setup: func(m serviceMocks) {
				m.rawEventStore.EXPECT().InsertRawEvent(gomock.Any(), gomock.Any()).Return(storeErr)
			},
			expectedCode: "ING_9000",
		},
		{
			name: "scan fails",
			setup: func(m serviceMocks) {
				m.rawEventStore.EXPECT().InsertRawEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				m.rawEventStore.EXPECT().ScanRawEventsByTimestamp(gomock.Any(), gomock.Any()).Return(storeErr)
			},
			expectedCode: "ING_9001",
		},
		{
			name: "insert interval fails",
			setup: func(m serviceMocks) {
				m.rawEventStore.EXPECT().InsertRawEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				m.rawEventStore.EXPECT().ScanRawEventsByTimestamp(gomock.Any(), gomock.Any()).DoAndReturn(replay(enter, leave))
				m.intervalStore.EXPECT().InsertInterval(gomock.Any(), gomock.Any()).Return(storeErr)
			},
			expectedCode: "ING_9002",
		},
		{
			name: "delete raw events fails",
			setup: func(m serviceMocks) {
				m.rawEventStore.EXPECT().InsertRawEvent(gomock.Any(), gomock.Any()).Return(nil).Times(2)
				m.rawEventStore.EXPECT().ScanRawEventsByTimestamp(gomock.Any(), gomock.Any()).DoAndReturn(replay(enter, leave))
				m.intervalStore.EXPECT().InsertInterval(gomock.Any(), gomock.Any()).Return(nil)
				m.rawEventStore.EXPECT().DeleteRawEvents(gomock.Any()).Return(storeErr)
			},
			expectedCode: "ING_9003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, m := newServiceWithMocks(t)
			tt.setup(m)
			path := writeEventLog(t, "enter 1000 \"a.txt\"\nleave 5000 \"a.txt\"\n")

			result, err := service.IngestFile(context.Background(), path)
			assert.Nil(t, result)
			svcErr := requireServiceError(t, err, tt.expectedCode)
			assert.True(t, svcErr.IsStoreError())
			assert.ErrorIs(t, err, storeErr)
		})
	}
}

func TestIngestFile_ErrUnknownEventKind_KeepsRawEvents(t *testing.T) {
	t.Parallel()

	service, m := newServiceWithMocks(t)
	path := writeEventLog(t, "enter 1000 \"a.txt\"\nfocus 2000 \"a.txt\"\nleave 5000 \"a.txt\"\n")

	enter := models.RawEvent{Kind: models.EventEnter, Timestamp: 1000, File: "a.txt"}
	focus := models.RawEvent{Kind: "focus", Timestamp: 2000, File: "a.txt"}
	leave := models.RawEvent{Kind: models.EventLeave, Timestamp: 5000, File: "a.txt"}

	m.rawEventStore.EXPECT().InsertRawEvent(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	m.rawEventStore.EXPECT().ScanRawEventsByTimestamp(gomock.Any(), gomock.Any()).DoAndReturn(replay(enter, focus, leave))
	// No InsertInterval and no DeleteRawEvents: the run stops at the unknown kind.

	_, err := service.IngestFile(context.Background(), path)
	svcErr := requireServiceError(t, err, "ING_2001")
	assert.True(t, svcErr.IsParseError())
}

func TestIngestFile_ArchivesBeforeRemoving(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	rawEventStore := storemocks.NewMockRawEventStore(ctrl)
	intervalStore := storemocks.NewMockIntervalStore(ctrl)
	archive := filestoragemocks.NewMockFileStorage(ctrl)
	service := ingestors.NewIngestionService(ingestors.NewEventLogParser(), rawEventStore, intervalStore, archive)

	content := "leave 1000 \"a.txt\"\n"
	path := writeEventLog(t, content)

	archive.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader) (*filestorages.PutResult, error) {
			assert.True(t, strings.HasPrefix(key, "consumed/"), "unexpected key %q", key)
			assert.True(t, strings.HasSuffix(key, ".log"), "unexpected key %q", key)

			_, err := os.Stat(path)
			assert.NoError(t, err, "source should still exist while archiving")

			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, content, string(data))
			return &filestorages.PutResult{FileKey: key, Size: int64(len(data))}, nil
		})
	rawEventStore.EXPECT().InsertRawEvent(gomock.Any(), gomock.Any()).Return(nil)
	rawEventStore.EXPECT().ScanRawEventsByTimestamp(gomock.Any(), gomock.Any()).
		DoAndReturn(replay(models.RawEvent{Kind: models.EventLeave, Timestamp: 1000, File: "a.txt"}))
	rawEventStore.EXPECT().DeleteRawEvents(gomock.Any()).Return(nil)

	result, err := service.IngestFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "consumed/"+result.RunID+".log", result.ArchiveKey)
	assert.Zero(t, result.IntervalCount)
}

func TestIngestFile_ErrArchiveFailed_SourceKept(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	archive := filestoragemocks.NewMockFileStorage(ctrl)
	service := ingestors.NewIngestionService(
		ingestors.NewEventLogParser(),
		storemocks.NewMockRawEventStore(ctrl),
		storemocks.NewMockIntervalStore(ctrl),
		archive,
	)

	path := writeEventLog(t, "enter 1000 \"a.txt\"\n")
	archive.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, filestorages.ErrFileAlreadyExists)

	_, err := service.IngestFile(context.Background(), path)
	svcErr := requireServiceError(t, err, "ING_1002")
	assert.True(t, svcErr.IsIOError())
	assert.ErrorIs(t, err, filestorages.ErrFileAlreadyExists)

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "source should be kept when archiving fails")
}
