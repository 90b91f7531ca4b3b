package ingestors

import (
	"fmt"

	"code-time/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeReadFailed    = "ING_1000"
	codeRemoveFailed  = "ING_1001"
	codeArchiveFailed = "ING_1002"

	codeTimestampInvalid = "ING_2000"
	codeUnknownEventKind = "ING_2001"

	codeInsertRawEventFailed  = "ING_9000"
	codeScanRawEventsFailed   = "ING_9001"
	codeInsertIntervalFailed  = "ING_9002"
	codeDeleteRawEventsFailed = "ING_9003"
)

func errReadFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeReadFailed, fmt.Sprintf("cannot read event log %q", path), cause)
}

func errRemoveFailed(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeRemoveFailed, fmt.Sprintf("cannot remove event log %q", path), cause)
}

func errArchiveFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeArchiveFailed, "cannot archive event log", cause)
}

// errTimestampInvalid returns an error for a matched line whose timestamp is not a 64-bit integer.
func errTimestampInvalid(raw string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeTimestampInvalid, fmt.Sprintf("invalid timestamp %q", raw), cause)
}

func errUnknownEventKind(kind string) *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeUnknownEventKind, fmt.Sprintf("unknown event kind %q", kind), nil)
}

func errInsertRawEventFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewStoreError(codeInsertRawEventFailed, fmt.Errorf("insertRawEventFailed: %w", cause))
}

func errScanRawEventsFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewStoreError(codeScanRawEventsFailed, fmt.Errorf("scanRawEventsFailed: %w", cause))
}

func errInsertIntervalFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewStoreError(codeInsertIntervalFailed, fmt.Errorf("insertIntervalFailed: %w", cause))
}

func errDeleteRawEventsFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewStoreError(codeDeleteRawEventsFailed, fmt.Errorf("deleteRawEventsFailed: %w", cause))
}
