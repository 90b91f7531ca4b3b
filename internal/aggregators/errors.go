package aggregators

import (
	"fmt"

	"code-time/internal/shared/svcerrors"
)

const (
	codeNegativeWindow = "AGG_1000"

	codeTotalTimeFailed     = "AGG_9000"
	codeWindowedTotalFailed = "AGG_9001"
	codeDailyAverageFailed  = "AGG_9002"
)

func errNegativeWindow(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeNegativeWindow, "window seconds must not be negative", cause)
}

// errTotalTimeFailed returns an error when the total time query fails.
func errTotalTimeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewStoreError(codeTotalTimeFailed, fmt.Errorf("totalTimeFailed: %w", cause))
}

func errWindowedTotalFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewStoreError(codeWindowedTotalFailed, fmt.Errorf("windowedTotalFailed: %w", cause))
}

func errDailyAverageFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewStoreError(codeDailyAverageFailed, fmt.Errorf("dailyAverageFailed: %w", cause))
}
