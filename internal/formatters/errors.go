package formatters

import (
	"fmt"

	"code-time/internal/shared/svcerrors"
)

const (
	codeNegativeDuration = "FMT_1000"
)

// errNegativeDuration returns an error when a negative duration is passed to the formatter.
func errNegativeDuration(ms int64) *svcerrors.ServiceError {
	return svcerrors.NewFormatError(codeNegativeDuration, fmt.Sprintf("cannot format negative duration: %dms", ms), nil)
}
