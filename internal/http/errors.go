package http

import (
	"fmt"

	"code-time/internal/shared/svcerrors"
)

const (
	codeInvalidWindowSeconds = "HTTP_1000"
)

func errInvalidWindowSeconds(raw string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidWindowSeconds, fmt.Sprintf("%s must be a non-negative integer, got %q", queryWindowSeconds, raw), cause)
}
