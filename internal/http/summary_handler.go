package http

import (
	"net/http"
	"strconv"

	"code-time/internal/aggregators"
	"code-time/internal/reports"
)

type summaryHandler struct {
	aggregationService   aggregators.AggregationService
	defaultWindowSeconds int64
}

func NewSummaryHandler(aggregationService aggregators.AggregationService, defaultWindowSeconds int64) AppHttpHandler {
	return &summaryHandler{
		aggregationService:   aggregationService,
		defaultWindowSeconds: defaultWindowSeconds,
	}
}

// Handle processes GET /summary?windowSeconds=N. The window defaults to the configured one.
func (h *summaryHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	windowSeconds := h.defaultWindowSeconds
	if raw := windowSecondsParam(r); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return errInvalidWindowSeconds(raw, err)
		}
		windowSeconds = parsed
	}

	summary, err := h.aggregationService.Summarize(r.Context(), windowSeconds)
	if err != nil {
		return err
	}

	readable, err := reports.NewReadableSummary(summary)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, readable)
	return nil
}
