package http

import (
	"errors"
	"io/fs"
	"net/http"

	"code-time/internal/ingestors"
	"code-time/internal/shared/loggers"
)

type ingestHandler struct {
	ingestionService ingestors.IngestionService
	logPath          string
}

func NewIngestHandler(ingestionService ingestors.IngestionService, logPath string) AppHttpHandler {
	return &ingestHandler{
		ingestionService: ingestionService,
		logPath:          logPath,
	}
}

// Handle processes POST /ingest by consuming the configured event log. A missing log
// means nothing was recorded since the last run and answers 204.
func (h *ingestHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestFile(r.Context(), h.logPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			loggers.Ctx(r.Context()).Debug().Str(loggers.FieldEventLogPath, h.logPath).Msg("no event log to ingest")
			w.WriteHeader(http.StatusNoContent)
			return nil
		}
		return err
	}

	writeJSON(w, http.StatusOK, result)
	return nil
}
