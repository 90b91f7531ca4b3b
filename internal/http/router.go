package http

import (
	"net/http"

	"code-time/internal/aggregators"
	"code-time/internal/ingestors"
	"code-time/internal/shared/loggers"
	"code-time/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

type RouterOptions struct {
	LogPath              string
	DefaultWindowSeconds int64
}

// NewRouter creates and configures the HTTP router.
func NewRouter(ingestionService ingestors.IngestionService, aggregationService aggregators.AggregationService, opts RouterOptions, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	summaryHandler := NewSummaryHandler(aggregationService, opts.DefaultWindowSeconds)
	ingestHandler := NewIngestHandler(ingestionService, opts.LogPath)

	router.Get("/summary", errorHandlingAdapter(summaryHandler))
	router.Post("/ingest", errorHandlingAdapter(ingestHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
