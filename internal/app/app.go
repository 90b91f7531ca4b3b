package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"time"

	"code-time/internal/aggregators"
	internalhttp "code-time/internal/http"
	"code-time/internal/ingestors"
	"code-time/internal/reports"
	"code-time/internal/shared/configs"
	"code-time/internal/shared/filestorages"
	"code-time/internal/shared/loggers"
	"code-time/internal/shared/svcerrors"
	"code-time/internal/stores"
	"code-time/internal/streams"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	store     stores.TimeStore
	server    *http.Server

	ingestionService   ingestors.IngestionService
	aggregationService aggregators.AggregationService
	ingestJobConsumer  streams.IngestJobConsumer
}

// ReportOptions controls a single report run.
type ReportOptions struct {
	Format        string // reports.FormatText or reports.FormatJSON
	WindowSeconds int64
}

// New creates and initializes a new App instance. The store connection is opened here,
// so a bad store configuration fails before any event log is touched.
func New(ctx context.Context, config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "code-time").
		Logger()

	// Initialize store
	store, err := stores.Open(ctx, config.Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", config.Store.Driver, err)
	}

	// Initialize archive of consumed event logs
	var archive filestorages.FileStorage
	if config.Ingestion.ArchiveDir != "" {
		archive, err = filestorages.NewFileStorage(config.Ingestion.ArchiveDir)
		if err != nil {
			_ = store.Close(ctx)
			return nil, fmt.Errorf("failed to initialize archive: %w", err)
		}
	}

	ingestionService := ingestors.NewIngestionService(ingestors.NewEventLogParser(), store, store, archive)
	aggregationService := aggregators.NewAggregationService(store, aggregators.SystemClock)

	// Initialize ingest job queue; HTTP ingests for one log path run one at a time
	ingestJobQueue := streams.NewIngestJobQueue()
	ingestJobLogger := appLogger.With().Str(loggers.FieldComponent, "ingest_worker").Logger()
	ingestJobConsumer := streams.NewIngestJobConsumer(ingestJobQueue, ingestionService, ingestJobLogger)
	ingestJobProducer := streams.NewIngestJobProducer(ingestJobQueue)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(ingestJobProducer, aggregationService, internalhttp.RouterOptions{
		LogPath:              config.Ingestion.LogPath,
		DefaultWindowSeconds: config.Report.WindowSeconds,
	}, httpLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:             config,
		appLogger:          appLogger,
		store:              store,
		server:             server,
		ingestionService:   ingestionService,
		aggregationService: aggregationService,
		ingestJobConsumer:  ingestJobConsumer,
	}, nil
}

// Report ingests the configured event log, then prints the summary to w.
// An ingestion failure is logged and does not stop the report; an aggregation or
// formatting failure does.
func (app *App) Report(ctx context.Context, w io.Writer, opts ReportOptions) error {
	ctx = app.appLogger.With().Str(loggers.FieldComponent, "report").Logger().WithContext(ctx)

	if _, err := app.ingestionService.IngestFile(ctx, app.config.Ingestion.LogPath); err != nil {
		app.logIngestionFailure(ctx, err)
	}

	summary, err := app.aggregationService.Summarize(ctx, opts.WindowSeconds)
	if err != nil {
		return err
	}

	return reports.NewPrinter(opts.Format).Print(w, summary)
}

func (app *App) logIngestionFailure(ctx context.Context, err error) {
	logger := loggers.Ctx(ctx)

	// Nothing recorded since the last run
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info().
			Str(loggers.FieldEventLogPath, app.config.Ingestion.LogPath).
			Msg("no event log to ingest")
		return
	}

	event := logger.Warn().Err(err)
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		event = event.Str(loggers.FieldErrorCode, svcErr.Code)
	}
	event.Msg("impossible to add time from event log")
}

// Start starts the ingest workers, then the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.ingestJobConsumer.Start(context.Background())

	app.appLogger.Info().
		Str(loggers.FieldStoreDriver, app.config.Store.Driver).
		Msgf("Starting code-time service on port %d (log_level=%s, event_log=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Ingestion.LogPath)

	err := app.server.ListenAndServe()
	// Shutdown stops the workers after a graceful close
	if !errors.Is(err, http.ErrServerClosed) {
		app.ingestJobConsumer.Stop()
	}
	return err
}

// Shutdown gracefully stops the HTTP server.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.ingestJobConsumer.Stop()
	app.appLogger.Info().Msg("Server stopped")
	return nil
}

// Close releases the store connection.
func (app *App) Close(ctx context.Context) error {
	if err := app.store.Close(ctx); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}

// Handler exposes the HTTP router, mainly for tests.
func (app *App) Handler() http.Handler {
	return app.server.Handler
}
