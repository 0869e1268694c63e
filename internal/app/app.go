package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salesiq/internal/config"
	"salesiq/internal/exporter"
	"salesiq/internal/loader"
	"salesiq/internal/records"
	"salesiq/internal/services"
	transport "salesiq/internal/transport/http"
)

// Application holds the wired components of the analytics server
type Application struct {
	Config  *config.Config
	Logger  *slog.Logger
	Dataset *records.Dataset
	Server  *http.Server
}

// NewApplication loads configuration and the dataset and assembles the
// HTTP server. The dataset is read once here; everything after serves
// from memory.
func NewApplication(ctx context.Context) (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := config.NewLogger(cfg.Logging)
	slog.SetDefault(logger)

	ds, err := loadDataset(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	svc := services.NewAnalystServiceWithLogger(ds, logger)
	router := transport.NewRouter(cfg, logger, ds, svc)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Dataset: ds,
		Server:  server,
	}, nil
}

// loadDataset reads the records from the configured workbook, or from
// the CSV directory when no workbook is set
func loadDataset(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*records.Dataset, error) {
	l := loader.New(logger)
	if cfg.Dataset.Workbook != "" {
		return l.LoadWorkbook(ctx, cfg.Dataset.Workbook)
	}
	return l.LoadCSV(ctx, cfg.DataPaths())
}

// ExportSummary writes the analyst summary report to the reports
// directory
func (a *Application) ExportSummary(ctx context.Context) error {
	exp := exporter.NewSummaryExporter(a.Dataset,
		services.NewAnalystForDataset(a.Dataset),
		a.Config.Dataset.ReportsDir, a.Logger)
	return exp.Export(ctx)
}

// Start begins serving in the background
func (a *Application) Start() <-chan error {
	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("server listening",
			slog.String("addr", a.Server.Addr),
			slog.Int("merchants", a.Dataset.Merchants.Len()),
			slog.Int("invoices", a.Dataset.Invoices.Len()))
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

// Stop gracefully shuts the server down within the configured timeout
func (a *Application) Stop(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	a.Logger.InfoContext(ctx, "shutdown complete")
	return nil
}

// Run serves until interrupted, then shuts down gracefully
func (a *Application) Run() error {
	_, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	errCh := a.Start()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-sigCh:
		a.Logger.Info("received signal", slog.String("signal", sig.String()))
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second+a.Config.Server.ShutdownTimeout)
	defer stopCancel()
	return a.Stop(stopCtx)
}
