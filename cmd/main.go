package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/oxdash/internal/adapters/http/api"
	"github.com/okian/oxdash/internal/adapters/http/site"
	"github.com/okian/oxdash/internal/adapters/http/swagger"
	"github.com/okian/oxdash/internal/adapters/render"
	"github.com/okian/oxdash/internal/adapters/source"
	app "github.com/okian/oxdash/internal/app"
	"github.com/okian/oxdash/internal/config"
	"github.com/okian/oxdash/pkg/logger"
	"github.com/okian/oxdash/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 30 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	systemMetricsInterval     = 10 * time.Second
	serviceMetricsInterval    = 30 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func main() {
	// Only the custom system metrics are exported.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	if err := logger.InitWithFormat(cfg.LogFormat, os.Stdout); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	loggerInstance := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		loggerInstance.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc, err := newService(cfg, loggerInstance)
	if err != nil {
		loggerInstance.Fatal(ctx, "invalid configuration", logger.Error(err))
	}

	// A dataset that cannot be loaded is fatal; nothing can be served.
	if err := svc.Start(ctx); err != nil {
		loggerInstance.Fatal(ctx, "failed to load dataset", logger.Error(err))
	}
	defer svc.Stop()

	go startSystemMetricsUpdater(ctx)
	go startServiceMetricsUpdater(ctx, svc)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, svc, cfg, loggerInstance),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		loggerInstance.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			loggerInstance.Error(ctx, "HTTP server failed", logger.Error(err))
			stop()
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	loggerInstance.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		loggerInstance.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	loggerInstance.Info(ctx, "server stopped")
}

// newService wires the dataset loader and thumbnail renderer into the
// dashboard service.
func newService(cfg *config.Config, l logger.Logger) (*app.Service, error) {
	reference, err := cfg.Reference()
	if err != nil {
		return nil, err
	}
	loader := source.NewLoader(cfg.DaySourceURL, cfg.PopulationSourceURL,
		source.WithTimeout(cfg.FetchTimeout()),
		source.WithLogger(l.Named("source")),
	)
	return app.New(
		app.WithLogger(l.Named("service")),
		app.WithLoader(loader),
		app.WithRenderer(render.NewRenderer(render.WithLogger(l.Named("render")))),
		app.WithReferenceDate(reference),
		app.WithTrendSize(cfg.TrendSize),
	), nil
}

// newHandler builds the router: API and docs first, the dashboard page as
// the catch-all.
func newHandler(ctx context.Context, svc *app.Service, cfg *config.Config, l logger.Logger) http.Handler {
	r := api.NewRouter(l.Named("http"))
	api.NewServer(svc, svc, cfg.MaxTopLimit).Register(ctx, r)
	swagger.Register(ctx, r)
	site.Register(ctx, r)
	return r
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// startServiceMetricsUpdater periodically republishes the dataset gauges.
func startServiceMetricsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateServiceMetrics(svc)
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)

	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}

// updateServiceMetrics copies table sizes from the service stats into the
// dataset gauges.
func updateServiceMetrics(svc *app.Service) {
	stats := svc.GetStats()

	for stat, table := range map[string]string{
		"dayRows":        source.TableDay,
		"populationRows": source.TablePopulation,
		"summaryRows":    "summary",
	} {
		if n, ok := stats[stat].(int); ok {
			metrics.UpdateDatasetRows(table, n)
		}
	}
}
