// Package service provides the dashboard service that implements the
// dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	repository "github.com/okian/oxdash/internal/adapters/repository"
	"github.com/okian/oxdash/internal/domain/chart"
	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/internal/domain/ranking"
	"github.com/okian/oxdash/internal/domain/selection"
	"github.com/okian/oxdash/internal/domain/summary"
	"github.com/okian/oxdash/internal/domain/types"
	"github.com/okian/oxdash/pkg/logger"
	"github.com/okian/oxdash/pkg/metrics"
)

// Loader fetches the two base tables.
type Loader interface {
	Load(ctx context.Context) (model.DayTable, model.PopulationTable, error)
}

// Thumbnailer renders a trend figure to PNG.
type Thumbnailer interface {
	Thumbnail(ctx context.Context, fig chart.Figure) ([]byte, error)
}

// MapView is the main chart and its captions.
type MapView struct {
	Title    string           `json:"title"`
	Help     string           `json:"help"`
	Spec     selection.Result `json:"spec"`
	RowCount int              `json:"row_count"`
	Figure   chart.Figure     `json:"figure"`
}

// TrendView is the thumbnail chart and its caption.
type TrendView struct {
	Title  string        `json:"title"`
	Codes  []string      `json:"codes"`
	Top    []types.Entry `json:"top"`
	Figure chart.Figure  `json:"figure"`
}

// Service owns the data context and answers chart requests from it.
type Service struct {
	mu sync.RWMutex

	loader   Loader
	store    repository.Store
	renderer Thumbnailer

	reference time.Time
	trendSize int
	style     chart.Style

	started bool
	logger  logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store:     repository.NewSnapshotStore(),
		reference: time.Date(2020, 5, 15, 0, 0, 0, 0, time.UTC),
		trendSize: ranking.DefaultN,
		style:     chart.DefaultStyle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads both tables, derives the summary and publishes the data
// context. The load happens at most once; a failure leaves the service
// unstarted and should abort the process.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	// A restart after Stop reuses the published context.
	if _, err := s.store.Snapshot(); err == nil {
		s.started = true
		return nil
	}
	if s.loader == nil {
		return ErrNoLoader
	}

	s.logger.Info(ctx, "loading dataset...", logger.String("reference", s.reference.Format(model.DateLayout)))
	start := time.Now()

	days, pops, err := s.loader.Load(ctx)
	if err != nil {
		metrics.RecordErrorByComponent("service", "load")
		return err
	}
	sum := summary.Build(days, pops, s.reference)
	if sum.Len() == 0 {
		s.logger.Warn(ctx, "summary is empty at reference date; rankings will be empty",
			logger.String("reference", s.reference.Format(model.DateLayout)))
	}

	snap := repository.NewSnapshot(days, pops, sum, s.reference)
	if err := s.store.Publish(snap); err != nil {
		return err
	}

	s.started = true
	s.logger.Info(ctx, "dashboard service started",
		logger.String("version", snap.Version),
		logger.Int("dayRows", days.Len()),
		logger.Int("populationRows", pops.Len()),
		logger.Int("summaryRows", sum.Len()),
		logger.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Stop marks the service stopped. The published data stays in memory.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "dashboard service stopped")
}

// Title returns the main chart heading.
func (s *Service) Title(ctx context.Context, scope types.Scope, metric types.Metric) (string, error) {
	title, err := types.Title(scope, metric)
	if err != nil {
		s.lookupFailed(ctx, err)
		return "", err
	}
	return title, nil
}

// Help returns the context help text for metric.
func (s *Service) Help(ctx context.Context, metric types.Metric) (string, error) {
	help, err := metric.Help()
	if err != nil {
		s.lookupFailed(ctx, err)
		return "", err
	}
	return help, nil
}

// MapFigure resolves the selection and assembles the animated map.
func (s *Service) MapFigure(ctx context.Context, scope types.Scope, metric types.Metric) (MapView, error) {
	start := time.Now()
	snap, err := s.store.Snapshot()
	if err != nil {
		return MapView{}, err
	}

	res, err := selection.Resolve(scope, metric, snap.Days)
	if err != nil {
		s.lookupFailed(ctx, err)
		return MapView{}, err
	}
	fig, err := chart.Map(res, s.style)
	if err != nil {
		metrics.RecordErrorByComponent("chart", "assemble")
		return MapView{}, err
	}
	title, err := s.Title(ctx, scope, metric)
	if err != nil {
		return MapView{}, err
	}
	help, err := s.Help(ctx, metric)
	if err != nil {
		return MapView{}, err
	}

	if len(res.Rows) == 0 {
		metrics.RecordEmptyFigure(string(res.Kind))
	}
	metrics.RecordFigureBuild(string(res.Kind), msSince(start))
	return MapView{Title: title, Help: help, Spec: res, RowCount: len(res.Rows), Figure: fig}, nil
}

// TrendFigure ranks the scope by mortality and assembles the line chart of
// the top countries over every date.
func (s *Service) TrendFigure(ctx context.Context, scope types.Scope, metric types.Metric) (TrendView, error) {
	start := time.Now()
	snap, err := s.store.Snapshot()
	if err != nil {
		return TrendView{}, err
	}

	title, err := types.TrendTitle(metric)
	if err != nil {
		s.lookupFailed(ctx, err)
		return TrendView{}, err
	}
	top, err := ranking.Top(snap.Summary, scope, s.trendSize)
	if err != nil {
		return TrendView{}, err
	}
	codes := ranking.Codes(top)
	fig, err := chart.Trend(ranking.Expand(codes, snap.Days), codes, metric, s.style)
	if err != nil {
		s.lookupFailed(ctx, err)
		return TrendView{}, err
	}

	kind := string(selection.KindLine)
	if len(codes) == 0 {
		metrics.RecordEmptyFigure(kind)
	}
	metrics.RecordFigureBuild(kind, msSince(start))
	return TrendView{Title: title, Codes: codes, Top: top, Figure: fig}, nil
}

// TrendPNG renders the trend thumbnail server-side.
func (s *Service) TrendPNG(ctx context.Context, scope types.Scope, metric types.Metric) ([]byte, error) {
	if s.renderer == nil {
		return nil, ErrNoRenderer
	}
	view, err := s.TrendFigure(ctx, scope, metric)
	if err != nil {
		return nil, err
	}
	return s.renderer.Thumbnail(ctx, view.Figure)
}

// TopN returns the n highest-mortality countries in scope.
func (s *Service) TopN(ctx context.Context, scope types.Scope, n int) ([]types.Entry, error) {
	return s.store.TopN(ctx, scope, n)
}

// Rank returns a country's world and continent mortality rank.
func (s *Service) Rank(ctx context.Context, countryCode string) (repository.Entry, error) {
	return s.store.Rank(ctx, countryCode)
}

// Summary describes the mortality distribution within scope.
func (s *Service) Summary(_ context.Context, scope types.Scope) (summary.Stats, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return summary.Stats{}, err
	}
	return summary.Describe(snap.Summary, scope)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":   s.started,
		"reference": s.reference.Format(model.DateLayout),
		"trendSize": s.trendSize,
	}
	if snap, err := s.store.Snapshot(); err == nil {
		stats["version"] = snap.Version
		stats["loadedAt"] = snap.LoadedAt.Format(time.RFC3339)
		stats["dayRows"] = snap.Days.Len()
		stats["populationRows"] = snap.Populations.Len()
		stats["summaryRows"] = snap.Summary.Len()
		stats["dates"] = len(snap.Days.Dates())
	}
	return stats
}

// lookupFailed records a static-table miss. These only happen when a caller
// bypasses the closed selection lists, so they are logged as errors.
func (s *Service) lookupFailed(ctx context.Context, err error) {
	var le *types.LookupError
	if !errors.As(err, &le) {
		return
	}
	kind := "metric"
	if errors.Is(err, types.ErrUnknownScope) {
		kind = "scope"
	}
	metrics.RecordLookupFailure(kind)
	s.log().Error(ctx, "lookup failed", logger.String("kind", kind), logger.String("key", le.Key))
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	l := s.logger
	s.mu.RUnlock()
	if l == nil {
		return logger.Get().Named("service")
	}
	return l
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Nanoseconds()) / 1e6
}
