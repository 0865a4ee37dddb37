// Package source loads the day and population tables from their remote
// (or local) CSV/XLSX locations. Loading happens once at startup and any
// failure is fatal to the caller.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/okian/oxdash/internal/domain/model"
	"github.com/okian/oxdash/pkg/logger"
	"github.com/okian/oxdash/pkg/metrics"
)

// Table names used in logs and metrics.
const (
	TableDay        = "day"
	TablePopulation = "population"
)

const defaultTimeout = 30 * time.Second

// Loader fetches and parses both source tables.
type Loader struct {
	daySource        string
	populationSource string

	client  *http.Client
	timeout time.Duration
	logger  logger.Logger
}

// NewLoader creates a loader for the two source locations.
func NewLoader(daySource, populationSource string, opts ...Option) *Loader {
	l := &Loader{
		daySource:        daySource,
		populationSource: populationSource,
		client:           http.DefaultClient,
		timeout:          defaultTimeout,
		logger:           logger.Get().Named("source"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load fetches both tables concurrently. The first failure cancels the other
// fetch and is returned; there is no partial result.
func (l *Loader) Load(ctx context.Context) (model.DayTable, model.PopulationTable, error) {
	var (
		days model.DayTable
		pops model.PopulationTable
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := l.loadDays(gctx)
		days = t
		return err
	})
	g.Go(func() error {
		t, err := l.loadPopulations(gctx)
		pops = t
		return err
	})
	if err := g.Wait(); err != nil {
		return model.DayTable{}, model.PopulationTable{}, err
	}
	return days, pops, nil
}

func (l *Loader) loadDays(ctx context.Context) (model.DayTable, error) {
	start := time.Now()
	rows, err := l.rows(ctx, l.daySource)
	if err != nil {
		return model.DayTable{}, l.fail(ctx, TableDay, err)
	}
	recs, err := parseDays(l.daySource, rows)
	if err != nil {
		return model.DayTable{}, l.fail(ctx, TableDay, err)
	}
	tbl, err := model.NewDayTable(recs)
	if err != nil {
		return model.DayTable{}, l.fail(ctx, TableDay, fmt.Errorf("%w: %s: %w", ErrParse, l.daySource, err))
	}
	l.done(ctx, TableDay, l.daySource, tbl.Len(), start)
	return tbl, nil
}

func (l *Loader) loadPopulations(ctx context.Context) (model.PopulationTable, error) {
	start := time.Now()
	rows, err := l.rows(ctx, l.populationSource)
	if err != nil {
		return model.PopulationTable{}, l.fail(ctx, TablePopulation, err)
	}
	recs, err := parsePopulations(l.populationSource, rows)
	if err != nil {
		return model.PopulationTable{}, l.fail(ctx, TablePopulation, err)
	}
	tbl, err := model.NewPopulationTable(recs)
	if err != nil {
		return model.PopulationTable{}, l.fail(ctx, TablePopulation, fmt.Errorf("%w: %s: %w", ErrParse, l.populationSource, err))
	}
	l.done(ctx, TablePopulation, l.populationSource, tbl.Len(), start)
	return tbl, nil
}

func (l *Loader) rows(ctx context.Context, loc string) ([][]string, error) {
	body, err := l.fetch(ctx, loc)
	if err != nil {
		return nil, err
	}
	return readRows(loc, body)
}

func (l *Loader) fail(ctx context.Context, table string, err error) error {
	metrics.RecordDatasetLoadError(table, errorType(err))
	l.logger.Error(ctx, "source load failed", logger.String("table", table), logger.Error(err))
	return err
}

func (l *Loader) done(ctx context.Context, table, loc string, rows int, start time.Time) {
	elapsed := time.Since(start)
	metrics.RecordDatasetLoad(table, float64(elapsed.Nanoseconds())/1e6)
	metrics.UpdateDatasetRows(table, rows)
	l.logger.Info(ctx, "source loaded",
		logger.String("table", table),
		logger.String("location", loc),
		logger.Int("rows", rows),
		logger.Duration("elapsed", elapsed))
}

func errorType(err error) string {
	switch {
	case errors.Is(err, ErrFetch):
		return "fetch"
	case errors.Is(err, ErrMissingColumn):
		return "missing_column"
	default:
		return "parse"
	}
}
