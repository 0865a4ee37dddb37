package smoke

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/okian/oxdash/pkg/logger"
)

// ErrChecksFailed is returned when at least one combo failed.
var ErrChecksFailed = errors.New("smoke checks failed")

// Run checks every scope and metric combination against a running
// dashboard.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.TopN < 1 {
		cfg.TopN = defaultTrendCountries
	}
	log := logger.Get().Named("smoke")

	log.Info(ctx, "starting dashboard smoke check",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("workers", cfg.Workers),
		logger.String("timeout", cfg.Timeout.String()))

	client := newHTTPClient(cfg.BaseURL, cfg.Timeout)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Discover the selections
	var opts Options
	if err := client.GetJSON(ctx, "/api/options", nil, &opts); err != nil {
		return stats, fmt.Errorf("options: %w", err)
	}
	combos := make([]Combo, 0, len(opts.Scopes)*len(opts.Metrics))
	for _, s := range opts.Scopes {
		for _, m := range opts.Metrics {
			combos = append(combos, Combo{Scope: s, Metric: m})
		}
	}
	stats.Combos = len(combos)

	// Step 3: Check every combo concurrently
	results := checkAll(ctx, client, cfg, combos)

	// Step 4: Tally
	var failed []string
	for _, r := range results {
		name := r.Combo.Scope.Value + "/" + r.Combo.Metric.Value
		if r.Rows == 0 {
			stats.EmptyMaps++
		}
		if r.Passed() {
			stats.Passed++
			if cfg.Verbose {
				log.Info(ctx, "pass", logger.String("combo", name), logger.Int("rows", r.Rows), logger.Duration("elapsed", r.Duration))
			}
			continue
		}
		stats.Failed++
		failed = append(failed, name)
		for _, f := range r.Failures {
			log.Error(ctx, "fail", logger.String("combo", name), logger.String("reason", f))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if stats.Failed > 0 {
		return stats, fmt.Errorf("%w: %s", ErrChecksFailed, strings.Join(failed, ", "))
	}
	log.Info(ctx, "smoke check passed")
	return stats, nil
}

// checkAll fans combos out over a worker pool. Results keep combo order.
func checkAll(ctx context.Context, client *HTTPClient, cfg *Config, combos []Combo) []Result {
	results := make([]Result, len(combos))
	indexChan := make(chan int, cfg.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range indexChan {
				results[index] = checkCombo(ctx, client, cfg, combos[index])
			}
		}()
	}

	go func() {
		defer close(indexChan)
		for i := range combos {
			select {
			case <-ctx.Done():
				return
			case indexChan <- i:
			}
		}
	}()

	wg.Wait()

	for i := range results {
		if results[i].Combo == (Combo{}) {
			results[i] = Result{Combo: combos[i], Failures: []string{"not checked: " + errString(ctx.Err())}}
		}
	}
	return results
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient) error {
	resp, err := client.Get(ctx, "/healthz", nil)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	_, _ = readResponseBody(resp)

	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}
	return nil
}

// displayFinalStats logs the run statistics.
func displayFinalStats(ctx context.Context, stats *Stats) {
	var passRate float64
	if stats.Combos > 0 {
		passRate = float64(stats.Passed) / float64(stats.Combos) * PercentageMultiplier
	}
	logger.Get().Info(ctx, "final statistics",
		logger.Int("combos", stats.Combos),
		logger.Int("passed", stats.Passed),
		logger.Int("failed", stats.Failed),
		logger.Int("emptyMaps", stats.EmptyMaps),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("passRate", passRate))
}

func errString(err error) string {
	if err == nil {
		return "cancelled"
	}
	return err.Error()
}
