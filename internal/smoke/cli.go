package smoke

import (
	"fmt"
	"os"

	"github.com/okian/oxdash/pkg/logger"
)

// SetupLogging initialises the global logger in the given format.
func SetupLogging(format string, verbose bool) error {
	if err := logger.InitWithFormat(format, os.Stdout); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the smoke tool.
func ShowHelp() {
	os.Stdout.WriteString(`OxCGRT Dashboard Smoke Check
============================

Requests every scope and metric combination from a running dashboard and
checks titles, chart kinds, projections, bubble sizes and the top-five
ranking.

Usage:
  go run ./cmd/smoke [options]

Options:
  -url string
        Base URL of the dashboard (default "http://localhost:8050")
  -top int
        Countries expected in the trend (default 5)
  -workers int
        Number of concurrent workers (default 4)
  -timeout duration
        HTTP request timeout (default 30s)
  -log-format string
        Log output format: text or json (default "text")
  -verbose
        Log every passing combination
  -help
        Show this help message
`)
}
