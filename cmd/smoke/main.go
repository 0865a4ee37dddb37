package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/oxdash/internal/smoke"
)

// Default configuration constants.
const (
	defaultTopN        = 5
	defaultWorkers     = 4
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8050", "Base URL of the dashboard")
		topN      = flag.Int("top", defaultTopN, "Countries expected in the trend")
		workers   = flag.Int("workers", defaultWorkers, "Number of concurrent workers")
		timeout   = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFormat = flag.String("log-format", "text", "Log output format: text or json")
		verbose   = flag.Bool("verbose", false, "Log every passing combination")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	if err := smoke.SetupLogging(*logFormat, *verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	cfg := &smoke.Config{
		BaseURL: *baseURL,
		TopN:    *topN,
		Workers: *workers,
		Timeout: *timeout,
		Verbose: *verbose,
	}

	if _, err := smoke.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Smoke check failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
