package source

import (
	"net/http"
	"time"

	"github.com/okian/oxdash/pkg/logger"
)

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the client used for http(s) sources.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// WithTimeout bounds each individual source download.
func WithTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.timeout = d
		}
	}
}

// WithLogger sets the loader's logger.
func WithLogger(lg logger.Logger) Option {
	return func(l *Loader) {
		if lg != nil {
			l.logger = lg
		}
	}
}
