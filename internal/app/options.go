package service

import (
	"time"

	repository "github.com/okian/oxdash/internal/adapters/repository"
	"github.com/okian/oxdash/internal/domain/chart"
	"github.com/okian/oxdash/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLoader sets the source of the two base tables.
func WithLoader(l Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithStore replaces the snapshot store.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithRenderer sets the PNG thumbnail renderer.
func WithRenderer(r Thumbnailer) Option {
	return func(s *Service) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithReferenceDate sets the day mortality rates are computed at.
func WithReferenceDate(t time.Time) Option {
	return func(s *Service) {
		if !t.IsZero() {
			s.reference = t
		}
	}
}

// WithTrendSize sets how many countries the trend compares.
func WithTrendSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.trendSize = n
		}
	}
}

// WithStyle overrides the chart styling constants.
func WithStyle(st chart.Style) Option {
	return func(s *Service) {
		s.style = st
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
