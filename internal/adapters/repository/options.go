package repository

import "time"

// Option applies a configuration option to a Snapshot.
type Option func(*Snapshot)

// WithVersion overrides the generated snapshot version id.
func WithVersion(id string) Option {
	return func(s *Snapshot) {
		if id != "" {
			s.Version = id
		}
	}
}

// WithLoadedAt overrides the load timestamp.
func WithLoadedAt(t time.Time) Option {
	return func(s *Snapshot) {
		if !t.IsZero() {
			s.LoadedAt = t
		}
	}
}
