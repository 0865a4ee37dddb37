package repository

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/okian/oxdash/internal/domain/ranking"
	"github.com/okian/oxdash/internal/domain/types"
	"github.com/okian/oxdash/pkg/metrics"
)

// SnapshotStore publishes a single snapshot through an atomic pointer, so a
// reader sees either nothing or the complete data context.
type SnapshotStore struct {
	snapshot atomic.Pointer[Snapshot]
}

var _ Store = (*SnapshotStore)(nil)

// NewSnapshotStore returns an empty store.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Publish installs s. A second publish is rejected.
func (s *SnapshotStore) Publish(snap *Snapshot) error {
	if snap == nil {
		return ErrNotLoaded
	}
	if !s.snapshot.CompareAndSwap(nil, snap) {
		return ErrAlreadyLoaded
	}
	metrics.UpdateDatasetRows("summary", snap.Summary.Len())
	metrics.UpdateDatasetLoadedUnix(float64(snap.LoadedAt.Unix()))
	return nil
}

// Snapshot returns the published snapshot.
func (s *SnapshotStore) Snapshot() (*Snapshot, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// Rank returns the precomputed ranks for countryCode (case-insensitive).
func (s *SnapshotStore) Rank(_ context.Context, countryCode string) (Entry, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return Entry{}, err
	}
	e, ok := snap.rankByCountry[strings.ToUpper(strings.TrimSpace(countryCode))]
	if !ok {
		metrics.RecordLookupFailure("country")
		return Entry{}, ErrNotFound
	}
	return e, nil
}

// TopN returns the n highest-mortality countries in scope.
func (s *SnapshotStore) TopN(_ context.Context, scope types.Scope, n int) ([]types.Entry, error) {
	if n < 1 {
		metrics.RecordErrorByComponent("repository", "invalid_limit")
		return nil, ErrInvalidLimit
	}
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return ranking.Top(snap.Summary, scope, n)
}

// Count returns the number of ranked countries, or zero before load.
func (s *SnapshotStore) Count(_ context.Context) int {
	snap := s.snapshot.Load()
	if snap == nil {
		return 0
	}
	return snap.Summary.Len()
}
