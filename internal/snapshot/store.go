package snapshot

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"retailpulse/internal/metrics"
)

// ErrNotLoaded is returned by Current before the first successful Load.
var ErrNotLoaded = errors.New("no snapshot loaded")

// Store holds the snapshot being served. Load and Reload build a new
// snapshot fully in isolation and publish it in one atomic step, so
// in-flight readers never observe a partially-updated table set.
type Store struct {
	src    Source
	cfg    Config
	logger *slog.Logger

	current atomic.Pointer[Snapshot]
}

// NewStore creates a store over the given source and dataset names.
func NewStore(src Source, cfg Config, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{src: src, cfg: cfg, logger: logger}
}

// Load builds the initial snapshot. On failure the store stays unloaded and
// the system must not enter a serving-ready state.
func (s *Store) Load(ctx context.Context) error {
	return s.Reload(ctx)
}

// Reload builds a fresh snapshot and swaps it in atomically. On failure the
// previously served snapshot, if any, remains in place.
func (s *Store) Reload(ctx context.Context) error {
	snap, err := Build(ctx, s.src, s.cfg, s.logger)
	if err != nil {
		metrics.SnapshotLoads.WithLabelValues("error").Inc()
		return err
	}

	s.current.Store(snap)
	metrics.SnapshotLoads.WithLabelValues("ok").Inc()
	metrics.SnapshotLoadedAt.Set(float64(snap.LoadedAt.Unix()))

	s.logger.InfoContext(ctx, "snapshot published",
		slog.String("snapshot_id", snap.ID.String()))
	return nil
}

// Current returns the snapshot being served.
func (s *Store) Current() (*Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}
