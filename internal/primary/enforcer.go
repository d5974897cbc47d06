// Package primary enforces the single-primary invariant over owned
// collections.
package primary

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brettericmartin/tee-club-engine/internal/entities"
	"github.com/brettericmartin/tee-club-engine/internal/metrics"
	"github.com/brettericmartin/tee-club-engine/internal/storage"
)

var log = logrus.WithField("package", "primary")

// Config ...
type Config struct {
	SweepInterval time.Duration
}

// Enforcer guarantees exactly one primary item per non-empty
// (owner, collection).
type Enforcer struct {
	s   storage.Storage
	cfg Config
}

// New creates new instance of Enforcer.
func New(s storage.Storage, cfg Config) *Enforcer {
	return &Enforcer{s: s, cfg: cfg}
}

// Enforce repairs the primary designation for one (owner, collection) pair in
// a single transaction serialized by the per-owner lock. It reports whether a
// repair was made and is idempotent.
func (e *Enforcer) Enforce(ctx context.Context, owner, collection string) (bool, error) {
	var repaired bool

	err := e.s.InTx(ctx, func(s storage.Storage) error {
		if err := s.LockOwner(ctx, owner, collection); err != nil {
			return err
		}

		items, err := s.ListCollectionItems(ctx, owner, collection)
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		if len(items) == 0 {
			return nil
		}

		var primaries []*entities.CollectionItem
		for _, v := range items {
			if v.IsPrimary {
				primaries = append(primaries, v)
			}
		}

		if len(primaries) == 1 {
			return nil
		}

		// items come ordered by created_at then id, so the first candidate is
		// the deterministic winner
		candidates := items
		if len(primaries) > 1 {
			candidates = primaries
		}
		keeper := candidates[0]

		if len(candidates) > 1 && candidates[1].CreatedAt.Equal(keeper.CreatedAt) {
			log.WithField("owner", owner).WithField("collection", collection).
				Warn("ambiguous created_at tie, falling back to lowest id")
		}

		changed, err := s.SetPrimaryExclusive(ctx, owner, collection, keeper.ID)
		if err != nil {
			return fmt.Errorf("failed to set primary: %w", err)
		}

		if changed > 0 {
			repaired = true
			metrics.PrimaryRepairs.Inc()
			log.WithField("owner", owner).
				WithField("collection", collection).
				WithField("item_id", keeper.ID).
				Info("primary designation repaired")
		}

		return nil
	})
	if err != nil {
		return false, err
	}

	return repaired, nil
}

// Sweep repairs all known collections. Per-owner failures are logged and do
// not abort the sweep; each owner is repaired in its own transaction, so a
// cancelled sweep never leaves a collection half-repaired.
func (e *Enforcer) Sweep(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("primary").Observe(time.Since(start).Seconds())
	}()

	keys, err := e.s.ListCollections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	for _, k := range keys {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if _, err := e.Enforce(ctx, k.Owner, k.Collection); err != nil {
			log.WithField("owner", k.Owner).
				WithField("collection", k.Collection).
				WithError(err).Error("failed to enforce primary")
		}
	}

	return nil
}

// Run repairs collections periodically until the context is cancelled.
func (e *Enforcer) Run(ctx context.Context) error {
	t := time.NewTicker(e.cfg.SweepInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := e.Sweep(ctx); err != nil {
				log.WithError(err).Error("primary sweep failed")
			}
		}
	}
}
