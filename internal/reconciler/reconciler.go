// Package reconciler keeps denormalized engagement counters consistent with
// the event log.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/brettericmartin/tee-club-engine/internal/entities"
	"github.com/brettericmartin/tee-club-engine/internal/metrics"
	"github.com/brettericmartin/tee-club-engine/internal/storage"
)

var log = logrus.WithField("package", "reconciler")

// Config ...
type Config struct {
	SweepInterval time.Duration
	SweepBatch    int
	Workers       int
}

// Reconciler recomputes engagement counters from the event log.
type Reconciler struct {
	s   storage.Storage
	cfg Config

	// highest event id covered by previous sweeps, only Run advances it
	lastSwept uint64
}

// New creates new instance of Reconciler.
func New(s storage.Storage, cfg Config) *Reconciler {
	if cfg.SweepBatch == 0 {
		cfg.SweepBatch = 1000
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}

	return &Reconciler{s: s, cfg: cfg}
}

// Apply is the incremental path: it adjusts the counter by ±1 when the event
// changes the actor's net like state, without a full rescan.
// The returned delta is 0 when the event did not change the state.
func (r *Reconciler) Apply(ctx context.Context, e *entities.EngagementEvent) (int64, error) {
	if e.Type != entities.LikeEvent && e.Type != entities.UnlikeEvent {
		return 0, nil
	}

	var delta int64

	err := r.s.InTx(ctx, func(s storage.Storage) error {
		if err := s.LockEntity(ctx, e.EntityID); err != nil {
			return err
		}

		prev, err := s.GetLastEvent(ctx, e.EntityID, e.ActorID, e.ID, entities.LikeEvent, entities.UnlikeEvent)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to get previous event: %w", err)
		}

		if prev != nil && prev.OccurredAt.After(e.OccurredAt) {
			// the event arrived late, the actor's net state is owned by an
			// already ingested event; a ±1 guess would drift, recount instead
			_, err := recount(ctx, s, e.EntityID)
			return err
		}

		prevType := entities.EventType("")
		if prev != nil {
			prevType = prev.Type
		}

		switch {
		case e.Type == entities.LikeEvent && prevType != entities.LikeEvent:
			delta = 1
		case e.Type == entities.UnlikeEvent && prevType == entities.LikeEvent:
			delta = -1
		default:
			return nil
		}

		if _, err := s.AdjustCounter(ctx, e.EntityID, delta); err != nil {
			return fmt.Errorf("failed to adjust counter: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return delta, nil
}

// Reconcile is the full path: it recounts net-active likes for the entity and
// writes the counter only when the cached value drifted. It reports whether a
// correction was made.
func (r *Reconciler) Reconcile(ctx context.Context, entityID string) (bool, error) {
	var corrected bool

	err := r.s.InTx(ctx, func(s storage.Storage) error {
		if err := s.LockEntity(ctx, entityID); err != nil {
			return err
		}

		var err error
		corrected, err = recount(ctx, s, entityID)
		return err
	})
	if err != nil {
		return false, err
	}

	return corrected, nil
}

func recount(ctx context.Context, s storage.Storage, entityID string) (bool, error) {
	count, err := s.CountActiveLikes(ctx, entityID)
	if err != nil {
		// the cached value stays untouched when the event log is unreadable
		return false, fmt.Errorf("failed to count active likes: %w", err)
	}

	corrected, err := s.SetCounter(ctx, entityID, count)
	if err != nil {
		return false, fmt.Errorf("failed to set counter: %w", err)
	}

	if corrected {
		metrics.CounterCorrections.Inc()
		log.WithField("entity_id", entityID).WithField("count", count).Info("counter corrected")
	}

	return corrected, nil
}

// Sweep reconciles every entity with events the previous sweeps did not
// cover, keyed on event id so late-arriving events still re-list their
// entity. Per-entity failures are logged and do not abort the sweep.
func (r *Reconciler) Sweep(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("reconcile").Observe(time.Since(start).Seconds())
	}()

	for {
		ids, last, err := r.s.ListEngagedEntityIDs(ctx, r.lastSwept, r.cfg.SweepBatch)
		if err != nil {
			return fmt.Errorf("failed to list engaged entities: %w", err)
		}

		if len(ids) == 0 {
			return nil
		}

		gr, gctx := errgroup.WithContext(ctx)
		gr.SetLimit(r.cfg.Workers)

		for _, id := range ids {
			id := id
			gr.Go(func() error {
				if _, err := r.Reconcile(gctx, id); err != nil {
					log.WithField("entity_id", id).WithError(err).Error("failed to reconcile entity")
				}
				return nil
			})
		}

		if err := gr.Wait(); err != nil {
			return err
		}

		r.lastSwept = last

		if len(ids) < r.cfg.SweepBatch {
			return nil
		}
	}
}

// Run sweeps counters periodically until the context is cancelled.
func (r *Reconciler) Run(ctx context.Context) error {
	t := time.NewTicker(r.cfg.SweepInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := r.Sweep(ctx); err != nil {
				log.WithError(err).Error("counter sweep failed")
			}
		}
	}
}
