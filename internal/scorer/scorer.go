// Package scorer computes decaying popularity scores for scorable entities.
package scorer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/brettericmartin/tee-club-engine/internal/metrics"
	"github.com/brettericmartin/tee-club-engine/internal/storage"
)

var log = logrus.WithField("package", "scorer")

// Velocity weights for the cumulative 1h/1d/1w like windows.
const (
	weightHour = 3.0
	weightDay  = 1.5
	weightWeek = 0.5

	// scale spreads log-compressed velocity over a readable range.
	scale = 10000.0
	// gravity is the exponent of the age penalty.
	gravity = 1.5
	// ageOffset keeps the penalty away from zero for brand-new entities.
	ageOffset = 2.0
)

// Calculate returns the hot score for an entity created at createdAt with the
// given engagement windows and boost, as of now.
//
// The result is always finite and non-negative: age is clamped at zero for
// entities created in the future, and zero velocity yields exactly zero.
func Calculate(now, createdAt time.Time, w storage.WindowCounts, boost float64) float64 {
	velocity := float64(w.Hour)*weightHour + float64(w.Day)*weightDay + float64(w.Week)*weightWeek
	if velocity <= 0 || boost <= 0 {
		return 0
	}

	ageHours := now.Sub(createdAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}

	base := math.Log(velocity+1) * scale
	penalty := math.Pow(ageHours+ageOffset, gravity)

	return base / penalty * boost
}

// Config ...
type Config struct {
	SweepInterval time.Duration
	SweepBatch    int
	Workers       int
}

// Scorer recomputes hot scores from the event log.
type Scorer struct {
	s   storage.Storage
	cfg Config
}

// New creates new instance of Scorer.
func New(s storage.Storage, cfg Config) *Scorer {
	if cfg.SweepBatch == 0 {
		cfg.SweepBatch = 1000
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}

	return &Scorer{s: s, cfg: cfg}
}

// Recompute recalculates and persists the hot score of one entity.
func (s *Scorer) Recompute(ctx context.Context, entityID string, now time.Time) error {
	e, err := s.s.GetEntity(ctx, entityID)
	if err != nil {
		return fmt.Errorf("failed to get entity: %w", err)
	}

	w, err := s.s.CountLikeWindows(ctx, entityID, now)
	if err != nil {
		return fmt.Errorf("failed to count windows: %w", err)
	}

	score := Calculate(now, e.CreatedAt, w, e.Boost)

	if err := s.s.SetHotScore(ctx, entityID, score, now); err != nil {
		return fmt.Errorf("failed to set hot score: %w", err)
	}

	return nil
}

// Sweep rescores entities whose score is older than the sweep interval, so
// pure time decay is captured even with zero new events. Entities are
// independent and rescored in parallel; per-entity failures are logged and do
// not abort the sweep.
func (s *Scorer) Sweep(ctx context.Context, now time.Time) error {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.WithLabelValues("score").Observe(time.Since(start).Seconds())
	}()

	ids, err := s.s.ListStaleEntityIDs(ctx, now.Add(-s.cfg.SweepInterval), s.cfg.SweepBatch)
	if err != nil {
		return fmt.Errorf("failed to list stale entities: %w", err)
	}

	gr, ctx := errgroup.WithContext(ctx)
	gr.SetLimit(s.cfg.Workers)

	for _, id := range ids {
		id := id
		gr.Go(func() error {
			if err := s.Recompute(ctx, id, now); err != nil {
				log.WithField("entity_id", id).WithError(err).Error("failed to rescore entity")
			}
			return nil
		})
	}

	return gr.Wait()
}

// Run rescores stale entities periodically until the context is cancelled.
func (s *Scorer) Run(ctx context.Context) error {
	t := time.NewTicker(s.cfg.SweepInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-t.C:
			if err := s.Sweep(ctx, now); err != nil {
				log.WithError(err).Error("score sweep failed")
			}
		}
	}
}
