// Package engagement consumes the engagement event log and drives the
// idempotent downstream consumers: counter reconciliation, score
// recomputation, aggregate bumps and badge evaluation.
package engagement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brettericmartin/tee-club-engine/internal/badges"
	"github.com/brettericmartin/tee-club-engine/internal/consumer"
	"github.com/brettericmartin/tee-club-engine/internal/entities"
	"github.com/brettericmartin/tee-club-engine/internal/metrics"
	"github.com/brettericmartin/tee-club-engine/internal/reconciler"
	"github.com/brettericmartin/tee-club-engine/internal/scorer"
	"github.com/brettericmartin/tee-club-engine/internal/storage"
)

var log = logrus.WithField("package", "engagement")

type engagement struct {
	s        storage.Storage
	interval time.Duration
	batch    int
}

// New creates new instance of engagement consumer.
func New(s storage.Storage, interval time.Duration, batch int) consumer.Consumer {
	return &engagement{
		s:        s,
		interval: interval,
		batch:    batch,
	}
}

func (c *engagement) Name() string {
	return "event log consumer"
}

func (c *engagement) Ping(ctx context.Context) error {
	_, err := c.s.GetOffset(ctx)
	return err
}

// Run polls the event log until the context is cancelled. The committed
// offset only moves together with the processing it covers, so a crash
// replays the batch against idempotent consumers.
func (c *engagement) Run(ctx context.Context) error {
	t := time.NewTicker(c.interval)
	defer t.Stop()

	for {
		n, err := c.processBatch(ctx)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("failed to process batch")
		}

		// drain a backlog without waiting for the ticker
		if n == c.batch {
			continue
		}

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func (c *engagement) processBatch(ctx context.Context) (int, error) {
	var n int

	err := c.s.WithLockedOffset(ctx, func(s storage.Storage, offset uint64) (uint64, error) {
		events, err := s.ListEventsAfter(ctx, offset, c.batch)
		if err != nil {
			return offset, fmt.Errorf("failed to list events: %w", err)
		}

		next := offset
		for _, e := range events {
			select {
			case <-ctx.Done():
				// commit the progress made so far, the rest is picked up later
				return next, nil
			default:
			}

			// each event runs in its own savepoint: a failure rolls back the
			// event's partial writes and keeps the batch transaction usable,
			// so the offset still advances past it
			if err := s.InTx(ctx, func(tx storage.Storage) error {
				return c.processEvent(ctx, tx, e)
			}); err != nil {
				// the event is skipped, full reconciliation self-heals it
				log.WithField("event_id", e.ID).WithError(err).Error("failed to process event")
				metrics.EventsProcessed.WithLabelValues(string(e.Type), "error").Inc()
			} else {
				metrics.EventsProcessed.WithLabelValues(string(e.Type), "ok").Inc()
			}

			next = e.ID
			n++
		}

		return next, nil
	})

	return n, err
}

func (c *engagement) processEvent(ctx context.Context, s storage.Storage, e *entities.EngagementEvent) error {
	switch e.Type {
	case entities.LikeEvent, entities.UnlikeEvent:
		return c.processLike(ctx, s, e)
	case entities.FollowEvent:
		return c.processFollow(ctx, s, e)
	case entities.UnfollowEvent:
		// aggregates are monotonic, nothing to do
		return nil
	default:
		log.WithField("event_id", e.ID).WithField("type", e.Type).Debug("skip event")
		return nil
	}
}

func (c *engagement) processLike(ctx context.Context, s storage.Storage, e *entities.EngagementEvent) error {
	delta, err := reconciler.New(s, reconciler.Config{}).Apply(ctx, e)
	if err != nil {
		return fmt.Errorf("failed to apply event to counter: %w", err)
	}

	if err := scorer.New(s, scorer.Config{}).Recompute(ctx, e.EntityID, time.Now()); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to recompute score: %w", err)
		}
		// engagement for an unregistered entity still counts, it is scored
		// once the entity shows up
		log.WithField("entity_id", e.EntityID).Debug("skip score recompute for unknown entity")
	}

	if delta <= 0 || e.Type != entities.LikeEvent {
		return nil
	}

	if err := s.AddUserAction(ctx, e.ActorID, entities.ActionTeeGiven, 1); err != nil {
		return fmt.Errorf("failed to add actor action: %w", err)
	}

	if err := c.evaluateBadges(ctx, s, e.ActorID); err != nil {
		return err
	}

	entity, err := s.GetEntity(ctx, e.EntityID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get entity: %w", err)
	}

	if err := s.AddUserAction(ctx, entity.Owner, entities.ActionTeeReceived, 1); err != nil {
		return fmt.Errorf("failed to add owner action: %w", err)
	}

	return c.evaluateBadges(ctx, s, entity.Owner)
}

func (c *engagement) processFollow(ctx context.Context, s storage.Storage, e *entities.EngagementEvent) error {
	prev, err := s.GetLastEvent(ctx, e.EntityID, e.ActorID, e.ID, entities.FollowEvent, entities.UnfollowEvent)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to get previous event: %w", err)
	}

	if prev != nil && (prev.Type == entities.FollowEvent || prev.OccurredAt.After(e.OccurredAt)) {
		// a duplicate follow, or a late follow already superseded by an
		// unfollow: either way the net state did not flip
		return nil
	}

	if err := s.AddUserAction(ctx, e.ActorID, entities.ActionFollowGiven, 1); err != nil {
		return fmt.Errorf("failed to add actor action: %w", err)
	}

	// entity id of a follow event is the followee
	if err := s.AddUserAction(ctx, e.EntityID, entities.ActionFollowerGained, 1); err != nil {
		return fmt.Errorf("failed to add followee action: %w", err)
	}

	if err := c.evaluateBadges(ctx, s, e.ActorID); err != nil {
		return err
	}

	return c.evaluateBadges(ctx, s, e.EntityID)
}

func (c *engagement) evaluateBadges(ctx context.Context, s storage.Storage, userID string) error {
	if _, err := badges.New(s).Evaluate(ctx, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to evaluate badges: %w", err)
	}

	return nil
}
