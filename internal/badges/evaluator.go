// Package badges evaluates achievement criteria over user action aggregates.
package badges

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brettericmartin/tee-club-engine/internal/entities"
	"github.com/brettericmartin/tee-club-engine/internal/metrics"
	"github.com/brettericmartin/tee-club-engine/internal/storage"
)

var log = logrus.WithField("package", "badges")

// nolint:gochecknoglobals
var supportedCriteria = map[string]struct{}{
	entities.ActionTeeGiven:       {},
	entities.ActionTeeReceived:    {},
	entities.ActionFollowGiven:    {},
	entities.ActionFollowerGained: {},
}

// Evaluator awards badges whose criteria are newly satisfied.
type Evaluator struct {
	s storage.Storage
}

// New creates new instance of Evaluator.
func New(s storage.Storage) *Evaluator {
	return &Evaluator{s: s}
}

// Evaluate checks every criterion against the user's aggregates and creates
// missing awards. Award creation is an atomic insert-if-absent, so concurrent
// evaluation of the same user never produces duplicates. Unknown criteria
// types are skipped with a warning and do not block the remaining criteria.
func (e *Evaluator) Evaluate(ctx context.Context, userID string, now time.Time) ([]*entities.BadgeAward, error) {
	criteria, err := e.s.ListBadgeCriteria(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list criteria: %w", err)
	}

	counts, err := e.s.GetUserActionCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get action counts: %w", err)
	}

	var awarded []*entities.BadgeAward

	for _, c := range criteria {
		if _, ok := supportedCriteria[c.Type]; !ok {
			log.WithField("badge_id", c.BadgeID).WithField("criteria_type", c.Type).
				Warn("unknown criteria type, skipping")
			continue
		}

		if counts[c.Type] < c.Threshold {
			continue
		}

		created, err := e.s.CreateBadgeAward(ctx, userID, c.BadgeID, now)
		if err != nil {
			return awarded, fmt.Errorf("failed to create award: %w", err)
		}

		if created {
			metrics.BadgeAwards.Inc()
			log.WithField("user_id", userID).WithField("badge_id", c.BadgeID).Info("badge awarded")

			awarded = append(awarded, &entities.BadgeAward{
				UserID:   userID,
				BadgeID:  c.BadgeID,
				EarnedAt: now,
			})
		}
	}

	return awarded, nil
}
