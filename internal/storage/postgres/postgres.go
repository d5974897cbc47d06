// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/brettericmartin/tee-club-engine/internal/entities"
	"github.com/brettericmartin/tee-club-engine/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")

var errBeginCalledWithinTx = errors.New("can not run WithLockedOffset in tx")

// advisory lock key classes, first argument of pg_advisory_xact_lock(int4, int4)
const (
	entityLockClass = 1
	ownerLockClass  = 2
)

type pg struct {
	ext sqlx.ExtContext
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

type entityDTO struct {
	ID           string    `db:"id"`
	Kind         string    `db:"kind"`
	Owner        string    `db:"owner"`
	CreatedAt    time.Time `db:"created_at"`
	Boost        float64   `db:"boost"`
	HotScore     float64   `db:"hot_score"`
	LastScoredAt time.Time `db:"last_scored_at"`
}

type rankedEntityDTO struct {
	entityDTO
	Likes uint64 `db:"likes"`
}

type eventDTO struct {
	ID         uint64    `db:"id"`
	EntityID   string    `db:"entity_id"`
	EntityKind string    `db:"entity_kind"`
	ActorID    string    `db:"actor_id"`
	EventType  string    `db:"event_type"`
	OccurredAt time.Time `db:"occurred_at"`
}

type collectionItemDTO struct {
	ID         string    `db:"id"`
	Owner      string    `db:"owner_id"`
	Collection string    `db:"collection"`
	IsPrimary  bool      `db:"is_primary"`
	CreatedAt  time.Time `db:"created_at"`
}

type criterionDTO struct {
	BadgeID    string `db:"badge_id"`
	Type       string `db:"criteria_type"`
	Threshold  uint64 `db:"threshold"`
	Parameters []byte `db:"parameters"`
}

type awardDTO struct {
	UserID   string    `db:"user_id"`
	BadgeID  string    `db:"badge_id"`
	EarnedAt time.Time `db:"earned_at"`
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		// already inside a transaction, scope the callback to a savepoint so
		// its failure does not abort statements outside of it
		return s.inSavepoint(ctx, f)
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) inSavepoint(ctx context.Context, f func(s storage.Storage) error) error {
	if _, err := s.ext.ExecContext(ctx, `SAVEPOINT nested_tx`); err != nil {
		return fmt.Errorf("failed to create savepoint: %w", err)
	}

	if err := f(s); err != nil {
		if _, err := s.ext.ExecContext(ctx, `ROLLBACK TO SAVEPOINT nested_tx`); err != nil {
			return fmt.Errorf("failed to rollback savepoint: %w", err)
		}
		return err
	}

	if _, err := s.ext.ExecContext(ctx, `RELEASE SAVEPOINT nested_tx`); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}

	return nil
}

func (s pg) WithLockedOffset(ctx context.Context, f func(s storage.Storage, offset uint64) (uint64, error)) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return errBeginCalledWithinTx
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := func(locked pg) error {
		var offset uint64
		// serializes consumers, the row is locked until commit
		if err := sqlx.GetContext(ctx, locked.ext, &offset, `SELECT "offset" FROM event_offset FOR UPDATE`); err != nil {
			return fmt.Errorf("failed to lock offset: %w", err)
		}

		next, err := f(locked, offset)
		if err != nil {
			return err
		}

		if next != offset {
			if _, err := locked.ext.ExecContext(ctx, `UPDATE event_offset SET "offset"=$1`, next); err != nil {
				return fmt.Errorf("failed to save offset: %w", err)
			}
		}

		return nil
	}(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) GetOffset(ctx context.Context) (uint64, error) {
	var offset uint64
	if err := sqlx.GetContext(ctx, s.ext, &offset, `SELECT "offset" FROM event_offset`); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return offset, nil
}

func (s pg) LockEntity(ctx context.Context, entityID string) error {
	if _, err := s.ext.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock($1, hashtext($2))`, entityLockClass, entityID,
	); err != nil {
		return fmt.Errorf("failed to lock entity: %w", err)
	}

	return nil
}

func (s pg) LockOwner(ctx context.Context, owner, collection string) error {
	if _, err := s.ext.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock($1, hashtext($2 || '/' || $3))`, ownerLockClass, owner, collection,
	); err != nil {
		return fmt.Errorf("failed to lock owner: %w", err)
	}

	return nil
}

func (s pg) CreateEvent(ctx context.Context, e *entities.EngagementEvent) (bool, error) {
	res, err := s.ext.ExecContext(ctx, `
			INSERT INTO engagement_event(entity_id, entity_kind, actor_id, event_type, occurred_at)
				VALUES($1, $2, $3, $4, $5)
			ON CONFLICT(entity_id, actor_id, event_type, occurred_at) DO NOTHING
		`,
		e.EntityID, e.EntityKind, e.ActorID, string(e.Type), e.OccurredAt.UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected() // nolint: errcheck

	return c == 1, nil
}

func (s pg) ListEventsAfter(ctx context.Context, after uint64, limit int) ([]*entities.EngagementEvent, error) {
	var ee []*eventDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ee, `
			SELECT id, entity_id, entity_kind, actor_id, event_type, occurred_at
			FROM engagement_event
			WHERE id > $1
			ORDER BY id
			LIMIT $2
		`, after, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.EngagementEvent, len(ee))
	for i, v := range ee {
		out[i] = toEvent(v)
	}

	return out, nil
}

func (s pg) GetLastEvent(ctx context.Context, entityID, actorID string, before uint64, types ...entities.EventType) (*entities.EngagementEvent, error) {
	tt := make([]string, len(types))
	for i, v := range types {
		tt[i] = string(v)
	}

	query, args, err := sqlx.In(`
			SELECT id, entity_id, entity_kind, actor_id, event_type, occurred_at
			FROM engagement_event
			WHERE entity_id = ? AND actor_id = ? AND id < ? AND event_type IN (?)
			ORDER BY occurred_at DESC, id DESC
			LIMIT 1
		`, entityID, actorID, before, tt)
	if err != nil {
		return nil, fmt.Errorf("failed to construct IN clause: %w", err)
	}

	var e eventDTO
	if err := sqlx.GetContext(ctx, s.ext, &e, s.ext.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toEvent(&e), nil
}

func (s pg) CountActiveLikes(ctx context.Context, entityID string) (uint64, error) {
	var c uint64

	// actor's net state is defined by their latest like/unlike event
	if err := sqlx.GetContext(ctx, s.ext, &c, `
			SELECT COUNT(*) FROM (
				SELECT DISTINCT ON (actor_id) event_type
				FROM engagement_event
				WHERE entity_id = $1 AND event_type IN ('like', 'unlike')
				ORDER BY actor_id, occurred_at DESC, id DESC
			) t WHERE event_type = 'like'
		`, entityID,
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) CountLikeWindows(ctx context.Context, entityID string, now time.Time) (storage.WindowCounts, error) {
	var w struct {
		Hour uint64 `db:"hour"`
		Day  uint64 `db:"day"`
		Week uint64 `db:"week"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &w, `
			SELECT
				COUNT(*) FILTER (WHERE occurred_at > $2 - interval '1 hour') AS hour,
				COUNT(*) FILTER (WHERE occurred_at > $2 - interval '1 day') AS day,
				COUNT(*) AS week
			FROM engagement_event
			WHERE entity_id = $1 AND event_type = 'like' AND occurred_at > $2 - interval '7 days' AND occurred_at <= $2
		`, entityID, now.UTC(),
	); err != nil {
		return storage.WindowCounts{}, fmt.Errorf("failed to query: %w", err)
	}

	return storage.WindowCounts{Hour: w.Hour, Day: w.Day, Week: w.Week}, nil
}

func (s pg) ListEngagedEntityIDs(ctx context.Context, afterID uint64, limit int) ([]string, uint64, error) {
	var rows []struct {
		EntityID string `db:"entity_id"`
		LastID   uint64 `db:"last_id"`
	}

	// keyed on event id, not occurred_at, so a late-arriving event still
	// re-lists its entity; ordered by last_id so successive batches make
	// deterministic progress
	if err := sqlx.SelectContext(ctx, s.ext, &rows, `
			SELECT entity_id, MAX(id) AS last_id FROM engagement_event
			WHERE id > $1 AND event_type IN ('like', 'unlike')
			GROUP BY entity_id
			ORDER BY last_id
			LIMIT $2
		`, afterID, limit,
	); err != nil {
		return nil, 0, fmt.Errorf("failed to query: %w", err)
	}

	ids := make([]string, len(rows))
	last := afterID
	for i, v := range rows {
		ids[i] = v.EntityID
		if v.LastID > last {
			last = v.LastID
		}
	}

	return ids, last, nil
}

func (s pg) CreateEntity(ctx context.Context, p *storage.CreateEntityParams) error {
	boost := p.Boost
	if boost == 0 {
		boost = 1
	}

	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO scorable_entity(id, kind, owner, created_at, boost)
				VALUES($1, $2, $3, $4, $5)
			ON CONFLICT(id) DO NOTHING
		`,
		p.ID, string(p.Kind), p.Owner, p.CreatedAt.UTC(), boost,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetEntity(ctx context.Context, id string) (*entities.ScorableEntity, error) {
	var e entityDTO

	if err := sqlx.GetContext(ctx, s.ext, &e, `
			SELECT id, kind, owner, created_at, boost, hot_score, last_scored_at
			FROM scorable_entity
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := toEntity(e)

	return &out, nil
}

func (s pg) SetBoost(ctx context.Context, id string, boost float64) error {
	res, err := s.ext.ExecContext(ctx, `UPDATE scorable_entity SET boost=$2 WHERE id=$1`, id, boost)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 { // nolint: errcheck
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) SetHotScore(ctx context.Context, id string, score float64, at time.Time) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE scorable_entity SET hot_score=$2, last_scored_at=$3 WHERE id=$1`,
		id, score, at.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 { // nolint: errcheck
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) ListStaleEntityIDs(ctx context.Context, scoredBefore time.Time, limit int) ([]string, error) {
	var ids []string

	if err := sqlx.SelectContext(ctx, s.ext, &ids, `
			SELECT id FROM scorable_entity
			WHERE last_scored_at < $1
			ORDER BY last_scored_at
			LIMIT $2
		`, scoredBefore.UTC(), limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return ids, nil
}

func (s pg) ListEntities(ctx context.Context, p *storage.ListEntitiesParams) ([]*storage.RankedEntity, error) {
	query := `
		SELECT e.id, e.kind, e.owner, e.created_at, e.boost, e.hot_score, e.last_scored_at,
			COALESCE(c.count, 0) AS likes
		FROM scorable_entity e
		LEFT JOIN engagement_counter c ON c.entity_id = e.id
		WHERE e.kind = $1
	`
	args := []interface{}{string(p.Kind)}

	if p.After != nil {
		switch p.Sort {
		case storage.HotSortType:
			query += ` AND (e.hot_score, e.created_at, e.id) < ($2, $3, $4)`
			args = append(args, p.After.Score, p.After.CreatedAt.UTC(), p.After.ID)
		case storage.NewSortType:
			query += ` AND (e.created_at, e.id) < ($2, $3)`
			args = append(args, p.After.CreatedAt.UTC(), p.After.ID)
		case storage.TopSortType:
			query += ` AND (COALESCE(c.count, 0), e.created_at, e.id) < ($2, $3, $4)`
			args = append(args, p.After.Count, p.After.CreatedAt.UTC(), p.After.ID)
		}
	}

	// created_at desc then id desc breaks score ties deterministically
	switch p.Sort {
	case storage.HotSortType:
		query += ` ORDER BY e.hot_score DESC, e.created_at DESC, e.id DESC`
	case storage.NewSortType:
		query += ` ORDER BY e.created_at DESC, e.id DESC`
	case storage.TopSortType:
		query += ` ORDER BY likes DESC, e.created_at DESC, e.id DESC`
	default:
		return nil, fmt.Errorf("unknown sort type %q", p.Sort)
	}

	query += fmt.Sprintf(` LIMIT %d`, p.Limit)

	var ee []*rankedEntityDTO
	if err := sqlx.SelectContext(ctx, s.ext, &ee, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*storage.RankedEntity, len(ee))
	for i, v := range ee {
		out[i] = &storage.RankedEntity{
			ScorableEntity: toEntity(v.entityDTO),
			Likes:          v.Likes,
		}
	}

	return out, nil
}

func (s pg) GetCounter(ctx context.Context, entityID string) (uint64, error) {
	var c uint64

	if err := sqlx.GetContext(ctx, s.ext, &c,
		`SELECT COALESCE((SELECT count FROM engagement_counter WHERE entity_id = $1), 0)`, entityID,
	); err != nil {
		return 0, fmt.Errorf("failed to query: %w", err)
	}

	return c, nil
}

func (s pg) SetCounter(ctx context.Context, entityID string, count uint64) (bool, error) {
	// conditional write, nothing happens when the cached value is already right
	res, err := s.ext.ExecContext(ctx, `
			INSERT INTO engagement_counter(entity_id, count) VALUES($1, $2)
			ON CONFLICT(entity_id) DO UPDATE SET count=excluded.count
			WHERE engagement_counter.count IS DISTINCT FROM excluded.count
		`, entityID, count,
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected() // nolint: errcheck

	return c == 1, nil
}

func (s pg) AdjustCounter(ctx context.Context, entityID string, delta int64) (uint64, error) {
	var c uint64

	if err := sqlx.GetContext(ctx, s.ext, &c, `
			INSERT INTO engagement_counter(entity_id, count) VALUES($1, GREATEST($2, 0))
			ON CONFLICT(entity_id) DO UPDATE SET count = GREATEST(engagement_counter.count + $2, 0)
			RETURNING count
		`, entityID, delta,
	); err != nil {
		return 0, fmt.Errorf("failed to exec: %w", err)
	}

	return c, nil
}

func (s pg) AddCollectionItem(ctx context.Context, item *entities.CollectionItem) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO collection_item(id, owner_id, collection, is_primary, created_at)
				VALUES($1, $2, $3, $4, $5)
			ON CONFLICT(id) DO NOTHING
		`,
		item.ID, item.Owner, item.Collection, item.IsPrimary, item.CreatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteCollectionItem(ctx context.Context, owner, collection, id string) error {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM collection_item WHERE owner_id=$1 AND collection=$2 AND id=$3`,
		owner, collection, id,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 { // nolint: errcheck
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) ListCollectionItems(ctx context.Context, owner, collection string) ([]*entities.CollectionItem, error) {
	var ii []*collectionItemDTO

	if err := sqlx.SelectContext(ctx, s.ext, &ii, `
			SELECT id, owner_id, collection, is_primary, created_at
			FROM collection_item
			WHERE owner_id = $1 AND collection = $2
			ORDER BY created_at, id
		`, owner, collection,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.CollectionItem, len(ii))
	for i, v := range ii {
		out[i] = &entities.CollectionItem{
			ID:         v.ID,
			Owner:      v.Owner,
			Collection: v.Collection,
			IsPrimary:  v.IsPrimary,
			CreatedAt:  v.CreatedAt,
		}
	}

	return out, nil
}

func (s pg) SetPrimaryExclusive(ctx context.Context, owner, collection, itemID string) (int64, error) {
	demoted, err := s.ext.ExecContext(ctx,
		`UPDATE collection_item SET is_primary=FALSE WHERE owner_id=$1 AND collection=$2 AND is_primary AND id<>$3`,
		owner, collection, itemID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to demote: %w", err)
	}

	promoted, err := s.ext.ExecContext(ctx,
		`UPDATE collection_item SET is_primary=TRUE WHERE owner_id=$1 AND collection=$2 AND id=$3 AND NOT is_primary`,
		owner, collection, itemID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to promote: %w", err)
	}

	d, _ := demoted.RowsAffected()  // nolint: errcheck
	p, _ := promoted.RowsAffected() // nolint: errcheck

	return d + p, nil
}

func (s pg) ListCollections(ctx context.Context) ([]storage.CollectionKey, error) {
	var kk []struct {
		Owner      string `db:"owner_id"`
		Collection string `db:"collection"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &kk,
		`SELECT DISTINCT owner_id, collection FROM collection_item ORDER BY owner_id, collection`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]storage.CollectionKey, len(kk))
	for i, v := range kk {
		out[i] = storage.CollectionKey{Owner: v.Owner, Collection: v.Collection}
	}

	return out, nil
}

func (s pg) AddUserAction(ctx context.Context, userID, action string, delta uint64) error {
	if _, err := s.ext.ExecContext(ctx, `
			INSERT INTO user_action(user_id, action_type, total_count) VALUES($1, $2, $3)
			ON CONFLICT(user_id, action_type) DO UPDATE SET total_count = user_action.total_count + $3
		`, userID, action, delta,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetUserActionCounts(ctx context.Context, userID string) (map[string]uint64, error) {
	var aa []struct {
		Action string `db:"action_type"`
		Count  uint64 `db:"total_count"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &aa,
		`SELECT action_type, total_count FROM user_action WHERE user_id = $1`, userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make(map[string]uint64, len(aa))
	for _, v := range aa {
		out[v.Action] = v.Count
	}

	return out, nil
}

func (s pg) ListBadgeCriteria(ctx context.Context) ([]*entities.BadgeCriterion, error) {
	var cc []*criterionDTO

	if err := sqlx.SelectContext(ctx, s.ext, &cc,
		`SELECT badge_id, criteria_type, threshold, parameters FROM badge_criterion ORDER BY badge_id`,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.BadgeCriterion, len(cc))
	for i, v := range cc {
		out[i] = &entities.BadgeCriterion{
			BadgeID:    v.BadgeID,
			Type:       v.Type,
			Threshold:  v.Threshold,
			Parameters: v.Parameters,
		}
	}

	return out, nil
}

func (s pg) CreateBadgeAward(ctx context.Context, userID, badgeID string, earnedAt time.Time) (bool, error) {
	res, err := s.ext.ExecContext(ctx, `
			INSERT INTO badge_award(user_id, badge_id, earned_at) VALUES($1, $2, $3)
			ON CONFLICT(user_id, badge_id) DO NOTHING
		`, userID, badgeID, earnedAt.UTC(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected() // nolint: errcheck

	return c == 1, nil
}

func (s pg) ListBadgeAwards(ctx context.Context, userID string) ([]*entities.BadgeAward, error) {
	var aa []*awardDTO

	if err := sqlx.SelectContext(ctx, s.ext, &aa,
		`SELECT user_id, badge_id, earned_at FROM badge_award WHERE user_id = $1 ORDER BY earned_at, badge_id`,
		userID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toAwards(aa), nil
}

func (s pg) ListBadgeAwardsSince(ctx context.Context, since time.Time, limit int) ([]*entities.BadgeAward, error) {
	var aa []*awardDTO

	if err := sqlx.SelectContext(ctx, s.ext, &aa, `
			SELECT user_id, badge_id, earned_at FROM badge_award
			WHERE earned_at >= $1
			ORDER BY earned_at, user_id, badge_id
			LIMIT $2
		`, since.UTC(), limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return toAwards(aa), nil
}

func toEntity(e entityDTO) entities.ScorableEntity {
	return entities.ScorableEntity{
		ID:           e.ID,
		Kind:         entities.EntityKind(e.Kind),
		Owner:        e.Owner,
		CreatedAt:    e.CreatedAt,
		Boost:        e.Boost,
		HotScore:     e.HotScore,
		LastScoredAt: e.LastScoredAt,
	}
}

func toEvent(e *eventDTO) *entities.EngagementEvent {
	return &entities.EngagementEvent{
		ID:         e.ID,
		EntityID:   e.EntityID,
		EntityKind: e.EntityKind,
		ActorID:    e.ActorID,
		Type:       entities.EventType(e.EventType),
		OccurredAt: e.OccurredAt,
	}
}

func toAwards(aa []*awardDTO) []*entities.BadgeAward {
	out := make([]*entities.BadgeAward, len(aa))
	for i, v := range aa {
		out[i] = &entities.BadgeAward{
			UserID:   v.UserID,
			BadgeID:  v.BadgeID,
			EarnedAt: v.EarnedAt,
		}
	}

	return out
}
