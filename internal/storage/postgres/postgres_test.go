//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/brettericmartin/tee-club-engine/internal/entities"
	"github.com/brettericmartin/tee-club-engine/internal/storage"
)

const (
	entity1 = "f0b3b5a1-0001-4a25-b2d9-8b53d1b67f18"
	entity2 = "f0b3b5a1-0002-4a25-b2d9-8b53d1b67f18"
	entity3 = "f0b3b5a1-0003-4a25-b2d9-8b53d1b67f18"
	actor1  = "14e768a5-0001-46cb-ab52-b9a5e4b27a70"
	actor2  = "14e768a5-0002-46cb-ab52-b9a5e4b27a70"
	actor3  = "14e768a5-0003-46cb-ab52-b9a5e4b27a70"
	owner1  = "3fd3a444-0001-4aef-a4d5-a2eb2f21cbc0"
	owner2  = "3fd3a444-0002-4aef-a4d5-a2eb2f21cbc0"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrate("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrate(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	_, err := db.ExecContext(ctx, `UPDATE event_offset SET "offset"=0`)
	require.NoError(t, err)

	for _, table := range []string{
		"engagement_event", "scorable_entity", "engagement_counter",
		"collection_item", "user_action", "badge_criterion", "badge_award",
	} {
		_, err = db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, table))
		require.NoError(t, err)
	}
}

func createEvent(t *testing.T, entityID, actorID string, typ entities.EventType, occurredAt time.Time) {
	created, err := s.CreateEvent(ctx, &entities.EngagementEvent{
		EntityID:   entityID,
		EntityKind: "post",
		ActorID:    actorID,
		Type:       typ,
		OccurredAt: occurredAt,
	})
	require.NoError(t, err)
	require.True(t, created)
}

func TestPg_GetOffset(t *testing.T) {
	defer cleanup(t)

	offset, err := s.GetOffset(ctx)
	require.NoError(t, err)
	require.Zero(t, offset)
}

func TestPg_WithLockedOffset(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.WithLockedOffset(ctx, func(locked storage.Storage, offset uint64) (uint64, error) {
		require.Zero(t, offset)
		return 5, nil
	}))

	offset, err := s.GetOffset(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, offset)

	// a failed batch leaves the offset untouched
	require.Error(t, s.WithLockedOffset(ctx, func(locked storage.Storage, offset uint64) (uint64, error) {
		return 10, context.Canceled
	}))

	offset, err = s.GetOffset(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, offset)
}

func TestPg_WithLockedOffset_serialized(t *testing.T) {
	defer cleanup(t)

	var mu sync.Mutex
	mu.Lock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		require.NoError(t, s.WithLockedOffset(ctx, func(locked storage.Storage, offset uint64) (uint64, error) {
			mu.Unlock()
			time.Sleep(500 * time.Millisecond) // the second consumer has to wait
			return offset + 1, nil
		}))
	}()

	mu.Lock() // wait for the first consumer to hold the lock

	require.NoError(t, s.WithLockedOffset(ctx, func(locked storage.Storage, offset uint64) (uint64, error) {
		require.EqualValues(t, 1, offset) // sees the first consumer's commit
		return offset, nil
	}))

	<-done
}

func TestPg_CreateEvent(t *testing.T) {
	defer cleanup(t)

	e := &entities.EngagementEvent{
		EntityID:   entity1,
		EntityKind: "post",
		ActorID:    actor1,
		Type:       entities.LikeEvent,
		OccurredAt: time.Unix(100, 0),
	}

	created, err := s.CreateEvent(ctx, e)
	require.NoError(t, err)
	require.True(t, created)

	// redelivery of the same event is absorbed
	created, err = s.CreateEvent(ctx, e)
	require.NoError(t, err)
	require.False(t, created)

	ee, err := s.ListEventsAfter(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, ee, 1)
	assert.Equal(t, entity1, ee[0].EntityID)
	assert.Equal(t, actor1, ee[0].ActorID)
	assert.Equal(t, entities.LikeEvent, ee[0].Type)
	assert.EqualValues(t, 100, ee[0].OccurredAt.Unix())

	ee, err = s.ListEventsAfter(ctx, ee[0].ID, 10)
	require.NoError(t, err)
	require.Empty(t, ee)
}

func TestPg_GetLastEvent(t *testing.T) {
	defer cleanup(t)

	createEvent(t, entity1, actor1, entities.LikeEvent, time.Unix(100, 0))
	createEvent(t, entity1, actor1, entities.UnlikeEvent, time.Unix(200, 0))
	createEvent(t, entity1, actor2, entities.LikeEvent, time.Unix(300, 0))

	ee, err := s.ListEventsAfter(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, ee, 3)

	// before the unlike the actor's net state was a like
	e, err := s.GetLastEvent(ctx, entity1, actor1, ee[1].ID, entities.LikeEvent, entities.UnlikeEvent)
	require.NoError(t, err)
	assert.Equal(t, entities.LikeEvent, e.Type)
	assert.EqualValues(t, 100, e.OccurredAt.Unix())

	e, err = s.GetLastEvent(ctx, entity1, actor1, ee[2].ID+1, entities.LikeEvent, entities.UnlikeEvent)
	require.NoError(t, err)
	assert.Equal(t, entities.UnlikeEvent, e.Type)
	assert.EqualValues(t, 200, e.OccurredAt.Unix())

	// the latest event is picked by occurrence time, not by ingestion order
	createEvent(t, entity1, actor1, entities.LikeEvent, time.Unix(150, 0))

	e, err = s.GetLastEvent(ctx, entity1, actor1, ee[2].ID+2, entities.LikeEvent, entities.UnlikeEvent)
	require.NoError(t, err)
	assert.Equal(t, entities.UnlikeEvent, e.Type)

	// other actors' events are invisible
	_, err = s.GetLastEvent(ctx, entity1, actor3, ee[2].ID+1, entities.LikeEvent, entities.UnlikeEvent)
	require.ErrorIs(t, err, storage.ErrNotFound)

	// event types outside the filter are invisible
	_, err = s.GetLastEvent(ctx, entity1, actor1, ee[2].ID+1, entities.FollowEvent, entities.UnfollowEvent)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPg_ListEngagedEntityIDs(t *testing.T) {
	defer cleanup(t)

	createEvent(t, entity1, actor1, entities.LikeEvent, time.Unix(100, 0))
	createEvent(t, entity2, actor1, entities.LikeEvent, time.Unix(200, 0))
	createEvent(t, entity1, actor2, entities.LikeEvent, time.Unix(300, 0))
	// follows are not counter engagement
	createEvent(t, entity3, actor1, entities.FollowEvent, time.Unix(400, 0))

	ids, last, err := s.ListEngagedEntityIDs(ctx, 0, 10)
	require.NoError(t, err)
	// ordered by each entity's highest event id
	assert.Equal(t, []string{entity2, entity1}, ids)

	// everything is covered, the next pass is empty
	ids, next, err := s.ListEngagedEntityIDs(ctx, last, 10)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Equal(t, last, next)

	// a batch smaller than the backlog makes deterministic progress
	ids, last, err = s.ListEngagedEntityIDs(ctx, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{entity2}, ids)

	ids, _, err = s.ListEngagedEntityIDs(ctx, last, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{entity1}, ids)
}

func TestPg_CountActiveLikes(t *testing.T) {
	defer cleanup(t)

	// actor1 liked, unliked and liked again: net like
	createEvent(t, entity1, actor1, entities.LikeEvent, time.Unix(100, 0))
	createEvent(t, entity1, actor1, entities.UnlikeEvent, time.Unix(200, 0))
	createEvent(t, entity1, actor1, entities.LikeEvent, time.Unix(300, 0))

	// actor2 unliked last: net none
	createEvent(t, entity1, actor2, entities.LikeEvent, time.Unix(100, 0))
	createEvent(t, entity1, actor2, entities.UnlikeEvent, time.Unix(200, 0))

	// actor3 liked another entity
	createEvent(t, entity2, actor3, entities.LikeEvent, time.Unix(100, 0))

	c, err := s.CountActiveLikes(ctx, entity1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, c)

	c, err = s.CountActiveLikes(ctx, entity2)
	require.NoError(t, err)
	assert.EqualValues(t, 1, c)

	c, err = s.CountActiveLikes(ctx, entity3)
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestPg_CountLikeWindows(t *testing.T) {
	defer cleanup(t)

	now := time.Unix(1000000, 0).UTC()

	createEvent(t, entity1, actor1, entities.LikeEvent, now.Add(-30*time.Minute))
	createEvent(t, entity1, actor2, entities.LikeEvent, now.Add(-2*time.Hour))
	createEvent(t, entity1, actor3, entities.LikeEvent, now.Add(-3*24*time.Hour))
	// outside the week
	createEvent(t, entity1, owner1, entities.LikeEvent, now.Add(-8*24*time.Hour))
	// unlikes are not engagement velocity
	createEvent(t, entity1, actor2, entities.UnlikeEvent, now.Add(-time.Minute))

	w, err := s.CountLikeWindows(ctx, entity1, now)
	require.NoError(t, err)

	// windows are cumulative, the fresh like is counted in all three
	assert.Equal(t, storage.WindowCounts{Hour: 1, Day: 2, Week: 3}, w)
}

func TestPg_Entity(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.CreateEntity(ctx, &storage.CreateEntityParams{
		ID:        entity1,
		Kind:      entities.PostKind,
		Owner:     owner1,
		CreatedAt: time.Unix(100, 0),
		Boost:     2,
	}))

	e, err := s.GetEntity(ctx, entity1)
	require.NoError(t, err)
	assert.Equal(t, entities.PostKind, e.Kind)
	assert.Equal(t, owner1, e.Owner)
	assert.EqualValues(t, 100, e.CreatedAt.Unix())
	assert.EqualValues(t, 2, e.Boost)
	assert.Zero(t, e.HotScore)

	require.NoError(t, s.SetBoost(ctx, entity1, 3))
	require.NoError(t, s.SetHotScore(ctx, entity1, 123.5, time.Unix(200, 0)))

	e, err = s.GetEntity(ctx, entity1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, e.Boost)
	assert.EqualValues(t, 123.5, e.HotScore)
	assert.EqualValues(t, 200, e.LastScoredAt.Unix())

	_, err = s.GetEntity(ctx, entity2)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, s.SetBoost(ctx, entity2, 1), storage.ErrNotFound)
	require.ErrorIs(t, s.SetHotScore(ctx, entity2, 1, time.Now()), storage.ErrNotFound)
}

func TestPg_ListStaleEntityIDs(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.CreateEntity(ctx, &storage.CreateEntityParams{
		ID: entity1, Kind: entities.PostKind, Owner: owner1, CreatedAt: time.Unix(100, 0),
	}))
	require.NoError(t, s.CreateEntity(ctx, &storage.CreateEntityParams{
		ID: entity2, Kind: entities.PostKind, Owner: owner1, CreatedAt: time.Unix(100, 0),
	}))

	require.NoError(t, s.SetHotScore(ctx, entity2, 1, time.Now()))

	// entity1 was never scored and is stale, entity2 is fresh
	ids, err := s.ListStaleEntityIDs(ctx, time.Now().Add(-time.Minute), 10)
	require.NoError(t, err)
	assert.Equal(t, []string{entity1}, ids)
}

func TestPg_ListEntities(t *testing.T) {
	defer cleanup(t)

	for i, id := range []string{entity1, entity2, entity3} {
		require.NoError(t, s.CreateEntity(ctx, &storage.CreateEntityParams{
			ID:        id,
			Kind:      entities.PostKind,
			Owner:     owner1,
			CreatedAt: time.Unix(int64(100+i), 0),
		}))
	}

	require.NoError(t, s.SetHotScore(ctx, entity1, 300, time.Unix(500, 0)))
	require.NoError(t, s.SetHotScore(ctx, entity2, 100, time.Unix(500, 0)))
	require.NoError(t, s.SetHotScore(ctx, entity3, 200, time.Unix(500, 0)))

	_, err := s.SetCounter(ctx, entity2, 7)
	require.NoError(t, err)
	_, err = s.SetCounter(ctx, entity3, 3)
	require.NoError(t, err)

	tt := []struct {
		name string
		sort storage.SortType
		ids  []string
	}{
		{
			name: "hot",
			sort: storage.HotSortType,
			ids:  []string{entity1, entity3, entity2},
		},
		{
			name: "new",
			sort: storage.NewSortType,
			ids:  []string{entity3, entity2, entity1},
		},
		{
			name: "top",
			sort: storage.TopSortType,
			ids:  []string{entity2, entity3, entity1},
		},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			ee, err := s.ListEntities(ctx, &storage.ListEntitiesParams{
				Kind:  entities.PostKind,
				Sort:  tc.sort,
				Limit: 10,
			})
			require.NoError(t, err)
			require.Len(t, ee, len(tc.ids))
			for i, id := range tc.ids {
				assert.Equal(t, id, ee[i].ID)
			}
		})
	}

	t.Run("other kind is empty", func(t *testing.T) {
		ee, err := s.ListEntities(ctx, &storage.ListEntitiesParams{
			Kind:  entities.BagKind,
			Sort:  storage.HotSortType,
			Limit: 10,
		})
		require.NoError(t, err)
		require.Empty(t, ee)
	})
}

func TestPg_ListEntities_cursor(t *testing.T) {
	defer cleanup(t)

	for i, id := range []string{entity1, entity2, entity3} {
		require.NoError(t, s.CreateEntity(ctx, &storage.CreateEntityParams{
			ID:        id,
			Kind:      entities.PostKind,
			Owner:     owner1,
			CreatedAt: time.Unix(int64(100+i), 0),
		}))
		// equal scores, the tie is broken by created_at then id
		require.NoError(t, s.SetHotScore(ctx, id, 100, time.Unix(500, 0)))
	}

	page, err := s.ListEntities(ctx, &storage.ListEntitiesParams{
		Kind:  entities.PostKind,
		Sort:  storage.HotSortType,
		Limit: 2,
	})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, entity3, page[0].ID)
	assert.Equal(t, entity2, page[1].ID)

	last := page[1]
	page, err = s.ListEntities(ctx, &storage.ListEntitiesParams{
		Kind:  entities.PostKind,
		Sort:  storage.HotSortType,
		Limit: 2,
		After: &storage.Cursor{
			Sort:      storage.HotSortType,
			Score:     last.HotScore,
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		},
	})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, entity1, page[0].ID)
}

func TestPg_Counter(t *testing.T) {
	defer cleanup(t)

	c, err := s.GetCounter(ctx, entity1)
	require.NoError(t, err)
	require.Zero(t, c)

	changed, err := s.SetCounter(ctx, entity1, 5)
	require.NoError(t, err)
	require.True(t, changed)

	// writing the same value is a no-op
	changed, err = s.SetCounter(ctx, entity1, 5)
	require.NoError(t, err)
	require.False(t, changed)

	c, err = s.AdjustCounter(ctx, entity1, 1)
	require.NoError(t, err)
	require.EqualValues(t, 6, c)

	c, err = s.AdjustCounter(ctx, entity1, -10)
	require.NoError(t, err)
	require.Zero(t, c) // floored, the counter is never negative

	c, err = s.AdjustCounter(ctx, entity2, -1)
	require.NoError(t, err)
	require.Zero(t, c)
}

func TestPg_CollectionItems(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.AddCollectionItem(ctx, &entities.CollectionItem{
		ID: entity2, Owner: owner1, Collection: "bags", IsPrimary: false, CreatedAt: time.Unix(200, 0),
	}))
	require.NoError(t, s.AddCollectionItem(ctx, &entities.CollectionItem{
		ID: entity1, Owner: owner1, Collection: "bags", IsPrimary: true, CreatedAt: time.Unix(100, 0),
	}))
	require.NoError(t, s.AddCollectionItem(ctx, &entities.CollectionItem{
		ID: entity3, Owner: owner2, Collection: "bags", IsPrimary: false, CreatedAt: time.Unix(100, 0),
	}))

	ii, err := s.ListCollectionItems(ctx, owner1, "bags")
	require.NoError(t, err)
	require.Len(t, ii, 2)
	// ordered by created_at then id
	assert.Equal(t, entity1, ii[0].ID)
	assert.True(t, ii[0].IsPrimary)
	assert.Equal(t, entity2, ii[1].ID)

	kk, err := s.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []storage.CollectionKey{
		{Owner: owner1, Collection: "bags"},
		{Owner: owner2, Collection: "bags"},
	}, kk)

	require.NoError(t, s.DeleteCollectionItem(ctx, owner1, "bags", entity2))
	require.ErrorIs(t, s.DeleteCollectionItem(ctx, owner1, "bags", entity2), storage.ErrNotFound)
}

func TestPg_SetPrimaryExclusive(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.AddCollectionItem(ctx, &entities.CollectionItem{
		ID: entity1, Owner: owner1, Collection: "bags", IsPrimary: true, CreatedAt: time.Unix(100, 0),
	}))
	require.NoError(t, s.AddCollectionItem(ctx, &entities.CollectionItem{
		ID: entity2, Owner: owner1, Collection: "bags", IsPrimary: true, CreatedAt: time.Unix(200, 0),
	}))
	require.NoError(t, s.AddCollectionItem(ctx, &entities.CollectionItem{
		ID: entity3, Owner: owner1, Collection: "bags", IsPrimary: false, CreatedAt: time.Unix(300, 0),
	}))

	// demote entity2, promote entity3
	changed, err := s.SetPrimaryExclusive(ctx, owner1, "bags", entity3)
	require.NoError(t, err)
	require.EqualValues(t, 3, changed)

	ii, err := s.ListCollectionItems(ctx, owner1, "bags")
	require.NoError(t, err)
	for _, v := range ii {
		assert.Equal(t, v.ID == entity3, v.IsPrimary)
	}

	// idempotent
	changed, err = s.SetPrimaryExclusive(ctx, owner1, "bags", entity3)
	require.NoError(t, err)
	require.Zero(t, changed)
}

func TestPg_UserActions(t *testing.T) {
	defer cleanup(t)

	counts, err := s.GetUserActionCounts(ctx, actor1)
	require.NoError(t, err)
	require.Empty(t, counts)

	require.NoError(t, s.AddUserAction(ctx, actor1, entities.ActionTeeGiven, 1))
	require.NoError(t, s.AddUserAction(ctx, actor1, entities.ActionTeeGiven, 2))
	require.NoError(t, s.AddUserAction(ctx, actor1, entities.ActionFollowGiven, 1))
	require.NoError(t, s.AddUserAction(ctx, actor2, entities.ActionTeeGiven, 5))

	counts, err = s.GetUserActionCounts(ctx, actor1)
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{
		entities.ActionTeeGiven:    3,
		entities.ActionFollowGiven: 1,
	}, counts)
}

func TestPg_Badges(t *testing.T) {
	defer cleanup(t)

	_, err := db.ExecContext(ctx, `
		INSERT INTO badge_criterion(badge_id, criteria_type, threshold, parameters)
		VALUES ('first-tee', 'tee_given', 1, '{}'), ('socialite', 'follow_given', 10, '{"tier": "gold"}')
	`)
	require.NoError(t, err)

	cc, err := s.ListBadgeCriteria(ctx)
	require.NoError(t, err)
	require.Len(t, cc, 2)
	assert.Equal(t, "first-tee", cc[0].BadgeID)
	assert.Equal(t, entities.ActionTeeGiven, cc[0].Type)
	assert.EqualValues(t, 1, cc[0].Threshold)
	assert.JSONEq(t, `{"tier": "gold"}`, string(cc[1].Parameters))

	created, err := s.CreateBadgeAward(ctx, actor1, "first-tee", time.Unix(100, 0))
	require.NoError(t, err)
	require.True(t, created)

	// at most once per (user, badge)
	created, err = s.CreateBadgeAward(ctx, actor1, "first-tee", time.Unix(200, 0))
	require.NoError(t, err)
	require.False(t, created)

	_, err = s.CreateBadgeAward(ctx, actor1, "socialite", time.Unix(300, 0))
	require.NoError(t, err)
	_, err = s.CreateBadgeAward(ctx, actor2, "first-tee", time.Unix(400, 0))
	require.NoError(t, err)

	aa, err := s.ListBadgeAwards(ctx, actor1)
	require.NoError(t, err)
	require.Len(t, aa, 2)
	assert.Equal(t, "first-tee", aa[0].BadgeID)
	assert.EqualValues(t, 100, aa[0].EarnedAt.Unix())
	assert.Equal(t, "socialite", aa[1].BadgeID)

	aa, err = s.ListBadgeAwardsSince(ctx, time.Unix(300, 0), 10)
	require.NoError(t, err)
	require.Len(t, aa, 2)
	assert.Equal(t, "socialite", aa[0].BadgeID)
	assert.Equal(t, actor2, aa[1].UserID)
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		require.NoError(t, tx.LockEntity(ctx, entity1))

		// reentrant, reuses the same transaction
		return tx.InTx(ctx, func(tx storage.Storage) error {
			return tx.AddUserAction(ctx, actor1, entities.ActionTeeGiven, 1)
		})
	}))

	counts, err := s.GetUserActionCounts(ctx, actor1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[entities.ActionTeeGiven])

	// a failed transaction is rolled back
	errBoom := errors.New("boom")
	require.ErrorIs(t, s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.AddUserAction(ctx, actor1, entities.ActionTeeGiven, 1); err != nil {
			return err
		}
		return errBoom
	}), errBoom)

	counts, err = s.GetUserActionCounts(ctx, actor1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[entities.ActionTeeGiven])
}

func TestPg_InTx_savepoint(t *testing.T) {
	defer cleanup(t)

	errBoom := errors.New("boom")

	// a failed nested callback rolls back alone, the enclosing transaction
	// keeps working and commits
	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		require.ErrorIs(t, tx.InTx(ctx, func(tx storage.Storage) error {
			if err := tx.AddUserAction(ctx, actor2, entities.ActionTeeGiven, 1); err != nil {
				return err
			}
			return errBoom
		}), errBoom)

		return tx.AddUserAction(ctx, actor1, entities.ActionTeeGiven, 1)
	}))

	counts, err := s.GetUserActionCounts(ctx, actor1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[entities.ActionTeeGiven])

	counts, err = s.GetUserActionCounts(ctx, actor2)
	require.NoError(t, err)
	require.Empty(t, counts)
}

func TestPg_InTx_savepointKeepsTxUsableAfterSQLError(t *testing.T) {
	defer cleanup(t)

	require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
		// violates the entity kind check and would normally abort the
		// transaction
		require.Error(t, tx.InTx(ctx, func(tx storage.Storage) error {
			return tx.CreateEntity(ctx, &storage.CreateEntityParams{
				ID:        entity1,
				Kind:      "garbage",
				Owner:     owner1,
				CreatedAt: time.Unix(100, 0),
			})
		}))

		return tx.AddUserAction(ctx, actor1, entities.ActionTeeGiven, 1)
	}))

	counts, err := s.GetUserActionCounts(ctx, actor1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts[entities.ActionTeeGiven])
}
