// Package storage contains a storage interface.
package storage

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/brettericmartin/tee-club-engine/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage provides methods for interacting with database.
//
// InTx is reentrant: calling it on a Storage which is already running inside
// a transaction scopes the callback to a savepoint of the same transaction,
// so a failed callback does not poison the statements around it.
// Lock* methods take transaction-scoped advisory locks and are only valid
// inside InTx or WithLockedOffset.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	WithLockedOffset(ctx context.Context, f func(s Storage, offset uint64) (uint64, error)) error
	GetOffset(ctx context.Context) (uint64, error)

	LockEntity(ctx context.Context, entityID string) error
	LockOwner(ctx context.Context, owner, collection string) error

	CreateEvent(ctx context.Context, e *entities.EngagementEvent) (bool, error)
	ListEventsAfter(ctx context.Context, after uint64, limit int) ([]*entities.EngagementEvent, error)
	GetLastEvent(ctx context.Context, entityID, actorID string, before uint64, types ...entities.EventType) (*entities.EngagementEvent, error)
	CountActiveLikes(ctx context.Context, entityID string) (uint64, error)
	CountLikeWindows(ctx context.Context, entityID string, now time.Time) (WindowCounts, error)
	ListEngagedEntityIDs(ctx context.Context, afterID uint64, limit int) ([]string, uint64, error)

	CreateEntity(ctx context.Context, p *CreateEntityParams) error
	GetEntity(ctx context.Context, id string) (*entities.ScorableEntity, error)
	SetBoost(ctx context.Context, id string, boost float64) error
	SetHotScore(ctx context.Context, id string, score float64, at time.Time) error
	ListStaleEntityIDs(ctx context.Context, scoredBefore time.Time, limit int) ([]string, error)
	ListEntities(ctx context.Context, p *ListEntitiesParams) ([]*RankedEntity, error)

	GetCounter(ctx context.Context, entityID string) (uint64, error)
	SetCounter(ctx context.Context, entityID string, count uint64) (bool, error)
	AdjustCounter(ctx context.Context, entityID string, delta int64) (uint64, error)

	AddCollectionItem(ctx context.Context, item *entities.CollectionItem) error
	DeleteCollectionItem(ctx context.Context, owner, collection, id string) error
	ListCollectionItems(ctx context.Context, owner, collection string) ([]*entities.CollectionItem, error)
	SetPrimaryExclusive(ctx context.Context, owner, collection, itemID string) (int64, error)
	ListCollections(ctx context.Context) ([]CollectionKey, error)

	AddUserAction(ctx context.Context, userID, action string, delta uint64) error
	GetUserActionCounts(ctx context.Context, userID string) (map[string]uint64, error)

	ListBadgeCriteria(ctx context.Context) ([]*entities.BadgeCriterion, error)
	CreateBadgeAward(ctx context.Context, userID, badgeID string, earnedAt time.Time) (bool, error)
	ListBadgeAwards(ctx context.Context, userID string) ([]*entities.BadgeAward, error)
	ListBadgeAwardsSince(ctx context.Context, since time.Time, limit int) ([]*entities.BadgeAward, error)
}

// SortType ...
type SortType string

const (
	// HotSortType orders by hot score.
	HotSortType SortType = "hot"
	// NewSortType orders by creation time.
	NewSortType SortType = "new"
	// TopSortType orders by lifetime engagement counter.
	TopSortType SortType = "top"
)

// Valid ...
func (t SortType) Valid() bool {
	switch t {
	case HotSortType, NewSortType, TopSortType:
		return true
	}
	return false
}

// WindowCounts are cumulative like-event counts over trailing windows:
// an event in the last hour is counted in all three.
type WindowCounts struct {
	Hour uint64
	Day  uint64
	Week uint64
}

// CreateEntityParams ...
type CreateEntityParams struct {
	ID        string
	Kind      entities.EntityKind
	Owner     string
	CreatedAt time.Time
	Boost     float64
}

// RankedEntity is an entity with its denormalized engagement counter.
type RankedEntity struct {
	entities.ScorableEntity
	Likes uint64
}

// CollectionKey identifies one owner's collection.
type CollectionKey struct {
	Owner      string
	Collection string
}

// ListEntitiesParams ...
type ListEntitiesParams struct {
	Kind  entities.EntityKind
	Sort  SortType
	Limit uint16
	After *Cursor
}

// Cursor is a stable pagination cursor: the sort key captured when the page
// was served plus the last returned id, so concurrent score changes do not
// skip or duplicate rows mid-scroll.
type Cursor struct {
	Sort      SortType  `json:"sort"`
	Score     float64   `json:"score,omitempty"`
	Count     uint64    `json:"count,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
}

// Encode returns an opaque representation of the cursor.
func (c Cursor) Encode() string {
	b, _ := json.Marshal(c) // nolint: errcheck
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeCursor parses a cursor produced by Encode.
func DecodeCursor(s string) (*Cursor, error) {
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cursor: %w", err)
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cursor: %w", err)
	}

	return &c, nil
}
