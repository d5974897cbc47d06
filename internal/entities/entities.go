// Package entities contains main entities of service.
package entities

import (
	"encoding/json"
	"time"
)

// EntityKind is a kind of scorable content entity.
type EntityKind string

const (
	// PostKind ...
	PostKind EntityKind = "post"
	// BagKind ...
	BagKind EntityKind = "bag"
	// ThreadKind ...
	ThreadKind EntityKind = "thread"
)

// Valid reports whether k is a known scorable kind.
func (k EntityKind) Valid() bool {
	switch k {
	case PostKind, BagKind, ThreadKind:
		return true
	}
	return false
}

// EventType is a type of engagement event.
type EventType string

const (
	// LikeEvent ...
	LikeEvent EventType = "like"
	// UnlikeEvent logically cancels a prior like by the same actor.
	UnlikeEvent EventType = "unlike"
	// FollowEvent ...
	FollowEvent EventType = "follow"
	// UnfollowEvent ...
	UnfollowEvent EventType = "unfollow"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case LikeEvent, UnlikeEvent, FollowEvent, UnfollowEvent:
		return true
	}
	return false
}

// Action types tracked by user action aggregates.
const (
	ActionTeeGiven       = "tee_given"
	ActionTeeReceived    = "tee_received"
	ActionFollowGiven    = "follow_given"
	ActionFollowerGained = "follower_gained"
)

// ScorableEntity is a content entity which participates in ranking.
// HotScore is a cache derived from the event log, never authoritative state.
type ScorableEntity struct {
	ID           string
	Kind         EntityKind
	Owner        string
	CreatedAt    time.Time
	Boost        float64
	HotScore     float64
	LastScoredAt time.Time
}

// EngagementEvent is an immutable record of a user action.
// ID is assigned by the event log and defines processing order.
type EngagementEvent struct {
	ID         uint64
	EntityID   string
	EntityKind string
	ActorID    string
	Type       EventType
	OccurredAt time.Time
}

// CollectionItem is an item of an owner's collection, at most one of which
// is flagged primary per (owner, collection).
type CollectionItem struct {
	ID         string
	Owner      string
	Collection string
	IsPrimary  bool
	CreatedAt  time.Time
}

// BadgeCriterion is a threshold rule over a user action aggregate.
type BadgeCriterion struct {
	BadgeID    string
	Type       string
	Threshold  uint64
	Parameters json.RawMessage
}

// BadgeAward is created at most once per (user, badge).
type BadgeAward struct {
	UserID   string
	BadgeID  string
	EarnedAt time.Time
}
