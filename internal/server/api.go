package server

const maxLimit = 100
const defaultLimit = 20

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// CreateEventRequest ...
type CreateEventRequest struct {
	EntityID   string `json:"entityId"`
	EntityKind string `json:"entityKind"`
	ActorID    string `json:"actorId"`
	EventType  string `json:"eventType"`
	OccurredAt int64  `json:"occurredAt"`
}

// CreateEventResponse ...
type CreateEventResponse struct {
	Duplicate bool `json:"duplicate"`
}

// CreateEntityRequest ...
type CreateEntityRequest struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	Owner     string   `json:"owner"`
	CreatedAt int64    `json:"createdAt"`
	Boost     *float64 `json:"boost,omitempty"`
}

// SetBoostRequest ...
type SetBoostRequest struct {
	Boost float64 `json:"boost"`
}

// ScoreResponse ...
type ScoreResponse struct {
	HotScore     float64 `json:"hotScore"`
	LastScoredAt int64   `json:"lastScoredAt"`
	Likes        uint64  `json:"likes"`
}

// RankItem ...
type RankItem struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"`
	Owner     string  `json:"owner"`
	Likes     uint64  `json:"likes"`
	HotScore  float64 `json:"hotScore"`
	Boost     float64 `json:"boost"`
	CreatedAt int64   `json:"createdAt"`
}

// RankResponse ...
// swagger:model
type RankResponse struct {
	Items []RankItem `json:"items"`
	// NextCursor is passed as the cursor parameter to fetch the next page.
	// Empty when there are no more pages.
	NextCursor string `json:"nextCursor,omitempty"`
}

// BadgeAwardItem ...
type BadgeAwardItem struct {
	UserID   string `json:"userId"`
	BadgeID  string `json:"badgeId"`
	EarnedAt int64  `json:"earnedAt"`
}

// AddCollectionItemRequest ...
type AddCollectionItemRequest struct {
	ID        string `json:"id"`
	CreatedAt int64  `json:"createdAt"`
	IsPrimary bool   `json:"isPrimary"`
}
