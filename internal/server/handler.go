package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	"github.com/google/uuid"

	"github.com/brettericmartin/tee-club-engine/internal/entities"
	"github.com/brettericmartin/tee-club-engine/internal/metrics"
	"github.com/brettericmartin/tee-club-engine/internal/primary"
	"github.com/brettericmartin/tee-club-engine/internal/storage"
)

var errInvalidRequest = errors.New("invalid request")

func (s server) createEvent(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /events Engagement CreateEvent
	//
	// Record an engagement event.
	//
	// Idempotent on (entityId, actorId, eventType, occurredAt), so at-least-once
	// delivery is safe.
	//
	// ---
	// responses:
	//   '202':
	//     description: Accepted
	//     schema:
	//       "$ref": "#/definitions/CreateEventResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreateEventRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode body")
		return
	}

	if _, err := uuid.Parse(req.EntityID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid entityId")
		return
	}
	if _, err := uuid.Parse(req.ActorID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid actorId")
		return
	}

	t := entities.EventType(req.EventType)
	if !t.Valid() {
		writeError(w, http.StatusBadRequest, "invalid eventType")
		return
	}

	kind := req.EntityKind
	switch t {
	case entities.LikeEvent, entities.UnlikeEvent:
		if !entities.EntityKind(kind).Valid() {
			writeError(w, http.StatusBadRequest, "invalid entityKind")
			return
		}
	case entities.FollowEvent, entities.UnfollowEvent:
		// entity of a follow event is the followee
		kind = "user"
	}

	if req.OccurredAt <= 0 {
		writeError(w, http.StatusBadRequest, "invalid occurredAt")
		return
	}

	created, err := s.s.CreateEvent(r.Context(), &entities.EngagementEvent{
		EntityID:   req.EntityID,
		EntityKind: kind,
		ActorID:    req.ActorID,
		Type:       t,
		OccurredAt: time.Unix(req.OccurredAt, 0),
	})
	if err != nil {
		writeInternalError(r.Context(), w, "failed to create event: "+err.Error())
		return
	}

	writeOK(w, http.StatusAccepted, CreateEventResponse{Duplicate: !created})
}

func (s server) createEntity(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /entities Entities CreateEntity
	//
	// Register a scorable entity.
	//
	// ---
	// responses:
	//   '201':
	//     description: Created
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req CreateEntityRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode body")
		return
	}

	if _, err := uuid.Parse(req.ID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, err := uuid.Parse(req.Owner); err != nil {
		writeError(w, http.StatusBadRequest, "invalid owner")
		return
	}
	if !entities.EntityKind(req.Kind).Valid() {
		writeError(w, http.StatusBadRequest, "invalid kind")
		return
	}
	if req.CreatedAt <= 0 {
		writeError(w, http.StatusBadRequest, "invalid createdAt")
		return
	}

	boost := 1.0
	if req.Boost != nil {
		if *req.Boost < 0 {
			writeError(w, http.StatusBadRequest, "invalid boost")
			return
		}
		boost = *req.Boost
	}

	if err := s.s.CreateEntity(r.Context(), &storage.CreateEntityParams{
		ID:        req.ID,
		Kind:      entities.EntityKind(req.Kind),
		Owner:     req.Owner,
		CreatedAt: time.Unix(req.CreatedAt, 0),
		Boost:     boost,
	}); err != nil {
		writeInternalError(r.Context(), w, "failed to create entity: "+err.Error())
		return
	}

	writeOK(w, http.StatusCreated, struct{}{})
}

func (s server) setBoost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /entities/{id}/boost Entities SetBoost
	//
	// Override the ranking boost of an entity. Administrative write path,
	// separate from the engagement pipeline.
	//
	// ---
	// responses:
	//   '200':
	//     description: OK
	//   '404':
	//     description: entity not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	id := chi.URLParam(r, "id")

	var req SetBoostRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode body")
		return
	}

	if req.Boost < 0 {
		writeError(w, http.StatusBadRequest, "invalid boost")
		return
	}

	if err := s.s.SetBoost(r.Context(), id, req.Boost); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "entity not found")
			return
		}
		writeInternalError(r.Context(), w, "failed to set boost: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func (s server) getScore(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /entities/{id}/score Entities GetScore
	//
	// Get the hot score of an entity. A stale score is served as-is.
	//
	// ---
	// responses:
	//   '200':
	//     description: Score
	//     schema:
	//       "$ref": "#/definitions/ScoreResponse"
	//   '404':
	//     description: entity not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	e, err := s.s.GetEntity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "entity not found")
			return
		}
		writeInternalError(r.Context(), w, "failed to get entity: "+err.Error())
		return
	}

	likes, err := s.s.GetCounter(r.Context(), e.ID)
	if err != nil {
		writeInternalError(r.Context(), w, "failed to get counter: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, ScoreResponse{
		HotScore:     e.HotScore,
		LastScoredAt: e.LastScoredAt.Unix(),
		Likes:        likes,
	})
}

func (s server) listRank(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /rank Ranking ListRank
	//
	// Return a page of ranked entities.
	//
	// ---
	// parameters:
	// - name: kind
	//   description: entity kind to rank
	//   in: query
	//   required: true
	//   type: string
	//   enum: [post, bag, thread]
	// - name: sort
	//   description: ranking order
	//   in: query
	//   required: false
	//   default: hot
	//   type: string
	//   enum: [hot, new, top]
	// - name: cursor
	//   description: opaque cursor from a previous page
	//   in: query
	//   required: false
	// - name: limit
	//   description: limits count of returned entities
	//   in: query
	//   required: false
	//   default: 20
	//   minimum: 1
	//   maximum: 100
	// responses:
	//   '200':
	//     description: Ranked entities
	//     schema:
	//       "$ref": "#/definitions/RankResponse"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	params, err := extractRankParamsFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics.RankRequests.WithLabelValues(string(params.Sort)).Inc()

	ee, err := s.s.ListEntities(r.Context(), params)
	if err != nil {
		writeInternalError(r.Context(), w, "failed to list entities: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, newRankResponse(params, ee))
}

func (s server) listUserBadges(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /users/{id}/badges Badges ListUserBadges
	//
	// Return badge awards of a user.
	//
	// ---
	// responses:
	//   '200':
	//     description: Awards
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/BadgeAwardItem"

	aa, err := s.s.ListBadgeAwards(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeInternalError(r.Context(), w, "failed to list awards: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIAwards(aa))
}

func (s server) listBadgeAwards(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /badges/awards Badges ListBadgeAwards
	//
	// Return badge awards earned since the given time, for the notification
	// collaborator.
	//
	// ---
	// parameters:
	// - name: since
	//   description: lower bound, unix seconds
	//   in: query
	//   required: false
	// - name: limit
	//   in: query
	//   required: false
	//   default: 100
	// responses:
	//   '200':
	//     description: Awards
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/BadgeAwardItem"

	var since time.Time
	if v := r.URL.Query().Get("since"); v != "" {
		sec, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to parse since")
			return
		}
		since = time.Unix(sec, 0)
	}

	limit := maxLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		l, err := strconv.ParseUint(v, 10, 16)
		if err != nil || l == 0 || l > maxLimit {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = int(l)
	}

	aa, err := s.s.ListBadgeAwardsSince(r.Context(), since, limit)
	if err != nil {
		writeInternalError(r.Context(), w, "failed to list awards: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, toAPIAwards(aa))
}

func (s server) addCollectionItem(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /owners/{owner}/collections/{collection}/items Collections AddCollectionItem
	//
	// Add an item to an owner's collection. The single-primary invariant is
	// enforced in the same transaction.
	//
	// ---
	// responses:
	//   '201':
	//     description: Created
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	owner, collection := chi.URLParam(r, "owner"), chi.URLParam(r, "collection")

	var req AddCollectionItemRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "failed to decode body")
		return
	}

	if _, err := uuid.Parse(req.ID); err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	createdAt := time.Now()
	if req.CreatedAt > 0 {
		createdAt = time.Unix(req.CreatedAt, 0)
	}

	err := s.s.InTx(r.Context(), func(tx storage.Storage) error {
		if err := tx.LockOwner(r.Context(), owner, collection); err != nil {
			return err
		}

		if err := tx.AddCollectionItem(r.Context(), &entities.CollectionItem{
			ID:         req.ID,
			Owner:      owner,
			Collection: collection,
			IsPrimary:  req.IsPrimary,
			CreatedAt:  createdAt,
		}); err != nil {
			return err
		}

		_, err := primary.New(tx, primary.Config{}).Enforce(r.Context(), owner, collection)
		return err
	})
	if err != nil {
		writeInternalError(r.Context(), w, "failed to add item: "+err.Error())
		return
	}

	writeOK(w, http.StatusCreated, struct{}{})
}

func (s server) deleteCollectionItem(w http.ResponseWriter, r *http.Request) {
	// swagger:operation DELETE /owners/{owner}/collections/{collection}/items/{id} Collections DeleteCollectionItem
	//
	// Delete an item from an owner's collection. The single-primary invariant
	// is enforced in the same transaction.
	//
	// ---
	// responses:
	//   '200':
	//     description: OK
	//   '404':
	//     description: item not found
	//     schema:
	//       "$ref": "#/definitions/Error"

	owner, collection, id := chi.URLParam(r, "owner"), chi.URLParam(r, "collection"), chi.URLParam(r, "id")

	err := s.s.InTx(r.Context(), func(tx storage.Storage) error {
		if err := tx.LockOwner(r.Context(), owner, collection); err != nil {
			return err
		}

		if err := tx.DeleteCollectionItem(r.Context(), owner, collection, id); err != nil {
			return err
		}

		_, err := primary.New(tx, primary.Config{}).Enforce(r.Context(), owner, collection)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "item not found")
			return
		}
		writeInternalError(r.Context(), w, "failed to delete item: "+err.Error())
		return
	}

	writeOK(w, http.StatusOK, struct{}{})
}

func extractRankParamsFromQuery(q url.Values) (*storage.ListEntitiesParams, error) {
	out := storage.ListEntitiesParams{
		Sort:  storage.HotSortType,
		Limit: defaultLimit,
	}

	kind := entities.EntityKind(q.Get("kind"))
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: invalid kind", errInvalidRequest)
	}
	out.Kind = kind

	if v := q.Get("sort"); v != "" {
		sort := storage.SortType(v)
		if !sort.Valid() {
			return nil, fmt.Errorf("%w: invalid sort", errInvalidRequest)
		}
		out.Sort = sort
	}

	if v := q.Get("limit"); v != "" {
		l, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to parse limit", errInvalidRequest)
		}
		if l == 0 || l > maxLimit {
			return nil, fmt.Errorf("%w: invalid limit", errInvalidRequest)
		}
		out.Limit = uint16(l)
	}

	if v := q.Get("cursor"); v != "" {
		c, err := storage.DecodeCursor(v)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid cursor", errInvalidRequest)
		}
		if c.Sort != out.Sort {
			return nil, fmt.Errorf("%w: cursor was issued for another sort", errInvalidRequest)
		}
		out.After = c
	}

	return &out, nil
}

func newRankResponse(p *storage.ListEntitiesParams, ee []*storage.RankedEntity) RankResponse {
	out := RankResponse{
		Items: make([]RankItem, len(ee)),
	}

	for i, v := range ee {
		out.Items[i] = RankItem{
			ID:        v.ID,
			Kind:      string(v.Kind),
			Owner:     v.Owner,
			Likes:     v.Likes,
			HotScore:  v.HotScore,
			Boost:     v.Boost,
			CreatedAt: v.CreatedAt.Unix(),
		}
	}

	if len(ee) == int(p.Limit) {
		last := ee[len(ee)-1]
		c := storage.Cursor{
			Sort:      p.Sort,
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		}

		switch p.Sort {
		case storage.HotSortType:
			c.Score = last.HotScore
		case storage.TopSortType:
			c.Count = last.Likes
		}

		out.NextCursor = c.Encode()
	}

	return out
}

func toAPIAwards(aa []*entities.BadgeAward) []BadgeAwardItem {
	out := make([]BadgeAwardItem, len(aa))
	for i, v := range aa {
		out[i] = BadgeAwardItem{
			UserID:   v.UserID,
			BadgeID:  v.BadgeID,
			EarnedAt: v.EarnedAt.Unix(),
		}
	}

	return out
}
