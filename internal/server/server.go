// Package server Engage
//
// The Engage service aggregates engagement events into counters, hot scores
// and badge awards, and serves ranking queries over scored entities.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chim "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	mm "github.com/brettericmartin/tee-club-engine/internal/middleware"
	"github.com/brettericmartin/tee-club-engine/internal/storage"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

var log = logrus.WithField("package", "server")

const maxBodySize = 4096

type server struct {
	s storage.Storage
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s storage.Storage, r chi.Router, timeout time.Duration, cache mm.Storage, cacheTTL time.Duration) {
	r.Use(
		mm.Logger,
		chim.StripSlashes,
		cors.AllowAll().Handler,
		chim.RequestID,
		chim.Recoverer,
		chim.Timeout(timeout),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/events", srv.createEvent)
		r.Post("/entities", srv.createEntity)
		r.Put("/entities/{id}/boost", srv.setBoost)
		r.Get("/entities/{id}/score", srv.getScore)
		r.Get("/rank", mm.Cached(cache, cacheTTL, srv.listRank))
		r.Get("/users/{id}/badges", srv.listUserBadges)
		r.Get("/badges/awards", srv.listBadgeAwards)
		r.Post("/owners/{owner}/collections/{collection}/items", srv.addCollectionItem)
		r.Delete("/owners/{owner}/collections/{collection}/items/{id}", srv.deleteCollectionItem)
	})
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	data, _ := json.Marshal(v) // nolint: errcheck
	w.Write(data)              // nolint: errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeOK(w, status, Error{Error: msg})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter, msg string) {
	log.WithField("request_id", chim.GetReqID(ctx)).Error(msg)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v)
}
