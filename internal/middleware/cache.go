// Package middleware contains http middlewares.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"
)

// Storage is a cache backend for Cached.
type Storage interface {
	Get(key string) []byte
	Set(key string, content []byte, ttl time.Duration)
}

// Cached serves a stored copy of the response while it is fresh.
// Only successful responses are stored.
func Cached(s Storage, ttl time.Duration, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if content := s.Get(r.RequestURI); content != nil {
			_, _ = w.Write(content)
			return
		}

		c := httptest.NewRecorder()
		handler(c, r)

		for k, v := range c.Header() {
			w.Header()[k] = v
		}

		w.WriteHeader(c.Code)
		content := c.Body.Bytes()

		if c.Code == http.StatusOK {
			s.Set(r.RequestURI, content, ttl)
		}

		_, _ = w.Write(content)
	}
}
