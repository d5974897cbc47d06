package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brettericmartin/tee-club-engine/internal/middleware/memory"
)

func TestCached(t *testing.T) {
	var calls int
	h := Cached(memory.NewStorage(), time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("content")) // nolint: errcheck
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/rank?kind=post", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "content", w.Body.String())
	}

	assert.Equal(t, 1, calls)
}

func TestCached_skipsErrors(t *testing.T) {
	var calls int
	h := Cached(memory.NewStorage(), time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/rank?kind=post", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
	}

	assert.Equal(t, 2, calls)
}
