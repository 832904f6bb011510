// Package syncserver implements the custom REST sync dialect: a self-hostable
// key→value mirror speaking GET/PUT /items/{key} with optional static Bearer
// auth and a /test health endpoint.
package syncserver

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// record is one stored key→value pair.
type record struct {
	Value     json.RawMessage `json:"value"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MemStore holds records in memory. Last writer wins; there is no merge.
type MemStore struct {
	mu      sync.RWMutex
	records map[string]record
}

func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]record)}
}

// Get returns the value for key, or false.
func (m *MemStore) Get(key string) (json.RawMessage, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[key]
	return rec.Value, ok
}

// Put overwrites the value for key, preserving CreatedAt on update.
func (m *MemStore) Put(key string, value json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now().UTC()
	rec, ok := m.records[key]
	if !ok {
		rec.CreatedAt = now
	}
	rec.Value = value
	rec.UpdatedAt = now
	m.records[key] = rec
}

// NewRouter builds the HTTP handler. apiKey empty disables auth.
func NewRouter(store *MemStore, apiKey string, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)

	r.Get("/test", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, map[string]string{"status": "ok"})
	})

	r.Group(func(items chi.Router) {
		if apiKey != "" {
			items.Use(bearerAuth(apiKey, lg))
		}
		items.Get("/items/{key}", getItem(store))
		items.Put("/items/{key}", putItem(store, lg))
	})

	return r
}

func bearerAuth(apiKey string, lg *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer "+apiKey {
				lg.Warnw("rejected request with bad credentials", "path", r.URL.Path)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func getItem(store *MemStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		value, ok := store.Get(key)
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(value)
	}
}

func putItem(store *MemStore, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		body, err := io.ReadAll(r.Body)
		if err != nil || !json.Valid(body) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		store.Put(key, body)
		lg.Debugw("stored record", "key", key, "bytes", len(body))
		w.WriteHeader(http.StatusNoContent)
	}
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
