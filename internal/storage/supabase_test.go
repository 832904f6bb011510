package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupabase_URLNormalization(t *testing.T) {
	b := newSupabaseBackend("https://proj.supabase.co", "k")
	assert.Equal(t, "https://proj.supabase.co/rest/v1", b.baseURL)

	b = newSupabaseBackend("https://proj.supabase.co/rest/v1/", "k")
	assert.Equal(t, "https://proj.supabase.co/rest/v1", b.baseURL)
}

func TestSupabase_GetRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/items", r.URL.Path)
		assert.Equal(t, "eq.settings", r.URL.Query().Get("key"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"key":"settings","value":{"theme":"dark"},"created_at":"2024-01-01T00:00:00Z","updated_at":"2024-01-02T00:00:00Z"}]`))
	}))
	defer ts.Close()

	b := newSupabaseBackend(ts.URL, "anon-key")
	v, err := b.GetRecord(context.Background(), "settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(v))
}

func TestSupabase_GetRecord_EmptyArrayIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	b := newSupabaseBackend(ts.URL, "k")
	_, err := b.GetRecord(context.Background(), "vault")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSupabase_GetRecord_Malformed(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer ts.Close()

	b := newSupabaseBackend(ts.URL, "k")
	_, err := b.GetRecord(context.Background(), "vault")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestSupabase_GetRecord_4xxIsAuthError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	b := newSupabaseBackend(ts.URL, "bad")
	_, err := b.GetRecord(context.Background(), "vault")
	assert.ErrorIs(t, err, ErrAuth)
}

func TestSupabase_PutRecord_PostWhenAbsent(t *testing.T) {
	var posted map[string]json.RawMessage
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[]`))
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &posted))
			w.WriteHeader(http.StatusCreated)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer ts.Close()

	b := newSupabaseBackend(ts.URL, "k")
	require.NoError(t, b.PutRecord(context.Background(), "vault", json.RawMessage(`[{"id":"1"}]`)))
	require.NotNil(t, posted)
	assert.JSONEq(t, `"vault"`, string(posted["key"]))
	assert.JSONEq(t, `[{"id":"1"}]`, string(posted["value"]))
	assert.NotEmpty(t, posted["created_at"])
	assert.NotEmpty(t, posted["updated_at"])
}

func TestSupabase_PutRecord_PatchWhenPresent(t *testing.T) {
	var patched map[string]json.RawMessage
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`[{"key":"vault","value":[]}]`))
		case http.MethodPatch:
			assert.Equal(t, "eq.vault", r.URL.Query().Get("key"))
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &patched))
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer ts.Close()

	b := newSupabaseBackend(ts.URL, "k")
	require.NoError(t, b.PutRecord(context.Background(), "vault", json.RawMessage(`[1]`)))
	require.NotNil(t, patched)
	assert.JSONEq(t, `[1]`, string(patched["value"]))
	assert.NotEmpty(t, patched["updated_at"])
	_, hasCreated := patched["created_at"]
	assert.False(t, hasCreated, "PATCH must not touch created_at")
}

func TestSupabase_MissingAPIKeyOmitsHeaders(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("apikey"))
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	b := newSupabaseBackend(ts.URL, "")
	_, err := b.GetRecord(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotFound)
}
