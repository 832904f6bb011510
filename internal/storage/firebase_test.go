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

func TestFirebase_GetRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/settings.json", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("auth"))
		_, _ = w.Write([]byte(`{"theme":"dark"}`))
	}))
	defer ts.Close()

	b := newFirebaseBackend(ts.URL+"/", "secret")
	v, err := b.GetRecord(context.Background(), "settings")
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(v))
}

func TestFirebase_NullBodyIsNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("null"))
	}))
	defer ts.Close()

	b := newFirebaseBackend(ts.URL, "k")
	_, err := b.GetRecord(context.Background(), "vault")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFirebase_PutRecord_FullOverwrite(t *testing.T) {
	var gotBody []byte
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/items/vault.json", r.URL.Path)
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write(gotBody)
	}))
	defer ts.Close()

	b := newFirebaseBackend(ts.URL, "k")
	value := json.RawMessage(`[{"id":"1"}]`)
	require.NoError(t, b.PutRecord(context.Background(), "vault", value))
	assert.JSONEq(t, string(value), string(gotBody))
}

func TestFirebase_MissingAPIKeyOmitsAuthParam(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["auth"]
		assert.False(t, present, "auth param must be omitted without an apiKey")
		_, _ = w.Write([]byte(`1`))
	}))
	defer ts.Close()

	b := newFirebaseBackend(ts.URL, "")
	_, err := b.GetRecord(context.Background(), "x")
	assert.NoError(t, err)
}

func TestFirebase_PermissionDeniedIsAuthError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"Permission denied"}`))
	}))
	defer ts.Close()

	b := newFirebaseBackend(ts.URL, "bad")
	_, err := b.GetRecord(context.Background(), "x")
	assert.ErrorIs(t, err, ErrAuth)
}
