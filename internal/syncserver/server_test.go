package syncserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"passliss/internal/model"
	"passliss/internal/storage"
)

func newTestServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(NewRouter(NewMemStore(), apiKey, zap.NewNop().Sugar()))
	t.Cleanup(ts.Close)
	return ts
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, "")
	resp, err := http.Get(ts.URL + "/test")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestGetMissingKeyIs404(t *testing.T) {
	ts := newTestServer(t, "")
	resp, err := http.Get(ts.URL + "/items/vault")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPutThenGet(t *testing.T) {
	ts := newTestServer(t, "")

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/items/vault", strings.NewReader(`[{"id":"1"}]`))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/items/vault")
	require.NoError(t, err)
	defer resp.Body.Close()
	var got []map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0]["id"])
}

func TestPutRejectsInvalidJSON(t *testing.T) {
	ts := newTestServer(t, "")
	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/items/vault", strings.NewReader(`{broken`))
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBearerAuth(t *testing.T) {
	ts := newTestServer(t, "sekrit")

	// health stays open
	resp, err := http.Get(ts.URL + "/test")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// items require the key
	resp, err = http.Get(ts.URL + "/items/vault")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/items/vault", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// The custom backend adapter and the server must agree end to end.
func TestCustomAdapterAgainstServer(t *testing.T) {
	ts := newTestServer(t, "sekrit")

	backend, err := storage.NewBackend(model.DbConnectionConfig{
		Type: model.BackendCustom, URL: ts.URL, APIKey: "sekrit", Enabled: true,
	})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = backend.GetRecord(ctx, "settings")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	value := json.RawMessage(`{"theme":"dark"}`)
	require.NoError(t, backend.PutRecord(ctx, "settings", value))

	got, err := backend.GetRecord(ctx, "settings")
	require.NoError(t, err)
	assert.JSONEq(t, string(value), string(got))
}

func TestConnectionTesterAgainstServer(t *testing.T) {
	ts := newTestServer(t, "")
	res := storage.TestConnection(context.Background(), model.DbConnectionConfig{
		Type: model.BackendCustom, URL: ts.URL, Enabled: true,
	})
	assert.True(t, res.Success, res.Message)
}
