package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"passliss/internal/model"
)

// Backend is one remote key→record dialect. Implementations must treat a
// missing apiKey as "no auth", not an error.
type Backend interface {
	// GetRecord fetches the value stored under key, or ErrNotFound.
	GetRecord(ctx context.Context, key string) (json.RawMessage, error)
	// PutRecord stores value under key, overwriting any previous value.
	PutRecord(ctx context.Context, key string, value json.RawMessage) error
}

// httpClient is shared by all adapters. Remote mirroring is best-effort, so a
// bounded timeout beats inheriting the unbounded default.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// BackendFromSettings returns the configured adapter, or nil when sync is
// disabled. A nil Backend keeps the Store purely local: no request is ever
// issued.
func BackendFromSettings(cfg model.DbConnectionConfig) (Backend, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	return NewBackend(cfg)
}

// NewBackend builds the adapter matching cfg.Type, or ErrUnsupported.
func NewBackend(cfg model.DbConnectionConfig) (Backend, error) {
	switch cfg.Type {
	case model.BackendSupabase:
		return newSupabaseBackend(cfg.URL, cfg.APIKey), nil
	case model.BackendFirebase:
		return newFirebaseBackend(cfg.URL, cfg.APIKey), nil
	case model.BackendCustom:
		return newCustomBackend(cfg.URL, cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, cfg.Type)
	}
}

// do executes a request and reads the full body.
func do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp, body, nil
}

// statusErr classifies a non-2xx response: 4xx is an auth/permission problem,
// everything else a generic remote failure.
func statusErr(code int, body []byte) error {
	if code >= 400 && code < 500 {
		return fmt.Errorf("%w (status %d)", ErrAuth, code)
	}
	return fmt.Errorf("remote returned status %d: %s", code, string(body))
}
