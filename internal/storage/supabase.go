package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// supabaseBackend speaks REST-over-PostgREST against an `items` table with
// key/value/created_at/updated_at columns.
type supabaseBackend struct {
	baseURL string
	apiKey  string
}

func newSupabaseBackend(rawURL, apiKey string) *supabaseBackend {
	u := strings.TrimRight(rawURL, "/")
	if !strings.HasSuffix(u, "/rest/v1") {
		u += "/rest/v1"
	}
	return &supabaseBackend{baseURL: u, apiKey: apiKey}
}

func (b *supabaseBackend) setHeaders(req *http.Request) {
	if b.apiKey != "" {
		req.Header.Set("apikey", b.apiKey)
		req.Header.Set("Authorization", "Bearer "+b.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")
}

type supabaseRow struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

func (b *supabaseBackend) GetRecord(ctx context.Context, key string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/items?key=eq.%s", b.baseURL, url.QueryEscape(key))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	b.setHeaders(req)
	resp, body, err := do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusErr(resp.StatusCode, body)
	}
	var rows []supabaseRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	if len(rows[0].Value) == 0 {
		return nil, fmt.Errorf("%w: row has no value field", ErrMalformedResponse)
	}
	return rows[0].Value, nil
}

// PutRecord follows the check-then-PATCH-or-POST pattern: PostgREST has no
// single-call upsert without extra Prefer semantics the original avoids.
func (b *supabaseBackend) PutRecord(ctx context.Context, key string, value json.RawMessage) error {
	_, err := b.GetRecord(ctx, key)
	exists := err == nil
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	var (
		method   string
		endpoint string
		payload  any
	)
	if exists {
		method = http.MethodPatch
		endpoint = fmt.Sprintf("%s/items?key=eq.%s", b.baseURL, url.QueryEscape(key))
		payload = map[string]any{"value": value, "updated_at": now}
	} else {
		method = http.MethodPost
		endpoint = b.baseURL + "/items"
		payload = map[string]any{"key": key, "value": value, "created_at": now, "updated_at": now}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	b.setHeaders(req)
	resp, respBody, err := do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusErr(resp.StatusCode, respBody)
	}
	return nil
}
