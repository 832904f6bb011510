package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// firebaseBackend speaks REST against a Realtime-Database-style tree where
// each record lives at /items/{key}.json as a raw JSON value.
type firebaseBackend struct {
	baseURL string
	apiKey  string
}

func newFirebaseBackend(rawURL, apiKey string) *firebaseBackend {
	return &firebaseBackend{baseURL: strings.TrimRight(rawURL, "/"), apiKey: apiKey}
}

func (b *firebaseBackend) endpoint(key string) string {
	u := fmt.Sprintf("%s/items/%s.json", b.baseURL, url.PathEscape(key))
	if b.apiKey != "" {
		u += "?auth=" + url.QueryEscape(b.apiKey)
	}
	return u
}

func (b *firebaseBackend) GetRecord(ctx context.Context, key string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint(key), nil)
	if err != nil {
		return nil, err
	}
	resp, body, err := do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusErr(resp.StatusCode, body)
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil, ErrNotFound
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
	}
	return json.RawMessage(trimmed), nil
}

// PutRecord is a full overwrite: Realtime Database PUT replaces the node.
func (b *firebaseBackend) PutRecord(ctx context.Context, key string, value json.RawMessage) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, b.endpoint(key), bytes.NewReader(value))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, body, err := do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusErr(resp.StatusCode, body)
	}
	return nil
}
