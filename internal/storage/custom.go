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

// customBackend speaks the generic REST dialect: GET/PUT {base}/items/{key}
// with an optional Bearer token. syncd implements the server side.
type customBackend struct {
	baseURL string
	apiKey  string
}

func newCustomBackend(rawURL, apiKey string) *customBackend {
	return &customBackend{baseURL: strings.TrimRight(rawURL, "/"), apiKey: apiKey}
}

func (b *customBackend) endpoint(key string) string {
	return fmt.Sprintf("%s/items/%s", b.baseURL, url.PathEscape(key))
}

func (b *customBackend) setHeaders(req *http.Request) {
	if b.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+b.apiKey)
	}
	req.Header.Set("Content-Type", "application/json")
}

func (b *customBackend) GetRecord(ctx context.Context, key string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint(key), nil)
	if err != nil {
		return nil, err
	}
	b.setHeaders(req)
	resp, body, err := do(req)
	if err != nil {
		return nil, err
	}
	// 404 means the key has never been written, not a broken backend
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusErr(resp.StatusCode, body)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
	}
	return json.RawMessage(body), nil
}

func (b *customBackend) PutRecord(ctx context.Context, key string, value json.RawMessage) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, b.endpoint(key), bytes.NewReader(value))
	if err != nil {
		return err
	}
	b.setHeaders(req)
	resp, body, err := do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusErr(resp.StatusCode, body)
	}
	return nil
}
