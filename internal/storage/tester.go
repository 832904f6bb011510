package storage

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"passliss/internal/model"
)

// TestResult is the advisory outcome of a connection test. It never gates
// Read/Write.
type TestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Domain markers checked before any request is sent. Overridable in tests.
var (
	supabaseMarker  = ".supabase.co"
	firebaseMarkers = []string{".firebaseio.com", ".firebasedatabase.app"}
)

const minSupabaseKeyLen = 30

// TestConnection performs a provider-specific shallow health check of cfg.
func TestConnection(ctx context.Context, cfg model.DbConnectionConfig) TestResult {
	switch cfg.Type {
	case model.BackendSupabase:
		return testSupabase(ctx, cfg)
	case model.BackendFirebase:
		return testFirebase(ctx, cfg)
	case model.BackendCustom:
		return testCustom(ctx, cfg)
	default:
		return TestResult{Message: fmt.Sprintf("unsupported backend type %q", cfg.Type)}
	}
}

func testSupabase(ctx context.Context, cfg model.DbConnectionConfig) TestResult {
	if !strings.Contains(cfg.URL, supabaseMarker) {
		return TestResult{Message: "URL does not look like a Supabase project URL"}
	}
	if len(cfg.APIKey) < minSupabaseKeyLen {
		return TestResult{Message: "API key is missing or too short to be a Supabase key"}
	}
	base := strings.TrimRight(cfg.URL, "/")
	if !strings.HasSuffix(base, "/rest/v1") {
		base += "/rest/v1"
	}
	headers := map[string]string{"apikey": cfg.APIKey, "Authorization": "Bearer " + cfg.APIKey}

	code, err := probe(ctx, http.MethodGet, base+"/", headers)
	if err != nil {
		return TestResult{Message: "could not reach the Supabase REST endpoint", Details: err.Error()}
	}
	if code >= 400 && code != http.StatusNotFound {
		return TestResult{Message: fmt.Sprintf("Supabase REST endpoint rejected the request (status %d)", code)}
	}

	code, err = probe(ctx, http.MethodGet, base+"/items?limit=1", headers)
	if err != nil {
		return TestResult{Message: "could not query the items table", Details: err.Error()}
	}
	if code == http.StatusNotFound {
		// base connection works, schema does not
		return TestResult{Message: "connected, but the items table was not found"}
	}
	if code >= 400 {
		return TestResult{Message: fmt.Sprintf("items table query failed (status %d)", code)}
	}
	return TestResult{Success: true, Message: "Supabase connection OK"}
}

func testFirebase(ctx context.Context, cfg model.DbConnectionConfig) TestResult {
	marked := false
	for _, m := range firebaseMarkers {
		if strings.Contains(cfg.URL, m) {
			marked = true
			break
		}
	}
	if !marked {
		return TestResult{Message: "URL does not look like a Firebase Realtime Database URL"}
	}
	endpoint := strings.TrimRight(cfg.URL, "/") + "/.json"
	if cfg.APIKey != "" {
		endpoint += "?auth=" + cfg.APIKey
	}
	code, err := probe(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return TestResult{Message: "could not reach the Firebase database", Details: err.Error()}
	}
	if code == http.StatusUnauthorized || code == http.StatusForbidden {
		return TestResult{Message: "URL is valid, but the credentials were rejected", Details: fmt.Sprintf("status %d", code)}
	}
	if code >= 400 {
		return TestResult{Message: fmt.Sprintf("Firebase responded with status %d", code)}
	}
	return TestResult{Success: true, Message: "Firebase connection OK"}
}

func testCustom(ctx context.Context, cfg model.DbConnectionConfig) TestResult {
	if !strings.HasPrefix(cfg.URL, "http://") && !strings.HasPrefix(cfg.URL, "https://") {
		return TestResult{Message: "URL must start with http:// or https://"}
	}
	base := strings.TrimRight(cfg.URL, "/")
	var headers map[string]string
	if cfg.APIKey != "" {
		headers = map[string]string{"Authorization": "Bearer " + cfg.APIKey}
	}
	code, err := probe(ctx, http.MethodGet, base+"/items/test", headers)
	if err != nil {
		// CORS-preflight-only backends reject plain GETs outright; OPTIONS
		// succeeding still tells us something is listening there.
		optCode, optErr := probe(ctx, http.MethodOptions, base, headers)
		if optErr == nil && optCode < 500 {
			return TestResult{Success: true, Message: "endpoint seems available (OPTIONS only)", Details: err.Error()}
		}
		return TestResult{Message: "could not reach the endpoint", Details: err.Error()}
	}
	// 404 means the endpoint exists and the test item simply is not there
	if code == http.StatusNotFound || (code >= 200 && code < 300) {
		return TestResult{Success: true, Message: "custom endpoint connection OK"}
	}
	return TestResult{Message: fmt.Sprintf("endpoint responded with status %d", code)}
}

func probe(ctx context.Context, method, endpoint string, headers map[string]string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return 0, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}
