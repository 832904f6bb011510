// Package breach checks passwords against a public breach corpus using
// k-anonymity: only the first five hex characters of the SHA-1 hash ever leave
// the machine.
package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.pwnedpasswords.com/range"

// Client queries a range endpoint compatible with the Pwned Passwords API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient returns a Client against the public API. baseURL may be overridden
// for tests or self-hosted mirrors; empty means the default.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Count returns how many times the password appears in the breach corpus.
// Zero means not found.
func (c *Client) Count(ctx context.Context, password string) (int, error) {
	sum := sha1.Sum([]byte(password))
	hash := strings.ToUpper(fmt.Sprintf("%x", sum))
	prefix, suffix := hash[:5], hash[5:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+prefix, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("range query returned status %d", resp.StatusCode)
	}

	// response is one "SUFFIX:COUNT" pair per line
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, found := strings.CutPrefix(line, suffix+":")
		if !found {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return 0, fmt.Errorf("malformed range line %q", line)
		}
		return n, nil
	}
	return 0, scanner.Err()
}
