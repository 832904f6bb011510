package breach

import (
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hashParts(password string) (string, string) {
	sum := sha1.Sum([]byte(password))
	h := strings.ToUpper(fmt.Sprintf("%x", sum))
	return h[:5], h[5:]
}

func TestCount_FoundAndNotFound(t *testing.T) {
	_, suffix := hashParts("password")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// only a 5-char prefix may reach the server, never the full hash
		assert.Len(t, strings.TrimPrefix(r.URL.Path, "/"), 5)
		assert.NotContains(t, r.URL.String(), suffix)
		fmt.Fprintf(w, "0018A45C4D1DEF81644B54AB7F969B88D65:3\r\n%s:9659365\r\nFFFFFD5C220B8DDDEADBEEF00000000000A:1\r\n", suffix)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	n, err := c.Count(context.Background(), "password")
	require.NoError(t, err)
	assert.Equal(t, 9659365, n)

	// a password whose suffix is not listed comes back clean
	n, err = NewClient(ts.URL).Count(context.Background(), "password2")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCount_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).Count(context.Background(), "password")
	assert.Error(t, err)
}
