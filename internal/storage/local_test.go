package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestLocal opens a migrated cache in a temp dir.
func newTestLocal(t *testing.T) *Local {
	t.Helper()
	l, dbPath, err := OpenLocal(t.TempDir())
	require.NoError(t, err)
	require.NotEmpty(t, dbPath)
	require.NoError(t, l.Migrate())
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func TestLocal_GetMissingKey(t *testing.T) {
	l := newTestLocal(t)
	_, err := l.Get("vault")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocal_PutGetRoundTrip(t *testing.T) {
	l := newTestLocal(t)
	v := json.RawMessage(`{"a":1}`)
	require.NoError(t, l.Put("settings", v))

	got, err := l.Get("settings")
	require.NoError(t, err)
	assert.JSONEq(t, string(v), string(got))
}

func TestLocal_PutOverwrites(t *testing.T) {
	l := newTestLocal(t)
	require.NoError(t, l.Put("vault", json.RawMessage(`[1]`)))
	require.NoError(t, l.Put("vault", json.RawMessage(`[1,2]`)))

	got, err := l.Get("vault")
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(got))
}

func TestLocal_KeysAreIndependent(t *testing.T) {
	l := newTestLocal(t)
	require.NoError(t, l.Put("vault", json.RawMessage(`"v"`)))
	require.NoError(t, l.Put("activity", json.RawMessage(`"a"`)))

	v, err := l.Get("vault")
	require.NoError(t, err)
	assert.Equal(t, `"v"`, string(v))
	a, err := l.Get("activity")
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(a))
}
