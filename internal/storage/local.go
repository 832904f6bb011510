package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Local is the SQLite-backed cache holding one row per logical key. It is the
// authoritative store whenever the remote is disabled or unreachable.
type Local struct {
	db *sql.DB
}

// OpenLocal opens (and creates if needed) the cache database under dir.
// An empty dir falls back to os.UserConfigDir()/passliss.
func OpenLocal(dir string) (*Local, string, error) {
	if dir == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, "", err
		}
		dir = filepath.Join(cfgDir, "passliss")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, "", err
	}
	dbPath := filepath.Join(dir, "cache.sqlite")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, "", err
	}
	return &Local{db: db}, dbPath, nil
}

// Close closes the underlying DB.
func (l *Local) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// Migrate ensures the single required table exists.
func (l *Local) Migrate() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS records (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  updated_at INTEGER NOT NULL
);
`
	_, err := l.db.Exec(ddl)
	return err
}

// Get returns the cached value for key, or ErrNotFound.
func (l *Local) Get(key string) (json.RawMessage, error) {
	var value string
	err := l.db.QueryRow(`SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return json.RawMessage(value), nil
}

// Put overwrites the cached value for key, preserving created_at on update.
func (l *Local) Put(key string, value json.RawMessage) error {
	now := time.Now().Unix()
	_, err := l.db.Exec(`
INSERT INTO records(key, value, created_at, updated_at) VALUES(?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), now, now,
	)
	return err
}
