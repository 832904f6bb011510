// Package storage implements the keyed read-through/write-through store: a
// local SQLite cache that is always written first, mirrored best-effort to one
// of three remote REST dialects.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"passliss/internal/crypto"
)

// State tracks per-key sync progress.
type State int

const (
	StateUninitialized State = iota
	StateLocalOnly
	StateSyncPending
	StateSynced
	StateSyncFailed
)

func (s State) String() string {
	switch s {
	case StateLocalOnly:
		return "local-only"
	case StateSyncPending:
		return "sync-pending"
	case StateSynced:
		return "synced"
	case StateSyncFailed:
		return "sync-failed"
	default:
		return "uninitialized"
	}
}

// Store is the generic keyed storage. Read and Write never return remote
// errors to the caller; failures degrade to local-only operation and go to
// the log sink only.
type Store struct {
	local   *Local
	backend Backend        // nil when sync is disabled
	cipher  *crypto.Cipher // nil when sync encryption is off
	log     *zap.SugaredLogger

	mu     sync.Mutex
	states map[string]State
	wg     sync.WaitGroup
}

// New builds a Store. backend may be nil (sync disabled), cipher may be nil
// (plaintext mirroring).
func New(local *Local, backend Backend, cipher *crypto.Cipher, log *zap.SugaredLogger) *Store {
	return &Store{
		local:   local,
		backend: backend,
		cipher:  cipher,
		log:     log,
		states:  make(map[string]State),
	}
}

// State returns the sync state of a key.
func (s *Store) State(key string) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.states[key]
}

func (s *Store) setState(key string, st State) {
	s.mu.Lock()
	s.states[key] = st
	s.mu.Unlock()
}

// Read returns the value for key. With sync enabled it reads through the
// remote and overwrites the cache on success; on any remote failure it falls
// back silently to the cache. A key never written before is initialized to def.
func (s *Store) Read(ctx context.Context, key string, def json.RawMessage) json.RawMessage {
	// a pending local write is newer than anything the remote can return
	if s.backend != nil && s.State(key) != StateSyncPending {
		remote, err := s.backend.GetRecord(ctx, key)
		switch {
		case err == nil:
			value, derr := s.unseal(remote)
			if derr != nil {
				s.log.Errorw("failed to decrypt remote value, using cache", "key", key)
				s.setState(key, StateSyncFailed)
				return s.readLocal(key, def)
			}
			if perr := s.local.Put(key, value); perr != nil {
				s.log.Errorw("failed to refresh cache from remote", "key", key, "error", perr)
			}
			s.setState(key, StateSynced)
			return value
		case errors.Is(err, ErrNotFound):
			// remote reachable, key simply never mirrored yet
			s.setState(key, StateSynced)
		default:
			s.log.Warnw("remote read failed, using cache", "key", key, "error", err)
			s.setState(key, StateSyncFailed)
		}
	}
	return s.readLocal(key, def)
}

func (s *Store) readLocal(key string, def json.RawMessage) json.RawMessage {
	value, err := s.local.Get(key)
	if err == nil {
		if s.State(key) == StateUninitialized {
			s.setState(key, StateLocalOnly)
		}
		return value
	}
	if !errors.Is(err, ErrNotFound) {
		s.log.Errorw("local cache read failed", "key", key, "error", err)
		return def
	}
	// first access: initialize the cache with the caller's default
	if perr := s.local.Put(key, def); perr != nil {
		s.log.Errorw("failed to initialize cache", "key", key, "error", perr)
	}
	if s.State(key) == StateUninitialized {
		s.setState(key, StateLocalOnly)
	}
	return def
}

// Write stores value locally first, so a Read in the same process returns it
// immediately, then mirrors to the remote asynchronously. Mirror failures are
// logged once, never retried, and never rolled back locally.
func (s *Store) Write(ctx context.Context, key string, value json.RawMessage) {
	if err := s.local.Put(key, value); err != nil {
		s.log.Errorw("local cache write failed", "key", key, "error", err)
	}
	if s.backend == nil {
		s.setState(key, StateLocalOnly)
		return
	}
	s.setState(key, StateSyncPending)
	// the mirror outlives the caller's context but keeps its values
	mirrorCtx := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		payload, err := s.seal(value)
		if err != nil {
			s.log.Errorw("failed to encrypt value for mirror", "key", key, "error", err)
			s.setState(key, StateSyncFailed)
			return
		}
		if err := s.backend.PutRecord(mirrorCtx, key, payload); err != nil {
			s.log.Warnw("remote write failed, value kept locally", "key", key, "error", err)
			s.setState(key, StateSyncFailed)
			return
		}
		s.setState(key, StateSynced)
	}()
}

// Flush blocks until all in-flight remote mirrors have completed. Used on
// shutdown and in tests.
func (s *Store) Flush() {
	s.wg.Wait()
}

func (s *Store) seal(value json.RawMessage) (json.RawMessage, error) {
	if s.cipher == nil {
		return value, nil
	}
	return s.cipher.Seal(value)
}

func (s *Store) unseal(value json.RawMessage) (json.RawMessage, error) {
	if s.cipher != nil && crypto.IsSealed(value) {
		return s.cipher.Open(value)
	}
	return value, nil
}
