package storage

import "errors"

// Failure taxonomy for the storage layer. Read/Write catch all of these
// internally and surface them only through the log sink; ErrUnsupported is a
// configuration error the connection tester rejects up front.
var (
	// ErrNotFound means the backend has no record for the key. Not a failure.
	ErrNotFound = errors.New("storage: record not found")
	// ErrAuth covers 4xx responses from a remote backend.
	ErrAuth = errors.New("storage: remote rejected credentials")
	// ErrMalformedResponse covers non-JSON bodies and missing expected fields.
	ErrMalformedResponse = errors.New("storage: malformed remote response")
	// ErrUnsupported means the configured backend type is unknown.
	ErrUnsupported = errors.New("storage: unsupported backend type")
)
