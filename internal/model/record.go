package model

import "encoding/json"

// Logical storage keys. One record exists per key; every persisted entity in the
// application lives under one of these.
const (
	KeySettings = "settings"
	KeyVault    = "vault"
	KeyActivity = "activity"
	KeyPresets  = "passliss-presets"
)

// StorageRecord is the unit of synchronization: a logical key and its current
// JSON value, with server-side bookkeeping timestamps.
type StorageRecord struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	CreatedAt string          `json:"created_at,omitempty"`
	UpdatedAt string          `json:"updated_at,omitempty"`
}
