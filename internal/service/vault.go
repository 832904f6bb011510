package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"passliss/internal/model"
	"passliss/internal/storage"
)

var (
	// ErrEntryNotFound is returned when an id does not match any vault entry.
	ErrEntryNotFound = errors.New("service: vault entry not found")
	// ErrInvalidEntry is returned when required fields are missing.
	ErrInvalidEntry = errors.New("service: service and password are required")
)

// VaultService manages the ordered vault entry sequence under the vault key.
type VaultService struct {
	store *storage.Store
}

func NewVaultService(store *storage.Store) *VaultService {
	return &VaultService{store: store}
}

func (v *VaultService) entries(ctx context.Context) []model.VaultEntry {
	raw := v.store.Read(ctx, model.KeyVault, json.RawMessage(`[]`))
	var out []model.VaultEntry
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func (v *VaultService) save(ctx context.Context, entries []model.VaultEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	v.store.Write(ctx, model.KeyVault, raw)
	return nil
}

// List returns all entries in stored order.
func (v *VaultService) List(ctx context.Context) []model.VaultEntry {
	return v.entries(ctx)
}

// Get returns the entry with the given id.
func (v *VaultService) Get(ctx context.Context, id string) (model.VaultEntry, error) {
	for _, e := range v.entries(ctx) {
		if e.ID == id {
			return e, nil
		}
	}
	return model.VaultEntry{}, ErrEntryNotFound
}

// Add appends a new entry and persists the sequence.
func (v *VaultService) Add(ctx context.Context, service, username, password, notes string) (model.VaultEntry, error) {
	if service == "" || password == "" {
		return model.VaultEntry{}, ErrInvalidEntry
	}
	now := time.Now().Unix()
	entry := model.VaultEntry{
		ID:        uuid.NewString(),
		Service:   service,
		Username:  username,
		Password:  password,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	entries := append(v.entries(ctx), entry)
	if err := v.save(ctx, entries); err != nil {
		return model.VaultEntry{}, err
	}
	return entry, nil
}

// Update replaces the entry with entry.ID, preserving its CreatedAt.
func (v *VaultService) Update(ctx context.Context, entry model.VaultEntry) error {
	if entry.Service == "" || entry.Password == "" {
		return ErrInvalidEntry
	}
	entries := v.entries(ctx)
	for i := range entries {
		if entries[i].ID == entry.ID {
			entry.CreatedAt = entries[i].CreatedAt
			entry.UpdatedAt = time.Now().Unix()
			entries[i] = entry
			return v.save(ctx, entries)
		}
	}
	return ErrEntryNotFound
}

// Delete removes the entry with the given id.
func (v *VaultService) Delete(ctx context.Context, id string) error {
	entries := v.entries(ctx)
	for i := range entries {
		if entries[i].ID == id {
			entries = append(entries[:i], entries[i+1:]...)
			return v.save(ctx, entries)
		}
	}
	return ErrEntryNotFound
}
