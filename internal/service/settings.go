// Package service exposes the persisted entities (settings, vault, presets,
// activity) as typed APIs over the generic keyed store.
package service

import (
	"context"
	"encoding/json"

	"passliss/internal/model"
	"passliss/internal/storage"
)

// SettingsService loads and saves the user settings record. Every Save builds
// a fresh value; no shared mutable settings struct is held across calls.
type SettingsService struct {
	store *storage.Store
}

func NewSettingsService(store *storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Load returns the current settings, falling back to defaults when nothing has
// been saved yet or the stored value is unreadable.
func (s *SettingsService) Load(ctx context.Context) model.Settings {
	def, _ := json.Marshal(model.DefaultSettings())
	raw := s.store.Read(ctx, model.KeySettings, def)
	var out model.Settings
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.DefaultSettings()
	}
	return out
}

// Save persists a complete settings value.
func (s *SettingsService) Save(ctx context.Context, settings model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	s.store.Write(ctx, model.KeySettings, raw)
	return nil
}
