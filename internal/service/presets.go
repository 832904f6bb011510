package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"passliss/internal/model"
	"passliss/internal/storage"
)

var (
	// ErrPresetNotFound is returned when no preset matches an id or name.
	ErrPresetNotFound = errors.New("service: preset not found")
	// ErrPresetName is returned when saving a preset with an empty name.
	ErrPresetName = errors.New("service: preset name is required")
)

// PresetService manages the ordered preset sequence under the presets key.
type PresetService struct {
	store *storage.Store
}

func NewPresetService(store *storage.Store) *PresetService {
	return &PresetService{store: store}
}

func (p *PresetService) presets(ctx context.Context) []model.PasswordPreset {
	raw := p.store.Read(ctx, model.KeyPresets, json.RawMessage(`[]`))
	var out []model.PasswordPreset
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func (p *PresetService) save(ctx context.Context, presets []model.PasswordPreset) error {
	raw, err := json.Marshal(presets)
	if err != nil {
		return err
	}
	p.store.Write(ctx, model.KeyPresets, raw)
	return nil
}

// List returns all presets in stored order.
func (p *PresetService) List(ctx context.Context) []model.PasswordPreset {
	return p.presets(ctx)
}

// GetByName returns the first preset with the given name.
func (p *PresetService) GetByName(ctx context.Context, name string) (model.PasswordPreset, error) {
	for _, preset := range p.presets(ctx) {
		if preset.Name == name {
			return preset, nil
		}
	}
	return model.PasswordPreset{}, ErrPresetNotFound
}

// Save creates the preset when its ID is empty, otherwise updates it in place.
func (p *PresetService) Save(ctx context.Context, preset model.PasswordPreset) (model.PasswordPreset, error) {
	if preset.Name == "" {
		return model.PasswordPreset{}, ErrPresetName
	}
	presets := p.presets(ctx)
	if preset.ID == "" {
		preset.ID = uuid.NewString()
		presets = append(presets, preset)
		return preset, p.save(ctx, presets)
	}
	for i := range presets {
		if presets[i].ID == preset.ID {
			presets[i] = preset
			return preset, p.save(ctx, presets)
		}
	}
	return model.PasswordPreset{}, ErrPresetNotFound
}

// Delete removes the preset with the given id.
func (p *PresetService) Delete(ctx context.Context, id string) error {
	presets := p.presets(ctx)
	for i := range presets {
		if presets[i].ID == id {
			presets = append(presets[:i], presets[i+1:]...)
			return p.save(ctx, presets)
		}
	}
	return ErrPresetNotFound
}
