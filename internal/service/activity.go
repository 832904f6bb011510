package service

import (
	"context"
	"encoding/json"
	"time"

	"passliss/internal/model"
	"passliss/internal/storage"
)

// ActivityService manages the append-only generation log under the activity
// key. Content currently holds the literal generated string; see the privacy
// note in DESIGN.md.
type ActivityService struct {
	store *storage.Store
}

func NewActivityService(store *storage.Store) *ActivityService {
	return &ActivityService{store: store}
}

// List returns the log, oldest first.
func (a *ActivityService) List(ctx context.Context) []model.Activity {
	raw := a.store.Read(ctx, model.KeyActivity, json.RawMessage(`[]`))
	var out []model.Activity
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// Add appends one entry. Fire-and-forget: persistence failures degrade to the
// storage layer's logging, the caller is never blocked.
func (a *ActivityService) Add(ctx context.Context, content string) {
	entries := append(a.List(ctx), model.Activity{Date: time.Now().Unix(), Content: content})
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	a.store.Write(ctx, model.KeyActivity, raw)
}
