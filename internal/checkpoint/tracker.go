// Package checkpoint persists batch progress so an interrupted run can resume.
package checkpoint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/nonceaudit/internal/model"
	"github.com/goodnatureofminers/nonceaudit/internal/storage"
)

// Key is the singleton storage key of the checkpoint record.
const Key = "progress"

// Tracker loads and saves the single checkpoint record.
type Tracker struct {
	store storage.Store
}

// NewTracker creates a Tracker over store.
func NewTracker(store storage.Store) *Tracker {
	return &Tracker{store: store}
}

// Load returns the saved checkpoint, or a zero checkpoint when none exists.
func (t *Tracker) Load(ctx context.Context) (model.Checkpoint, error) {
	raw, err := t.store.Get(ctx, Key)
	if errors.Is(err, storage.ErrNotFound) {
		return model.Checkpoint{}, nil
	}
	if err != nil {
		return model.Checkpoint{}, fmt.Errorf("load checkpoint: %w", err)
	}

	var cp model.Checkpoint
	if err := json.Unmarshal(raw, &cp); err != nil {
		return model.Checkpoint{}, fmt.Errorf("decode checkpoint: %w", err)
	}
	return cp, nil
}

// Save overwrites the checkpoint record.
func (t *Tracker) Save(ctx context.Context, cp model.Checkpoint) error {
	raw, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}
	if err := t.store.Put(ctx, Key, raw); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	return nil
}
