package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/pkg/apperrors"
)

// Record owns one persisted single-record document (profile, settings)
// behind its own storage key.
type Record[T any] struct {
	store kvstore.Store
	key   string
	seed  func() T
}

// NewRecord creates a single-record repository over store under key. seed
// produces the default document written on first use.
func NewRecord[T any](store kvstore.Store, key string, seed func() T) *Record[T] {
	return &Record[T]{
		store: store,
		key:   key,
		seed:  seed,
	}
}

// Load reads the document, seeding it on first use.
func (r *Record[T]) Load(ctx context.Context) (T, error) {
	var doc T
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return doc, fmt.Errorf("load %s: %w", r.key, err)
	}
	if !ok {
		doc = r.seed()
		if err := r.Save(ctx, doc); err != nil {
			return doc, err
		}
		return doc, nil
	}

	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return doc, fmt.Errorf("%w: %s: %v", apperrors.ErrStorageCorrupt, r.key, err)
	}
	return doc, nil
}

// Save overwrites the document.
func (r *Record[T]) Save(ctx context.Context, doc T) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	if err := r.store.Set(ctx, r.key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", r.key, err)
	}
	return nil
}

// Reset removes the document so the next Load reseeds defaults, and returns
// the reseeded document.
func (r *Record[T]) Reset(ctx context.Context) (T, error) {
	var zero T
	if err := r.store.Remove(ctx, r.key); err != nil {
		return zero, fmt.Errorf("reset %s: %w", r.key, err)
	}
	return r.Load(ctx)
}
