package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/pkg/apperrors"
)

// Collection owns one persisted entity collection behind a single storage
// key. Every mutation rewrites the whole collection; there are no partial
// writes and no transactions. Queries are linear scans, which is fine for
// the UI-sized collections this platform holds.
type Collection[T any] struct {
	store kvstore.Store
	key   string
	id    func(T) int64
	seed  func() []T
}

// NewCollection creates a collection over store under key. id extracts an
// entity's identifier; seed produces the default list written on first use
// (nil means start empty).
func NewCollection[T any](store kvstore.Store, key string, id func(T) int64, seed func() []T) *Collection[T] {
	return &Collection[T]{
		store: store,
		key:   key,
		id:    id,
		seed:  seed,
	}
}

// Key returns the storage key the collection persists under.
func (c *Collection[T]) Key() string {
	return c.key
}

// LoadAll reads the collection. When the key is absent the seed list is
// persisted immediately and returned, establishing state on first use.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	raw, ok, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok {
		var items []T
		if c.seed != nil {
			items = c.seed()
		}
		if err := c.Save(ctx, items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrStorageCorrupt, c.key, err)
	}
	return items, nil
}

// Save serializes the full collection, overwriting the key. Encoding is
// canonical: saving what was just loaded reproduces the stored bytes.
func (c *Collection[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Set(ctx, c.key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// NextID returns max(existing ids)+1, or 1 for an empty collection.
func (c *Collection[T]) NextID(items []T) int64 {
	var max int64
	for _, item := range items {
		if id := c.id(item); id > max {
			max = id
		}
	}
	return max + 1
}

// FindByID scans for the entity with the given id.
func (c *Collection[T]) FindByID(ctx context.Context, id int64) (T, bool, error) {
	var zero T
	items, err := c.LoadAll(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if c.id(item) == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}

// FindWhere returns all entities matching the predicate.
func (c *Collection[T]) FindWhere(ctx context.Context, pred func(T) bool) ([]T, error) {
	items, err := c.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]T, 0, len(items))
	for _, item := range items {
		if pred(item) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}
