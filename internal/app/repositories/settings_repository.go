package repositories

import (
	"context"

	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/seed"
)

// SettingsRepository owns the single-record preferences document plus the
// standalone theme key.
type SettingsRepository struct {
	*Record[models.Settings]
	store kvstore.Store
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(store kvstore.Store) *SettingsRepository {
	return &SettingsRepository{
		Record: NewRecord(store, kvstore.KeySettings, seed.Settings),
		store:  store,
	}
}

// GetTheme returns the persisted theme preference, or "" when unset.
func (r *SettingsRepository) GetTheme(ctx context.Context) (string, error) {
	theme, _, err := r.store.Get(ctx, kvstore.KeyTheme)
	return theme, err
}

// SetTheme persists the theme preference.
func (r *SettingsRepository) SetTheme(ctx context.Context, theme string) error {
	return r.store.Set(ctx, kvstore.KeyTheme, theme)
}
