package repositories

import (
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/seed"
)

// ProfileRepository owns the single-record profile document.
type ProfileRepository struct {
	*Record[models.Profile]
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(store kvstore.Store) *ProfileRepository {
	return &ProfileRepository{
		Record: NewRecord(store, kvstore.KeyProfile, seed.Profile),
	}
}
