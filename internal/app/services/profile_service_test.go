package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/repositories"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileService(t *testing.T) *ProfileService {
	t.Helper()
	repos := repositories.NewRepositories(kvstore.NewMemoryStore())
	return NewProfileService(repos.Profile, zerolog.Nop())
}

func TestProfileSeededDefaults(t *testing.T) {
	svc := newProfileService(t)

	profile, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, profile.Name)
	assert.NotEmpty(t, profile.Badges)
	assert.NotEmpty(t, profile.RecentActivity)
}

func TestProfileUpdatePartialFields(t *testing.T) {
	svc := newProfileService(t)
	ctx := context.Background()

	before, err := svc.Get(ctx)
	require.NoError(t, err)

	// Name and email always overwrite; empty optional fields are kept.
	updated, err := svc.Update(ctx, &dto.UpdateProfileRequest{
		Name:  "New Name",
		Email: "new@signifi.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "new@signifi.com", updated.Email)
	assert.Equal(t, before.Location, updated.Location)
	assert.Equal(t, before.Role, updated.Role)

	// Non-empty optional fields do overwrite.
	updated, err = svc.Update(ctx, &dto.UpdateProfileRequest{
		Name:     "New Name",
		Email:    "new@signifi.com",
		Location: "Cebu City",
	})
	require.NoError(t, err)
	assert.Equal(t, "Cebu City", updated.Location)

	// Changes persist across reads.
	reread, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cebu City", reread.Location)
}
