package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/repositories"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsService(t *testing.T) (*SettingsService, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositories(kvstore.NewMemoryStore())
	return NewSettingsService(repos.Settings, repos.Users, zerolog.Nop()), repos
}

func TestSettingsDefaults(t *testing.T) {
	svc, _ := newSettingsService(t)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, settings.DarkMode)
	assert.False(t, *settings.DarkMode)
	require.NotNil(t, settings.NotifyEmail)
	assert.True(t, *settings.NotifyEmail)
	require.NotNil(t, settings.Language)
	assert.Equal(t, "en", *settings.Language)
}

func TestSettingsSetAndClearField(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	settings, err := svc.SetField(ctx, &dto.UpdateSettingRequest{
		Field: models.SettingDarkMode,
		Value: true,
	})
	require.NoError(t, err)
	require.NotNil(t, settings.DarkMode)
	assert.True(t, *settings.DarkMode)

	// The write persisted.
	settings, err = svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings.DarkMode)
	assert.True(t, *settings.DarkMode)

	settings, err = svc.DeleteField(ctx, models.SettingDarkMode)
	require.NoError(t, err)
	assert.Nil(t, settings.DarkMode)

	_, err = svc.SetField(ctx, &dto.UpdateSettingRequest{Field: "bogus", Value: 1})
	assert.ErrorIs(t, err, apperrors.ErrUnknownSettingsField)

	_, err = svc.DeleteField(ctx, "bogus")
	assert.ErrorIs(t, err, apperrors.ErrUnknownSettingsField)
}

func TestSettingsReset(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	_, err := svc.SetField(ctx, &dto.UpdateSettingRequest{Field: models.SettingLanguage, Value: "fil"})
	require.NoError(t, err)

	settings, err := svc.Reset(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings.Language)
	assert.Equal(t, "en", *settings.Language)
}

func TestChangePassword(t *testing.T) {
	svc, repos := newSettingsService(t)
	ctx := context.Background()
	session := models.Session{ID: 1, Email: "admin@signifi.com", Role: models.RoleAdmin}

	settings, err := svc.ChangePassword(ctx, session, &dto.ChangePasswordRequest{
		NewPassword:     "Newpass1",
		ConfirmPassword: "Newpass1",
	})
	require.NoError(t, err)
	require.NotNil(t, settings.PasswordLastChanged)
	assert.NotEmpty(t, *settings.PasswordLastChanged)

	// The users collection is the credential source of truth.
	admin, ok, err := repos.Users.GetByEmail(ctx, "admin@signifi.com")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Newpass1", admin.Password)
}

func TestChangePasswordMismatch(t *testing.T) {
	svc, _ := newSettingsService(t)

	_, err := svc.ChangePassword(context.Background(),
		models.Session{Email: "admin@signifi.com"},
		&dto.ChangePasswordRequest{NewPassword: "Newpass1", ConfirmPassword: "Other1aa"})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)
}

func TestChangePasswordUnknownUserStillStamps(t *testing.T) {
	svc, _ := newSettingsService(t)

	settings, err := svc.ChangePassword(context.Background(),
		models.Session{Email: "ghost@signifi.com"},
		&dto.ChangePasswordRequest{NewPassword: "Newpass1", ConfirmPassword: "Newpass1"})
	require.NoError(t, err)
	require.NotNil(t, settings.PasswordLastChanged)
}

func TestTheme(t *testing.T) {
	svc, _ := newSettingsService(t)
	ctx := context.Background()

	theme, err := svc.GetTheme(ctx)
	require.NoError(t, err)
	assert.Empty(t, theme)

	require.NoError(t, svc.SetTheme(ctx, "dark"))
	theme, err = svc.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}
