package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/repositories"
	"github.com/signifi/platform/internal/pkg/apperrors"
)

// SettingsService handles the preferences document, the theme key and the
// password-change flow.
type SettingsService struct {
	settings *repositories.SettingsRepository
	users    *repositories.UserRepository
	logger   zerolog.Logger
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settings *repositories.SettingsRepository, users *repositories.UserRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{
		settings: settings,
		users:    users,
		logger:   logger,
	}
}

// Get returns the settings record, seeding defaults on first use.
func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	return s.settings.Load(ctx)
}

// SetField sets one preference field by name.
func (s *SettingsService) SetField(ctx context.Context, req *dto.UpdateSettingRequest) (models.Settings, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	if !settings.Set(req.Field, req.Value) {
		return models.Settings{}, apperrors.NewCustomError(apperrors.ErrUnknownSettingsField, "unknown settings field").WithField(req.Field)
	}
	if err := s.settings.Save(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// DeleteField removes one preference field from the record.
func (s *SettingsService) DeleteField(ctx context.Context, field string) (models.Settings, error) {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	if !settings.Clear(field) {
		return models.Settings{}, apperrors.NewCustomError(apperrors.ErrUnknownSettingsField, "unknown settings field").WithField(field)
	}
	if err := s.settings.Save(ctx, settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

// Reset discards all preferences and reseeds the defaults.
func (s *SettingsService) Reset(ctx context.Context) (models.Settings, error) {
	settings, err := s.settings.Reset(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	s.logger.Info().Msg("Settings reset to defaults")
	return settings, nil
}

// ChangePassword updates the session user's password after checking the
// new/confirm pair matches, then stamps passwordLastChanged. The users
// collection is the single source of truth for credentials.
func (s *SettingsService) ChangePassword(ctx context.Context, session models.Session, req *dto.ChangePasswordRequest) (models.Settings, error) {
	if req.NewPassword != req.ConfirmPassword {
		return models.Settings{}, apperrors.NewCustomError(apperrors.ErrPasswordMismatch, "passwords do not match").WithField("confirmPassword")
	}

	changed, err := s.users.UpdatePassword(ctx, session.Email, req.NewPassword)
	if err != nil {
		return models.Settings{}, err
	}
	if !changed {
		s.logger.Warn().Str("email", session.Email).Msg("Password change for unknown user ignored")
	}

	stamp := time.Now().UTC().Format("Jan 2, 2006")
	return s.SetField(ctx, &dto.UpdateSettingRequest{
		Field: models.SettingPasswordLastChanged,
		Value: stamp,
	})
}

// GetTheme returns the persisted theme preference.
func (s *SettingsService) GetTheme(ctx context.Context) (string, error) {
	return s.settings.GetTheme(ctx)
}

// SetTheme persists the theme preference.
func (s *SettingsService) SetTheme(ctx context.Context, theme string) error {
	return s.settings.SetTheme(ctx, theme)
}
