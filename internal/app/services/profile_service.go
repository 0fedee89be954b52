package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/repositories"
)

// ProfileService handles the single-record profile document.
type ProfileService struct {
	profile *repositories.ProfileRepository
	logger  zerolog.Logger
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profile *repositories.ProfileRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		profile: profile,
		logger:  logger,
	}
}

// Get returns the profile, seeding defaults on first use.
func (s *ProfileService) Get(ctx context.Context) (models.Profile, error) {
	return s.profile.Load(ctx)
}

// Update rewrites the editable profile fields.
func (s *ProfileService) Update(ctx context.Context, req *dto.UpdateProfileRequest) (models.Profile, error) {
	profile, err := s.profile.Load(ctx)
	if err != nil {
		return models.Profile{}, err
	}

	profile.Name = req.Name
	profile.Email = req.Email
	if req.Avatar != "" {
		profile.Avatar = req.Avatar
	}
	if req.Role != "" {
		profile.Role = req.Role
	}
	if req.Location != "" {
		profile.Location = req.Location
	}

	if err := s.profile.Save(ctx, profile); err != nil {
		return models.Profile{}, err
	}
	s.logger.Info().Str("email", profile.Email).Msg("Profile updated")
	return profile, nil
}
