package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/auth"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/repositories"
	pkgauth "github.com/signifi/platform/internal/pkg/auth"
	"github.com/signifi/platform/internal/pkg/apperrors"
	"github.com/signifi/platform/internal/pkg/sched"
	"github.com/signifi/platform/internal/pkg/validation"
)

// UX pacing delays the client should honor before navigating.
const (
	LoginRedirectDelay    = 1500 * time.Millisecond
	RegisterRedirectDelay = 2 * time.Second
)

// AuthService handles login and registration.
type AuthService struct {
	users     *repositories.UserRepository
	tokens    *pkgauth.TokenService
	redirects *sched.Slots
	logger    zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repositories.UserRepository, tokens *pkgauth.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		redirects: sched.NewSlots(),
		logger:    logger,
	}
}

// Login checks credentials against the users collection and returns a
// session token plus the role-keyed redirect plan. Password comparison is
// plaintext equality; see models.User.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)

	user, ok, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("login lookup: %w", err)
	}
	if !ok || user.Password != password {
		s.logger.Info().Str("email", email).Msg("Login failed")
		return nil, apperrors.ErrInvalidCredentials
	}

	session := models.NewSession(&user, time.Now().UTC())
	token, err := s.tokens.Generate(session)
	if err != nil {
		return nil, err
	}

	plan := s.planRedirect(ctx, user.Email, auth.LandingPage(user.Role), LoginRedirectDelay)
	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("Login succeeded")

	return &dto.LoginResponse{
		Token:    token,
		Session:  dto.NewSessionResponse(session),
		Redirect: plan,
	}, nil
}

// Register validates the registration form, appends an unverified user and
// returns the delayed redirect plan.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("register lookup: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	role := models.RoleType(req.Role)
	user, err := s.users.Append(ctx, models.User{
		FirstName:  strings.TrimSpace(req.FirstName),
		LastName:   strings.TrimSpace(req.LastName),
		Email:      email,
		Password:   req.Password,
		Role:       role,
		CreatedAt:  time.Now().UTC(),
		IsVerified: false,
	})
	if err != nil {
		return nil, err
	}

	// Registration drops the new user straight onto their role's landing
	// page, just with a longer delay than login.
	plan := s.planRedirect(ctx, user.Email, auth.LandingPage(user.Role), RegisterRedirectDelay)
	s.logger.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("User registered")

	return &dto.RegisterResponse{
		User:     dto.NewUserResponse(&user),
		Redirect: plan,
	}, nil
}

// RedirectPending reports whether an auth redirect is still scheduled for
// the given email.
func (s *AuthService) RedirectPending(email string) bool {
	return s.redirects.Pending(email)
}

// planRedirect builds the redirect plan and schedules the server-side
// continuation. A second auth action for the same email inside the delay
// window cancels the first, so the latest action's redirect wins.
func (s *AuthService) planRedirect(ctx context.Context, email, target string, delay time.Duration) dto.RedirectPlan {
	s.redirects.Schedule(context.WithoutCancel(ctx), email, delay, func() {
		s.logger.Debug().Str("email", email).Str("target", target).Msg("Redirect window elapsed")
	})
	return dto.RedirectPlan{
		Target:  target,
		DelayMs: int(delay.Milliseconds()),
	}
}

// validateRegistration enforces the full registration rule set: names
// present, email shaped local@domain.tld, password at least 8 characters
// with one uppercase letter and one digit, matching confirmation, a known
// role and accepted terms.
func (s *AuthService) validateRegistration(req *dto.RegisterRequest) error {
	nameRule := func(value string) bool {
		return validation.NewStringValidation(strings.TrimSpace(value)).
			WithMinLength(validation.NameMinLength).
			WithMaxLength(validation.NameMaxLength).
			Validate()
	}
	if !nameRule(req.FirstName) {
		return apperrors.NewValidationError("firstName", "first name is required")
	}
	if !nameRule(req.LastName) {
		return apperrors.NewValidationError("lastName", "last name is required")
	}
	if !validation.ValidEmail(strings.TrimSpace(req.Email)) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "email format is invalid").WithField("email")
	}
	if !validation.ValidPassword(req.Password) {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			"password must be at least 8 characters with one uppercase letter and one number").WithField("password")
	}
	if req.Password != req.ConfirmPassword {
		return apperrors.NewValidationError("confirmPassword", "passwords do not match")
	}
	role := models.RoleType(req.Role)
	if role != models.RoleTeacher && role != models.RoleStudent {
		return apperrors.NewValidationError("role", "please select a role")
	}
	if !req.TermsAccepted {
		return apperrors.NewValidationError("termsAccepted", "you must accept the terms")
	}
	return nil
}
