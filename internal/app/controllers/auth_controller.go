// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/auth"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/services"
	"github.com/signifi/platform/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	navigation  *auth.NavigationPolicy
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, navigation *auth.NavigationPolicy, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		navigation:  navigation,
		logger:      logger,
	}
}

// Login handles user login
// @Summary Log in
// @Description Authenticates a user by email and password and returns a session token plus the landing page redirect plan.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, "Login successful! Redirecting..."))
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a new account (teacher or student) and returns the created user plus the login page redirect plan.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration information"
// @Success 201 {object} dto.APIResponse{data=dto.RegisterResponse} "Account created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or failed validation"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp, "Account created successfully! Redirecting to login..."))
}

// Session returns the current session snapshot
// @Summary Current session
// @Description Returns the session snapshot carried by the bearer token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SessionResponse}
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Router /auth/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	session, ok := middleware.SessionFrom(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewSessionResponse(session), ""))
}

// Logout handles session teardown
// @Summary Log out
// @Description Ends the session. Tokens are client-held, so the server only acknowledges; the client discards its copy.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if session, ok := middleware.SessionFrom(ctx); ok {
		c.logger.Info().Str("email", session.Email).Msg("User logged out")
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(gin.H{"redirect": auth.PageLogin}, "Logged out"))
}

// Resolve decides what happens when a page is loaded
// @Summary Resolve page navigation
// @Description Applies the role-based page access policy to a page path. The token is optional; without one the visitor is treated as unauthenticated.
// @Tags navigation
// @Produce json
// @Param path query string true "Page path being loaded"
// @Success 200 {object} dto.APIResponse{data=auth.Decision}
// @Router /navigation/resolve [get]
func (c *AuthController) Resolve(ctx *gin.Context) {
	path := ctx.Query("path")
	if path == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing path parameter").WithField("path")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var session *models.Session
	if s, ok := middleware.SessionFrom(ctx); ok {
		session = &s
	}

	decision := c.navigation.Resolve(session, path)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(decision, ""))
}
