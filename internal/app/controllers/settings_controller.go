package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/services"
	"github.com/signifi/platform/internal/middleware"
)

// SettingsController handles preferences, password changes and the theme
type SettingsController struct {
	settingsService *services.SettingsService
	logger          zerolog.Logger
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService, logger zerolog.Logger) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetSettings returns the settings document
// @Summary Get settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Settings}
// @Router /settings [get]
func (c *SettingsController) GetSettings(ctx *gin.Context) {
	settings, err := c.settingsService.Get(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings, ""))
}

// UpdateSetting sets one preference field
// @Summary Update a setting
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSettingRequest true "Field and value"
// @Success 200 {object} dto.APIResponse{data=models.Settings}
// @Failure 400 {object} dto.ErrorResponse "Unknown settings field"
// @Router /settings [patch]
func (c *SettingsController) UpdateSetting(ctx *gin.Context) {
	var req dto.UpdateSettingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid settings payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settings, err := c.settingsService.SetField(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings, "Setting saved"))
}

// DeleteSetting clears one preference field
// @Summary Clear a setting
// @Description Removes the field from the settings document so it falls back to its default on the next read.
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param field path string true "Field name"
// @Success 200 {object} dto.APIResponse{data=models.Settings}
// @Failure 400 {object} dto.ErrorResponse "Unknown settings field"
// @Router /settings/{field} [delete]
func (c *SettingsController) DeleteSetting(ctx *gin.Context) {
	settings, err := c.settingsService.DeleteField(ctx.Request.Context(), ctx.Param("field"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings, "Setting cleared"))
}

// ResetSettings restores the default settings document
// @Summary Reset settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.Settings}
// @Router /settings/reset [post]
func (c *SettingsController) ResetSettings(ctx *gin.Context) {
	settings, err := c.settingsService.Reset(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings, "Settings reset"))
}

// ChangePassword changes the current user's password
// @Summary Change password
// @Description Stores the new password and stamps the change date into the settings document.
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "New password, entered twice"
// @Success 200 {object} dto.APIResponse{data=models.Settings}
// @Failure 400 {object} dto.ErrorResponse "Passwords do not match"
// @Router /settings/password [put]
func (c *SettingsController) ChangePassword(ctx *gin.Context) {
	session, ok := middleware.SessionFrom(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid password payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	settings, err := c.settingsService.ChangePassword(ctx.Request.Context(), session, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(settings, "Password changed"))
}

// GetTheme returns the persisted theme
// @Summary Get theme
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ThemeResponse}
// @Router /theme [get]
func (c *SettingsController) GetTheme(ctx *gin.Context) {
	theme, err := c.settingsService.GetTheme(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ThemeResponse{Theme: theme}, ""))
}

// SetTheme persists the theme
// @Summary Set theme
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.ThemeRequest true "Theme name"
// @Success 200 {object} dto.APIResponse{data=dto.ThemeResponse}
// @Router /theme [put]
func (c *SettingsController) SetTheme(ctx *gin.Context) {
	var req dto.ThemeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.settingsService.SetTheme(ctx.Request.Context(), req.Theme); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ThemeResponse{Theme: req.Theme}, "Theme saved"))
}
