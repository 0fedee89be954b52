package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/services"
	"github.com/signifi/platform/internal/middleware"
	"github.com/signifi/platform/internal/render"
)

// EnrollmentController handles the learner's enrollments
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// Enroll enrolls the current user in a course
// @Summary Enroll in a course
// @Description Enrolls the current user. Enrolling twice in the same course is a no-op and returns the existing enrollment.
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrollRequest true "Course to enroll in"
// @Success 201 {object} dto.APIResponse{data=dto.EnrollResponse} "Enrolled"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollResponse} "Already enrolled"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	session, ok := middleware.SessionFrom(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid enrollment payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.enrollmentService.Enroll(ctx.Request.Context(), session, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusCreated
	message := "Enrolled successfully"
	if resp.AlreadyEnrolled {
		status = http.StatusOK
		message = "Already enrolled"
	}
	ctx.JSON(status, dto.NewAPIResponse(resp, message))
}

// ListEnrolled lists the current user's enrolled courses
// @Summary List enrolled courses
// @Description Returns the user's enrollments joined with their courses. Enrollments whose course was deleted are skipped.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrolledCourse}
// @Router /enrollments [get]
func (c *EnrollmentController) ListEnrolled(ctx *gin.Context) {
	session, ok := middleware.SessionFrom(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	enrolled, err := c.enrollmentService.ListEnrolled(ctx.Request.Context(), session)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(enrolled, ""))
}

// EnrolledFragment renders the enrolled courses as HTML cards
// @Summary Render enrolled course cards
// @Tags enrollments
// @Produce html
// @Security BearerAuth
// @Success 200 {string} string "HTML fragment"
// @Router /enrollments/fragment [get]
func (c *EnrollmentController) EnrolledFragment(ctx *gin.Context) {
	session, ok := middleware.SessionFrom(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	enrolled, err := c.enrollmentService.ListEnrolled(ctx.Request.Context(), session)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var html []byte
	for _, ec := range enrolled {
		enrollment := ec.Enrollment
		html = append(html, []byte(render.CourseCard(ec.Course, &enrollment))...)
		html = append(html, '\n')
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// Continue acknowledges a continue request for an enrolled course
// @Summary Continue a course
// @Description Course content is not served yet; the endpoint returns the placeholder notification the page shows.
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.ContinueResponse}
// @Failure 404 {object} dto.ErrorResponse "Course not found or not enrolled"
// @Router /enrollments/{id}/continue [post]
func (c *EnrollmentController) Continue(ctx *gin.Context) {
	session, ok := middleware.SessionFrom(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := pathID(ctx)
	if !ok {
		return
	}

	resp, err := c.enrollmentService.Continue(ctx.Request.Context(), session, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}
