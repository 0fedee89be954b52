package dto

import "github.com/signifi/platform/internal/app/models"

// EnrollRequest asks to enroll the current user in a course
type EnrollRequest struct {
	CourseID int64 `json:"courseId" binding:"required"`
}

// EnrollResponse reports the created (or pre-existing) enrollment
type EnrollResponse struct {
	Enrollment      models.Enrollment `json:"enrollment"`
	AlreadyEnrolled bool              `json:"alreadyEnrolled"`
}

// EnrolledCourse pairs a course with the user's enrollment into it
type EnrolledCourse struct {
	Course     models.Course     `json:"course"`
	Enrollment models.Enrollment `json:"enrollment"`
}

// ContinueResponse is the stub notification for continuing a course
type ContinueResponse struct {
	Message string `json:"message"`
}
