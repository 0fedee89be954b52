package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/repositories"
	"github.com/signifi/platform/internal/pkg/apperrors"
)

// EnrollmentService handles learner enrollment.
type EnrollmentService struct {
	courses     *repositories.CourseRepository
	enrollments *repositories.EnrollmentRepository
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(courses *repositories.CourseRepository, enrollments *repositories.EnrollmentRepository, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		courses:     courses,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Enroll creates an enrollment for the session user unless one already
// exists for the pair, then bumps the course's enrolled counter. The two
// collections are written independently; a failure between the writes leaves
// the counter behind by one.
func (s *EnrollmentService) Enroll(ctx context.Context, session models.Session, courseID int64) (*dto.EnrollResponse, error) {
	course, ok, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}

	exists, err := s.enrollments.ExistsFor(ctx, session.ID, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		existing, err := s.enrollments.FindWhere(ctx, func(e models.Enrollment) bool {
			return e.UserID == session.ID && e.CourseID == courseID
		})
		if err != nil {
			return nil, err
		}
		return &dto.EnrollResponse{
			Enrollment:      existing[0],
			AlreadyEnrolled: true,
		}, nil
	}

	enrollment, err := s.enrollments.Append(ctx, models.Enrollment{
		UserID:     session.ID,
		CourseID:   courseID,
		EnrolledAt: time.Now().UTC(),
		Progress:   0,
		Status:     models.EnrollmentActive,
	})
	if err != nil {
		return nil, err
	}

	course.Enrolled++
	if _, err := s.courses.Replace(ctx, course); err != nil {
		return nil, fmt.Errorf("update enrolled counter: %w", err)
	}

	s.logger.Info().Int64("userId", session.ID).Int64("courseId", courseID).Msg("Enrolled in course")
	return &dto.EnrollResponse{Enrollment: enrollment}, nil
}

// ListEnrolled returns the session user's enrollments paired with their
// courses. Enrollments whose course has been deleted are skipped; the orphan
// records themselves are preserved.
func (s *EnrollmentService) ListEnrolled(ctx context.Context, session models.Session) ([]dto.EnrolledCourse, error) {
	enrollments, err := s.enrollments.ByUser(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	enrolled := make([]dto.EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		course, ok, err := s.courses.FindByID(ctx, e.CourseID)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		enrolled = append(enrolled, dto.EnrolledCourse{
			Course:     course,
			Enrollment: e,
		})
	}
	return enrolled, nil
}

// Continue is a stub: course content does not exist yet, so continuing a
// course only produces a notification message.
func (s *EnrollmentService) Continue(ctx context.Context, session models.Session, courseID int64) (*dto.ContinueResponse, error) {
	course, ok, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return &dto.ContinueResponse{
		Message: fmt.Sprintf("Continuing %s... (Course content coming soon!)", course.Title),
	}, nil
}
