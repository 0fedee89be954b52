package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/repositories"
	"github.com/signifi/platform/internal/pkg/apperrors"
)

// StudentService handles the admin students table. The table is its own
// mock dataset, unrelated to Enrollment.
type StudentService struct {
	students *repositories.StudentRepository
	logger   zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(students *repositories.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{
		students: students,
		logger:   logger,
	}
}

// List returns all students.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.students.LoadAll(ctx)
}

// GetByID returns one student.
func (s *StudentService) GetByID(ctx context.Context, id int64) (models.Student, error) {
	student, ok, err := s.students.FindByID(ctx, id)
	if err != nil {
		return models.Student{}, err
	}
	if !ok {
		return models.Student{}, apperrors.ErrStudentNotFound
	}
	return student, nil
}

// Create adds a student row.
func (s *StudentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (models.Student, error) {
	status := req.Status
	if status == "" {
		status = "Active"
	}
	student, err := s.students.Append(ctx, models.Student{
		Name:     req.Name,
		Email:    req.Email,
		Course:   req.Course,
		Progress: clampProgress(req.Progress),
		Status:   status,
	})
	if err != nil {
		return models.Student{}, err
	}
	s.logger.Info().Int64("studentId", student.ID).Msg("Student created")
	return student, nil
}

// Update rewrites a student row. A missing id is a silent no-op.
func (s *StudentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (models.Student, error) {
	student, ok, err := s.students.FindByID(ctx, id)
	if err != nil {
		return models.Student{}, err
	}
	if !ok {
		return models.Student{}, nil
	}

	student.Name = req.Name
	student.Email = req.Email
	student.Course = req.Course
	student.Progress = clampProgress(req.Progress)
	student.Status = req.Status

	if _, err := s.students.Replace(ctx, student); err != nil {
		return models.Student{}, err
	}
	s.logger.Info().Int64("studentId", id).Msg("Student updated")
	return student, nil
}

// Delete removes a student row. A missing id is a silent no-op.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.students.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		s.logger.Info().Int64("studentId", id).Msg("Student deleted")
	}
	return nil
}

func clampProgress(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
