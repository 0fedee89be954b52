package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/repositories"
	"github.com/signifi/platform/internal/pkg/apperrors"
)

// CourseService handles the educator course CRUD and catalog queries.
type CourseService struct {
	courses     *repositories.CourseRepository
	enrollments *repositories.EnrollmentRepository
	logger      zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(courses *repositories.CourseRepository, enrollments *repositories.EnrollmentRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{
		courses:     courses,
		enrollments: enrollments,
		logger:      logger,
	}
}

// FilterCourses narrows courses by a free-text query over title, description
// and instructor, and by level. It is a pure function over the data model so
// filtering state never depends on what happens to be rendered.
func FilterCourses(courses []models.Course, query, level string) []models.Course {
	query = strings.ToLower(strings.TrimSpace(query))
	matched := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if level != "" && level != "all" && string(c.Level) != level {
			continue
		}
		if query != "" {
			haystack := strings.ToLower(c.Title + " " + c.Description + " " + c.Instructor)
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		matched = append(matched, c)
	}
	return matched
}

// SortCourses orders courses by the given key: "name" sorts by title
// ascending, "rating" and "enrolled" sort descending so the strongest
// courses surface first. Any other key keeps the input order. The sort is
// stable and works on a copy, leaving the input slice untouched.
func SortCourses(courses []models.Course, sortBy string) []models.Course {
	sorted := make([]models.Course, len(courses))
	copy(sorted, courses)

	switch sortBy {
	case "name":
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Title) < strings.ToLower(sorted[j].Title)
		})
	case "rating":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case "enrolled":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Enrolled > sorted[j].Enrolled
		})
	}
	return sorted
}

// ListCatalog returns the catalog filtered by the given query and level.
func (s *CourseService) ListCatalog(ctx context.Context, filter dto.CourseFilter) ([]models.Course, error) {
	courses, err := s.courses.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return SortCourses(FilterCourses(courses, filter.Query, filter.Level), filter.Sort), nil
}

// GetByID returns one course.
func (s *CourseService) GetByID(ctx context.Context, id int64) (models.Course, error) {
	course, ok, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return models.Course{}, err
	}
	if !ok {
		return models.Course{}, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// ListMine returns the courses created by the session user.
func (s *CourseService) ListMine(ctx context.Context, session models.Session) ([]models.Course, error) {
	return s.courses.ByCreator(ctx, session.ID)
}

// Create adds a course owned by the session user.
func (s *CourseService) Create(ctx context.Context, session models.Session, req *dto.CreateCourseRequest) (models.Course, error) {
	level := models.CourseLevel(req.Level)
	if !models.ValidCourseLevel(level) {
		return models.Course{}, apperrors.NewValidationError("level", "level must be beginner, intermediate or advanced")
	}

	now := time.Now().UTC()
	course, err := s.courses.Append(ctx, models.Course{
		Title:       req.Title,
		Description: req.Description,
		Level:       level,
		Duration:    req.Duration,
		Instructor:  req.Instructor,
		Rating:      0,
		Enrolled:    0,
		CreatedBy:   session.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return models.Course{}, err
	}

	s.logger.Info().Int64("courseId", course.ID).Str("title", course.Title).Msg("Course created")
	return course, nil
}

// Update rewrites the editable fields of a course owned by the session user.
// A missing id is a silent no-op, matching the platform's edit semantics; a
// course owned by someone else is a permission error.
func (s *CourseService) Update(ctx context.Context, session models.Session, id int64, req *dto.UpdateCourseRequest) (models.Course, error) {
	level := models.CourseLevel(req.Level)
	if !models.ValidCourseLevel(level) {
		return models.Course{}, apperrors.NewValidationError("level", "level must be beginner, intermediate or advanced")
	}

	course, ok, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return models.Course{}, err
	}
	if !ok {
		return models.Course{}, nil
	}
	if course.CreatedBy != session.ID {
		return models.Course{}, apperrors.ErrPermissionDenied
	}

	course.Title = req.Title
	course.Description = req.Description
	course.Level = level
	course.Duration = req.Duration
	course.Instructor = req.Instructor
	course.UpdatedAt = time.Now().UTC()

	if _, err := s.courses.Replace(ctx, course); err != nil {
		return models.Course{}, err
	}
	s.logger.Info().Int64("courseId", course.ID).Msg("Course updated")
	return course, nil
}

// Delete removes a course owned by the session user. Enrollments referencing
// the course are counted and reported but never cascade-deleted; the orphan
// rows stay behind.
func (s *CourseService) Delete(ctx context.Context, session models.Session, id int64) (*dto.DeleteCourseResponse, error) {
	course, ok, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Deleting a missing id is a silent no-op.
		return &dto.DeleteCourseResponse{Deleted: false}, nil
	}
	if course.CreatedBy != session.ID {
		return nil, apperrors.ErrPermissionDenied
	}

	orphans, err := s.enrollments.CountForCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	deleted, err := s.courses.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("courseId", id).Int("orphanedEnrollments", orphans).Msg("Course deleted")
	return &dto.DeleteCourseResponse{
		Deleted:             deleted,
		OrphanedEnrollments: orphans,
	}, nil
}
