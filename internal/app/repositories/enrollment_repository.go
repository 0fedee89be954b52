package repositories

import (
	"context"

	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/kvstore"
)

// EnrollmentRepository owns the enrollments collection. It starts empty;
// there is no seed list.
type EnrollmentRepository struct {
	*Collection[models.Enrollment]
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(store kvstore.Store) *EnrollmentRepository {
	return &EnrollmentRepository{
		Collection: NewCollection[models.Enrollment](store, kvstore.KeyEnrollments,
			func(e models.Enrollment) int64 { return e.ID },
			nil),
	}
}

// ExistsFor checks the duplicate-enrollment guard: whether the user already
// has an enrollment for the course.
func (r *EnrollmentRepository) ExistsFor(ctx context.Context, userID, courseID int64) (bool, error) {
	matched, err := r.FindWhere(ctx, func(e models.Enrollment) bool {
		return e.UserID == userID && e.CourseID == courseID
	})
	if err != nil {
		return false, err
	}
	return len(matched) > 0, nil
}

// ByUser returns the user's enrollments.
func (r *EnrollmentRepository) ByUser(ctx context.Context, userID int64) ([]models.Enrollment, error) {
	return r.FindWhere(ctx, func(e models.Enrollment) bool {
		return e.UserID == userID
	})
}

// CountForCourse returns how many enrollments reference the course.
func (r *EnrollmentRepository) CountForCourse(ctx context.Context, courseID int64) (int, error) {
	matched, err := r.FindWhere(ctx, func(e models.Enrollment) bool {
		return e.CourseID == courseID
	})
	if err != nil {
		return 0, err
	}
	return len(matched), nil
}

// Append adds an enrollment with the next id and persists the collection.
func (r *EnrollmentRepository) Append(ctx context.Context, enrollment models.Enrollment) (models.Enrollment, error) {
	enrollments, err := r.LoadAll(ctx)
	if err != nil {
		return models.Enrollment{}, err
	}
	enrollment.ID = r.NextID(enrollments)
	enrollments = append(enrollments, enrollment)
	if err := r.Save(ctx, enrollments); err != nil {
		return models.Enrollment{}, err
	}
	return enrollment, nil
}
