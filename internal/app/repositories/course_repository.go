package repositories

import (
	"context"

	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/seed"
)

// CourseRepository owns the course catalog collection.
type CourseRepository struct {
	*Collection[models.Course]
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(store kvstore.Store) *CourseRepository {
	return &CourseRepository{
		Collection: NewCollection(store, kvstore.KeyCourses,
			func(c models.Course) int64 { return c.ID },
			seed.Courses),
	}
}

// ByCreator returns courses created by the given user.
func (r *CourseRepository) ByCreator(ctx context.Context, userID int64) ([]models.Course, error) {
	return r.FindWhere(ctx, func(c models.Course) bool {
		return c.CreatedBy == userID
	})
}

// Append adds a course with the next id and persists the collection.
func (r *CourseRepository) Append(ctx context.Context, course models.Course) (models.Course, error) {
	courses, err := r.LoadAll(ctx)
	if err != nil {
		return models.Course{}, err
	}
	course.ID = r.NextID(courses)
	courses = append(courses, course)
	if err := r.Save(ctx, courses); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// Replace swaps the course with the same id and persists. A missing id is a
// silent no-op; the bool reports whether a record changed.
func (r *CourseRepository) Replace(ctx context.Context, course models.Course) (bool, error) {
	courses, err := r.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range courses {
		if courses[i].ID == course.ID {
			courses[i] = course
			if err := r.Save(ctx, courses); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the course with the given id. A missing id is a silent
// no-op; the bool reports whether a record was removed.
func (r *CourseRepository) Delete(ctx context.Context, id int64) (bool, error) {
	courses, err := r.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range courses {
		if courses[i].ID == id {
			courses = append(courses[:i], courses[i+1:]...)
			if err := r.Save(ctx, courses); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
