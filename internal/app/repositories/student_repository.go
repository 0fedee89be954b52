package repositories

import (
	"context"

	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/seed"
)

// StudentRepository owns the admin students-table collection.
type StudentRepository struct {
	*Collection[models.Student]
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(store kvstore.Store) *StudentRepository {
	return &StudentRepository{
		Collection: NewCollection(store, kvstore.KeyStudents,
			func(s models.Student) int64 { return s.ID },
			seed.Students),
	}
}

// Append adds a student with the next id and persists the collection.
func (r *StudentRepository) Append(ctx context.Context, student models.Student) (models.Student, error) {
	students, err := r.LoadAll(ctx)
	if err != nil {
		return models.Student{}, err
	}
	student.ID = r.NextID(students)
	students = append(students, student)
	if err := r.Save(ctx, students); err != nil {
		return models.Student{}, err
	}
	return student, nil
}

// Replace swaps the student with the same id and persists. A missing id is a
// silent no-op; the bool reports whether a record changed.
func (r *StudentRepository) Replace(ctx context.Context, student models.Student) (bool, error) {
	students, err := r.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range students {
		if students[i].ID == student.ID {
			students[i] = student
			if err := r.Save(ctx, students); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the student with the given id. A missing id is a silent
// no-op; the bool reports whether a record was removed.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	students, err := r.LoadAll(ctx)
	if err != nil {
		return false, err
	}
	for i := range students {
		if students[i].ID == id {
			students = append(students[:i], students[i+1:]...)
			if err := r.Save(ctx, students); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}
