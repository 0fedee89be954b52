package services

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/repositories"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCourseService(t *testing.T) (*CourseService, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositories(kvstore.NewMemoryStore())
	return NewCourseService(repos.Courses, repos.Enrollments, zerolog.Nop()), repos
}

func teacherSession(id int64) models.Session {
	return models.Session{ID: id, Email: "teacher@signifi.com", Role: models.RoleTeacher}
}

func TestFilterCourses(t *testing.T) {
	courses := []models.Course{
		{ID: 1, Title: "Basic Hand Signs", Description: "Fundamentals", Instructor: "Maria Santos", Level: models.LevelBeginner},
		{ID: 2, Title: "Everyday Conversations", Description: "Daily signing", Instructor: "Juan Dela Cruz", Level: models.LevelIntermediate},
		{ID: 3, Title: "Advanced Grammar", Description: "Complex structures", Instructor: "Maria Santos", Level: models.LevelAdvanced},
	}

	// No filter returns everything.
	assert.Len(t, FilterCourses(courses, "", ""), 3)
	assert.Len(t, FilterCourses(courses, "", "all"), 3)

	// Level filter.
	got := FilterCourses(courses, "", "beginner")
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	// Query matches title, description and instructor, case-insensitively.
	assert.Len(t, FilterCourses(courses, "GRAMMAR", ""), 1)
	assert.Len(t, FilterCourses(courses, "daily", ""), 1)
	assert.Len(t, FilterCourses(courses, "maria", ""), 2)

	// Query and level combine.
	assert.Len(t, FilterCourses(courses, "maria", "advanced"), 1)
	assert.Empty(t, FilterCourses(courses, "maria", "intermediate"))

	// No hits.
	assert.Empty(t, FilterCourses(courses, "nonexistent", ""))
}

func TestSortCourses(t *testing.T) {
	courses := []models.Course{
		{ID: 1, Title: "Everyday Conversations", Rating: 4.9, Enrolled: 12},
		{ID: 2, Title: "Basic Hand Signs", Rating: 4.2, Enrolled: 57},
		{ID: 3, Title: "Advanced Grammar", Rating: 4.6, Enrolled: 31},
	}

	ids := func(got []models.Course) []int64 {
		out := make([]int64, len(got))
		for i, c := range got {
			out[i] = c.ID
		}
		return out
	}

	// Name sorts by title ascending.
	assert.Equal(t, []int64{3, 2, 1}, ids(SortCourses(courses, "name")))

	// Rating and enrolled sort descending.
	assert.Equal(t, []int64{1, 3, 2}, ids(SortCourses(courses, "rating")))
	assert.Equal(t, []int64{2, 3, 1}, ids(SortCourses(courses, "enrolled")))

	// Unknown or empty keys keep the input order.
	assert.Equal(t, []int64{1, 2, 3}, ids(SortCourses(courses, "")))
	assert.Equal(t, []int64{1, 2, 3}, ids(SortCourses(courses, "bogus")))

	// The input slice is never reordered.
	assert.Equal(t, []int64{1, 2, 3}, ids(courses))
}

func TestListCatalogSorted(t *testing.T) {
	svc, _ := newCourseService(t)

	courses, err := svc.ListCatalog(context.Background(), dto.CourseFilter{Sort: "name"})
	require.NoError(t, err)
	require.NotEmpty(t, courses)
	for i := 1; i < len(courses); i++ {
		prev := strings.ToLower(courses[i-1].Title)
		assert.LessOrEqual(t, prev, strings.ToLower(courses[i].Title))
	}
}

func TestCourseCatalogSeeded(t *testing.T) {
	svc, _ := newCourseService(t)

	courses, err := svc.ListCatalog(context.Background(), dto.CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, courses, 8)
}

func TestCourseCreateAndListMine(t *testing.T) {
	svc, _ := newCourseService(t)
	ctx := context.Background()
	session := teacherSession(42)

	course, err := svc.Create(ctx, session, &dto.CreateCourseRequest{
		Title:       "Fingerspelling Drills",
		Description: "Speed and accuracy drills",
		Level:       "beginner",
		Duration:    "3 weeks",
		Instructor:  "Prof. Reyes",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), course.CreatedBy)
	assert.Zero(t, course.Enrolled)

	mine, err := svc.ListMine(ctx, session)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, course.ID, mine[0].ID)

	// Seeded catalog courses belong to someone else.
	other, err := svc.ListMine(ctx, teacherSession(999))
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestCourseCreateRejectsUnknownLevel(t *testing.T) {
	svc, _ := newCourseService(t)

	_, err := svc.Create(context.Background(), teacherSession(1), &dto.CreateCourseRequest{
		Title:       "x",
		Description: "x",
		Level:       "expert",
		Duration:    "1 week",
		Instructor:  "x",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCourseUpdateSemantics(t *testing.T) {
	svc, _ := newCourseService(t)
	ctx := context.Background()
	owner := teacherSession(42)

	course, err := svc.Create(ctx, owner, &dto.CreateCourseRequest{
		Title: "Before", Description: "d", Level: "beginner", Duration: "1 week", Instructor: "i",
	})
	require.NoError(t, err)

	req := &dto.UpdateCourseRequest{
		Title: "After", Description: "d2", Level: "intermediate", Duration: "2 weeks", Instructor: "i2",
	}

	updated, err := svc.Update(ctx, owner, course.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, models.LevelIntermediate, updated.Level)

	// Updating a missing id is a silent no-op.
	missing, err := svc.Update(ctx, owner, 9999, req)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)

	// Another teacher may not touch it.
	_, err = svc.Update(ctx, teacherSession(7), course.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestCourseDeletePreservesOrphanEnrollments(t *testing.T) {
	svc, repos := newCourseService(t)
	ctx := context.Background()
	owner := teacherSession(42)

	course, err := svc.Create(ctx, owner, &dto.CreateCourseRequest{
		Title: "Doomed", Description: "d", Level: "beginner", Duration: "1 week", Instructor: "i",
	})
	require.NoError(t, err)

	_, err = repos.Enrollments.Append(ctx, models.Enrollment{UserID: 5, CourseID: course.ID})
	require.NoError(t, err)
	_, err = repos.Enrollments.Append(ctx, models.Enrollment{UserID: 6, CourseID: course.ID})
	require.NoError(t, err)

	result, err := svc.Delete(ctx, owner, course.ID)
	require.NoError(t, err)
	assert.True(t, result.Deleted)
	assert.Equal(t, 2, result.OrphanedEnrollments)

	// The enrollment records stay behind.
	orphans, err := repos.Enrollments.CountForCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, orphans)

	// Deleting a missing id is a silent no-op.
	result, err = svc.Delete(ctx, owner, 9999)
	require.NoError(t, err)
	assert.False(t, result.Deleted)
}
