package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models"
	"github.com/signifi/platform/internal/app/repositories"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollmentService(t *testing.T) (*EnrollmentService, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositories(kvstore.NewMemoryStore())
	return NewEnrollmentService(repos.Courses, repos.Enrollments, zerolog.Nop()), repos
}

func learnerSession(id int64) models.Session {
	return models.Session{ID: id, Email: "learner@signifi.com", Role: models.RoleStudent}
}

func TestEnrollIsIdempotent(t *testing.T) {
	svc, repos := newEnrollmentService(t)
	ctx := context.Background()
	session := learnerSession(5)

	courses, err := repos.Courses.LoadAll(ctx)
	require.NoError(t, err)
	course := courses[0]

	first, err := svc.Enroll(ctx, session, course.ID)
	require.NoError(t, err)
	assert.False(t, first.AlreadyEnrolled)
	assert.Equal(t, models.EnrollmentActive, first.Enrollment.Status)
	assert.Zero(t, first.Enrollment.Progress)

	second, err := svc.Enroll(ctx, session, course.ID)
	require.NoError(t, err)
	assert.True(t, second.AlreadyEnrolled)
	assert.Equal(t, first.Enrollment.ID, second.Enrollment.ID)

	// Exactly one record exists for the pair.
	count, err := repos.Enrollments.CountForCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The enrolled counter moved exactly once.
	after, _, err := repos.Courses.FindByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.Enrolled+1, after.Enrolled)
}

func TestEnrollUnknownCourse(t *testing.T) {
	svc, _ := newEnrollmentService(t)

	_, err := svc.Enroll(context.Background(), learnerSession(5), 9999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}

func TestListEnrolledSkipsDeletedCourses(t *testing.T) {
	svc, repos := newEnrollmentService(t)
	ctx := context.Background()
	session := learnerSession(5)

	courses, err := repos.Courses.LoadAll(ctx)
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, session, courses[0].ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, session, courses[1].ID)
	require.NoError(t, err)

	_, err = repos.Courses.Delete(ctx, courses[0].ID)
	require.NoError(t, err)

	enrolled, err := svc.ListEnrolled(ctx, session)
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, courses[1].ID, enrolled[0].Course.ID)

	// The orphan enrollment itself survives.
	orphans, err := repos.Enrollments.CountForCourse(ctx, courses[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 1, orphans)
}

func TestListEnrolledScopedToUser(t *testing.T) {
	svc, repos := newEnrollmentService(t)
	ctx := context.Background()

	courses, err := repos.Courses.LoadAll(ctx)
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, learnerSession(5), courses[0].ID)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, learnerSession(6), courses[1].ID)
	require.NoError(t, err)

	enrolled, err := svc.ListEnrolled(ctx, learnerSession(5))
	require.NoError(t, err)
	require.Len(t, enrolled, 1)
	assert.Equal(t, courses[0].ID, enrolled[0].Course.ID)
}

func TestContinueStub(t *testing.T) {
	svc, repos := newEnrollmentService(t)
	ctx := context.Background()

	courses, err := repos.Courses.LoadAll(ctx)
	require.NoError(t, err)

	resp, err := svc.Continue(ctx, learnerSession(5), courses[0].ID)
	require.NoError(t, err)
	assert.Contains(t, resp.Message, courses[0].Title)
	assert.Contains(t, resp.Message, "coming soon")

	_, err = svc.Continue(ctx, learnerSession(5), 9999)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
