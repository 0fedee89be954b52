package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/signifi/platform/internal/app/models/dto"
	"github.com/signifi/platform/internal/app/repositories"
	"github.com/signifi/platform/internal/kvstore"
	"github.com/signifi/platform/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStudentService(t *testing.T) *StudentService {
	t.Helper()
	repos := repositories.NewRepositories(kvstore.NewMemoryStore())
	return NewStudentService(repos.Students, zerolog.Nop())
}

func TestStudentListSeeded(t *testing.T) {
	svc := newStudentService(t)

	students, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 3)
}

func TestStudentCreateDefaults(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	student, err := svc.Create(ctx, &dto.CreateStudentRequest{
		Name:     "New Student",
		Email:    "new@signifi.com",
		Course:   "Basic Hand Signs",
		Progress: 150,
	})
	require.NoError(t, err)
	assert.Equal(t, "Active", student.Status)
	assert.Equal(t, 100, student.Progress, "progress clamps to 0-100")

	got, err := svc.GetByID(ctx, student.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Student", got.Name)
}

func TestStudentUpdateAndDeleteSilentNoOp(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	students, err := svc.List(ctx)
	require.NoError(t, err)
	target := students[0]

	updated, err := svc.Update(ctx, target.ID, &dto.UpdateStudentRequest{
		Name:     "Renamed",
		Email:    target.Email,
		Course:   target.Course,
		Progress: -5,
		Status:   "Inactive",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Zero(t, updated.Progress)
	assert.Equal(t, "Inactive", updated.Status)

	// Missing ids are silent no-ops for both update and delete.
	missing, err := svc.Update(ctx, 9999, &dto.UpdateStudentRequest{Name: "x", Email: "x"})
	require.NoError(t, err)
	assert.Zero(t, missing.ID)

	require.NoError(t, svc.Delete(ctx, 9999))

	require.NoError(t, svc.Delete(ctx, target.ID))
	_, err = svc.GetByID(ctx, target.ID)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	remaining, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, remaining, len(students)-1)
}
