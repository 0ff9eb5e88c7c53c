package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finakihub_backend/internals/databases/dbtest"
	"finakihub_backend/internals/features/progress/progress/dto"
	"finakihub_backend/internals/features/progress/progress/repository"
	"finakihub_backend/internals/helpers/apperr"
)

func newService(t *testing.T) *ProgressService {
	t.Helper()
	store := dbtest.SQLite(t)
	require.NoError(t, repository.EnsureSchema(context.Background(), store))
	return NewProgressService(repository.New(store))
}

func TestGetRequiresUserID(t *testing.T) {
	svc := newService(t)
	_, err := svc.Get(context.Background(), "  ")
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))
}

func TestGetCreatesOnFirstRead(t *testing.T) {
	svc := newService(t)
	p, err := svc.Get(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", p.UserID)
	assert.Empty(t, p.CompletedModules)
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestUpdateReportsCreatedThenModified(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	req := dto.ProgressUpdateRequest{
		UserID:           "abc",
		CompletedModules: []string{"piggy_bank", "piggy_bank", "needs_wants"},
		ModuleScores:     map[string]int{"piggy_bank": 10},
		TotalScore:       10,
	}

	res, err := svc.Update(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, &dto.ProgressUpdateResult{Success: true, Message: "Progreso creado", Created: true}, res)

	res, err = svc.Update(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, &dto.ProgressUpdateResult{Success: true, Message: "Progreso actualizado", Modified: true}, res)

	p, err := svc.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"piggy_bank", "needs_wants"}, p.CompletedModules)
}

func TestCreateInitialUserProgressIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	require.NoError(t, svc.CreateInitialUserProgress(ctx, "u1"))
	require.NoError(t, svc.CreateInitialUserProgress(ctx, "u1"))

	res, err := svc.Update(ctx, dto.ProgressUpdateRequest{UserID: "u1", TotalScore: 5})
	require.NoError(t, err)
	assert.True(t, res.Modified)
}
