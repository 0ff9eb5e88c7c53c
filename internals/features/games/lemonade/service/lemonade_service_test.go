package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finakihub_backend/internals/databases/dbtest"
	"finakihub_backend/internals/features/games/lemonade/dto"
	"finakihub_backend/internals/features/games/lemonade/repository"
	"finakihub_backend/internals/helpers/apperr"
)

func newService(t *testing.T) *LemonadeService {
	t.Helper()
	store := dbtest.SQLite(t)
	require.NoError(t, repository.EnsureSchema(context.Background(), store))
	return NewLemonadeService(repository.New(store))
}

func TestSaveAppliesDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	money := 18.0

	res, err := svc.Save(ctx, dto.LemonadeSaveRequest{UserID: "u1", CurrentMoney: &money, Score: 3})
	require.NoError(t, err)
	assert.Equal(t, &dto.LemonadeSaveResult{Success: true, Score: 3}, res)

	g, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, 1, g.CurrentDay)
	assert.Equal(t, 5, g.TotalDays)
	assert.Equal(t, 20.0, g.InitialMoney)
	assert.Equal(t, 18.0, g.CurrentMoney)
	assert.NotNil(t, g.DaysData)
}

func TestSaveKeepsExplicitZeros(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	zero, day := 0.0, 0

	_, err := svc.Save(ctx, dto.LemonadeSaveRequest{UserID: "u1", CurrentMoney: &zero, InitialMoney: &zero, CurrentDay: &day})
	require.NoError(t, err)

	g, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, g.CurrentDay)
	assert.Equal(t, 0.0, g.InitialMoney)
}

func TestGetWithoutSaveIsNil(t *testing.T) {
	svc := newService(t)
	g, err := svc.Get(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func TestUserIDRequired(t *testing.T) {
	svc := newService(t)
	money := 1.0

	_, err := svc.Get(context.Background(), " ")
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))

	_, err = svc.Save(context.Background(), dto.LemonadeSaveRequest{CurrentMoney: &money})
	assert.True(t, apperr.Is(err, apperr.InvalidArgument))
}
