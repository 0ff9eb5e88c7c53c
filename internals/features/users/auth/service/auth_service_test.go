package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finakihub_backend/internals/databases/dbtest"
	progressDTO "finakihub_backend/internals/features/progress/progress/dto"
	progressRepo "finakihub_backend/internals/features/progress/progress/repository"
	progressService "finakihub_backend/internals/features/progress/progress/service"
	"finakihub_backend/internals/features/users/auth/dto"
	"finakihub_backend/internals/features/users/user/repository"
	"finakihub_backend/internals/helpers/apperr"
)

type recordingProgress struct{ ids []string }

func (r *recordingProgress) CreateInitialUserProgress(_ context.Context, userID string) error {
	r.ids = append(r.ids, userID)
	return nil
}

func newAuth(t *testing.T) (*AuthService, repository.Repository, *recordingProgress) {
	t.Helper()
	store := dbtest.SQLite(t)
	require.NoError(t, repository.EnsureSchema(context.Background(), store))
	users := repository.New(store)
	progress := &recordingProgress{}
	return NewAuthService(users, progress), users, progress
}

func TestRegisterDefaults(t *testing.T) {
	svc, _, progress := newAuth(t)

	u, err := svc.Register(context.Background(), dto.RegisterRequest{Username: "ana", Age: 8})
	require.NoError(t, err)

	assert.Equal(t, "ana", u.Username)
	assert.Equal(t, 8, u.Age)
	assert.Equal(t, map[string]any{"color": "blue", "style": "default"}, u.AvatarConfig)
	assert.EqualValues(t, 0, u.Coins)
	assert.EqualValues(t, 0, u.XP)
	assert.Equal(t, 1, u.Level)
	assert.Equal(t, "primaria", u.SelectedLevel)
	assert.Empty(t, u.Badges)
	assert.Empty(t, u.PurchasedItems)
	assert.Empty(t, u.EquippedItems)

	assert.Equal(t, []string{u.ID}, progress.ids)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc, users, _ := newAuth(t)

	_, err := svc.Register(ctx, dto.RegisterRequest{Username: "ana", Age: 8})
	require.NoError(t, err)

	_, err = svc.Register(ctx, dto.RegisterRequest{Username: "ana", Age: 11})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.Conflict))

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRegisterKeepsCustomAvatar(t *testing.T) {
	svc, _, _ := newAuth(t)
	u, err := svc.Register(context.Background(), dto.RegisterRequest{
		Username:     "leo",
		Age:          10,
		AvatarConfig: map[string]any{"color": "green"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"color": "green"}, u.AvatarConfig)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuth(t)
	reg, err := svc.Register(ctx, dto.RegisterRequest{Username: "ana", Age: 8})
	require.NoError(t, err)

	u, err := svc.Login(ctx, dto.LoginRequest{Username: "ana"})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "ANA"})
	assert.True(t, apperr.Is(err, apperr.NotFound))
}

func TestRegisterCreatesProgressRecord(t *testing.T) {
	ctx := context.Background()
	store := dbtest.SQLite(t)
	require.NoError(t, repository.EnsureSchema(ctx, store))
	require.NoError(t, progressRepo.EnsureSchema(ctx, store))

	progress := progressService.NewProgressService(progressRepo.New(store))
	svc := NewAuthService(repository.New(store), progress)

	u, err := svc.Register(ctx, dto.RegisterRequest{Username: "ana", Age: 8})
	require.NoError(t, err)

	res, err := progress.Update(ctx, progressDTO.ProgressUpdateRequest{UserID: u.ID, TotalScore: 1})
	require.NoError(t, err)
	assert.False(t, res.Created)
}
