package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finakihub_backend/internals/databases/dbtest"
	progressRepo "finakihub_backend/internals/features/progress/progress/repository"
	progressService "finakihub_backend/internals/features/progress/progress/service"
	authService "finakihub_backend/internals/features/users/auth/service"
	userRepo "finakihub_backend/internals/features/users/user/repository"
)

func TestSeedUsersFromJSONIsRepeatable(t *testing.T) {
	ctx := context.Background()
	store := dbtest.SQLite(t)
	require.NoError(t, userRepo.EnsureSchema(ctx, store))
	require.NoError(t, progressRepo.EnsureSchema(ctx, store))

	users := userRepo.New(store)
	svc := authService.NewAuthService(users, progressService.NewProgressService(progressRepo.New(store)))

	path := filepath.Join(t.TempDir(), "users.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"username": "a", "age": 6},
		{"username": "b", "age": 9, "avatar_config": {"color": "red"}},
		{"username": "", "age": 9}
	]`), 0o600))

	require.NoError(t, SeedUsersFromJSON(ctx, svc, path))
	require.NoError(t, SeedUsersFromJSON(ctx, svc, path))

	n, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	b, err := users.FindByUsername(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "red", b.AvatarConfig["color"])
}

func TestSeedUsersMissingFile(t *testing.T) {
	err := SeedUsersFromJSON(context.Background(), nil, filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestBundledSeedFileIsValid(t *testing.T) {
	ctx := context.Background()
	store := dbtest.SQLite(t)
	require.NoError(t, userRepo.EnsureSchema(ctx, store))
	svc := authService.NewAuthService(userRepo.New(store), nil)

	require.NoError(t, SeedUsersFromJSON(ctx, svc, "data_users.json"))
}
