package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "finakihub_backend/internals/databases"
	"finakihub_backend/internals/databases/dbtest"
	"finakihub_backend/internals/features/users/user/model"
)

func newRepo(t *testing.T) Repository {
	t.Helper()
	store := dbtest.SQLite(t)
	require.NoError(t, EnsureSchema(context.Background(), store))
	return New(store)
}

func seedUser(t *testing.T, repo Repository, username string, coins int64) *model.UserModel {
	t.Helper()
	u := &model.UserModel{
		Username:      username,
		Age:           9,
		AvatarConfig:  model.DefaultAvatarConfig(),
		Coins:         coins,
		SelectedLevel: "primaria",
		CreatedAt:     time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	require.NotEmpty(t, u.ID)
	return u
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := seedUser(t, repo, "ana", 0)

	assert.True(t, repo.ValidID(u.ID))
	assert.False(t, repo.ValidID("not-an-id"))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana", got.Username)
	assert.Equal(t, "blue", got.AvatarConfig["color"])
	assert.Empty(t, got.Badges)
	assert.NotNil(t, got.Badges)
	assert.Empty(t, got.EquippedItems)

	byName, err := repo.FindByUsername(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = repo.FindByUsername(ctx, "Ana")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestCreateDuplicateUsername(t *testing.T) {
	repo := newRepo(t)
	seedUser(t, repo, "ana", 0)

	err := repo.Create(context.Background(), &model.UserModel{Username: "ana", Age: 10, SelectedLevel: "primaria"})
	assert.ErrorIs(t, err, database.ErrDuplicate)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestSetAvatarAndLevel(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := seedUser(t, repo, "ana", 0)

	require.NoError(t, repo.SetAvatar(ctx, u.ID, map[string]any{"color": "red"}))
	require.NoError(t, repo.SetSelectedLevel(ctx, u.ID, "secundaria"))

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"color": "red"}, got.AvatarConfig)
	assert.Equal(t, "secundaria", got.SelectedLevel)

	missing := "00000000-0000-0000-0000-000000000000"
	assert.ErrorIs(t, repo.SetAvatar(ctx, missing, map[string]any{}), database.ErrNotFound)
	assert.ErrorIs(t, repo.SetSelectedLevel(ctx, missing, "inicial"), database.ErrNotFound)
}

func TestIncrementXPReturnsPreviousState(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := seedUser(t, repo, "ana", 7)

	snap, err := repo.IncrementXP(ctx, u.ID, 150)
	require.NoError(t, err)
	assert.EqualValues(t, 0, snap.XP)
	assert.EqualValues(t, 7, snap.Coins)

	snap, err = repo.IncrementXP(ctx, u.ID, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 150, snap.XP)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 160, got.XP)

	_, err = repo.IncrementXP(ctx, "00000000-0000-0000-0000-000000000000", 5)
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestIncrementCoinsAllowsNegative(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := seedUser(t, repo, "ana", 5)

	total, err := repo.IncrementCoins(ctx, u.ID, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)

	total, err = repo.IncrementCoins(ctx, u.ID, -20)
	require.NoError(t, err)
	assert.EqualValues(t, -5, total)
}

func TestConcurrentIncrementsAreNotLost(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := seedUser(t, repo, "ana", 0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.IncrementCoins(ctx, u.ID, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 20, got.Coins)
}

func TestAddBadgeSetSemantics(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := seedUser(t, repo, "ana", 0)

	added, err := repo.AddBadge(ctx, u.ID, "first_steps")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.AddBadge(ctx, u.ID, "first_steps")
	require.NoError(t, err)
	assert.False(t, added)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"first_steps"}, got.Badges)

	_, err = repo.AddBadge(ctx, "00000000-0000-0000-0000-000000000000", "x")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestPurchaseConditions(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := seedUser(t, repo, "ana", 30)

	coins, ok, err := repo.Purchase(ctx, u.ID, "hat_cap", 10)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.EqualValues(t, 20, coins)

	// already owned
	_, ok, err = repo.Purchase(ctx, u.ID, "hat_cap", 10)
	require.NoError(t, err)
	assert.False(t, ok)

	// not enough coins
	_, ok, err = repo.Purchase(ctx, u.ID, "special_diamond", 100)
	require.NoError(t, err)
	assert.False(t, ok)

	// unknown user
	_, ok, err = repo.Purchase(ctx, "00000000-0000-0000-0000-000000000000", "hat_cap", 0)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 20, got.Coins)
	assert.Equal(t, []string{"hat_cap"}, got.PurchasedItems)

	owns, err := repo.OwnsItem(ctx, u.ID, "hat_cap")
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = repo.OwnsItem(ctx, u.ID, "hat_crown")
	require.NoError(t, err)
	assert.False(t, owns)

	_, err = repo.OwnsItem(ctx, "00000000-0000-0000-0000-000000000000", "hat_cap")
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestConcurrentPurchaseChargesOnce(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := seedUser(t, repo, "ana", 100)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := repo.Purchase(ctx, u.ID, "hat_crown", 25)
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	got, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 75, got.Coins)
}

func TestEquipAndClear(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := seedUser(t, repo, "ana", 0)

	eq, err := repo.SetEquipped(ctx, u.ID, []string{"hat", "sombrero"}, "hat_cap")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"hat": "hat_cap", "sombrero": "hat_cap"}, eq)

	eq, err = repo.SetEquipped(ctx, u.ID, []string{"hat", "sombrero"}, "hat_crown")
	require.NoError(t, err)
	assert.Equal(t, "hat_crown", eq["hat"])
	assert.Equal(t, "hat_crown", eq["sombrero"])

	eq, err = repo.SetEquipped(ctx, u.ID, []string{"background", "fondo"}, "bg_space")
	require.NoError(t, err)
	assert.Len(t, eq, 4)

	eq, err = repo.ClearEquipped(ctx, u.ID, []string{"hat", "sombrero"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"background": "bg_space", "fondo": "bg_space"}, eq)

	_, err = repo.ClearEquipped(ctx, "00000000-0000-0000-0000-000000000000", []string{"hat"})
	assert.ErrorIs(t, err, database.ErrNotFound)
}
