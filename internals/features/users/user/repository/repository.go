package repository

import (
	"context"

	database "finakihub_backend/internals/databases"
	"finakihub_backend/internals/features/users/user/model"
)

// Repository is the users collection adapter. Every mutation is a single atomic
// operation on one user record; missing users surface as database.ErrNotFound.
type Repository interface {
	// ValidID reports whether id is well-formed for this backend; callers check it before any store call.
	ValidID(id string) bool

	Create(ctx context.Context, u *model.UserModel) error
	FindByID(ctx context.Context, id string) (*model.UserModel, error)
	FindByUsername(ctx context.Context, username string) (*model.UserModel, error)
	Count(ctx context.Context) (int64, error)

	SetAvatar(ctx context.Context, id string, avatar map[string]any) error
	SetSelectedLevel(ctx context.Context, id, tier string) error

	// IncrementCoins adds delta (possibly negative) and returns the new balance.
	IncrementCoins(ctx context.Context, id string, delta int64) (int64, error)
	// IncrementXP adds amount and returns the record as it was before the increment.
	IncrementXP(ctx context.Context, id string, amount int64) (*model.XPSnapshot, error)
	// AddBadge adds badgeID with set semantics and reports whether it was new.
	AddBadge(ctx context.Context, id, badgeID string) (bool, error)
	// Purchase charges price and records itemID only if the user exists, can afford it and
	// does not own it yet. matched is false when any of those conditions failed.
	Purchase(ctx context.Context, id, itemID string, price int64) (newCoins int64, matched bool, err error)
	OwnsItem(ctx context.Context, id, itemID string) (bool, error)
	// SetEquipped points every slot key at itemID; ClearEquipped removes the keys.
	// Both return the full equipped map after the change.
	SetEquipped(ctx context.Context, id string, keys []string, itemID string) (map[string]string, error)
	ClearEquipped(ctx context.Context, id string, keys []string) (map[string]string, error)
}

func New(store *database.Store) Repository {
	if store.IsMongo() {
		return NewMongoRepository(store.Collection(database.UsersCollection))
	}
	return NewGormRepository(store.SQL)
}

// EnsureSchema creates the indexes (mongo) or tables (sql) the repository relies on.
func EnsureSchema(ctx context.Context, store *database.Store) error {
	if store.IsMongo() {
		return ensureMongoIndexes(ctx, store.Collection(database.UsersCollection))
	}
	return migrateGorm(ctx, store.SQL)
}
