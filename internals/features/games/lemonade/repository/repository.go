package repository

import (
	"context"

	database "finakihub_backend/internals/databases"
	"finakihub_backend/internals/features/games/lemonade/model"
)

type Repository interface {
	// Save replaces the stored state for g.UserID and stamps it with the server time.
	Save(ctx context.Context, g *model.LemonadeGame) error
	// FindByUserID returns nil, nil when the user has no saved game.
	FindByUserID(ctx context.Context, userID string) (*model.LemonadeGame, error)
}

func New(store *database.Store) Repository {
	if store.IsMongo() {
		return NewMongoRepository(store.Collection(database.LemonadeCollection))
	}
	return NewGormRepository(store.SQL)
}

func EnsureSchema(ctx context.Context, store *database.Store) error {
	if store.IsMongo() {
		return ensureMongoIndexes(ctx, store.Collection(database.LemonadeCollection))
	}
	return store.SQL.WithContext(ctx).AutoMigrate(&lemonadeRow{})
}
