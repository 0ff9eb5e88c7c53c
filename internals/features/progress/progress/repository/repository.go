package repository

import (
	"context"

	database "finakihub_backend/internals/databases"
	"finakihub_backend/internals/features/progress/progress/model"
)

type Repository interface {
	// FindOrCreate returns the stored record, persisting an empty one first when absent.
	FindOrCreate(ctx context.Context, userID string) (p *model.ProgressModel, created bool, err error)
	// Upsert replaces every content field and refreshes updated_at.
	Upsert(ctx context.Context, p *model.ProgressModel) (model.UpsertOutcome, error)
}

func New(store *database.Store) Repository {
	if store.IsMongo() {
		return NewMongoRepository(store.Collection(database.ProgressCollection))
	}
	return NewGormRepository(store.SQL)
}

func EnsureSchema(ctx context.Context, store *database.Store) error {
	if store.IsMongo() {
		return ensureMongoIndexes(ctx, store.Collection(database.ProgressCollection))
	}
	return store.SQL.WithContext(ctx).AutoMigrate(&progressRow{})
}
