package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finakihub_backend/internals/features/progress/progress/model"
)

type progressDocument struct {
	UserID           string         `bson:"user_id"`
	CompletedModules []string       `bson:"completed_modules"`
	ModuleScores     map[string]int `bson:"module_scores"`
	TotalScore       int            `bson:"total_score"`
	UpdatedAt        time.Time      `bson:"updated_at"`
}

func (d *progressDocument) toModel() *model.ProgressModel {
	p := &model.ProgressModel{
		UserID:           d.UserID,
		CompletedModules: d.CompletedModules,
		ModuleScores:     d.ModuleScores,
		TotalScore:       d.TotalScore,
		UpdatedAt:        d.UpdatedAt,
	}
	if p.CompletedModules == nil {
		p.CompletedModules = []string{}
	}
	if p.ModuleScores == nil {
		p.ModuleScores = map[string]int{}
	}
	return p
}

type MongoRepository struct {
	progress *mongo.Collection
	now      func() time.Time
}

func NewMongoRepository(progress *mongo.Collection) *MongoRepository {
	return &MongoRepository{progress: progress, now: time.Now}
}

func ensureMongoIndexes(ctx context.Context, c *mongo.Collection) error {
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_progress_user_id"),
	})
	return err
}

func createOnReadUpdate(userID string, now time.Time) bson.M {
	return bson.M{"$setOnInsert": bson.M{
		"user_id":           userID,
		"completed_modules": bson.A{},
		"module_scores":     bson.M{},
		"total_score":       0,
		"updated_at":        now,
	}}
}

func fullFieldUpdate(p *model.ProgressModel, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"completed_modules": p.CompletedModules,
		"module_scores":     p.ModuleScores,
		"total_score":       p.TotalScore,
		"updated_at":        now,
	}}
}

func (r *MongoRepository) FindOrCreate(ctx context.Context, userID string) (*model.ProgressModel, bool, error) {
	filter := bson.M{"user_id": userID}

	res, err := r.progress.UpdateOne(ctx, filter, createOnReadUpdate(userID, r.now()), options.Update().SetUpsert(true))
	created := err == nil && res.UpsertedID != nil
	// a duplicate key means a concurrent first read inserted it
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return nil, false, err
	}

	var doc progressDocument
	if err := r.progress.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, false, err
	}
	return doc.toModel(), created, nil
}

func (r *MongoRepository) Upsert(ctx context.Context, p *model.ProgressModel) (model.UpsertOutcome, error) {
	res, err := r.progress.UpdateOne(ctx,
		bson.M{"user_id": p.UserID},
		fullFieldUpdate(p, r.now()),
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return model.Unchanged, err
	}
	switch {
	case res.UpsertedID != nil:
		return model.Created, nil
	case res.ModifiedCount > 0:
		return model.Modified, nil
	default:
		return model.Unchanged, nil
	}
}
