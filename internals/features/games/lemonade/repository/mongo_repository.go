package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finakihub_backend/internals/features/games/lemonade/model"
)

type lemonadeDocument struct {
	UserID       string           `bson:"user_id"`
	CurrentDay   int              `bson:"current_day"`
	TotalDays    int              `bson:"total_days"`
	InitialMoney float64          `bson:"initial_money"`
	CurrentMoney float64          `bson:"current_money"`
	DaysData     []map[string]any `bson:"days_data"`
	TotalProfit  float64          `bson:"total_profit"`
	TotalSavings float64          `bson:"total_savings"`
	Completed    bool             `bson:"completed"`
	Score        int              `bson:"score"`
	UpdatedAt    time.Time        `bson:"updated_at"`
}

func (d *lemonadeDocument) toModel() *model.LemonadeGame {
	days := d.DaysData
	if days == nil {
		days = []map[string]any{}
	}
	return &model.LemonadeGame{
		UserID:       d.UserID,
		CurrentDay:   d.CurrentDay,
		TotalDays:    d.TotalDays,
		InitialMoney: d.InitialMoney,
		CurrentMoney: d.CurrentMoney,
		DaysData:     days,
		TotalProfit:  d.TotalProfit,
		TotalSavings: d.TotalSavings,
		Completed:    d.Completed,
		Score:        d.Score,
		UpdatedAt:    d.UpdatedAt,
	}
}

type MongoRepository struct {
	games *mongo.Collection
}

func NewMongoRepository(games *mongo.Collection) *MongoRepository {
	return &MongoRepository{games: games}
}

func ensureMongoIndexes(ctx context.Context, c *mongo.Collection) error {
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_lemonade_user_id"),
	})
	return err
}

// saveUpdate sets every game field except user_id; updated_at comes from the server clock.
func saveUpdate(g *model.LemonadeGame) bson.M {
	days := g.DaysData
	if days == nil {
		days = []map[string]any{}
	}
	return bson.M{
		"$set": bson.M{
			"current_day":   g.CurrentDay,
			"total_days":    g.TotalDays,
			"initial_money": g.InitialMoney,
			"current_money": g.CurrentMoney,
			"days_data":     days,
			"total_profit":  g.TotalProfit,
			"total_savings": g.TotalSavings,
			"completed":     g.Completed,
			"score":         g.Score,
		},
		"$currentDate": bson.M{"updated_at": true},
	}
}

func (r *MongoRepository) Save(ctx context.Context, g *model.LemonadeGame) error {
	_, err := r.games.UpdateOne(ctx,
		bson.M{"user_id": g.UserID},
		saveUpdate(g),
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *MongoRepository) FindByUserID(ctx context.Context, userID string) (*model.LemonadeGame, error) {
	var doc lemonadeDocument
	err := r.games.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}
