package database

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"finakihub_backend/internals/configs"
)

func ConnectMongo(ctx context.Context, cfg *configs.Config) (*Store, error) {
	log.Info("Connecting to MongoDB...")

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	log.Infof("MongoDB connected (db=%s)", cfg.DBName)
	return &Store{
		Driver: configs.DriverMongo,
		Mongo:  client.Database(cfg.DBName),
		client: client,
	}, nil
}

func (s *Store) Collection(name string) *mongo.Collection {
	return s.Mongo.Collection(name)
}
