package database

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"finakihub_backend/internals/configs"
)

const (
	UsersCollection    = "users"
	ProgressCollection = "progress"
	LemonadeCollection = "lemonade_games"
)

// Store is the storage handle acquired once at startup and injected into every repository.
// Exactly one of Mongo or SQL is set, depending on Driver.
type Store struct {
	Driver string
	Mongo  *mongo.Database
	SQL    *gorm.DB

	client *mongo.Client
}

func Open(ctx context.Context, cfg *configs.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case configs.DriverMongo:
		return ConnectMongo(ctx, cfg)
	case configs.DriverPostgres:
		return ConnectPostgres(cfg)
	case configs.DriverSQLite:
		return ConnectSQLite(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func (s *Store) IsMongo() bool {
	return s.Mongo != nil
}

func (s *Store) Ping(ctx context.Context) error {
	if s.IsMongo() {
		return s.client.Ping(ctx, nil)
	}
	sqlDB, err := s.SQL.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	log.Infof("Closing %s connection...", s.Driver)
	if s.IsMongo() {
		return s.client.Disconnect(ctx)
	}
	sqlDB, err := s.SQL.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
