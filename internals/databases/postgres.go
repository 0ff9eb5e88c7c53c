package database

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"finakihub_backend/internals/configs"
)

func ConnectPostgres(cfg *configs.Config) (*Store, error) {
	log.Info("Connecting to PostgreSQL...")

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.PostgresDSN(),
		PreferSimpleProtocol: true, // PgBouncer transaction pooling
	}), gormConfig())
	if err != nil {
		return nil, err
	}
	if err := TunePool(db); err != nil {
		log.Warnf("pool tune err: %v", err)
	}

	log.Info("PostgreSQL connected.")
	return &Store{Driver: configs.DriverPostgres, SQL: db}, nil
}

func TunePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
	return nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	}
}
