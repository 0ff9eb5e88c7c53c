package database

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"finakihub_backend/internals/configs"
)

// ConnectSQLite opens a sqlite file (or a "file:...?mode=memory" DSN).
// sqlite has a single writer, so the pool is pinned to one connection.
func ConnectSQLite(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	log.Debugf("SQLite opened (%s)", dsn)
	return &Store{Driver: configs.DriverSQLite, SQL: db}, nil
}
