package configs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8000"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"mongo"`

	// mongo
	MongoURL string `env:"MONGO_URL" envDefault:"mongodb://localhost:27017"`
	DBName   string `env:"DB_NAME" envDefault:"finakihub"`

	// postgres
	DatabaseURL string `env:"DATABASE_URL"`
	DBUser      string `env:"DB_USER"`
	DBPassword  string `env:"DB_PASSWORD"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`

	// sqlite
	SQLitePath string `env:"SQLITE_PATH" envDefault:"finakihub.db"`

	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	RateLimitMax   int           `env:"RATE_LIMIT_MAX" envDefault:"120"`

	// per-IP budgets for /auth/login (per minute) and /auth/register (per 5 minutes); 0 disables
	RateLimitLogin    int `env:"RATE_LIMIT_LOGIN" envDefault:"30"`
	RateLimitRegister int `env:"RATE_LIMIT_REGISTER" envDefault:"30"`

	// SEED_USERS_FILE points at a JSON list of demo users registered on boot.
	SeedUsersFile string `env:"SEED_USERS_FILE"`
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		log.Info("Running on Railway, using system environment")
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment")
		return
	}
	log.Info(".env file loaded")
}

// Load reads the environment into a Config and checks the store settings.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required for store driver %q", c.StoreDriver)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" && c.DBUser == "" {
			return fmt.Errorf("DATABASE_URL or DB_USER is required for store driver %q", c.StoreDriver)
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for store driver %q", c.StoreDriver)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

// PostgresDSN builds the connection string, preferring DATABASE_URL when set.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=finakihub",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
