package config

import (
	"os"
	"time"
)

const (
	databaseURLEnv           = "DATABASE_URL"
	dbMaxOpenConnsEnv        = "DB_MAX_OPEN_CONNS"
	dbMaxIdleConnsEnv        = "DB_MAX_IDLE_CONNS"
	dbConnMaxLifetimeMinsEnv = "DB_CONN_MAX_LIFETIME_MINUTES"
	dbAutoMigrateEnv         = "DB_AUTO_MIGRATE"

	defaultDBMaxOpenConns        = 25
	defaultDBMaxIdleConns        = 5
	defaultDBConnMaxLifetimeMins = 5
)

type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// AutoMigrate creates or updates the schedule tables on startup.
	AutoMigrate bool
}

func LoadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URL:             os.Getenv(databaseURLEnv),
		MaxOpenConns:    positiveInt(dbMaxOpenConnsEnv, defaultDBMaxOpenConns),
		MaxIdleConns:    positiveInt(dbMaxIdleConnsEnv, defaultDBMaxIdleConns),
		ConnMaxLifetime: time.Duration(positiveInt(dbConnMaxLifetimeMinsEnv, defaultDBConnMaxLifetimeMins)) * time.Minute,
		AutoMigrate:     os.Getenv(dbAutoMigrateEnv) == "true",
	}
}

func (c *DatabaseConfig) Validate() error {
	if c == nil || c.URL == "" {
		return ErrDatabaseURLMissing
	}
	return nil
}
