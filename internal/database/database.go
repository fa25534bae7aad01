// Package database opens the database and installs the callbacks that
// translate driver errors into the errors defined in models.
package database

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/grantdesk/backend/internal/config"
	"github.com/grantdesk/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ContextKey string

// ContextURL is the gin context key for the external URL of the API.
const ContextURL ContextKey = "grantdesk-url"

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: &models.Logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Open connects to the database configured in cfg and migrates it.
func Open(cfg config.Config) (*gorm.DB, error) {
	if cfg.UsePostgres() {
		log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Name).Msg("Database")
		return ConnectPostgres(cfg.PostgresDSN())
	}

	log.Info().Str("path", cfg.SqlitePath()).Msg("Database")
	return Connect(cfg.SqlitePath())
}

// Connect opens the SQLite database, migrates it and configures the
// connection pool.
func Connect(dsn string) (*gorm.DB, error) {
	// Migration with foreign keys disabled since sqlite does not support
	// ALTER COLUMN. Tables are copied to a temporary table, dropped and recreated.
	db, err := gorm.Open(sqlite.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = models.Migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectPostgres opens a PostgreSQL database and migrates it.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = models.Migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = registerCallbacks(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}
