package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"catalog/internal/models"
)

// Connect opens a database through the given dialector and migrates the
// catalog schema.
func Connect(dialector gorm.Dialector) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// OpenPostgres connects to a PostgreSQL database by DSN.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	return Connect(postgres.Open(dsn))
}

// OpenSQLite connects to a SQLite database by path or DSN. Tests use this
// with in-memory databases.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	return Connect(sqlite.Open(dsn))
}
