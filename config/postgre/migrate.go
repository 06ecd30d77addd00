package postgre

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // file:// source driver
	"github.com/jmoiron/sqlx"

	"engagement-srv/config"
)

// Migrate applies all pending migrations from the given directory.
// A fully migrated database is not an error.
func Migrate(db *sqlx.DB, cfg config.PostgresConfig, sourceDir string) error {
	driver, err := postgres.WithInstance(db.DB, &postgres.Config{
		SchemaName: cfg.Schema,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+sourceDir, cfg.DBName, driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
