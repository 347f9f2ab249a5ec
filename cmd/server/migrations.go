package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskhub-api/migrations"
	"github.com/pressly/goose/v3"
)

// runMigrations applies any pending embedded schema migrations.
// Called at startup before any store is constructed.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("database migrations applied", "version", version)
	return nil
}
