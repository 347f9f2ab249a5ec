// Command resetdb drops every table managed by the migrations and re-applies
// the full schema. Intended for local development only.
package main

import (
	"database/sql"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/phrazzld/taskhub-api/internal/config"
	"github.com/phrazzld/taskhub-api/migrations"
	"github.com/pressly/goose/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set goose dialect: %v", err)
	}

	if err := goose.Reset(db, "."); err != nil {
		log.Fatalf("Failed to roll back migrations: %v", err)
	}

	if err := goose.Up(db, "."); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	log.Println("Database reset complete")
}
