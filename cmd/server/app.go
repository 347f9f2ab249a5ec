package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskhub-api/internal/config"
	"github.com/phrazzld/taskhub-api/internal/platform/postgres"
	"github.com/phrazzld/taskhub-api/internal/service"
)

// application holds the long-lived dependencies shared by the HTTP server.
type application struct {
	config      *config.Config
	logger      *slog.Logger
	db          *sql.DB
	userService *service.UserService
	taskService *service.TaskService
}

// newApplication loads configuration and wires up every application
// component: logger, database connection, migrations, stores, and services.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	logger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			logger.Error("failed to close database after migration error", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	userStore := postgres.NewUserStore(db, logger)
	taskStore := postgres.NewTaskStore(db, logger)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		userService: service.NewUserService(db, userStore),
		taskService: service.NewTaskService(db, taskStore, userStore),
	}, nil
}

// cleanup releases the application's resources. Called after the HTTP server
// has drained.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
		return
	}
	app.logger.Info("database connection closed")
}
