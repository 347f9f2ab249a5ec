// Package main implements the entry point for the Task Hub API server,
// a CRUD service managing users and their tasks over PostgreSQL.
package main

import (
	"context"
	"log"
)

// main initializes configuration, logging, the database connection, and the
// HTTP server, then blocks until shutdown.
func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
