// Package main is the entry point for the snippet manager desktop app.
//
// main's job is only wiring: read configuration, create the logger and the
// database connection, assemble the UI, and run the event loop. All logic
// lives in the internal packages.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/snipdesk/internal/config"
	sqliteRepo "github.com/sakif/snipdesk/internal/repository/sqlite"
	"github.com/sakif/snipdesk/internal/service"
	"github.com/sakif/snipdesk/internal/ui"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	// Create the data directory if the db path has one (like `mkdir -p`).
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database",
			slog.String("path", cfg.DBPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	// The connection is closed exactly once, on every exit path past this
	// point, including a panic inside the event loop.
	defer db.Close()

	svc := service.NewSnippetService(db, logger)

	logger.Info("snippet manager starting", slog.String("db", cfg.DBPath))

	// Blocks until the window is closed.
	ui.NewApp(svc).Run(context.Background())

	logger.Info("snippet manager stopped")
}
