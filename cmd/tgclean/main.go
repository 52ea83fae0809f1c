// Package main contains the entrypoint for the tgclean batch cleaner.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/masresha/tgclean/internal/config"
	"github.com/masresha/tgclean/internal/database"
	"github.com/masresha/tgclean/internal/logger"
	"github.com/masresha/tgclean/internal/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run wires configuration, logging, and the optional store, then
// executes the cleaning pipeline once. Pipeline failures are logged
// inside the pipeline and are not fatal to the process; only bootstrap
// failures (config, database) produce a non-zero exit code.
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; real environments set TGCLEAN_* directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.New(cfg.Log.Level, cfg.Log.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	p := pipeline.New(log, cfg.Cleaning.MaxMessageLength)
	cleaned := p.Run(cfg.Input.CSVPath, cfg.Input.MediaDir)

	if cfg.Database.Path == "" {
		return 0
	}
	if len(cleaned) == 0 {
		log.Warn("Pipeline produced no rows, skipping database load")
		return 0
	}

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to open database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)

	store := database.NewStore(db, log)
	if err := store.ReplaceMessages(ctx, cleaned); err != nil {
		log.Error("Failed to store cleaned messages", "error", err)
		return 1
	}

	log.Info("Cleaned data loaded into database", "path", cfg.Database.Path, "rows", len(cleaned))
	return 0
}
