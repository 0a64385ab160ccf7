package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"urlwatch/internal/config"
	"urlwatch/internal/entries"
	"urlwatch/internal/logging"
	"urlwatch/internal/notify"
	"urlwatch/internal/probe"
	"urlwatch/internal/runner"
	"urlwatch/internal/status"
)

// One invocation is one pass; a cron entry or systemd timer drives repetition.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	r := runner.New(
		logger,
		entries.NewFileSource(cfg.EntriesFile, logger),
		status.NewFile(cfg.StatusFile, logger),
		probe.NewHTTPChecker(cfg.CheckTimeout),
		notify.NewWebhook(cfg.WebhookURL),
		cfg.Interval,
	)

	logger.Info("pass_start",
		zap.String("interval", cfg.Interval),
		zap.String("entries_file", cfg.EntriesFile),
	)
	r.Run(context.Background())
}
