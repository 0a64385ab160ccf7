package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"urlwatch/internal/config"
	"urlwatch/internal/entries"
	"urlwatch/internal/httpapi"
	"urlwatch/internal/logging"
	"urlwatch/internal/probe"
	"urlwatch/internal/status"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	api := httpapi.NewServer(
		logger,
		entries.NewFileSource(cfg.EntriesFile, logger),
		status.NewFile(cfg.StatusFile, logger),
		probe.NewHTTPChecker(cfg.CheckTimeout),
	)

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router()); err != nil {
		log.Fatal(err)
	}
}
