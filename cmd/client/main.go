package main

import (
	"context"
	"log"
	"os"

	"foodcart/internal/api"
	"foodcart/internal/config"
	"foodcart/internal/infrastructure/logger"
	"foodcart/internal/session"
	"foodcart/internal/storage"
	"foodcart/internal/view"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	client := api.NewClient(cfg.Client.APIBaseURL, cfg.Client.HTTPTimeout, zapLogger)
	store := storage.NewFileStore(cfg.Client.StoragePath)
	renderer := view.NewTerminalRenderer(os.Stdout)

	s := session.New(client, store, renderer, zapLogger, os.Stdin, os.Stdout)

	if err := s.Run(context.Background()); err != nil {
		zapLogger.Fatal("session error", zap.Error(err))
	}
}
