package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	api "maildigest-backend/cmd/api"
	"maildigest-backend/pkg/config"
	"maildigest-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	handler, err := api.NewHandler(context.Background(), cfg, zlog)
	if err != nil {
		zlog.Fatal("Failed to initialize handler", zap.Error(err))
	}

	zlog.Info("Server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
