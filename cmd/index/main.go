package main

import (
	"context"
	"log"
	"time"

	"clubhub/internal/config"
	"clubhub/internal/database"
	"clubhub/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	zl.Info("starting index migration")

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase, zl)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	names, err := database.EnsureIndexes(ctx, mongoDB.Database)
	for _, name := range names {
		zl.Info("index ready", zap.String("index", name))
	}
	if err != nil {
		zl.Error("index migration failed", zap.Error(err))
		return
	}

	zl.Info("index migration completed", zap.Int("count", len(names)))
}
