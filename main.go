// main.go
package main

import (
	"context"
	"log"

	"lupang-store/cmd"
	"lupang-store/internal/data/repository"
	"lupang-store/internal/wire"
	"lupang-store/pkg/database"
	"lupang-store/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to document store
	store, err := database.InitStore(config.Store)
	if err != nil {
		logger.Fatal("Failed to connect to document store", zap.Error(err))
	}
	defer store.Close(context.Background())

	logger.Info("Document store connected successfully")

	if err := store.EnsureIndexes(context.Background()); err != nil {
		logger.Fatal("Failed to ensure store indexes", zap.Error(err))
	}

	// Initialize repositories
	repos := repository.NewRepository(store, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
