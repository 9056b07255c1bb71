package main

import (
	"context"
	"log"

	"airline-booking/internal/fixture"
	"airline-booking/internal/wire"
	"airline-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	app, err := wire.Wiring(config, logger)
	if err != nil {
		logger.Fatal("Failed to initialize DynamoDB client", zap.Error(err))
	}

	ctx := context.Background()
	seeder := fixture.NewSeeder(app.Client, config.Tables, logger)

	if err := seeder.EnsureTables(ctx); err != nil {
		logger.Fatal("Failed to provision tables", zap.Error(err))
	}

	if err := seeder.Populate(ctx); err != nil {
		logger.Fatal("Failed to seed sample data", zap.Error(err))
	}

	logger.Info("Airline sample data inserted successfully")
}
