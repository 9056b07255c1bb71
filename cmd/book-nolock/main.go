// Same-seat race through the condition-expression path: two concurrent
// attempts on seat 2C of BA123. The store's conditional guards decide the
// winner; no prior read, no version bookkeeping. Expected outcome: exactly
// one success.
package main

import (
	"context"
	"log"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/scenario"
	"airline-booking/internal/wire"
	"airline-booking/pkg/utils"

	"github.com/google/uuid"
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
	runner := scenario.NewRunner(app.Service.NoLocking, app.Repos.ConditionExpression, logger)

	seatNumber := "2C"
	attempts := runner.Run(ctx, func() *entity.Booking {
		seat := seatNumber
		return &entity.Booking{
			CustomerEmail:     "sherlock.homes@email.com",
			BookingID:         uuid.New().String(),
			FlightNumber:      "BA123",
			Source:            "LHR",
			Destination:       "CDG",
			DepartureDateTime: 1765792800, // 2025-12-15T10:00Z
			SeatNumber:        &seat,
			FareClass:         "Economy",
		}
	}, 2)

	key, err := entity.ParseFlightPrimaryKey("LHR#CDG#2025-12-15", "1000")
	if err != nil {
		logger.Fatal("Invalid scenario flight key", zap.Error(err))
	}

	runner.DumpState(ctx, key, attempts)
}
