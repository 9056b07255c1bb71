// Same-seat race through the optimistic-locking path: two concurrent
// attempts on seat 2D of KL456. Each attempt reads the flight, mutates it in
// memory, and commits under a version guard. The loser either fails the local
// seat check or gets its stale version rejected by the store.
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
	runner := scenario.NewRunner(app.Service.VersionLocking, app.Repos.VersionGuarded, logger)

	seatNumber := "2D"
	attempts := runner.Run(ctx, func() *entity.Booking {
		seat := seatNumber
		return &entity.Booking{
			CustomerEmail:     "sherlock.homes@email.com",
			BookingID:         uuid.New().String(),
			FlightNumber:      "KL456",
			Source:            "AMS",
			Destination:       "FRA",
			DepartureDateTime: 1747296000, // 2025-05-15T08:00Z
			SeatNumber:        &seat,
			FareClass:         "Economy",
		}
	}, 2)

	key, err := entity.ParseFlightPrimaryKey("AMS#FRA#2025-05-15", "0800")
	if err != nil {
		logger.Fatal("Invalid scenario flight key", zap.Error(err))
	}

	runner.DumpState(ctx, key, attempts)
}
