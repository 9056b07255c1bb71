// Seat-less race against a nearly full flight: three concurrent attempts
// without a seat number on OS567, which has two seats left. The
// AvailableSeats > 0 guard admits exactly two; the third is denied.
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

	attempts := runner.Run(ctx, func() *entity.Booking {
		return &entity.Booking{
			CustomerEmail:     "vlad.topee@gmail.com",
			BookingID:         uuid.New().String(),
			FlightNumber:      "OS567",
			Source:            "BER",
			Destination:       "VIE",
			DepartureDateTime: 1790011800, // 2026-09-21T17:30Z
			FareClass:         "Economy",
		}
	}, 3)

	key, err := entity.ParseFlightPrimaryKey("BER#VIE#2026-09-21", "1730")
	if err != nil {
		logger.Fatal("Invalid scenario flight key", zap.Error(err))
	}

	runner.DumpState(ctx, key, attempts)
}
