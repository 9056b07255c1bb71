package scenario

import (
	"context"
	"sync"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/internal/usecase"

	"go.uber.org/zap"
)

// Attempt is the recorded outcome of one concurrent booking try.
type Attempt struct {
	Booking *entity.Booking
	Success bool
}

// Runner fires N concurrent booking attempts at one service and then dumps
// the post-run state through a repository. The services hold no shared
// mutable state, so the only synchronization needed here is around the
// results slice.
type Runner struct {
	service usecase.BookFlightService
	repo    repository.FlightBookings
	log     *zap.Logger
}

func NewRunner(service usecase.BookFlightService, repo repository.FlightBookings, log *zap.Logger) *Runner {
	return &Runner{
		service: service,
		repo:    repo,
		log:     log.With(zap.String("component", "scenario-runner")),
	}
}

// Run executes `attempts` concurrent bookings, each built by newBooking so
// every attempt gets its own booking id.
func (r *Runner) Run(ctx context.Context, newBooking func() *entity.Booking, attempts int) []Attempt {
	var (
		mu      sync.Mutex
		results []Attempt
		wg      sync.WaitGroup
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			booking := newBooking()
			r.log.Info("Attempting to book a flight",
				zap.String("booking_id", booking.BookingID),
				zap.Stringp("seat_number", booking.SeatNumber),
			)

			success := r.service.BookFlight(ctx, booking)

			mu.Lock()
			results = append(results, Attempt{Booking: booking, Success: success})
			mu.Unlock()

			r.log.Info("Booking attempt finished",
				zap.String("booking_id", booking.BookingID),
				zap.Bool("success", success),
			)
		}()
	}

	wg.Wait()
	return results
}

// DumpState logs the flight and every attempted booking as stored after the
// race, so a scenario run ends with the authoritative store view.
func (r *Runner) DumpState(ctx context.Context, key entity.FlightPrimaryKey, attempts []Attempt) {
	flight, err := r.repo.FindFlight(ctx, key)
	switch {
	case err != nil:
		r.log.Error("Failed to fetch updated flight", zap.Error(err))
	case flight == nil:
		r.log.Warn("Flight not found after scenario", zap.String("route_by_day", key.PartitionKey))
	default:
		r.log.Info("Updated flight",
			zap.String("route_by_day", key.PartitionKey),
			zap.String("flight_number", flight.FlightNumber),
			zap.Int("available_seats", flight.AvailableSeats),
			zap.Int("held_seats", flight.HeldSeats),
			zap.Int64("version", flight.Version),
			zap.Any("claimed_seat_map", flight.ClaimedSeatMap),
		)
	}

	for _, attempt := range attempts {
		stored, err := r.repo.FindBooking(ctx, attempt.Booking.CustomerEmail, attempt.Booking.BookingID)
		switch {
		case err != nil:
			r.log.Error("Failed to fetch booking", zap.Error(err), zap.String("booking_id", attempt.Booking.BookingID))
		case stored == nil:
			r.log.Info("Booking not in store (attempt denied)", zap.String("booking_id", attempt.Booking.BookingID))
		default:
			r.log.Info("Stored booking",
				zap.String("booking_id", stored.BookingID),
				zap.String("flight_number", stored.FlightNumber),
				zap.Stringp("seat_number", stored.SeatNumber),
				zap.String("fare_class", stored.FareClass),
			)
		}
	}
}
