package usecase

import (
	"context"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/pkg/utils"

	"go.uber.org/zap"
)

// noLockingService books without reading first. The condition-expression
// repository enforces the seat invariants atomically, so a precondition
// failure means the seat is taken or the flight is full. That is a final
// answer, not a race worth blind retries.
type noLockingService struct {
	repo repository.FlightBookings
	log  *zap.Logger
}

func NewNoLockingService(repo repository.FlightBookings, log *zap.Logger) BookFlightService {
	return &noLockingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking-no-locking")),
	}
}

func (s *noLockingService) BookFlight(ctx context.Context, booking *entity.Booking) bool {
	if errs := utils.ValidateStruct(booking); len(errs) > 0 {
		s.log.Warn("Booking validation failed",
			zap.String("booking_id", booking.BookingID),
			zap.String("errors", utils.FormatValidationErrors(errs)),
		)
		return false
	}

	summary := s.repo.TransactBookFlight(ctx, booking, nil)

	switch {
	case summary.Success:
		s.log.Info("Flight booked successfully", zap.String("booking_id", booking.BookingID))
	case summary.PreconditionFailed:
		s.log.Warn("No seats available or specified seat already taken",
			zap.String("booking_id", booking.BookingID),
			zap.Stringp("seat_number", booking.SeatNumber),
		)
	default:
		s.log.Error("Booking transaction failed",
			zap.String("booking_id", booking.BookingID),
			zap.String("reason", summary.FailureReason),
		)
	}

	return summary.Success
}
