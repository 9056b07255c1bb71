package usecase

import (
	"context"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"
	"airline-booking/pkg/utils"

	"go.uber.org/zap"
)

// BookFlightService books one flight for one passenger. The return value is
// true iff the booking was committed; every denial is logged with its reason.
type BookFlightService interface {
	BookFlight(ctx context.Context, booking *entity.Booking) bool
}

// optimisticLockingService implements read-modify-write booking: fetch the
// flight, apply the mutations in memory, then commit through the
// version-guarded repository. A precondition failure here is the signature of
// a lost race; the service reports it and leaves the retry decision to the
// caller.
type optimisticLockingService struct {
	repo repository.FlightBookings
	log  *zap.Logger
}

func NewOptimisticLockingService(repo repository.FlightBookings, log *zap.Logger) BookFlightService {
	return &optimisticLockingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking-optimistic-locking")),
	}
}

func (s *optimisticLockingService) BookFlight(ctx context.Context, booking *entity.Booking) bool {
	if errs := utils.ValidateStruct(booking); len(errs) > 0 {
		s.log.Warn("Booking validation failed",
			zap.String("booking_id", booking.BookingID),
			zap.String("errors", utils.FormatValidationErrors(errs)),
		)
		return false
	}

	key, err := booking.FlightKey()
	if err != nil {
		s.log.Warn("Booking has an invalid flight key", zap.Error(err))
		return false
	}

	flight, err := s.repo.FindFlight(ctx, key)
	if err != nil {
		s.log.Error("Failed to fetch flight", zap.Error(err), zap.String("route_by_day", key.PartitionKey))
		return false
	}
	if flight == nil {
		s.log.Warn("Flight not available for booking", zap.String("route_by_day", key.PartitionKey))
		return false
	}

	if !flight.AnySeatAvailable() {
		s.log.Warn("No available seats for the flight", zap.String("flight_number", flight.FlightNumber))
		return false
	}

	if booking.HasSeatNumber() {
		// The locally observed map already rules the seat out; no need to pay
		// for a doomed transaction.
		if !flight.ClaimSeat(booking.Seat(), booking.BookingID) {
			s.log.Warn("The requested seat is already claimed",
				zap.String("flight_number", flight.FlightNumber),
				zap.String("seat_number", booking.Seat()),
			)
			return false
		}
	} else {
		flight.IncrementHeldSeats()
	}

	flight.DecrementAvailableSeats()

	// flight.Version still carries the value read above; the repository uses
	// it as the transaction guard.
	summary := s.repo.TransactBookFlight(ctx, booking, flight)
	s.logOutcome(booking, summary)
	return summary.Success
}

func (s *optimisticLockingService) logOutcome(booking *entity.Booking, summary repository.TransactSummary) {
	switch {
	case summary.Success:
		s.log.Info("Flight booked successfully", zap.String("booking_id", booking.BookingID))
	case summary.PreconditionFailed:
		// Another booking committed between our read and our write. Refetch
		// before retrying: the seat may be genuinely gone.
		s.log.Warn("Optimistic locking failed: another actor modified the flight concurrently",
			zap.String("booking_id", booking.BookingID),
		)
	default:
		s.log.Error("Booking transaction failed",
			zap.String("booking_id", booking.BookingID),
			zap.String("reason", summary.FailureReason),
		)
	}
}
