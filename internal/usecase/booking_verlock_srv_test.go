package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func storedKL456(t *testing.T) *entity.Flight {
	t.Helper()
	key, err := entity.NewFlightPrimaryKey("AMS", "FRA", time.Date(2025, 5, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	flight, err := entity.NewFlight(key, "KL456", "Boeing 737", 150)
	require.NoError(t, err)
	flight.Version = 7
	return flight
}

func TestOptimisticLockingService_BookFlight_SeatSuccess(t *testing.T) {
	repo := new(mockFlightBookings)
	service := NewOptimisticLockingService(repo, zap.NewNop())

	booking := validBooking("booking-1", "2D")
	flight := storedKL456(t)

	repo.On("FindFlight", mock.Anything, mock.Anything).Return(flight, nil)
	repo.On("TransactBookFlight", mock.Anything, booking, mock.MatchedBy(func(f *entity.Flight) bool {
		// The guard must see the version as read; the seat accounting is
		// mutated in memory before the commit.
		return f.Version == 7 &&
			f.AvailableSeats == 149 &&
			f.HeldSeats == 0 &&
			f.ClaimedSeatMap["2D"] == "booking-1"
	})).Return(repository.TransactSummary{Success: true})

	assert.True(t, service.BookFlight(context.Background(), booking))
	repo.AssertExpectations(t)
}

func TestOptimisticLockingService_BookFlight_SeatlessSuccess(t *testing.T) {
	repo := new(mockFlightBookings)
	service := NewOptimisticLockingService(repo, zap.NewNop())

	booking := validBooking("booking-1", "")
	flight := storedKL456(t)

	repo.On("FindFlight", mock.Anything, mock.Anything).Return(flight, nil)
	repo.On("TransactBookFlight", mock.Anything, booking, mock.MatchedBy(func(f *entity.Flight) bool {
		return f.Version == 7 &&
			f.AvailableSeats == 149 &&
			f.HeldSeats == 1 &&
			len(f.ClaimedSeatMap) == 0
	})).Return(repository.TransactSummary{Success: true})

	assert.True(t, service.BookFlight(context.Background(), booking))
	repo.AssertExpectations(t)
}

func TestOptimisticLockingService_BookFlight_FlightNotFound(t *testing.T) {
	repo := new(mockFlightBookings)
	service := NewOptimisticLockingService(repo, zap.NewNop())

	repo.On("FindFlight", mock.Anything, mock.Anything).Return(nil, nil)

	assert.False(t, service.BookFlight(context.Background(), validBooking("booking-1", "2D")))
	repo.AssertNotCalled(t, "TransactBookFlight", mock.Anything, mock.Anything, mock.Anything)
}

func TestOptimisticLockingService_BookFlight_FindFlightError(t *testing.T) {
	repo := new(mockFlightBookings)
	service := NewOptimisticLockingService(repo, zap.NewNop())

	repo.On("FindFlight", mock.Anything, mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	assert.False(t, service.BookFlight(context.Background(), validBooking("booking-1", "2D")))
	repo.AssertNotCalled(t, "TransactBookFlight", mock.Anything, mock.Anything, mock.Anything)
}

func TestOptimisticLockingService_BookFlight_SoldOut(t *testing.T) {
	repo := new(mockFlightBookings)
	service := NewOptimisticLockingService(repo, zap.NewNop())

	flight := storedKL456(t)
	flight.AvailableSeats = 0

	repo.On("FindFlight", mock.Anything, mock.Anything).Return(flight, nil)

	assert.False(t, service.BookFlight(context.Background(), validBooking("booking-1", "2D")))
	repo.AssertNotCalled(t, "TransactBookFlight", mock.Anything, mock.Anything, mock.Anything)
}

func TestOptimisticLockingService_BookFlight_SeatAlreadyClaimed(t *testing.T) {
	repo := new(mockFlightBookings)
	service := NewOptimisticLockingService(repo, zap.NewNop())

	flight := storedKL456(t)
	flight.ClaimSeat("2D", "booking-0")

	repo.On("FindFlight", mock.Anything, mock.Anything).Return(flight, nil)

	assert.False(t, service.BookFlight(context.Background(), validBooking("booking-1", "2D")))
	// The locally visible conflict is final; no transaction is attempted.
	repo.AssertNotCalled(t, "TransactBookFlight", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, "booking-0", flight.ClaimedSeatMap["2D"])
}

func TestOptimisticLockingService_BookFlight_VersionConflict(t *testing.T) {
	repo := new(mockFlightBookings)
	service := NewOptimisticLockingService(repo, zap.NewNop())

	booking := validBooking("booking-1", "2D")

	repo.On("FindFlight", mock.Anything, mock.Anything).Return(storedKL456(t), nil)
	repo.On("TransactBookFlight", mock.Anything, booking, mock.Anything).
		Return(repository.TransactSummary{
			PreconditionFailed:   true,
			TransactionCancelled: true,
			FailureReason:        "Optimistic locking failed: another actor modified the flight concurrently.",
		})

	assert.False(t, service.BookFlight(context.Background(), booking))
	repo.AssertExpectations(t)
}

func TestOptimisticLockingService_BookFlight_ValidationFailure(t *testing.T) {
	repo := new(mockFlightBookings)
	service := NewOptimisticLockingService(repo, zap.NewNop())

	booking := validBooking("booking-1", "2D")
	booking.DepartureDateTime = 0

	assert.False(t, service.BookFlight(context.Background(), booking))
	repo.AssertNotCalled(t, "FindFlight", mock.Anything, mock.Anything)
}
