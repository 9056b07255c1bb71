package usecase

import (
	"context"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"

	"github.com/stretchr/testify/mock"
)

type mockFlightBookings struct {
	mock.Mock
}

func (m *mockFlightBookings) FindFlight(ctx context.Context, key entity.FlightPrimaryKey) (*entity.Flight, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Flight), args.Error(1)
}

func (m *mockFlightBookings) FindBooking(ctx context.Context, customerEmail, bookingID string) (*entity.Booking, error) {
	args := m.Called(ctx, customerEmail, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Booking), args.Error(1)
}

func (m *mockFlightBookings) TransactBookFlight(ctx context.Context, booking *entity.Booking, flight *entity.Flight) repository.TransactSummary {
	args := m.Called(ctx, booking, flight)
	return args.Get(0).(repository.TransactSummary)
}

// validBooking builds a booking on KL456; seat "" means a seat-less booking.
func validBooking(bookingID, seat string) *entity.Booking {
	booking := &entity.Booking{
		CustomerEmail:     "sherlock.homes@email.com",
		BookingID:         bookingID,
		FlightNumber:      "KL456",
		Source:            "AMS",
		Destination:       "FRA",
		DepartureDateTime: 1747296000, // 2025-05-15T08:00Z
		FareClass:         "Economy",
	}
	if seat != "" {
		booking.SeatNumber = &seat
	}
	return booking
}
