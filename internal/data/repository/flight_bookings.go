package repository

import (
	"context"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"
	"airline-booking/pkg/utils"

	"go.uber.org/zap"
)

// FlightBookings is the store contract shared by both booking repositories.
// Reads are strongly consistent. TransactBookFlight commits one atomic
// two-item transaction: update the flight, put the booking.
type FlightBookings interface {
	// FindFlight returns the flight, or nil when the key matches nothing.
	FindFlight(ctx context.Context, key entity.FlightPrimaryKey) (*entity.Flight, error)

	// FindBooking returns the booking, or nil when it does not exist.
	FindBooking(ctx context.Context, customerEmail, bookingID string) (*entity.Booking, error)

	// TransactBookFlight books the flight atomically. The version-guarded
	// implementation requires the caller's previously read flight; the
	// condition-expression implementation ignores it.
	TransactBookFlight(ctx context.Context, booking *entity.Booking, flight *entity.Flight) TransactSummary
}

type Repository struct {
	// VersionGuarded guards the flight update on the version the caller read.
	VersionGuarded FlightBookings
	// ConditionExpression enforces the seat invariants server-side, no prior
	// read needed.
	ConditionExpression FlightBookings
}

func NewRepository(db database.DynamoIface, tables utils.TableConfig, log *zap.Logger) *Repository {
	return &Repository{
		VersionGuarded:      NewVersionGuardedRepository(db, tables, log),
		ConditionExpression: NewConditionExpressionRepository(db, tables, log),
	}
}
