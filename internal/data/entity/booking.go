package entity

import (
	"time"
)

// Persisted attribute names of the booking item.
const (
	BookingCustomerEmailAttr     = "CustomerEmail"
	BookingIDAttr                = "BookingID"
	BookingFlightNumberAttr      = "FlightNumber"
	BookingSourceAttr            = "Source"
	BookingDestinationAttr       = "Destination"
	BookingDepartureDateTimeAttr = "DepartureDateTime"
	BookingSeatNumberAttr        = "SeatNumber"
	BookingFareClassAttr         = "FareClass"
)

// Booking is one passenger's reservation on a flight. The flight fields are
// denormalized so the flight primary key can be derived from the booking
// alone. A nil SeatNumber means "any seat": the booking holds capacity
// without claiming a label, and the attribute is omitted from the item.
type Booking struct {
	CustomerEmail     string  `dynamodbav:"CustomerEmail" validate:"required,email"`
	BookingID         string  `dynamodbav:"BookingID" validate:"required"`
	FlightNumber      string  `dynamodbav:"FlightNumber" validate:"required"`
	Source            string  `dynamodbav:"Source" validate:"required,len=3,uppercase"`
	Destination       string  `dynamodbav:"Destination" validate:"required,len=3,uppercase"`
	DepartureDateTime int64   `dynamodbav:"DepartureDateTime" validate:"required,gt=0"`
	SeatNumber        *string `dynamodbav:"SeatNumber,omitempty"`
	FareClass         string  `dynamodbav:"FareClass"`
}

// HasSeatNumber reports whether the booking asks for a specific seat.
func (b *Booking) HasSeatNumber() bool {
	return b.SeatNumber != nil
}

// Seat returns the requested seat label, or "" for a seat-less booking.
func (b *Booking) Seat() string {
	if b.SeatNumber == nil {
		return ""
	}
	return *b.SeatNumber
}

// FlightKey derives the primary key of the booked flight. DepartureDateTime
// is epoch seconds and is always interpreted in UTC.
func (b *Booking) FlightKey() (FlightPrimaryKey, error) {
	return NewFlightPrimaryKey(b.Source, b.Destination, time.Unix(b.DepartureDateTime, 0).UTC())
}
