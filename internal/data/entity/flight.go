package entity

import (
	"fmt"
)

// Persisted attribute names, shared by codecs and expression builders.
const (
	FlightRouteByDayAttr     = "RouteByDay"
	FlightDepartureTimeAttr  = "DepartureTime"
	FlightNumberAttr         = "FlightNumber"
	FlightAirplaneModelAttr  = "AirplaneModel"
	FlightTotalSeatsAttr     = "TotalSeats"
	FlightAvailableSeatsAttr = "AvailableSeats"
	FlightHeldSeatsAttr      = "HeldSeats"
	FlightVersionAttr        = "Version"
	FlightClaimedSeatMapAttr = "ClaimedSeatMap"
)

// Flight is one scheduled flight on a calendar day. Every seat is either
// claimed (by label), held (counted without a label), or available; the
// Version attribute guards optimistic writes.
type Flight struct {
	RouteByDay     string            `dynamodbav:"RouteByDay"`
	DepartureTime  string            `dynamodbav:"DepartureTime"`
	FlightNumber   string            `dynamodbav:"FlightNumber"`
	AirplaneModel  string            `dynamodbav:"AirplaneModel"`
	TotalSeats     int               `dynamodbav:"TotalSeats"`
	AvailableSeats int               `dynamodbav:"AvailableSeats"`
	HeldSeats      int               `dynamodbav:"HeldSeats"`
	Version        int64             `dynamodbav:"Version"`
	ClaimedSeatMap map[string]string `dynamodbav:"ClaimedSeatMap"`
}

// NewFlight creates a fresh flight with every seat available.
func NewFlight(key FlightPrimaryKey, flightNumber, airplaneModel string, totalSeats int) (*Flight, error) {
	if flightNumber == "" {
		return nil, fmt.Errorf("flight number is required")
	}
	if airplaneModel == "" {
		return nil, fmt.Errorf("airplane model is required")
	}
	if totalSeats < 1 {
		return nil, fmt.Errorf("totalSeats must be greater than 0, got %d", totalSeats)
	}

	return &Flight{
		RouteByDay:     key.PartitionKey,
		DepartureTime:  key.SortKey,
		FlightNumber:   flightNumber,
		AirplaneModel:  airplaneModel,
		TotalSeats:     totalSeats,
		AvailableSeats: totalSeats,
		HeldSeats:      0,
		Version:        1,
		ClaimedSeatMap: map[string]string{},
	}, nil
}

// AnySeatAvailable reports whether at least one seat can still be booked.
func (f *Flight) AnySeatAvailable() bool {
	return f.AvailableSeats > 0
}

// DecrementAvailableSeats subtracts one seat; the caller has already checked
// availability.
func (f *Flight) DecrementAvailableSeats() {
	f.AvailableSeats--
}

// ClaimSeat records the booking as the owner of the seat label. Returns false
// when the label is already claimed. AvailableSeats and Version are untouched.
func (f *Flight) ClaimSeat(seatNumber, bookingID string) bool {
	if f.ClaimedSeatMap == nil {
		f.ClaimedSeatMap = map[string]string{}
	}

	if _, taken := f.ClaimedSeatMap[seatNumber]; taken {
		return false
	}

	f.ClaimedSeatMap[seatNumber] = bookingID
	return true
}

// IncrementHeldSeats counts one seat-less booking.
func (f *Flight) IncrementHeldSeats() {
	f.HeldSeats++
}
