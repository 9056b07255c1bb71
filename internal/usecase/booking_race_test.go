package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"airline-booking/internal/data/entity"
	"airline-booking/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryFlightBookings reproduces the store's conditional semantics behind a
// mutex, so the booking races can be exercised hermetically. In version-guard
// mode the commit checks only the Version the caller read; otherwise it
// checks the seat invariants, like the condition-expression repository.
type memoryFlightBookings struct {
	mu           sync.Mutex
	versionGuard bool
	flights      map[string]*entity.Flight
	bookings     map[string]*entity.Booking
}

func newMemoryFlightBookings(versionGuard bool, flights ...*entity.Flight) *memoryFlightBookings {
	store := &memoryFlightBookings{
		versionGuard: versionGuard,
		flights:      map[string]*entity.Flight{},
		bookings:     map[string]*entity.Booking{},
	}
	for _, flight := range flights {
		store.flights[flight.RouteByDay+"|"+flight.DepartureTime] = flight
	}
	return store
}

func copyFlight(flight *entity.Flight) *entity.Flight {
	clone := *flight
	if flight.ClaimedSeatMap != nil {
		clone.ClaimedSeatMap = make(map[string]string, len(flight.ClaimedSeatMap))
		for seat, bookingID := range flight.ClaimedSeatMap {
			clone.ClaimedSeatMap[seat] = bookingID
		}
	}
	return &clone
}

func (s *memoryFlightBookings) FindFlight(_ context.Context, key entity.FlightPrimaryKey) (*entity.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight, ok := s.flights[key.PartitionKey+"|"+key.SortKey]
	if !ok {
		return nil, nil
	}
	return copyFlight(flight), nil
}

func (s *memoryFlightBookings) FindBooking(_ context.Context, customerEmail, bookingID string) (*entity.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[customerEmail+"|"+bookingID]
	if !ok {
		return nil, nil
	}
	clone := *booking
	return &clone, nil
}

func (s *memoryFlightBookings) TransactBookFlight(_ context.Context, booking *entity.Booking, flight *entity.Flight) repository.TransactSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	denied := repository.TransactSummary{
		PreconditionFailed:   true,
		TransactionCancelled: true,
		FailureReason:        "Optimistic locking failed: another actor modified the flight concurrently.",
	}

	key, err := booking.FlightKey()
	if err != nil {
		return repository.TransactSummary{GenericFailure: true, FailureReason: "Transaction failed: " + err.Error()}
	}

	stored, ok := s.flights[key.PartitionKey+"|"+key.SortKey]
	if !ok {
		return denied
	}

	if s.versionGuard {
		if flight == nil {
			return repository.TransactSummary{GenericFailure: true, FailureReason: "Transaction failed: missing flight"}
		}
		if stored.Version != flight.Version {
			return denied
		}
	} else {
		if stored.AvailableSeats <= 0 {
			return denied
		}
		if booking.HasSeatNumber() {
			if _, taken := stored.ClaimedSeatMap[booking.Seat()]; taken {
				return denied
			}
		}
	}

	stored.AvailableSeats--
	stored.Version++
	if booking.HasSeatNumber() {
		if stored.ClaimedSeatMap == nil {
			stored.ClaimedSeatMap = map[string]string{}
		}
		stored.ClaimedSeatMap[booking.Seat()] = booking.BookingID
	} else {
		stored.HeldSeats++
	}

	clone := *booking
	s.bookings[booking.CustomerEmail+"|"+booking.BookingID] = &clone
	return repository.TransactSummary{Success: true}
}

// runConcurrently fires one BookFlight per booking through a common start
// barrier and reports which booking IDs were committed.
func runConcurrently(service BookFlightService, bookings []*entity.Booking) map[string]bool {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		start = make(chan struct{})
	)
	committed := map[string]bool{}

	for _, booking := range bookings {
		wg.Add(1)
		go func(b *entity.Booking) {
			defer wg.Done()
			<-start
			ok := service.BookFlight(context.Background(), b)
			mu.Lock()
			committed[b.BookingID] = ok
			mu.Unlock()
		}(booking)
	}

	close(start)
	wg.Wait()
	return committed
}

func successes(committed map[string]bool) []string {
	var ids []string
	for id, ok := range committed {
		if ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func raceFlight(t *testing.T, totalSeats int) *entity.Flight {
	t.Helper()
	key, err := entity.NewFlightPrimaryKey("AMS", "FRA", time.Date(2025, 5, 15, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	flight, err := entity.NewFlight(key, "KL456", "Boeing 737", totalSeats)
	require.NoError(t, err)
	return flight
}

func TestBookFlight_ConcurrentSameSeat_NoLocking(t *testing.T) {
	flight := raceFlight(t, 180)
	store := newMemoryFlightBookings(false, flight)
	service := NewNoLockingService(store, zap.NewNop())

	var bookings []*entity.Booking
	for i := 0; i < 8; i++ {
		bookings = append(bookings, validBooking(fmt.Sprintf("booking-%d", i), "2C"))
	}

	committed := runConcurrently(service, bookings)

	winners := successes(committed)
	require.Len(t, winners, 1, "the same seat must be granted exactly once")

	assert.Equal(t, winners[0], flight.ClaimedSeatMap["2C"])
	assert.Equal(t, 179, flight.AvailableSeats)
	assert.Equal(t, int64(2), flight.Version)
	assert.Len(t, store.bookings, 1, "only the winning booking may be persisted")
}

func TestBookFlight_ConcurrentSameSeat_VersionGuarded(t *testing.T) {
	flight := raceFlight(t, 150)
	store := newMemoryFlightBookings(true, flight)
	service := NewOptimisticLockingService(store, zap.NewNop())

	var bookings []*entity.Booking
	for i := 0; i < 6; i++ {
		bookings = append(bookings, validBooking(fmt.Sprintf("booking-%d", i), "2D"))
	}

	committed := runConcurrently(service, bookings)

	// Losers fail either the version guard or the local seat check, depending
	// on whether they read before or after the winner committed.
	winners := successes(committed)
	require.Len(t, winners, 1, "the same seat must be granted exactly once")

	assert.Equal(t, winners[0], flight.ClaimedSeatMap["2D"])
	assert.Equal(t, 149, flight.AvailableSeats)
	assert.Equal(t, int64(2), flight.Version)
	assert.Len(t, store.bookings, 1)
}

func TestBookFlight_ConcurrentDistinctSeats(t *testing.T) {
	flight := raceFlight(t, 180)
	store := newMemoryFlightBookings(false, flight)
	service := NewNoLockingService(store, zap.NewNop())

	committed := runConcurrently(service, []*entity.Booking{
		validBooking("booking-0", "2C"),
		validBooking("booking-1", "2D"),
	})

	assert.Len(t, successes(committed), 2, "distinct seats must not contend")
	assert.Equal(t, "booking-0", flight.ClaimedSeatMap["2C"])
	assert.Equal(t, "booking-1", flight.ClaimedSeatMap["2D"])
	assert.Equal(t, 178, flight.AvailableSeats)
	assert.Equal(t, int64(3), flight.Version)
}

func TestBookFlight_ConcurrentSeatless_CapacityExhausted(t *testing.T) {
	flight := raceFlight(t, 2)
	store := newMemoryFlightBookings(false, flight)
	service := NewNoLockingService(store, zap.NewNop())

	var bookings []*entity.Booking
	for i := 0; i < 5; i++ {
		bookings = append(bookings, validBooking(fmt.Sprintf("booking-%d", i), ""))
	}

	committed := runConcurrently(service, bookings)

	assert.Len(t, successes(committed), 2, "only the remaining capacity may be granted")
	assert.Equal(t, 0, flight.AvailableSeats)
	assert.Equal(t, 2, flight.HeldSeats)
	assert.Len(t, store.bookings, 2)
}

func TestBookFlight_ConcurrentMixed_ConservesSeats(t *testing.T) {
	flight := raceFlight(t, 5)
	store := newMemoryFlightBookings(false, flight)
	service := NewNoLockingService(store, zap.NewNop())

	seats := []string{"1A", "1B", "1C", "1D", "1E", "1F"}
	var bookings []*entity.Booking
	for i, seat := range seats {
		bookings = append(bookings, validBooking(fmt.Sprintf("seat-booking-%d", i), seat))
	}
	for i := 0; i < 6; i++ {
		bookings = append(bookings, validBooking(fmt.Sprintf("held-booking-%d", i), ""))
	}

	committed := runConcurrently(service, bookings)

	assert.Len(t, successes(committed), 5, "every last seat is granted, none twice")
	assert.Equal(t, 0, flight.AvailableSeats)
	assert.Equal(t, flight.TotalSeats, flight.AvailableSeats+flight.HeldSeats+len(flight.ClaimedSeatMap),
		"claimed, held and available seats must add up to the capacity")
	assert.Len(t, store.bookings, 5, "exactly one booking item per granted seat")
}
