package entity

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// ErrInvalidKey dikembalikan saat primary key flight tidak valid.
var ErrInvalidKey = errors.New("invalid flight primary key")

const (
	departureDateLayout = "2006-01-02"
	departureTimeLayout = "1504"
)

var (
	// PK: sourceAirportCode#destinationAirportCode#date, e.g. KIV#LIS#2030-06-12
	partitionKeyPattern = regexp.MustCompile(`^[A-Z]{3}#[A-Z]{3}#\d{4}-\d{2}-\d{2}$`)
	// SK: HHmm, e.g. 0800
	sortKeyPattern = regexp.MustCompile(`^([01][0-9]|2[0-3])[0-5][0-9]$`)
	// IATA airport code, uppercase
	airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

// FlightPrimaryKey is the composite key of a flight item: the partition key
// groups all flights of a route on one calendar day, the sort key is the
// departure time. Both are derived in UTC.
type FlightPrimaryKey struct {
	PartitionKey string
	SortKey      string

	Source      string
	Destination string
	Departure   time.Time
}

// NewFlightPrimaryKey derives the key from route components and the departure
// moment. The departure is truncated to minute resolution by the sort-key
// format.
func NewFlightPrimaryKey(source, destination string, departure time.Time) (FlightPrimaryKey, error) {
	if !airportCodePattern.MatchString(source) {
		return FlightPrimaryKey{}, fmt.Errorf("%w: source airport code %q", ErrInvalidKey, source)
	}
	if !airportCodePattern.MatchString(destination) {
		return FlightPrimaryKey{}, fmt.Errorf("%w: destination airport code %q", ErrInvalidKey, destination)
	}
	if departure.IsZero() {
		return FlightPrimaryKey{}, fmt.Errorf("%w: departure time is zero", ErrInvalidKey)
	}

	departure = departure.UTC().Truncate(time.Minute)

	return FlightPrimaryKey{
		PartitionKey: strings.Join([]string{source, destination, departure.Format(departureDateLayout)}, "#"),
		SortKey:      departure.Format(departureTimeLayout),
		Source:       source,
		Destination:  destination,
		Departure:    departure,
	}, nil
}

// ParseFlightPrimaryKey reconstructs the key from its raw partition and sort
// strings, validating both formats.
func ParseFlightPrimaryKey(partitionKey, sortKey string) (FlightPrimaryKey, error) {
	if !partitionKeyPattern.MatchString(partitionKey) {
		return FlightPrimaryKey{}, fmt.Errorf("%w: partition key %q, expected 'SRC#DST#yyyy-mm-dd'", ErrInvalidKey, partitionKey)
	}
	if !sortKeyPattern.MatchString(sortKey) {
		return FlightPrimaryKey{}, fmt.Errorf("%w: sort key %q, expected 24h 'HHmm'", ErrInvalidKey, sortKey)
	}

	parts := strings.Split(partitionKey, "#")

	departure, err := time.ParseInLocation(departureDateLayout+" "+departureTimeLayout, parts[2]+" "+sortKey, time.UTC)
	if err != nil {
		return FlightPrimaryKey{}, fmt.Errorf("%w: %s %s is not a calendar time", ErrInvalidKey, parts[2], sortKey)
	}

	return FlightPrimaryKey{
		PartitionKey: partitionKey,
		SortKey:      sortKey,
		Source:       parts[0],
		Destination:  parts[1],
		Departure:    departure,
	}, nil
}
