package repository

import (
	"fmt"

	"airline-booking/internal/data/entity"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item codecs shared by both repositories. Attribute naming is fixed by the
// dynamodbav tags on the entities and must round-trip exactly; the seeder
// reuses the same marshalling.

func flightKeyMap(key entity.FlightPrimaryKey) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		entity.FlightRouteByDayAttr:    &types.AttributeValueMemberS{Value: key.PartitionKey},
		entity.FlightDepartureTimeAttr: &types.AttributeValueMemberS{Value: key.SortKey},
	}
}

func bookingKeyMap(customerEmail, bookingID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		entity.BookingCustomerEmailAttr: &types.AttributeValueMemberS{Value: customerEmail},
		entity.BookingIDAttr:            &types.AttributeValueMemberS{Value: bookingID},
	}
}

// marshalBooking omits the SeatNumber attribute entirely for a seat-less
// booking; a null attribute is never persisted.
func marshalBooking(booking *entity.Booking) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(booking)
	if err != nil {
		return nil, fmt.Errorf("marshal booking %s: %w", booking.BookingID, err)
	}
	return item, nil
}

func unmarshalBooking(item map[string]types.AttributeValue) (*entity.Booking, error) {
	var booking entity.Booking
	if err := attributevalue.UnmarshalMap(item, &booking); err != nil {
		return nil, fmt.Errorf("unmarshal booking item: %w", err)
	}
	return &booking, nil
}

func unmarshalFlight(item map[string]types.AttributeValue) (*entity.Flight, error) {
	var flight entity.Flight
	if err := attributevalue.UnmarshalMap(item, &flight); err != nil {
		return nil, fmt.Errorf("unmarshal flight item: %w", err)
	}
	return &flight, nil
}
