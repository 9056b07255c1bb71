package repository

import (
	"context"
	"fmt"
	"strings"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"
	"airline-booking/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// conditionExpressionRepository books without any prior read: the seat
// invariants (seats left, label unclaimed) travel with the write as condition
// expressions and are evaluated atomically at the store. A precondition
// failure from this path is a definitive business denial, not a stale-read
// race.
type conditionExpressionRepository struct {
	db            database.DynamoIface
	log           *zap.Logger
	flightsTable  string
	bookingsTable string
}

func NewConditionExpressionRepository(db database.DynamoIface, tables utils.TableConfig, log *zap.Logger) FlightBookings {
	return &conditionExpressionRepository{
		db:            db,
		log:           log.With(zap.String("repository", "condition-expression")),
		flightsTable:  tables.Flights,
		bookingsTable: tables.Bookings,
	}
}

func (r *conditionExpressionRepository) FindFlight(ctx context.Context, key entity.FlightPrimaryKey) (*entity.Flight, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName: aws.String(r.flightsTable),
		KeyConditionExpression: aws.String(fmt.Sprintf("%s = :PK AND %s = :SK",
			entity.FlightRouteByDayAttr, entity.FlightDepartureTimeAttr)),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":PK": &types.AttributeValueMemberS{Value: key.PartitionKey},
			":SK": &types.AttributeValueMemberS{Value: key.SortKey},
		},
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(false),
		// Only the seat-accounting attributes are needed by callers of this
		// path; projecting trims the read cost.
		ProjectionExpression: aws.String(strings.Join([]string{
			entity.FlightClaimedSeatMapAttr,
			entity.FlightTotalSeatsAttr,
			entity.FlightHeldSeatsAttr,
			entity.FlightAvailableSeatsAttr,
			entity.FlightVersionAttr,
			entity.FlightNumberAttr,
		}, ",")),
	})
	if err != nil {
		r.log.Error("Failed to query flight",
			zap.Error(err),
			zap.String("route_by_day", key.PartitionKey),
			zap.String("departure_time", key.SortKey),
		)
		return nil, fmt.Errorf("find flight %s %s: %w", key.PartitionKey, key.SortKey, err)
	}

	if len(out.Items) == 0 {
		return nil, nil
	}
	if len(out.Items) > 1 {
		r.log.Warn("Multiple flight records found, using the first one",
			zap.String("route_by_day", key.PartitionKey),
			zap.Int("count", len(out.Items)),
		)
	}

	return unmarshalFlight(out.Items[0])
}

func (r *conditionExpressionRepository) FindBooking(ctx context.Context, customerEmail, bookingID string) (*entity.Booking, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName: aws.String(r.bookingsTable),
		KeyConditionExpression: aws.String(fmt.Sprintf("%s = :PK AND %s = :SK",
			entity.BookingCustomerEmailAttr, entity.BookingIDAttr)),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":PK": &types.AttributeValueMemberS{Value: customerEmail},
			":SK": &types.AttributeValueMemberS{Value: bookingID},
		},
		ConsistentRead:   aws.Bool(true),
		ScanIndexForward: aws.Bool(false),
	})
	if err != nil {
		r.log.Error("Failed to query booking",
			zap.Error(err),
			zap.String("customer_email", customerEmail),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}

	if len(out.Items) == 0 {
		return nil, nil
	}
	if len(out.Items) > 1 {
		r.log.Warn("Multiple booking records found, using the first one",
			zap.String("booking_id", bookingID),
			zap.Int("count", len(out.Items)),
		)
	}

	return unmarshalBooking(out.Items[0])
}

// TransactBookFlight ignores the flight argument; the guards are derived from
// the booking alone.
func (r *conditionExpressionRepository) TransactBookFlight(ctx context.Context, booking *entity.Booking, _ *entity.Flight) TransactSummary {
	key, err := booking.FlightKey()
	if err != nil {
		return TransactSummary{GenericFailure: true, FailureReason: "Transaction failed: " + err.Error()}
	}

	bookingItem, err := marshalBooking(booking)
	if err != nil {
		return TransactSummary{GenericFailure: true, FailureReason: "Transaction failed: " + err.Error()}
	}

	exprs := condExprBookFlightExpressions(booking)

	_, err = r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName:                 aws.String(r.flightsTable),
					Key:                       flightKeyMap(key),
					UpdateExpression:          aws.String(exprs.update),
					ConditionExpression:       aws.String(exprs.condition),
					ExpressionAttributeNames:  exprs.names,
					ExpressionAttributeValues: exprs.values,
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.bookingsTable),
					Item:      bookingItem,
				},
			},
		},
	})

	summary := resolveTransactSummary(err)
	if err != nil {
		r.log.Debug("Booking transaction rejected",
			zap.String("booking_id", booking.BookingID),
			zap.String("reason", summary.FailureReason),
		)
	}
	return summary
}

type bookFlightExpressions struct {
	update    string
	condition string
	names     map[string]string
	values    map[string]types.AttributeValue
}

// condExprBookFlightExpressions builds the no-prior-read guards: seats must
// remain, and a requested seat label must not already be claimed.
func condExprBookFlightExpressions(booking *entity.Booking) bookFlightExpressions {
	if booking.HasSeatNumber() {
		return bookFlightExpressions{
			update: "SET AvailableSeats = AvailableSeats - :one, " +
				"Version = Version + :one, " +
				"ClaimedSeatMap.#seatNumber = :bookingId",
			condition: "AvailableSeats > :noAvailableSeats AND attribute_not_exists(ClaimedSeatMap.#seatNumber)",
			names:     map[string]string{"#seatNumber": booking.Seat()},
			values: map[string]types.AttributeValue{
				":one":              &types.AttributeValueMemberN{Value: "1"},
				":bookingId":        &types.AttributeValueMemberS{Value: booking.BookingID},
				":noAvailableSeats": &types.AttributeValueMemberN{Value: "0"},
			},
		}
	}

	return bookFlightExpressions{
		update: "SET AvailableSeats = AvailableSeats - :one, " +
			"HeldSeats = HeldSeats + :one, " +
			"Version = Version + :one",
		condition: "AvailableSeats > :noAvailableSeats",
		values: map[string]types.AttributeValue{
			":one":              &types.AttributeValueMemberN{Value: "1"},
			":noAvailableSeats": &types.AttributeValueMemberN{Value: "0"},
		},
	}
}
