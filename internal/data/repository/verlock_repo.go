package repository

import (
	"context"
	"fmt"
	"strconv"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"
	"airline-booking/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// versionGuardedRepository implements optimistic locking: the caller has read
// the flight, mutated it in memory, and the transaction commits only if the
// stored Version still equals the one that was read. The update expression
// re-derives the seat counters from the stored values, so the guard is the
// only thing the in-memory mutation contributes to the write.
type versionGuardedRepository struct {
	db            database.DynamoIface
	log           *zap.Logger
	flightsTable  string
	bookingsTable string
}

func NewVersionGuardedRepository(db database.DynamoIface, tables utils.TableConfig, log *zap.Logger) FlightBookings {
	return &versionGuardedRepository{
		db:            db,
		log:           log.With(zap.String("repository", "version-guarded")),
		flightsTable:  tables.Flights,
		bookingsTable: tables.Bookings,
	}
}

func (r *versionGuardedRepository) FindFlight(ctx context.Context, key entity.FlightPrimaryKey) (*entity.Flight, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.flightsTable),
		Key:            flightKeyMap(key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		r.log.Error("Failed to get flight",
			zap.Error(err),
			zap.String("route_by_day", key.PartitionKey),
			zap.String("departure_time", key.SortKey),
		)
		return nil, fmt.Errorf("find flight %s %s: %w", key.PartitionKey, key.SortKey, err)
	}

	if out.Item == nil {
		return nil, nil
	}

	return unmarshalFlight(out.Item)
}

func (r *versionGuardedRepository) FindBooking(ctx context.Context, customerEmail, bookingID string) (*entity.Booking, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.bookingsTable),
		Key:            bookingKeyMap(customerEmail, bookingID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		r.log.Error("Failed to get booking",
			zap.Error(err),
			zap.String("customer_email", customerEmail),
			zap.String("booking_id", bookingID),
		)
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}

	if out.Item == nil {
		return nil, nil
	}

	return unmarshalBooking(out.Item)
}

// TransactBookFlight requires the caller's flight; its Version must be the
// value read from the store, untouched by the in-memory mutations.
func (r *versionGuardedRepository) TransactBookFlight(ctx context.Context, booking *entity.Booking, flight *entity.Flight) TransactSummary {
	if flight == nil {
		return TransactSummary{
			GenericFailure: true,
			FailureReason:  "Transaction failed: version-guarded booking requires the previously read flight",
		}
	}

	key, err := booking.FlightKey()
	if err != nil {
		return TransactSummary{GenericFailure: true, FailureReason: "Transaction failed: " + err.Error()}
	}

	bookingItem, err := marshalBooking(booking)
	if err != nil {
		return TransactSummary{GenericFailure: true, FailureReason: "Transaction failed: " + err.Error()}
	}

	exprs := versionGuardBookFlightExpressions(booking, flight)

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
			zap.Int64("expected_version", flight.Version),
			zap.String("reason", summary.FailureReason),
		)
	}
	return summary
}

// versionGuardBookFlightExpressions guards solely on the version the caller
// observed; the seat counters are still re-derived from the stored item, not
// written as literals.
func versionGuardBookFlightExpressions(booking *entity.Booking, flight *entity.Flight) bookFlightExpressions {
	expectedVersion := &types.AttributeValueMemberN{Value: strconv.FormatInt(flight.Version, 10)}

	if booking.HasSeatNumber() {
		return bookFlightExpressions{
			update: "SET AvailableSeats = AvailableSeats - :one, " +
				"Version = Version + :one, " +
				"ClaimedSeatMap.#seatNumber = :bookingId",
			condition: "Version = :expectedVersion",
			names:     map[string]string{"#seatNumber": booking.Seat()},
			values: map[string]types.AttributeValue{
				":one":             &types.AttributeValueMemberN{Value: "1"},
				":bookingId":       &types.AttributeValueMemberS{Value: booking.BookingID},
				":expectedVersion": expectedVersion,
			},
		}
	}

	return bookFlightExpressions{
		update: "SET AvailableSeats = AvailableSeats - :one, " +
			"HeldSeats = HeldSeats + :one, " +
			"Version = Version + :one",
		condition: "Version = :expectedVersion",
		values: map[string]types.AttributeValue{
			":one":             &types.AttributeValueMemberN{Value: "1"},
			":expectedVersion": expectedVersion,
		},
	}
}
