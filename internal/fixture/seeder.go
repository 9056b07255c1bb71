package fixture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"airline-booking/internal/data/entity"
	"airline-booking/pkg/database"
	"airline-booking/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Seeder provisions the demo tables and inserts the sample records. Meant for
// a local DynamoDB endpoint; against AWS the tables are expected to exist.
type Seeder struct {
	db     database.DynamoIface
	waiter *dynamodb.TableExistsWaiter
	tables utils.TableConfig
	log    *zap.Logger
}

func NewSeeder(client *dynamodb.Client, tables utils.TableConfig, log *zap.Logger) *Seeder {
	return &Seeder{
		db:     client,
		waiter: dynamodb.NewTableExistsWaiter(client),
		tables: tables,
		log:    log.With(zap.String("component", "seeder")),
	}
}

type tableSpec struct {
	name         string
	partitionKey string
	sortKey      string // empty for a simple primary key
}

func (s *Seeder) tableSpecs() []tableSpec {
	return []tableSpec{
		{name: s.tables.Flights, partitionKey: entity.FlightRouteByDayAttr, sortKey: entity.FlightDepartureTimeAttr},
		{name: s.tables.Bookings, partitionKey: entity.BookingCustomerEmailAttr, sortKey: entity.BookingIDAttr},
		{name: s.tables.Passengers, partitionKey: "EmailAddress"},
	}
}

// EnsureTables creates any missing table and waits until it is active.
func (s *Seeder) EnsureTables(ctx context.Context) error {
	for _, spec := range s.tableSpecs() {
		_, err := s.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(spec.name),
		})
		if err == nil {
			continue
		}

		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", spec.name, err)
		}

		if err := s.createTable(ctx, spec); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createTable(ctx context.Context, spec tableSpec) error {
	s.log.Info("Creating table", zap.String("table", spec.name))

	attrDefs := []types.AttributeDefinition{
		{AttributeName: aws.String(spec.partitionKey), AttributeType: types.ScalarAttributeTypeS},
	}
	keySchema := []types.KeySchemaElement{
		{AttributeName: aws.String(spec.partitionKey), KeyType: types.KeyTypeHash},
	}
	if spec.sortKey != "" {
		attrDefs = append(attrDefs, types.AttributeDefinition{
			AttributeName: aws.String(spec.sortKey), AttributeType: types.ScalarAttributeTypeS,
		})
		keySchema = append(keySchema, types.KeySchemaElement{
			AttributeName: aws.String(spec.sortKey), KeyType: types.KeyTypeRange,
		})
	}

	_, err := s.db.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName:            aws.String(spec.name),
		AttributeDefinitions: attrDefs,
		KeySchema:            keySchema,
		BillingMode:          types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("create table %s: %w", spec.name, err)
	}

	if err := s.waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.name)}, 2*time.Minute); err != nil {
		return fmt.Errorf("wait for table %s: %w", spec.name, err)
	}

	return nil
}

// Populate inserts every fixture record, overwriting earlier runs so each
// scenario starts from the same seat counts.
func (s *Seeder) Populate(ctx context.Context) error {
	passengers := Passengers()
	flights := Flights()
	bookings := Bookings()

	for _, passenger := range passengers {
		if err := s.put(ctx, s.tables.Passengers, passenger); err != nil {
			return fmt.Errorf("seed passenger %s: %w", passenger.EmailAddress, err)
		}
	}
	for _, flight := range flights {
		if err := s.put(ctx, s.tables.Flights, flight); err != nil {
			return fmt.Errorf("seed flight %s: %w", flight.FlightNumber, err)
		}
	}
	for _, booking := range bookings {
		if err := s.put(ctx, s.tables.Bookings, booking); err != nil {
			return fmt.Errorf("seed booking %s: %w", booking.BookingID, err)
		}
	}

	s.log.Info("Sample data inserted",
		zap.Int("passengers", len(passengers)),
		zap.Int("flights", len(flights)),
		zap.Int("bookings", len(bookings)),
	)

	return nil
}

func (s *Seeder) put(ctx context.Context, table string, record any) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(table),
		Item:      item,
	})
	return err
}
