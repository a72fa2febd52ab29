package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/outboxrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OutboxRepositoryIntegrationTestSuite provides integration tests for the
// transactional outbox table using PostgreSQL containers.
type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&outboxrepo.OutboxMessageDTO{}))
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox_messages").Error)
	suite.repository = outboxrepo.NewGormOutboxRepository(suite.db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAdd_NoEvents_IsNoOp() {
	suite.Require().NoError(suite.repository.Add(context.Background(), nil))

	messages, err := suite.repository.GetUnpublished(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Empty(messages)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestAdd_Events_RoundTripThroughStore() {
	ctx := context.Background()

	orderID := kernel.NewUUID()
	courierID := kernel.NewUUID()
	placed := suite.restoreEvent(order.EventNameOrderPlaced, orderID, nil, time.Now().Add(-time.Minute))
	accepted := suite.restoreEvent(order.EventNameOrderAccepted, orderID, &courierID, time.Now())

	suite.Require().NoError(suite.repository.Add(ctx, []order.DomainEvent{placed, accepted}))

	messages, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)

	// Oldest first.
	suite.Equal(order.EventNameOrderPlaced, messages[0].Event.EventName())
	suite.True(orderID.IsEqual(messages[0].Event.OrderID()))

	suite.Equal(order.EventNameOrderAccepted, messages[1].Event.EventName())
	acceptedEvent, ok := messages[1].Event.(order.OrderAccepted)
	suite.Require().True(ok)
	suite.True(courierID.IsEqual(acceptedEvent.CourierID()))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnpublished_RespectsLimit() {
	ctx := context.Background()

	events := make([]order.DomainEvent, 0, 5)
	base := time.Now().Add(-time.Hour)
	for i := range 5 {
		events = append(events, suite.restoreEvent(
			order.EventNameOrderPlaced, kernel.NewUUID(), nil, base.Add(time.Duration(i)*time.Second)))
	}
	suite.Require().NoError(suite.repository.Add(ctx, events))

	messages, err := suite.repository.GetUnpublished(ctx, 3)
	suite.Require().NoError(err)
	suite.Len(messages, 3)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_RemovesFromUnpublishedSet() {
	ctx := context.Background()

	first := suite.restoreEvent(order.EventNameOrderPlaced, kernel.NewUUID(), nil, time.Now().Add(-time.Minute))
	second := suite.restoreEvent(order.EventNameOrderSent, kernel.NewUUID(), nil, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, []order.DomainEvent{first, second}))

	messages, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 2)

	suite.Require().NoError(suite.repository.MarkPublished(ctx, []kernel.UUID{messages[0].ID}))

	remaining, err := suite.repository.GetUnpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(remaining, 1)
	suite.Equal(messages[1].ID, remaining[0].ID)

	// Marking the same message again is harmless.
	suite.Require().NoError(suite.repository.MarkPublished(ctx, []kernel.UUID{messages[0].ID}))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkPublished_NoIDs_IsNoOp() {
	suite.Require().NoError(suite.repository.MarkPublished(context.Background(), nil))
}

func (suite *OutboxRepositoryIntegrationTestSuite) restoreEvent(
	name string, orderID kernel.UUID, courierID *kernel.UUID, occurredAt time.Time,
) order.DomainEvent {
	event, err := order.RestoreEvent(name, orderID, courierID, occurredAt)
	suite.Require().NoError(err)
	return event
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
