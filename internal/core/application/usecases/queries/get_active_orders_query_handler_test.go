package queries_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	repo      *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.repo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines, orders").Error)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ExcludesDelivered() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	submitted := suite.createOrder(order.Submitted, nil, time.Now())
	sent := suite.createOrder(order.Sent, &courierID, time.Now())
	delivered := suite.createOrder(order.Delivered, &courierID, time.Now())

	query := queries.NewGetActiveOrdersQuery()

	orders, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)

	resultIDs := make(map[string]bool)
	for _, activeOrder := range orders {
		suite.NotEqual(order.Delivered, activeOrder.Status)
		resultIDs[activeOrder.ID.String()] = true
	}

	suite.True(resultIDs[submitted.ID().String()])
	suite.True(resultIDs[sent.ID().String()])
	suite.False(resultIDs[delivered.ID().String()])
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_AcceptedOrder_MapsCourierAndLocation() {
	ctx := context.Background()
	courierID := kernel.NewUUID()

	accepted := suite.createOrder(order.Accepted, &courierID, time.Now())

	query := queries.NewGetActiveOrdersQuery()

	orders, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)

	result := orders[0]
	suite.True(accepted.ID().IsEqual(result.ID))
	suite.Equal(order.Accepted, result.Status)
	suite.Require().NotNil(result.CourierID)
	suite.True(courierID.IsEqual(*result.CourierID))
	suite.True(accepted.Location().IsEqual(result.Location))
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_SubmittedOrder_HasNoCourier() {
	ctx := context.Background()

	suite.createOrder(order.Submitted, nil, time.Now())

	query := queries.NewGetActiveOrdersQuery()

	orders, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.Nil(orders[0].CourierID)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_TotalIncludesLinesAndDeliveryFee() {
	ctx := context.Background()

	// Two pizzas at 1200 plus one soup at 450 plus the 300 fee.
	created := suite.createOrder(order.Submitted, nil, time.Now())

	query := queries.NewGetActiveOrdersQuery()

	orders, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(created.Total().IsEqual(orders[0].Total))
	suite.Equal(int64(3150), orders[0].Total.Cents())
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_OrdersAreSortedOldestFirst() {
	ctx := context.Background()
	now := time.Now()

	newest := suite.createOrder(order.Submitted, nil, now)
	oldest := suite.createOrder(order.Submitted, nil, now.Add(-2*time.Hour))
	middle := suite.createOrder(order.Submitted, nil, now.Add(-time.Hour))

	query := queries.NewGetActiveOrdersQuery()

	orders, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)
	suite.True(oldest.ID().IsEqual(orders[0].ID))
	suite.True(middle.ID().IsEqual(orders[1].ID))
	suite.True(newest.ID().IsEqual(orders[2].ID))
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	orders, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(orders)
	suite.ErrorIs(err, queries.ErrGetActiveOrdersQueryIsNotConstructed)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_CancelledContext_ReturnsError() {
	suite.createOrder(order.Submitted, nil, time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	query := queries.NewGetActiveOrdersQuery()

	orders, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(orders)
}

// createOrder restores an order with two line snapshots in the given status.
func (suite *GetActiveOrdersQueryHandlerTestSuite) createOrder(
	status order.Status, courierID *kernel.UUID, placedAt time.Time,
) *order.Order {
	location, err := kernel.NewLocation("Building 7", "412", "leave at the door")
	suite.Require().NoError(err)

	pizzaPrice, err := kernel.NewMoneyFromCents(1200)
	suite.Require().NoError(err)
	soupPrice, err := kernel.NewMoneyFromCents(450)
	suite.Require().NoError(err)
	fee, err := kernel.NewMoneyFromCents(300)
	suite.Require().NoError(err)

	pizza, err := order.NewOrderLine(kernel.NewUUID(), kernel.NewUUID(), "Pizza Margherita", 2, pizzaPrice)
	suite.Require().NoError(err)
	soup, err := order.NewOrderLine(kernel.NewUUID(), kernel.NewUUID(), "Tomato Soup", 1, soupPrice)
	suite.Require().NoError(err)

	restored, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), location, []order.OrderLine{pizza, soup},
		status, courierID, fee, placedAt, 1)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Add(context.Background(), restored))
	return restored
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}
