package queries_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/fooditemrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/fooditem"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetMenuQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetMenuQueryHandler
	repo      *fooditemrepo.GormFoodItemRepository
}

func (suite *GetMenuQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&fooditemrepo.FoodItemDTO{}))

	suite.handler = queries.NewGetMenuQueryHandler(db)
	suite.repo = fooditemrepo.NewGormFoodItemRepository(db, &mockAggregateTracker{})
}

func (suite *GetMenuQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE food_items").Error)
}

func (suite *GetMenuQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetMenuQuery()

	menu, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(menu)
	suite.Empty(menu)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_MultipleItems_ReturnsSortedByName() {
	ctx := context.Background()

	suite.createFoodItem("Tomato Soup", 450)
	suite.createFoodItem("Apple Pie", 650)
	suite.createFoodItem("Burger", 1100)

	query := queries.NewGetMenuQuery()

	menu, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(menu, 3)
	suite.Equal("Apple Pie", menu[0].Name)
	suite.Equal("Burger", menu[1].Name)
	suite.Equal("Tomato Soup", menu[2].Name)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_SingleItem_RoundTripsIDAndPrice() {
	ctx := context.Background()

	item := suite.createFoodItem("Pizza Margherita", 1200)

	query := queries.NewGetMenuQuery()

	menu, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(menu, 1)
	suite.True(item.ID().IsEqual(menu[0].ID))
	suite.Equal("Pizza Margherita", menu[0].Name)
	suite.True(item.Price().IsEqual(menu[0].Price))
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetMenuQuery{}

	menu, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(menu)
	suite.ErrorIs(err, queries.ErrGetMenuQueryIsNotConstructed)
}

func (suite *GetMenuQueryHandlerTestSuite) TestHandle_CancelledContext_ReturnsError() {
	suite.createFoodItem("Green Salad", 900)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	query := queries.NewGetMenuQuery()

	menu, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(menu)
}

func (suite *GetMenuQueryHandlerTestSuite) createFoodItem(name string, priceCents int64) *fooditem.FoodItem {
	price, err := kernel.NewMoneyFromCents(priceCents)
	suite.Require().NoError(err)

	item, err := fooditem.NewFoodItem(kernel.NewUUID(), name, price)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.Add(context.Background(), item))
	return item
}

// mockAggregateTracker satisfies the repositories' tracker dependency.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

func TestGetMenuQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetMenuQueryHandlerTestSuite))
}
