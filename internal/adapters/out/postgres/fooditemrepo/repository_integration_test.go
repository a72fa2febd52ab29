package fooditemrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/postgres/fooditemrepo"
	"fooddelivery/internal/core/domain/model/fooditem"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// FoodItemRepositoryIntegrationTestSuite provides integration tests for the
// food item repository using PostgreSQL containers.
type FoodItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *fooditemrepo.GormFoodItemRepository
	tracker    *MockAggregateTracker
}

func (suite *FoodItemRepositoryIntegrationTestSuite) SetupSuite() {
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

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which Add depends on.
	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&fooditemrepo.FoodItemDTO{}))
}

func (suite *FoodItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE food_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = fooditemrepo.NewGormFoodItemRepository(suite.db, suite.tracker)
}

func (suite *FoodItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *FoodItemRepositoryIntegrationTestSuite) TestAdd_ValidFoodItem_Success() {
	ctx := context.Background()

	item := suite.createFoodItem("Pizza Margherita", 1200)
	suite.tracker.On("TrackAggregate", item.ID(), item).Once()

	suite.Require().NoError(suite.repository.Add(ctx, item))

	retrieved, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(item.ID(), retrieved.ID())
	suite.Equal("Pizza Margherita", retrieved.Name())
	suite.True(item.Price().IsEqual(retrieved.Price()))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FoodItemRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsInvalidValueError() {
	ctx := context.Background()

	item := suite.createFoodItem("Pizza Margherita", 1200)
	suite.tracker.On("TrackAggregate", item.ID(), item).Once()
	suite.Require().NoError(suite.repository.Add(ctx, item))

	duplicate, err := fooditem.NewFoodItem(item.ID(), "Impostor Pizza", item.Price())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)

	suite.Require().Error(err)
	var invalidErr *errs.ValueIsInvalidError
	suite.Require().ErrorAs(err, &invalidErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FoodItemRepositoryIntegrationTestSuite) TestUpdate_ExistingFoodItem_PersistsChanges() {
	ctx := context.Background()

	item := suite.createFoodItem("Tomato Soup", 450)
	suite.tracker.On("TrackAggregate", item.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, item))

	newPrice, err := kernel.NewMoneyFromCents(550)
	suite.Require().NoError(err)
	updated, err := fooditem.RestoreFoodItem(item.ID(), "Roasted Tomato Soup", newPrice)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, updated))

	retrieved, err := suite.repository.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("Roasted Tomato Soup", retrieved.Name())
	suite.True(newPrice.IsEqual(retrieved.Price()))
}

func (suite *FoodItemRepositoryIntegrationTestSuite) TestUpdate_NonExistentFoodItem_ReturnsNotFoundError() {
	item := suite.createFoodItem("Ghost Burger", 900)

	err := suite.repository.Update(context.Background(), item)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *FoodItemRepositoryIntegrationTestSuite) TestGetByIDs_MissingIDsAreAbsent() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything)

	pizza := suite.createFoodItem("Pizza Margherita", 1200)
	soup := suite.createFoodItem("Tomato Soup", 450)
	suite.Require().NoError(suite.repository.Add(ctx, pizza))
	suite.Require().NoError(suite.repository.Add(ctx, soup))

	items, err := suite.repository.GetByIDs(ctx,
		[]kernel.UUID{pizza.ID(), soup.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)

	suite.Require().Len(items, 2)
	found := make(map[string]bool, len(items))
	for _, item := range items {
		found[item.ID().String()] = true
	}
	suite.True(found[pizza.ID().String()])
	suite.True(found[soup.ID().String()])
}

func (suite *FoodItemRepositoryIntegrationTestSuite) TestDelete_ExistingFoodItem_RemovesIt() {
	ctx := context.Background()

	item := suite.createFoodItem("Green Salad", 700)
	suite.tracker.On("TrackAggregate", item.ID(), item).Once()
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(suite.repository.Delete(ctx, item.ID()))

	_, err := suite.repository.Get(ctx, item.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *FoodItemRepositoryIntegrationTestSuite) TestDelete_RepeatedDelete_ReturnsNotFoundError() {
	ctx := context.Background()

	item := suite.createFoodItem("Green Salad", 700)
	suite.tracker.On("TrackAggregate", item.ID(), item).Once()
	suite.Require().NoError(suite.repository.Add(ctx, item))

	suite.Require().NoError(suite.repository.Delete(ctx, item.ID()))

	err := suite.repository.Delete(ctx, item.ID())

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createFoodItem builds a food item with the given name and price in cents.
func (suite *FoodItemRepositoryIntegrationTestSuite) createFoodItem(
	name string, priceCents int64,
) *fooditem.FoodItem {
	price, err := kernel.NewMoneyFromCents(priceCents)
	suite.Require().NoError(err)

	item, err := fooditem.NewFoodItem(kernel.NewUUID(), name, price)
	suite.Require().NoError(err)
	return item
}

func TestFoodItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(FoodItemRepositoryIntegrationTestSuite))
}
