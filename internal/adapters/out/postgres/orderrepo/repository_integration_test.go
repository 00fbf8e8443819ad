package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertLineItemCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsCapturedPrices() {
	ctx := context.Background()

	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()
	stainTypeID := kernel.NewUUID()

	customPrice := suite.mustPrice("10.50")
	item, err := order.NewLineItem(
		productID,
		suite.mustPrice("12.00"),
		&customPrice,
		&stainTypeID,
		suite.mustPrice("2.50"),
		3,
		"silk, handle with care",
	)
	suite.Require().NoError(err)

	originalOrder, err := order.NewOrder(id, customerID, []order.LineItem{item}, true, suite.mustPrice("15.00"))
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedOrder.ID())
	suite.Equal(customerID, retrievedOrder.CustomerID())
	suite.True(retrievedOrder.IsExpress())
	suite.Equal("15.00", retrievedOrder.ExpressFee().StringFixed())
	suite.Equal(order.Cleaning, retrievedOrder.Status())

	suite.Require().Len(retrievedOrder.Items(), 1)
	retrievedItem := retrievedOrder.Items()[0]
	suite.Equal(productID, retrievedItem.ProductID())
	suite.Equal("12.00", retrievedItem.BasePrice().StringFixed())
	suite.Require().NotNil(retrievedItem.CustomPrice())
	suite.Equal("10.50", retrievedItem.CustomPrice().StringFixed())
	suite.Require().NotNil(retrievedItem.StainTypeID())
	suite.Equal(stainTypeID, *retrievedItem.StainTypeID())
	suite.Equal("2.50", retrievedItem.StainSurcharge().StringFixed())
	suite.Equal(3, retrievedItem.Quantity())
	suite.Equal("silk, handle with care", retrievedItem.Note())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitionPersists() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Ready))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, retrievedOrder.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLineItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	itemA, err := order.NewLineItem(
		kernel.NewUUID(), suite.mustPrice("8.00"), nil, nil, kernel.ZeroPrice(), 2, "")
	suite.Require().NoError(err)
	itemB, err := order.NewLineItem(
		kernel.NewUUID(), suite.mustPrice("20.00"), nil, nil, kernel.ZeroPrice(), 1, "")
	suite.Require().NoError(err)

	suite.Require().NoError(testOrder.ReplaceItems([]order.LineItem{itemA, itemB}))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(retrievedOrder.Items(), 2)
	suite.assertLineItemCount(2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrderAndLineItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.assertOrderCount(1)
	suite.assertLineItemCount(1)

	err := suite.repository.Delete(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.assertOrderCount(0)
	suite.assertLineItemCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInStatus_FiltersByStatus() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	suite.createOrderWithStatus(ctx, order.Cleaning)
	suite.createOrderWithStatus(ctx, order.Cleaning)
	suite.createOrderWithStatus(ctx, order.Completed)

	cleaningOrders, err := suite.repository.GetAllInStatus(ctx, order.Cleaning)
	suite.Require().NoError(err)
	suite.Len(cleaningOrders, 2)
	for _, o := range cleaningOrders {
		suite.Equal(order.Cleaning, o.Status())
	}

	readyOrders, err := suite.repository.GetAllInStatus(ctx, order.Ready)
	suite.Require().NoError(err)
	suite.Empty(readyOrders)

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent order",
			operation: func() error {
				nonExistentOrder := suite.createTestOrder()
				return suite.repository.Update(context.Background(), nonExistentOrder)
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	initialOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	err := suite.repository.Add(ctx, initialOrder)
	suite.Require().NoError(err)

	results := make(chan *order.Order, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic test order with one line item.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	item, err := order.NewLineItem(
		kernel.NewUUID(), suite.mustPrice("12.00"), nil, nil, kernel.ZeroPrice(), 1, "")
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, false, kernel.ZeroPrice())
	suite.Require().NoError(err)
	return testOrder
}

// createOrderWithStatus persists an order restored in the given status.
func (suite *OrderRepositoryIntegrationTestSuite) createOrderWithStatus(
	ctx context.Context, status order.Status,
) *order.Order {
	item, err := order.NewLineItem(
		kernel.NewUUID(), suite.mustPrice("12.00"), nil, nil, kernel.ZeroPrice(), 1, "")
	suite.Require().NoError(err)

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{item}, false, kernel.ZeroPrice(), status)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) mustPrice(value string) kernel.Price {
	price, err := kernel.PriceFromString(value)
	suite.Require().NoError(err)
	return price
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertLineItemCount verifies the number of line rows in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertLineItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.LineItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
