package queries_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}

type GetOrderForUpdateQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderForUpdateQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetOrderForUpdateQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderForUpdateQueryHandler(db, productrepo.NewGormProductRepository(db))
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderForUpdateQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderForUpdateQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, products CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderForUpdateQueryHandlerTestSuite) seedProduct(name string, price string) *product.Product {
	p, err := product.NewProduct(kernel.NewUUID(), name, decimal.RequireFromString(price))
	suite.Require().NoError(err)

	err = suite.db.Create(&productrepo.ProductDTO{
		ID:    p.ID().Bytes(),
		Name:  p.Name(),
		Price: p.Price(),
	}).Error
	suite.Require().NoError(err)
	return p
}

func (suite *GetOrderForUpdateQueryHandlerTestSuite) seedOrder(items ...order.Item) *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), items)
	suite.Require().NoError(err)
	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GetOrderForUpdateQueryHandlerTestSuite) TestHandle_OrderNotFound() {
	query, err := queries.NewGetOrderForUpdateQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderForUpdateQueryHandlerTestSuite) TestHandle_HydratesItemsFromCatalog() {
	tacos := suite.seedProduct("Tacos al pastor", "9.50")
	agua := suite.seedProduct("Agua de horchata", "3.00")

	item1, err := order.NewItem(tacos.ID(), 2, "sin cebolla")
	suite.Require().NoError(err)
	item2, err := order.NewItem(agua.ID(), 1, "")
	suite.Require().NoError(err)
	aggregate := suite.seedOrder(item1, item2)

	query, err := queries.NewGetOrderForUpdateQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), result.ID)
	suite.Equal("created", result.Status)
	suite.Require().Len(result.Items, 2)

	suite.Equal(tacos.ID().String(), result.Items[0].ProductID)
	suite.Equal("Tacos al pastor", result.Items[0].Name)
	suite.True(result.Items[0].Price.Equal(decimal.RequireFromString("9.50")))
	suite.Equal(2, result.Items[0].Quantity)
	suite.Equal("sin cebolla", result.Items[0].Comment)
	suite.True(result.Items[0].Known)

	suite.Equal(agua.ID().String(), result.Items[1].ProductID)
	suite.True(result.Items[1].Known)

	suite.True(result.Total.Equal(decimal.RequireFromString("22.00")))
}

func (suite *GetOrderForUpdateQueryHandlerTestSuite) TestHandle_VanishedProductFallsBackToPlaceholder() {
	vanishedID := kernel.NewUUID() // never written to the catalog
	item, err := order.NewItem(vanishedID, 3, "")
	suite.Require().NoError(err)
	aggregate := suite.seedOrder(item)

	query, err := queries.NewGetOrderForUpdateQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 1)
	suite.Equal(product.UnknownProductName, result.Items[0].Name)
	suite.True(result.Items[0].Price.IsZero())
	suite.Equal(3, result.Items[0].Quantity)
	suite.False(result.Items[0].Known)
	suite.True(result.Total.IsZero())
}

func (suite *GetOrderForUpdateQueryHandlerTestSuite) TestHandle_ReturnsFullCatalogSortedByName() {
	suite.seedProduct("Quesadilla", "5.00")
	suite.seedProduct("Agua de horchata", "3.00")
	tacos := suite.seedProduct("Tacos al pastor", "9.50")

	item, err := order.NewItem(tacos.ID(), 1, "")
	suite.Require().NoError(err)
	aggregate := suite.seedOrder(item)

	query, err := queries.NewGetOrderForUpdateQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Catalog, 3)
	suite.Equal("Agua de horchata", result.Catalog[0].Name)
	suite.Equal("Quesadilla", result.Catalog[1].Name)
	suite.Equal("Tacos al pastor", result.Catalog[2].Name)
}

func (suite *GetOrderForUpdateQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderForUpdateQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderForUpdateQuery constructor")
}

func TestGetOrderForUpdateQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderForUpdateQueryHandlerTestSuite))
}
