package queries_test

import (
	"context"
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductCatalog) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

// Catalog data for the edit view is resolved through the product repository
// port: the referenced products via a bulk lookup, the selection list via a
// full catalog read. Only the order and its line items stay raw SQL.
func TestGetOrderForUpdate_ResolvesCatalogThroughRepository(t *testing.T) {
	mockDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	orderID := kernel.NewUUID()
	productID := kernel.NewUUID()

	sqlMock.ExpectQuery(`SELECT(.|\n)*FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).
			AddRow(orderID.String(), int(order.Created)))
	sqlMock.ExpectQuery(`SELECT(.|\n)*FROM order_items`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity", "comment"}).
			AddRow(productID.String(), 2, nil))

	tacos, err := product.NewProduct(productID, "Tacos al pastor", decimal.NewFromFloat(9.50))
	require.NoError(t, err)
	horchata, err := product.NewProduct(kernel.NewUUID(), "Agua de horchata", decimal.NewFromFloat(3.00))
	require.NoError(t, err)

	catalog := &MockProductCatalog{}
	catalog.On("GetByIDs", mock.Anything, []kernel.UUID{productID}).
		Return([]*product.Product{tacos}, nil).Once()
	catalog.On("GetAll", mock.Anything).
		Return([]*product.Product{horchata, tacos}, nil).Once()

	handler := queries.NewGetOrderForUpdateQueryHandler(db, catalog)
	query, err := queries.NewGetOrderForUpdateQuery(orderID)
	require.NoError(t, err)

	response, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "Tacos al pastor", response.Items[0].Name)
	assert.True(t, response.Items[0].Known)
	assert.True(t, decimal.NewFromFloat(19.00).Equal(response.Total))
	require.Len(t, response.Catalog, 2)
	assert.Equal(t, "Agua de horchata", response.Catalog[0].Name)
	catalog.AssertExpectations(t)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
