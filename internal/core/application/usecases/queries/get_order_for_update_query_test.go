package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderForUpdateQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderForUpdateQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.OrderID())
	assert.NoError(t, query.Validate())
}

func TestNewGetOrderForUpdateQuery_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := queries.NewGetOrderForUpdateQuery(invalidID)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderForUpdateQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetOrderForUpdateQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderForUpdateQueryIsNotConstructed)
}
