package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validActor() user.Actor {
	return user.Actor{ID: kernel.NewUUID(), Role: user.RoleAdmin}
}

func TestQueryConstructors(t *testing.T) {
	t.Run("get order", func(t *testing.T) {
		q, err := queries.NewGetOrderQuery(kernel.NewUUID(), validActor())
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		_, err = queries.NewGetOrderQuery(kernel.UUID{}, validActor())
		require.Error(t, err)

		var zero queries.GetOrderQuery
		assert.ErrorIs(t, zero.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	})

	t.Run("get customer orders", func(t *testing.T) {
		q, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID(), validActor())
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		_, err = queries.NewGetCustomerOrdersQuery(kernel.NewUUID(), user.Actor{})
		require.Error(t, err)

		var zero queries.GetCustomerOrdersQuery
		assert.ErrorIs(t, zero.Validate(), queries.ErrGetCustomerOrdersQueryIsNotConstructed)
	})

	t.Run("get assigned orders", func(t *testing.T) {
		q, err := queries.NewGetAssignedOrdersQuery(kernel.NewUUID(), validActor())
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		var zero queries.GetAssignedOrdersQuery
		assert.ErrorIs(t, zero.Validate(), queries.ErrGetAssignedOrdersQueryIsNotConstructed)
	})

	t.Run("get unassigned orders", func(t *testing.T) {
		q, err := queries.NewGetUnassignedOrdersQuery(validActor())
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		_, err = queries.NewGetUnassignedOrdersQuery(user.Actor{ID: kernel.NewUUID()})
		require.Error(t, err, "unknown role must be rejected")

		var zero queries.GetUnassignedOrdersQuery
		assert.ErrorIs(t, zero.Validate(), queries.ErrGetUnassignedOrdersQueryIsNotConstructed)
	})

	t.Run("get order stats", func(t *testing.T) {
		q, err := queries.NewGetOrderStatsQuery(validActor())
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		var zero queries.GetOrderStatsQuery
		assert.ErrorIs(t, zero.Validate(), queries.ErrGetOrderStatsQueryIsNotConstructed)
	})

	t.Run("get delivery stats", func(t *testing.T) {
		q, err := queries.NewGetDeliveryStatsQuery(kernel.NewUUID(), validActor())
		require.NoError(t, err)
		require.NoError(t, q.Validate())

		var zero queries.GetDeliveryStatsQuery
		assert.ErrorIs(t, zero.Validate(), queries.ErrGetDeliveryStatsQueryIsNotConstructed)
	})
}
