package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLines() []services.PricingLine {
	return []services.PricingLine{
		{
			ClothingItemID: kernel.NewUUID(),
			Category:       catalog.CategoryMen,
			Services:       []catalog.ServiceType{catalog.ServiceWashing},
			Quantity:       2,
		},
	}
}

func TestNewCreateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	t.Run("constructs with valid inputs", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(
			orderID, customerID, validLines(), "12 Pine St", "", "ring twice", nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, customerID, cmd.CustomerID())
		assert.Len(t, cmd.Lines(), 1)
		assert.Equal(t, "12 Pine St", cmd.PickupAddress())
		assert.Empty(t, cmd.DeliveryAddress())
		assert.Equal(t, "ring twice", cmd.Notes())
	})

	t.Run("rejects empty order id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.UUID{}, customerID, validLines(), "12 Pine St", "", "", nil)
		require.Error(t, err)
	})

	t.Run("rejects empty customer id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, kernel.UUID{}, validLines(), "12 Pine St", "", "", nil)
		require.Error(t, err)
	})

	t.Run("rejects empty lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, customerID, nil, "12 Pine St", "", "", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty pickup address", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			orderID, customerID, validLines(), "", "", "", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
