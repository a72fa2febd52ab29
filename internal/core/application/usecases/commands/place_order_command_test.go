package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePlaceOrderItem(t *testing.T, quantity int) commands.PlaceOrderItem {
	t.Helper()

	item, err := commands.NewPlaceOrderItem(kernel.NewUUID(), quantity)
	require.NoError(t, err)
	return item
}

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()
		items := []commands.PlaceOrderItem{makePlaceOrderItem(t, 2)}

		cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, "Building 7", "412", "", items)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.CustomerID().IsEqual(customerID))
		assert.Len(t, cmd.Items(), 1)
	})

	t.Run("should fail with empty building", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			"", "412", "", []commands.PlaceOrderItem{makePlaceOrderItem(t, 1)})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			"Building 7", "412", "", nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unconstructed item", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), kernel.NewUUID(),
			"Building 7", "412", "", []commands.PlaceOrderItem{{}})

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrPlaceOrderItemIsNotConstructed)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}

func TestNewPlaceOrderItem(t *testing.T) {
	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := commands.NewPlaceOrderItem(kernel.NewUUID(), 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with invalid food item id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderItem(kernel.UUID{}, 1)

		require.Error(t, err)
	})
}
