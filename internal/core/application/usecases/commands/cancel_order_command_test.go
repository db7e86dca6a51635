package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("should create valid command with valid order id", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewCancelOrderCommand(orderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		require.NoError(t, cmd.Validate())
	})

	t.Run("should fail with invalid order id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.UUID{})

		require.Error(t, err)
	})
}

func TestCancelOrderCommand_Validate(t *testing.T) {
	t.Run("should fail for zero value command", func(t *testing.T) {
		var cmd commands.CancelOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	})
}
