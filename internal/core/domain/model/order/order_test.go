package order_test

import (
	"strings"
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, priceCents kernel.Cents, quantity int) order.Item {
	t.Helper()

	price, err := kernel.NewMoney(priceCents)
	require.NoError(t, err)

	item, err := order.NewItem(kernel.NewUUID(), name, price, quantity, "")
	require.NoError(t, err)

	return item
}

func mustOrder(t *testing.T, items ...order.Item) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items, "")
	require.NoError(t, err)

	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		restaurantID := kernel.NewUUID()
		items := []order.Item{
			mustItem(t, "Margherita", 1250, 2),
			mustItem(t, "Tiramisu", 600, 1),
		}

		o, err := order.NewOrder(id, customerID, restaurantID, items, "ring the bell")

		require.NoError(t, err)
		assert.Equal(t, id, o.ID())
		assert.Equal(t, customerID, o.CustomerID())
		assert.Equal(t, restaurantID, o.RestaurantID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "ring the bell", o.SpecialInstructions())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, kernel.Cents(3100), o.Total().Amount())
		assert.Nil(t, o.EstimatedPickupAt())
		assert.Nil(t, o.ActualPickupAt())
		assert.WithinDuration(t, time.Now().UTC(), o.CreatedAt(), time.Second)
	})

	t.Run("should derive order number from id prefix", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, "Margherita", 1250, 1)}, "")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(o.OrderNumber(), "ORD-"))
		assert.Equal(t, "ORD-"+id.String()[:8], o.OrderNumber())
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, "Margherita", 1250, 1)}, "")

		require.Error(t, err)
	})

	t.Run("should fail with invalid customer id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(),
			[]order.Item{mustItem(t, "Margherita", 1250, 1)}, "")

		require.Error(t, err)
	})

	t.Run("should fail with invalid restaurant id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{},
			[]order.Item{mustItem(t, "Margherita", 1250, 1)}, "")

		require.Error(t, err)
	})

	t.Run("should fail without items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{}, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should fail when total is zero", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, "Water", 0, 1)}, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrTotalIsNotPositive)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with stored status and timestamps", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC().Add(-time.Hour)
		estimate := createdAt.Add(30 * time.Minute)
		items := []order.Item{mustItem(t, "Margherita", 1250, 2)}

		o, err := order.RestoreOrder(id, "ORD-AB12CD34", kernel.NewUUID(), kernel.NewUUID(),
			order.Ready, items, "no onions", &estimate, nil, createdAt)

		require.NoError(t, err)
		assert.Equal(t, "ORD-AB12CD34", o.OrderNumber())
		assert.Equal(t, order.Ready, o.Status())
		assert.Equal(t, createdAt, o.CreatedAt())
		require.NotNil(t, o.EstimatedPickupAt())
		assert.Equal(t, estimate, *o.EstimatedPickupAt())
		assert.Nil(t, o.ActualPickupAt())
		assert.Equal(t, kernel.Cents(2500), o.Total().Amount())
	})

	t.Run("should fail with invalid stored status", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Margherita", 1250, 1)}

		_, err := order.RestoreOrder(kernel.NewUUID(), "ORD-AB12CD34", kernel.NewUUID(),
			kernel.NewUUID(), order.Status(42), items, "", nil, nil, time.Now().UTC())

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should validate constructed order", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))

		require.NoError(t, o.Validate())
	})

	t.Run("should fail for directly instantiated order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	t.Run("should compare by identifier", func(t *testing.T) {
		item := mustItem(t, "Margherita", 1250, 1)
		id := kernel.NewUUID()

		first, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{item}, "")
		require.NoError(t, err)

		second, err := order.NewOrder(id, kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{item}, "")
		require.NoError(t, err)

		other := mustOrder(t, item)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(other))
		assert.False(t, first.IsEqual(nil))
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("should walk the happy path to pickup", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))

		require.NoError(t, o.TransitionTo(order.Confirmed))
		assert.Equal(t, order.Confirmed, o.Status())

		require.NoError(t, o.TransitionTo(order.Ready))
		assert.Equal(t, order.Ready, o.Status())

		require.NoError(t, o.TransitionTo(order.PickedUp))
		assert.Equal(t, order.PickedUp, o.Status())
		assert.True(t, o.IsFinal())
	})

	t.Run("should set pickup estimate when entering Ready", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))
		require.NoError(t, o.TransitionTo(order.Confirmed))

		require.NoError(t, o.TransitionTo(order.Ready))

		require.NotNil(t, o.EstimatedPickupAt())
		expected := time.Now().UTC().Add(order.PickupGracePeriod)
		assert.WithinDuration(t, expected, *o.EstimatedPickupAt(), time.Second)
	})

	t.Run("should keep an existing pickup estimate when entering Ready", func(t *testing.T) {
		estimate := time.Now().UTC().Add(45 * time.Minute)
		items := []order.Item{mustItem(t, "Margherita", 1250, 1)}

		o, err := order.RestoreOrder(kernel.NewUUID(), "ORD-AB12CD34", kernel.NewUUID(),
			kernel.NewUUID(), order.Confirmed, items, "", &estimate, nil, time.Now().UTC())
		require.NoError(t, err)

		require.NoError(t, o.TransitionTo(order.Ready))

		require.NotNil(t, o.EstimatedPickupAt())
		assert.Equal(t, estimate, *o.EstimatedPickupAt())
	})

	t.Run("should stamp pickup time when entering PickedUp", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))
		require.NoError(t, o.TransitionTo(order.Confirmed))
		require.NoError(t, o.TransitionTo(order.Ready))

		require.NoError(t, o.TransitionTo(order.PickedUp))

		require.NotNil(t, o.ActualPickupAt())
		assert.WithinDuration(t, time.Now().UTC(), *o.ActualPickupAt(), time.Second)
	})

	t.Run("should leave order untouched on illegal transition", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))

		err := o.TransitionTo(order.PickedUp)

		require.Error(t, err)

		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Pending, transitionErr.From)
		assert.Equal(t, order.PickedUp, transitionErr.To)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.ActualPickupAt())
	})

	t.Run("should allow reactivating a cancelled order", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))
		require.NoError(t, o.Cancel())

		require.NoError(t, o.TransitionTo(order.Pending))

		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a pending order", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should cancel a confirmed order", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))
		require.NoError(t, o.TransitionTo(order.Confirmed))

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should fail to cancel a ready order", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))
		require.NoError(t, o.TransitionTo(order.Confirmed))
		require.NoError(t, o.TransitionTo(order.Ready))

		err := o.Cancel()

		require.Error(t, err)

		var cancelErr *order.CannotCancelError
		require.ErrorAs(t, err, &cancelErr)
		assert.Equal(t, order.Ready, cancelErr.From)
		assert.Equal(t, order.Ready, o.Status())
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return defensive copy of items", func(t *testing.T) {
		first := mustItem(t, "Margherita", 1250, 1)
		second := mustItem(t, "Tiramisu", 600, 1)
		o := mustOrder(t, first, second)

		items := o.Items()
		items[0] = second

		assert.Equal(t, "Margherita", o.Items()[0].Name())
	})

	t.Run("should add item and restore total invariant", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))

		err := o.AddItem(mustItem(t, "Tiramisu", 600, 2))

		require.NoError(t, err)
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, kernel.Cents(2450), o.Total().Amount())
	})

	t.Run("should reject adding an unconstructed item", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))

		err := o.AddItem(order.Item{})

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should remove item and restore total invariant", func(t *testing.T) {
		first := mustItem(t, "Margherita", 1250, 1)
		second := mustItem(t, "Tiramisu", 600, 1)
		o := mustOrder(t, first, second)

		err := o.RemoveItem(second.MenuItemID())

		require.NoError(t, err)
		assert.Len(t, o.Items(), 1)
		assert.Equal(t, kernel.Cents(1250), o.Total().Amount())
	})

	t.Run("should fail to remove unknown item", func(t *testing.T) {
		o := mustOrder(t, mustItem(t, "Margherita", 1250, 1))

		err := o.RemoveItem(kernel.NewUUID())

		require.Error(t, err)
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should refuse to remove the last item", func(t *testing.T) {
		item := mustItem(t, "Margherita", 1250, 1)
		o := mustOrder(t, item)

		err := o.RemoveItem(item.MenuItemID())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
		assert.Len(t, o.Items(), 1)
	})
}
