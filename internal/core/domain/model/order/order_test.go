package order_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), testDate, 10.0, order.Vemo, "1 Main St", 42, status)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, testDate, 10.0, order.Vemo, "1 Main St", 42, order.Open)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, testDate, o.Date())
		assert.InDelta(t, 10.0, o.Total(), 0.0001)
		assert.Equal(t, order.Vemo, o.Payment())
		assert.Equal(t, "1 Main St", o.Address())
		assert.Equal(t, 42, o.CustomerID())
		assert.Equal(t, order.Open, o.Status())
		assert.Empty(t, o.Items())
	})

	t.Run("should accept any valid status at creation", func(t *testing.T) {
		for _, status := range []order.Status{order.Open, order.Shipping, order.Delivered, order.Cancelled} {
			o, err := order.NewOrder(kernel.NewUUID(), testDate, 10.0, order.CreditCard, "1 Main St", 42, status)

			require.NoError(t, err)
			assert.Equal(t, status, o.Status())
		}
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, testDate, 10.0, order.Vemo, "1 Main St", 42, order.Open)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero date", func(t *testing.T) {
		o, err := order.NewOrder(validID, time.Time{}, 10.0, order.Vemo, "1 Main St", 42, order.Open)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "date")
	})

	t.Run("should fail with negative total", func(t *testing.T) {
		o, err := order.NewOrder(validID, testDate, -0.01, order.Vemo, "1 Main St", 42, order.Open)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "total")
	})

	t.Run("should accept zero total", func(t *testing.T) {
		o, err := order.NewOrder(validID, testDate, 0, order.Vemo, "1 Main St", 42, order.Open)

		require.NoError(t, err)
		assert.InDelta(t, 0.0, o.Total(), 0.0001)
	})

	t.Run("should fail with invalid payment", func(t *testing.T) {
		o, err := order.NewOrder(validID, testDate, 10.0, order.PaymentUnknown, "1 Main St", 42, order.Open)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "payment")
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		o, err := order.NewOrder(validID, testDate, 10.0, order.Vemo, "", 42, order.Open)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should fail with overlong address", func(t *testing.T) {
		long := make([]byte, 101)
		for i := range long {
			long[i] = 'a'
		}

		o, err := order.NewOrder(validID, testDate, 10.0, order.Vemo, string(long), 42, order.Open)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		o, err := order.NewOrder(validID, testDate, 10.0, order.Vemo, "1 Main St", 42, order.StatusUnknown)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, time.Time{}, -1, order.PaymentUnknown, "", 42, order.StatusUnknown)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "date")
		assert.Contains(t, err.Error(), "total")
		assert.Contains(t, err.Error(), "address")
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore order with owned items", func(t *testing.T) {
		orderID := kernel.NewUUID()
		item, err := order.RestoreItem(kernel.NewUUID(), 7, 2, 10.0, orderID)
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			orderID, testDate, 10.0, order.Vemo, "1 Main St", 42, order.Shipping, []*order.Item{item},
		)

		require.NoError(t, err)
		assert.Equal(t, order.Shipping, o.Status())
		require.Len(t, o.Items(), 1)
		assert.True(t, o.Items()[0].OrderID().IsEqual(orderID))
	})

	t.Run("should reject item owned by another order", func(t *testing.T) {
		orderID := kernel.NewUUID()
		foreign, err := order.RestoreItem(kernel.NewUUID(), 7, 2, 10.0, kernel.NewUUID())
		require.NoError(t, err)

		o, err := order.RestoreOrder(
			orderID, testDate, 10.0, order.Vemo, "1 Main St", 42, order.Open, []*order.Item{foreign},
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "belongs to order")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject directly instantiated order", func(t *testing.T) {
		o := &order.Order{}

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Update(t *testing.T) {
	t.Run("should replace mutable fields", func(t *testing.T) {
		o := newTestOrder(t, order.Open)
		newDate := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

		err := o.Update(newDate, 100.0, order.CreditCard, "2 Oak Ave", 7, order.Shipping)

		require.NoError(t, err)
		assert.Equal(t, newDate, o.Date())
		assert.InDelta(t, 100.0, o.Total(), 0.0001)
		assert.Equal(t, order.CreditCard, o.Payment())
		assert.Equal(t, "2 Oak Ave", o.Address())
		assert.Equal(t, 7, o.CustomerID())
		assert.Equal(t, order.Shipping, o.Status())
	})

	t.Run("should leave order unchanged on validation failure", func(t *testing.T) {
		o := newTestOrder(t, order.Open)

		err := o.Update(time.Time{}, -5, order.PaymentUnknown, "", 7, order.StatusUnknown)

		require.Error(t, err)
		assert.Equal(t, testDate, o.Date())
		assert.InDelta(t, 10.0, o.Total(), 0.0001)
		assert.Equal(t, order.Vemo, o.Payment())
		assert.Equal(t, "1 Main St", o.Address())
		assert.Equal(t, 42, o.CustomerID())
		assert.Equal(t, order.Open, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel open order", func(t *testing.T) {
		o := newTestOrder(t, order.Open)

		err := o.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should conflict when cancelling a cancelled order", func(t *testing.T) {
		o := newTestOrder(t, order.Open)
		require.NoError(t, o.Cancel())

		err := o.Cancel()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, order.Cancelled, o.Status(), "failed cancel must not mutate state")
	})

	t.Run("should conflict from shipping and delivered", func(t *testing.T) {
		for _, status := range []order.Status{order.Shipping, order.Delivered} {
			o := newTestOrder(t, status)

			err := o.Cancel()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrStateConflict)
			assert.Equal(t, status, o.Status())
		}
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should attach item and set ownership", func(t *testing.T) {
		o := newTestOrder(t, order.Open)
		item, err := order.NewItem(kernel.NewUUID(), 7, 2, 10.0)
		require.NoError(t, err)

		err = o.AddItem(item)

		require.NoError(t, err)
		require.Len(t, o.Items(), 1)
		assert.True(t, item.OrderID().IsEqual(o.ID()))
	})

	t.Run("should reject item for cancelled order", func(t *testing.T) {
		o := newTestOrder(t, order.Cancelled)
		item, err := order.NewItem(kernel.NewUUID(), 7, 2, 10.0)
		require.NoError(t, err)

		err = o.AddItem(item)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Empty(t, o.Items(), "rejected item must not be appended")
	})

	t.Run("should reject unconstructed item", func(t *testing.T) {
		o := newTestOrder(t, order.Open)

		err := o.AddItem(&order.Item{})

		require.Error(t, err)
		assert.Empty(t, o.Items())
	})
}

func TestOrder_UpdateItem(t *testing.T) {
	t.Run("should update owned item", func(t *testing.T) {
		o := newTestOrder(t, order.Open)
		item, err := order.NewItem(kernel.NewUUID(), 7, 2, 10.0)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))

		err = o.UpdateItem(item.ID(), 9, 4, 20.0)

		require.NoError(t, err)
		updated := o.Item(item.ID())
		require.NotNil(t, updated)
		assert.Equal(t, 9, updated.ProductID())
		assert.Equal(t, 4, updated.Quantity())
	})

	t.Run("should return not found for unknown item", func(t *testing.T) {
		o := newTestOrder(t, order.Open)

		err := o.UpdateItem(kernel.NewUUID(), 9, 4, 20.0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should surface quantity violation from item", func(t *testing.T) {
		o := newTestOrder(t, order.Open)
		item, err := order.NewItem(kernel.NewUUID(), 7, 2, 10.0)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))

		err = o.UpdateItem(item.ID(), 9, 0, 20.0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 2, o.Item(item.ID()).Quantity())
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	t.Run("should remove owned item", func(t *testing.T) {
		o := newTestOrder(t, order.Open)
		item, err := order.NewItem(kernel.NewUUID(), 7, 2, 10.0)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))

		o.RemoveItem(item.ID())

		assert.Empty(t, o.Items())
	})

	t.Run("should be a no-op for unknown item", func(t *testing.T) {
		o := newTestOrder(t, order.Open)
		item, err := order.NewItem(kernel.NewUUID(), 7, 2, 10.0)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))

		o.RemoveItem(kernel.NewUUID())

		assert.Len(t, o.Items(), 1)
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("returned slice is a copy", func(t *testing.T) {
		o := newTestOrder(t, order.Open)
		item, err := order.NewItem(kernel.NewUUID(), 7, 2, 10.0)
		require.NoError(t, err)
		require.NoError(t, o.AddItem(item))

		items := o.Items()
		items[0] = nil

		require.Len(t, o.Items(), 1)
		assert.NotNil(t, o.Items()[0])
	})
}
