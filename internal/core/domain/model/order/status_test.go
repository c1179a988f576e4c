package order_test

import (
	"fmt"
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.Open))
		assert.Equal(t, 2, int(order.Shipping))
		assert.Equal(t, 3, int(order.Delivered))
		assert.Equal(t, 4, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Open,
			order.Shipping,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.StatusUnknown,
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Open, "OPEN"},
			{order.Shipping, "SHIPPING"},
			{order.Delivered, "DELIVERED"},
			{order.Cancelled, "CANCELLED"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return UNKNOWN for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", order.StatusUnknown.String())
		assert.Equal(t, "UNKNOWN", order.Status(-1).String())
		assert.Equal(t, "UNKNOWN", order.Status(99).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected order.Status
		}{
			{"OPEN", order.Open},
			{"SHIPPING", order.Shipping},
			{"DELIVERED", order.Delivered},
			{"CANCELLED", order.Cancelled},
		}

		for _, tc := range testCases {
			status, err := order.StatusFromString(tc.name)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject unknown wire names", func(t *testing.T) {
		for _, name := range []string{"", "open", "PENDING", "CANCELED"} {
			status, err := order.StatusFromString(name)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.StatusUnknown, status)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should cancel from Open", func(t *testing.T) {
		newStatus, err := order.Open.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should conflict from any other status", func(t *testing.T) {
		nonOpen := []order.Status{
			order.Shipping,
			order.Delivered,
			order.Cancelled,
			order.StatusUnknown,
		}

		for _, status := range nonOpen {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				newStatus, err := status.Cancel()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrStateConflict)
				assert.Equal(t, order.Status(0), newStatus)
			})
		}
	})
}

func TestStatus_ValidateAcceptsItems(t *testing.T) {
	t.Run("should accept items while not cancelled", func(t *testing.T) {
		for _, status := range []order.Status{order.Open, order.Shipping, order.Delivered} {
			require.NoError(t, status.ValidateAcceptsItems())
		}
	})

	t.Run("should conflict when cancelled", func(t *testing.T) {
		err := order.Cancelled.ValidateAcceptsItems()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}
