package order_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayment_Validate(t *testing.T) {
	t.Run("should validate valid payment methods", func(t *testing.T) {
		for _, payment := range []order.Payment{order.CreditCard, order.DebitCard, order.Vemo} {
			require.NoError(t, payment.Validate())
		}
	})

	t.Run("should reject invalid payment values", func(t *testing.T) {
		for _, payment := range []order.Payment{order.PaymentUnknown, order.Payment(-1), order.Payment(4)} {
			err := payment.Validate()

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestPayment_String(t *testing.T) {
	testCases := []struct {
		payment  order.Payment
		expected string
	}{
		{order.CreditCard, "CREDITCARD"},
		{order.DebitCard, "DEBITCARD"},
		{order.Vemo, "VEMO"},
		{order.PaymentUnknown, "UNKNOWN"},
		{order.Payment(42), "UNKNOWN"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.payment.String())
	}
}

func TestPaymentFromString(t *testing.T) {
	t.Run("should parse valid wire names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected order.Payment
		}{
			{"CREDITCARD", order.CreditCard},
			{"DEBITCARD", order.DebitCard},
			{"VEMO", order.Vemo},
		}

		for _, tc := range testCases {
			payment, err := order.PaymentFromString(tc.name)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, payment)
		}
	})

	t.Run("should reject unknown wire names", func(t *testing.T) {
		for _, name := range []string{"", "creditcard", "PAYPAL", "CASH"} {
			payment, err := order.PaymentFromString(name)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.PaymentUnknown, payment)
		}
	})
}
