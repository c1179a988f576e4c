package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Payment represents the payment method attached to an order. It is a closed
// enumeration rendered on the wire by its symbolic name.
type Payment int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown Payment = iota

	// CreditCard payment, wire name CREDITCARD.
	CreditCard

	// DebitCard payment, wire name DEBITCARD.
	DebitCard

	// Vemo payment, wire name VEMO.
	Vemo
)

func getPaymentStrings() map[Payment]string {
	return map[Payment]string{
		PaymentUnknown: "UNKNOWN",
		CreditCard:     "CREDITCARD",
		DebitCard:      "DEBITCARD",
		Vemo:           "VEMO",
	}
}

func getValidPaymentStrings() map[Payment]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[Payment]string{
		CreditCard: "CREDITCARD",
		DebitCard:  "DEBITCARD",
		Vemo:       "VEMO",
	}
}

// PaymentFromString parses the wire name of a payment method. Unknown names
// are a validation error.
func PaymentFromString(s string) (Payment, error) {
	for payment, name := range getValidPaymentStrings() {
		if name == s {
			return payment, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the Payment value is valid.
func (p Payment) Validate() error {
	if _, ok := getValidPaymentStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment", fmt.Errorf("%d is not a valid payment method", p))
	}
	return nil
}

// String returns the wire name of the payment method, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (p Payment) String() string {
	if str, ok := getPaymentStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
