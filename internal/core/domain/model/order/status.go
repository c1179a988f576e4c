package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Open ──> Cancelled
//
// Shipping and Delivered are set by fulfilment systems through generic update;
// the only transition modeled here is cancellation, which is legal from Open
// and from nowhere else. Status is a value object rendered on the wire by its
// symbolic name (OPEN, SHIPPING, DELIVERED, CANCELLED).
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Open is the initial status of a newly placed order. Only open orders
	// accept cancellation.
	Open

	// Shipping indicates the order has left the warehouse.
	Shipping

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled is a final state. Cancelled orders accept no further changes
	// to their item set and cannot be cancelled again.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Open:          "OPEN",
		Shipping:      "SHIPPING",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "OPEN",
		Shipping:  "SHIPPING",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// StatusFromString parses the wire name of a status. Unknown names are a
// validation error, never silently accepted.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are: Open, Shipping, Delivered, Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Open -> Cancelled
//
// Any other starting state is a state conflict, not a validation error: the
// request is well formed but the order can no longer be cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, *errs.StateConflictError) if the order is not Open
func (s Status) Cancel() (Status, error) {
	if s != Open {
		return 0, errs.NewStateConflictError(
			fmt.Sprintf("order in status %s cannot be cancelled", s.String()),
		)
	}

	return Cancelled, nil
}

// ValidateAcceptsItems checks whether the status allows changes to the item
// set. Cancelled orders reject item addition; every other valid status
// accepts them.
func (s Status) ValidateAcceptsItems() error {
	if s == Cancelled {
		return errs.NewStateConflictError("order is cancelled and does not accept items")
	}
	return nil
}
