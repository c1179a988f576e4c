package order

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// maxAddressLen bounds the free-text shipping address, mirroring the column size.
const maxAddressLen = 100

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a customer purchase. It is the aggregate root that owns the
// order's line items and enforces the status lifecycle.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and placement date
//   - Total must be non-negative
//   - Payment and status are members of their closed enumerations
//   - Address is non-empty and bounded in length
//   - Every owned item carries this order's id as its order id
//   - Cancellation is allowed only from Open status
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// date is the calendar date the order was placed
	date time.Time

	// total is the monetary amount of the order (non-negative)
	total float64

	// payment is the payment method used
	payment Payment

	// address is the free-text shipping address
	address string

	// customerID references the external customer system
	customerID int

	// status is the current state in the order lifecycle
	status Status

	// items are the line entries owned by this order
	items []*Item

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid Order, ensuring all business invariants hold from the start.
//
// The status argument lets callers place an order directly in any valid state;
// pass Open for the default lifecycle start. Items are attached afterwards via
// AddItem.
//
// Returns a validation error if any argument is invalid. On failure no partial
// state is observable: the caller receives nil.
func NewOrder(
	id kernel.UUID,
	date time.Time,
	total float64,
	payment Payment,
	address string,
	customerID int,
	status Status,
) (*Order, error) {
	order := &Order{
		customerID:    customerID,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setDate(date),
		order.setTotal(total),
		order.setPayment(payment),
		order.setAddress(address),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistence together with
// its owned items. Items must already carry this order's id; an item owned by
// a different order is a broken invariant and fails restoration.
func RestoreOrder(
	id kernel.UUID,
	date time.Time,
	total float64,
	payment Payment,
	address string,
	customerID int,
	status Status,
	items []*Item,
) (*Order, error) {
	order, err := NewOrder(id, date, total, payment, address, customerID, status)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if !item.OrderID().IsEqual(id) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("item %s belongs to order %s", item.ID(), item.OrderID()),
			)
		}
	}
	order.items = items

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Date returns the calendar date the order was placed.
func (o *Order) Date() time.Time {
	return o.date
}

// Total returns the order's monetary amount.
func (o *Order) Total() float64 {
	return o.total
}

// Payment returns the order's payment method.
func (o *Order) Payment() Payment {
	return o.payment
}

// Address returns the shipping address.
func (o *Order) Address() string {
	return o.address
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() int {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items. The slice is a copy; the items
// themselves are the aggregate's entities and must be mutated through the
// aggregate's methods.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Item returns the owned item with the given id, or nil if this order does
// not own such an item.
func (o *Order) Item(itemID kernel.UUID) *Item {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item
		}
	}
	return nil
}

// Update replaces the order's mutable fields. Status is replaced as given and
// must be valid; defaulting an absent status is the deserializer's concern,
// never this method's. Items are not touched; they change through
// AddItem/UpdateItem/RemoveItem only.
//
// On any validation failure the order is left unchanged.
func (o *Order) Update(
	date time.Time,
	total float64,
	payment Payment,
	address string,
	customerID int,
	status Status,
) error {
	updated := *o
	updated.customerID = customerID
	if err := errors.Join(
		updated.setDate(date),
		updated.setTotal(total),
		updated.setPayment(payment),
		updated.setAddress(address),
		updated.setStatus(status),
	); err != nil {
		return err
	}

	*o = updated
	return nil
}

// Cancel transitions the order to Cancelled.
//
// This is the one modeled state transition: it is legal only while the order
// is Open. Cancelling from any other status returns a state conflict and
// leaves the order unchanged. The caller is responsible for persisting the
// change in the same transaction as the read that observed Open.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AddItem attaches an item to the order, establishing ownership.
//
// Business rules:
//   - The order must not be Cancelled (state conflict otherwise)
//   - The item must be properly constructed
//
// On success the item's order id is set to this order's id and the item is
// appended to the owned collection.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if err := o.status.ValidateAcceptsItems(); err != nil {
		return err
	}

	item.attach(o.id)
	o.items = append(o.items, item)
	return nil
}

// UpdateItem replaces the mutable fields of an owned item.
// Returns ObjectNotFoundError if this order owns no item with the given id.
func (o *Order) UpdateItem(itemID kernel.UUID, productID int, quantity int, total float64) error {
	item := o.Item(itemID)
	if item == nil {
		return errs.NewObjectNotFoundError("item", itemID.String())
	}

	return item.Update(productID, quantity, total)
}

// RemoveItem detaches an owned item from the order. Removing an item the
// order does not own is a no-op, keeping deletion idempotent.
func (o *Order) RemoveItem(itemID kernel.UUID) {
	for idx, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return
		}
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date
	return nil
}

func (o *Order) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%v is negative", total))
	}
	o.total = total
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if len(address) > maxAddressLen {
		return errs.NewValueIsOutOfRangeError("address length", len(address), 1, maxAddressLen)
	}
	o.address = address
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
