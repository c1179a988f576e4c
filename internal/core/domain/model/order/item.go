package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line entry belonging to exactly one Order. It references a product
// in an external catalog (existence not validated here) and carries the
// quantity and line total. Ownership is established by Order.AddItem: the
// order id is never accepted from outside the aggregate, which prevents an
// item being reparented through a client payload.
type Item struct {
	// id is the unique identifier for the item
	id kernel.UUID

	// productID references the external product catalog
	productID int

	// quantity is the number of units ordered (must be >= 1)
	quantity int

	// total is the monetary amount for this line; expected to equal
	// unit price x quantity but not recomputed here
	total float64

	// orderID is the owning order; set by Order.AddItem
	orderID kernel.UUID

	// isConstructed ensures the item was created via NewItem or RestoreItem
	isConstructed bool
}

// NewItem creates a new Item with validation. The item has no owner until it
// is attached to an Order via AddItem.
//
// Returns a validation error if the id is invalid or quantity is below 1.
func NewItem(id kernel.UUID, productID int, quantity int, total float64) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setTotal(total),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence, including its owner link.
// The same validation as NewItem applies, so rows that violate domain rules
// surface as errors instead of invalid aggregates.
func RestoreItem(id kernel.UUID, productID int, quantity int, total float64, orderID kernel.UUID) (*Item, error) {
	item, err := NewItem(id, productID, quantity, total)
	if err != nil {
		return nil, err
	}

	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	item.orderID = orderID

	return item, nil
}

// Validate ensures the Item instance was properly constructed.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductID returns the referenced product identifier.
func (i *Item) ProductID() int {
	return i.productID
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// Total returns the monetary amount for this line.
func (i *Item) Total() float64 {
	return i.total
}

// OrderID returns the identifier of the owning order.
// The zero UUID means the item has not been attached yet.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// Update replaces the item's mutable fields, applying the same validation
// as construction. Ownership is not touched.
func (i *Item) Update(productID int, quantity int, total float64) error {
	updated := *i
	if err := errors.Join(
		updated.setProductID(productID),
		updated.setQuantity(quantity),
		updated.setTotal(total),
	); err != nil {
		return err
	}

	*i = updated
	return nil
}

// attach links the item to its owning order. Called only by Order.AddItem so
// the order_id invariant holds for every item reachable from an aggregate.
func (i *Item) attach(orderID kernel.UUID) {
	i.orderID = orderID
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID int) error {
	i.productID = productID
	return nil
}

// setQuantity enforces the quantity >= 1 rule. Zero or negative quantities
// are a validation error naming the offending value.
func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%v is negative", total),
		)
	}
	i.total = total
	return nil
}
