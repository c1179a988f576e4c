package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrAddItemCommandIsNotConstructed = errors.New(
	"AddItemCommand must be created via NewAddItemCommand constructor",
)

// AddItemCommand represents a request to add a line item to an order.
// The item identifier is minted by the caller; the owning order id is
// assigned by the aggregate, never taken from client input.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	productID int
	quantity  int
	total     float64

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to an order.
// Quantity must be at least 1 and total non-negative.
func NewAddItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	productID int,
	quantity int,
	total float64,
) (AddItemCommand, error) {
	itemCommand := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setItemID(itemID),
		itemCommand.setQuantity(quantity),
		itemCommand.setTotal(total),
	); err != nil {
		return AddItemCommand{}, err
	}

	itemCommand.productID = productID
	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier minted for the new item.
func (c AddItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ProductID returns the product the item refers to.
func (c AddItemCommand) ProductID() int {
	return c.productID
}

// Quantity returns the ordered quantity.
func (c AddItemCommand) Quantity() int {
	return c.quantity
}

// Total returns the line total.
func (c AddItemCommand) Total() float64 {
	return c.total
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *AddItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}

func (c *AddItemCommand) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidError("total")
	}

	c.total = total
	return nil
}
