package commands

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateItemCommandIsNotConstructed = errors.New(
	"UpdateItemCommand must be created via NewUpdateItemCommand constructor",
)

// UpdateItemCommand represents a request to replace the mutable fields of
// an item owned by an order.
type UpdateItemCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	itemID    kernel.UUID
	productID int
	quantity  int
	total     float64

	guard guard.ConstructorGuard
}

// NewUpdateItemCommand creates a command to update an order's item.
func NewUpdateItemCommand(
	orderID kernel.UUID,
	itemID kernel.UUID,
	productID int,
	quantity int,
	total float64,
) (UpdateItemCommand, error) {
	itemCommand := UpdateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setOrderID(orderID),
		itemCommand.setItemID(itemID),
		itemCommand.setQuantity(quantity),
		itemCommand.setTotal(total),
	); err != nil {
		return UpdateItemCommand{}, err
	}

	itemCommand.productID = productID
	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (c UpdateItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to update.
func (c UpdateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ProductID returns the new product identifier.
func (c UpdateItemCommand) ProductID() int {
	return c.productID
}

// Quantity returns the new quantity.
func (c UpdateItemCommand) Quantity() int {
	return c.quantity
}

// Total returns the new line total.
func (c UpdateItemCommand) Total() float64 {
	return c.total
}

func (c *UpdateItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *UpdateItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	c.quantity = quantity
	return nil
}

func (c *UpdateItemCommand) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidError("total")
	}

	c.total = total
	return nil
}
