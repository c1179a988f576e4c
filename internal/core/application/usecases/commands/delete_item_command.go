package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrDeleteItemCommandIsNotConstructed = errors.New(
	"DeleteItemCommand must be created via NewDeleteItemCommand constructor",
)

// DeleteItemCommand represents a request to remove an item from an order.
// Removal is idempotent; a missing order or item is not an error.
type DeleteItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteItemCommand creates a command to delete an order's item.
func NewDeleteItemCommand(orderID kernel.UUID, itemID kernel.UUID) (DeleteItemCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return DeleteItemCommand{}, err
	}

	return DeleteItemCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (c DeleteItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the item to delete.
func (c DeleteItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
