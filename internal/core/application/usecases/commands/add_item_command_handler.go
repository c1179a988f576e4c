package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// AddItemCommandHandler handles the business logic for item addition.
// Loads the order, lets the aggregate attach the item, and persists the
// result in one transaction.
type AddItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddItemCommandHandler creates a handler for item addition operations.
func NewAddItemCommandHandler(uowFactory OrderUoWFactory) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item addition command and returns the attached item.
// Returns an ObjectNotFoundError when the order does not exist and a
// StateConflictError when the order is cancelled.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (*order.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	item, err := order.NewItem(cmd.ItemID(), cmd.ProductID(), cmd.Quantity(), cmd.Total())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.AddItem(item); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
