package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
)

// UpdateItemCommandHandler handles the business logic for item updates.
type UpdateItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateItemCommandHandler creates a handler for item update operations.
func NewUpdateItemCommandHandler(uowFactory OrderUoWFactory) UpdateItemCommandHandler {
	return UpdateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item update command and returns the updated item.
// Returns an ObjectNotFoundError when either the order or the item does
// not exist.
func (h *UpdateItemCommandHandler) Handle(ctx context.Context, cmd UpdateItemCommand) (*order.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = aggregate.UpdateItem(cmd.ItemID(), cmd.ProductID(), cmd.Quantity(), cmd.Total()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate.Item(cmd.ItemID()), nil
}
