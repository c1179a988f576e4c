package commands

import (
	"context"
	"errors"

	"orders/internal/pkg/errs"
)

// DeleteItemCommandHandler handles the business logic for item removal.
type DeleteItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteItemCommandHandler creates a handler for item removal operations.
func NewDeleteItemCommandHandler(uowFactory OrderUoWFactory) DeleteItemCommandHandler {
	return DeleteItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the item removal command.
// Succeeds when the order or the item is already gone.
func (h *DeleteItemCommandHandler) Handle(ctx context.Context, cmd DeleteItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}
		return err
	}

	aggregate.RemoveItem(cmd.ItemID())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
