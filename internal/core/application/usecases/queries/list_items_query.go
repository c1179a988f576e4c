package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrListItemsQueryIsNotConstructed = errors.New(
	"ListItemsQuery must be created via NewListItemsQuery constructor",
)

// ListItemsQuery retrieves all items owned by an order.
type ListItemsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListItemsQuery creates a query to list an order's items.
func NewListItemsQuery(orderID kernel.UUID) (ListItemsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListItemsQuery{}, err
	}

	return ListItemsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListItemsQuery) Validate() error {
	return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (q ListItemsQuery) OrderID() kernel.UUID {
	return q.orderID
}
