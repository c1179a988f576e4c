package queries

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrGetItemQueryIsNotConstructed = errors.New(
	"GetItemQuery must be created via NewGetItemQuery constructor",
)

// GetItemQuery retrieves a single item owned by an order.
type GetItemQuery struct {
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetItemQuery creates a query to retrieve an order's item.
func NewGetItemQuery(orderID kernel.UUID, itemID kernel.UUID) (GetItemQuery, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return GetItemQuery{}, err
	}

	return GetItemQuery{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

// OrderID returns the identifier of the owning order.
func (q GetItemQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ItemID returns the identifier of the item to load.
func (q GetItemQuery) ItemID() kernel.UUID {
	return q.itemID
}
