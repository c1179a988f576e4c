package queries

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves orders, optionally narrowed by customer and
// status. Filters that are both set intersect.
//
// Example:
//
//	customerID := 42
//	query := NewListOrdersQuery(&customerID, order.Open)
//	handler := NewListOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	customerID *int
	status     order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders.
// Pass nil for customerID and order.StatusUnknown for status to skip a
// filter. A non-nil customerID always filters, zero included.
func NewListOrdersQuery(customerID *int, status order.Status) ListOrdersQuery {
	return ListOrdersQuery{
		customerID: customerID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, nil when unset.
func (q ListOrdersQuery) CustomerID() *int {
	return q.customerID
}

// Status returns the status filter, order.StatusUnknown when unset.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}
