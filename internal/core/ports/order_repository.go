package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderFilter narrows GetAll results. A nil CustomerID and a StatusUnknown
// status are ignored, so an empty filter returns every order. A non-nil
// CustomerID always filters, zero included.
type OrderFilter struct {
	CustomerID *int
	Status     order.Status
}

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their owned items.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, reconciling
	// its item collection with storage.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, items
	// included. Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders matching the filter.
	// Returns an empty slice when nothing matches.
	GetAll(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// Delete removes an order and its items by identifier.
	// Deleting an absent order is a no-op.
	Delete(ctx context.Context, id kernel.UUID) error
}
