// Package queries contains read-only operations against the database.
// Implements the query side of the CQRS architecture: handlers go straight
// to SQL and return plain response structs, bypassing the domain aggregate.
package queries

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderResponse represents a fully loaded order read model.
// Items is never nil; an order without items carries an empty slice.
type OrderResponse struct {
	ID         kernel.UUID
	Date       time.Time
	Total      float64
	Payment    order.Payment
	Address    string
	CustomerID int
	Status     order.Status
	Items      []ItemResponse
}

// ItemResponse represents a single order item read model.
type ItemResponse struct {
	ID        kernel.UUID
	ProductID int
	Quantity  int
	Total     float64
	OrderID   kernel.UUID
}
