package queries

import (
	"context"

	"orders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListItemsQueryHandler retrieves an order's item list from the database.
type ListItemsQueryHandler struct {
	db *gorm.DB
}

// NewListItemsQueryHandler creates a handler for item list reads.
func NewListItemsQueryHandler(db *gorm.DB) ListItemsQueryHandler {
	return ListItemsQueryHandler{db: db}
}

// Handle executes the query and returns the order's items sorted by ID.
// Returns an ObjectNotFoundError when the order does not exist and an empty
// slice when the order exists but has no items.
func (h ListItemsQueryHandler) Handle(ctx context.Context, query ListItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	exists, err := orderExists(db, query.OrderID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("order_id", query.OrderID().String())
	}

	grouped, err := loadItems(db, []uuid.UUID{query.OrderID().Bytes()})
	if err != nil {
		return nil, err
	}

	items := grouped[query.OrderID().Bytes()]
	if items == nil {
		items = make([]ItemResponse, 0)
	}

	return items, nil
}
