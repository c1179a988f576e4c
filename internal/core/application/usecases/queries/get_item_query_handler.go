package queries

import (
	"context"

	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetItemQueryHandler loads a single order item from the database.
type GetItemQueryHandler struct {
	db *gorm.DB
}

// NewGetItemQueryHandler creates a handler for single-item reads.
func NewGetItemQueryHandler(db *gorm.DB) GetItemQueryHandler {
	return GetItemQueryHandler{db: db}
}

// Handle executes the query and returns the item read model.
// Returns an ObjectNotFoundError when the order is absent or when the item
// is absent or owned by a different order.
func (h GetItemQueryHandler) Handle(ctx context.Context, query GetItemQuery) (ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return ItemResponse{}, err
	}

	db := h.db.WithContext(ctx)

	exists, err := orderExists(db, query.OrderID())
	if err != nil {
		return ItemResponse{}, err
	}
	if !exists {
		return ItemResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID().String())
	}

	rows, err := db.Raw(`
		SELECT
			id,
			product_id,
			quantity,
			total,
			order_id
		FROM items
		WHERE id = ? AND order_id = ?
	`, query.ItemID().Bytes(), query.OrderID().Bytes()).Rows()
	if err != nil {
		return ItemResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ItemResponse{}, err
		}
		return ItemResponse{}, errs.NewObjectNotFoundError("item_id", query.ItemID().String())
	}

	return scanItemRow(rows)
}
