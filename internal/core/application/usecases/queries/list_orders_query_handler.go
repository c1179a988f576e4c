package queries

import (
	"context"
	"strings"

	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves filtered order lists from the database.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order list reads.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns matching orders with their items,
// sorted by order ID for consistent output. Returns an empty slice when
// nothing matches.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if query.CustomerID() != nil {
		conditions = append(conditions, "customer_id = ?")
		args = append(args, *query.CustomerID())
	}
	if query.Status() != order.StatusUnknown {
		conditions = append(conditions, "status = ?")
		args = append(args, int(query.Status()))
	}

	sql := "SELECT " + orderColumns + " FROM orders"
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY id"

	db := h.db.WithContext(ctx)

	rows, err := db.Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	orderIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
		orderIDs = append(orderIDs, resp.ID.Bytes())
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	items, err := loadItems(db, orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if owned, ok := items[orders[i].ID.Bytes()]; ok {
			orders[i].Items = owned
		}
	}

	return orders, nil
}
