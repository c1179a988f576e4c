package queries

import (
	"database/sql"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderColumns = "id, date, total, payment, address, customer_id, status"

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		id         uuid.UUID
		date       time.Time
		total      float64
		payment    int
		address    string
		customerID int
		status     int
	)

	if err := rows.Scan(&id, &date, &total, &payment, &address, &customerID, &status); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		ID:         orderID,
		Date:       date,
		Total:      total,
		Payment:    order.Payment(payment),
		Address:    address,
		CustomerID: customerID,
		Status:     order.Status(status),
		Items:      make([]ItemResponse, 0),
	}, nil
}

func scanItemRow(rows *sql.Rows) (ItemResponse, error) {
	var (
		id        uuid.UUID
		productID int
		quantity  int
		total     float64
		orderID   uuid.UUID
	)

	if err := rows.Scan(&id, &productID, &quantity, &total, &orderID); err != nil {
		return ItemResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ItemResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return ItemResponse{}, err
	}

	return ItemResponse{
		ID:        itemID,
		ProductID: productID,
		Quantity:  quantity,
		Total:     total,
		OrderID:   ownerID,
	}, nil
}

// loadItems fetches the items for the given orders, grouped by owning order.
func loadItems(db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]ItemResponse, error) {
	grouped := make(map[uuid.UUID][]ItemResponse, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	rows, err := db.Raw(`
		SELECT
			id,
			product_id,
			quantity,
			total,
			order_id
		FROM items
		WHERE order_id IN ?
		ORDER BY id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item, scanErr := scanItemRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		grouped[item.OrderID.Bytes()] = append(grouped[item.OrderID.Bytes()], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return grouped, nil
}

// orderExists reports whether an order row with the given id is present.
func orderExists(db *gorm.DB, orderID kernel.UUID) (bool, error) {
	var count int64
	if err := db.Raw(`SELECT COUNT(*) FROM orders WHERE id = ?`, orderID.Bytes()).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
