// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items ride along as an owned collection; the foreign key constraint cascades
// deletes so no item row can outlive its order.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Date       time.Time
	Total      float64
	Payment    int
	Address    string `gorm:"type:varchar(100)"`
	CustomerID int    `gorm:"index"`
	Status     int    `gorm:"index"`
	Items      []ItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order items.
type ItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID int
	Quantity  int
	Total     float64
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for item entities.
func (ItemDTO) TableName() string {
	return "items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, itemFromDomain(item))
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		Date:       aggregate.Date(),
		Total:      aggregate.Total(),
		Payment:    int(aggregate.Payment()),
		Address:    aggregate.Address(),
		CustomerID: aggregate.CustomerID(),
		Status:     int(aggregate.Status()),
		Items:      itemDTOs,
	}
}

func itemFromDomain(item *order.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID().Bytes(),
		ProductID: item.ProductID(),
		Quantity:  item.Quantity(),
		Total:     item.Total(),
		OrderID:   item.OrderID().Bytes(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Date,
		dto.Total,
		order.Payment(dto.Payment),
		dto.Address,
		dto.CustomerID,
		order.Status(dto.Status),
		items,
	)
}

func itemToDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, dto.ProductID, dto.Quantity, dto.Total, orderID)
}
