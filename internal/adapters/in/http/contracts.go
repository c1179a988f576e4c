package http

import (
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/order"
)

// dateLayout is the wire format for order dates.
const dateLayout = "2006-01-02"

// CreateOrderRequest is the POST /orders payload. Fields are pointers so
// missing keys can be told apart from zero values. Status is optional and
// defaults to OPEN. Items, if present, are created together with the order;
// a client-supplied order_id inside them is ignored.
type CreateOrderRequest struct {
	Date       *string       `json:"date"`
	Total      *float64      `json:"total"`
	Payment    *string       `json:"payment"`
	Address    *string       `json:"address"`
	CustomerID *int          `json:"customer_id"`
	Status     *string       `json:"status"`
	Items      []ItemRequest `json:"items"`
}

// UpdateOrderRequest is the PUT /orders/:order_id payload.
// Unlike creation, status is required. An items key, if sent, is ignored.
type UpdateOrderRequest struct {
	Date       *string  `json:"date"`
	Total      *float64 `json:"total"`
	Payment    *string  `json:"payment"`
	Address    *string  `json:"address"`
	CustomerID *int     `json:"customer_id"`
	Status     *string  `json:"status"`
}

// ItemRequest is the payload for creating and updating items.
// A client-supplied order_id is ignored; ownership always comes from the URL.
type ItemRequest struct {
	ProductID *int     `json:"product_id"`
	Quantity  *int     `json:"quantity"`
	Total     *float64 `json:"total"`
}

// OrderResponse is the serialized order. Items is always present, an empty
// array for orders without items.
type OrderResponse struct {
	ID         string         `json:"id"`
	Date       string         `json:"date"`
	Total      float64        `json:"total"`
	Payment    string         `json:"payment"`
	Address    string         `json:"address"`
	CustomerID int            `json:"customer_id"`
	Status     string         `json:"status"`
	Items      []ItemResponse `json:"items"`
}

// ItemResponse is the serialized order item.
type ItemResponse struct {
	ID        string  `json:"id"`
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
	OrderID   string  `json:"order_id"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IndexResponse describes the service for GET /.
type IndexResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Paths   string `json:"paths"`
}

func orderResponseFromDomain(aggregate *order.Order) OrderResponse {
	items := aggregate.Items()
	itemResponses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		itemResponses = append(itemResponses, itemResponseFromDomain(item))
	}

	return OrderResponse{
		ID:         aggregate.ID().String(),
		Date:       aggregate.Date().Format(dateLayout),
		Total:      aggregate.Total(),
		Payment:    aggregate.Payment().String(),
		Address:    aggregate.Address(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		Items:      itemResponses,
	}
}

func itemResponseFromDomain(item *order.Item) ItemResponse {
	return ItemResponse{
		ID:        item.ID().String(),
		ProductID: item.ProductID(),
		Quantity:  item.Quantity(),
		Total:     item.Total(),
		OrderID:   item.OrderID().String(),
	}
}

func orderResponseFromQuery(resp queries.OrderResponse) OrderResponse {
	items := make([]ItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, itemResponseFromQuery(item))
	}

	return OrderResponse{
		ID:         resp.ID.String(),
		Date:       resp.Date.Format(dateLayout),
		Total:      resp.Total,
		Payment:    resp.Payment.String(),
		Address:    resp.Address,
		CustomerID: resp.CustomerID,
		Status:     resp.Status.String(),
		Items:      items,
	}
}

func itemResponseFromQuery(resp queries.ItemResponse) ItemResponse {
	return ItemResponse{
		ID:        resp.ID.String(),
		ProductID: resp.ProductID,
		Quantity:  resp.Quantity,
		Total:     resp.Total,
		OrderID:   resp.OrderID.String(),
	}
}
