package commands

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderItem describes a line item registered together with its order.
// The item identifier is minted by the caller; the owning order id is
// assigned by the aggregate, never taken from client input.
type CreateOrderItem struct {
	ItemID    kernel.UUID
	ProductID int
	Quantity  int
	Total     float64
}

// CreateOrderCommand represents a request to register a new order.
// Encapsulates the order header fields and any line items supplied with the
// creation payload; further items are managed through dedicated item commands.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, date, 19.99, order.CreditCard, "1 Main St", 42, order.Open, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	date       time.Time
	total      float64
	payment    order.Payment
	address    string
	customerID int
	status     order.Status
	items      []CreateOrderItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the identifier, every header field and every supplied item.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	date time.Time,
	total float64,
	payment order.Payment,
	address string,
	customerID int,
	status order.Status,
	items []CreateOrderItem,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDate(date),
		orderCommand.setTotal(total),
		orderCommand.setPayment(payment),
		orderCommand.setAddress(address),
		orderCommand.setStatus(status),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.customerID = customerID
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Date returns the order date.
func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

// Total returns the order total.
func (c CreateOrderCommand) Total() float64 {
	return c.total
}

// Payment returns the payment method.
func (c CreateOrderCommand) Payment() order.Payment {
	return c.payment
}

// Address returns the shipping address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// CustomerID returns the owning customer identifier.
func (c CreateOrderCommand) CustomerID() int {
	return c.customerID
}

// Status returns the initial order status.
func (c CreateOrderCommand) Status() order.Status {
	return c.status
}

// Items returns the line items supplied with the creation payload.
func (c CreateOrderCommand) Items() []CreateOrderItem {
	items := make([]CreateOrderItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}

func (c *CreateOrderCommand) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidError("total")
	}

	c.total = total
	return nil
}

func (c *CreateOrderCommand) setPayment(payment order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

// setItems applies the same per-item rules as NewAddItemCommand, so a bad
// item inside the creation payload fails the whole command.
func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	var violations []error
	for _, item := range items {
		violations = append(violations, item.validate())
	}
	if err := errors.Join(violations...); err != nil {
		return err
	}

	c.items = items
	return nil
}

func (i CreateOrderItem) validate() error {
	var violations []error
	if err := i.ItemID.Validate(); err != nil {
		violations = append(violations, err)
	}
	if i.Quantity < 1 {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", i.Quantity),
		))
	}
	if i.Total < 0 {
		violations = append(violations, errs.NewValueIsInvalidError("total"))
	}
	return errors.Join(violations...)
}
