package commands

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace an order's header
// fields. The item collection is untouched; items change through item
// commands only.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	date       time.Time
	total      float64
	payment    order.Payment
	address    string
	customerID int
	status     order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to update an existing order.
// Status is required here, unlike creation where it may default to OPEN.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	date time.Time,
	total float64,
	payment order.Payment,
	address string,
	customerID int,
	status order.Status,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setDate(date),
		orderCommand.setTotal(total),
		orderCommand.setPayment(payment),
		orderCommand.setAddress(address),
		orderCommand.setStatus(status),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	orderCommand.customerID = customerID
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Date returns the new order date.
func (c UpdateOrderCommand) Date() time.Time {
	return c.date
}

// Total returns the new order total.
func (c UpdateOrderCommand) Total() float64 {
	return c.total
}

// Payment returns the new payment method.
func (c UpdateOrderCommand) Payment() order.Payment {
	return c.payment
}

// Address returns the new shipping address.
func (c UpdateOrderCommand) Address() string {
	return c.address
}

// CustomerID returns the new customer identifier.
func (c UpdateOrderCommand) CustomerID() int {
	return c.customerID
}

// Status returns the new order status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}

	c.date = date
	return nil
}

func (c *UpdateOrderCommand) setTotal(total float64) error {
	if total < 0 {
		return errs.NewValueIsInvalidError("total")
	}

	c.total = total
	return nil
}

func (c *UpdateOrderCommand) setPayment(payment order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	c.payment = payment
	return nil
}

func (c *UpdateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
