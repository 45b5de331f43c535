package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to place a laundry
// order. It carries the unpriced lines; pricing is resolved by the handler
// against the active catalog.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	customerID          kernel.UUID
	lines               []services.PricingLine
	pickupAddress       string
	deliveryAddress     string
	notes               string
	scheduledPickupTime *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new laundry order.
// Line-level validation (catalog existence, price availability) is deferred
// to the handler; the command only checks shape: valid IDs, at least one
// line, and a pickup address. deliveryAddress, notes and scheduledPickupTime
// are optional; an empty delivery address falls back to the pickup address
// inside the aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	lines []services.PricingLine,
	pickupAddress string,
	deliveryAddress string,
	notes string,
	scheduledPickupTime *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress:     deliveryAddress,
		notes:               notes,
		scheduledPickupTime: scheduledPickupTime,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
		cmd.setPickupAddress(pickupAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the unpriced order lines.
func (c CreateOrderCommand) Lines() []services.PricingLine {
	return c.lines
}

// PickupAddress returns the address the laundry is collected from.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// DeliveryAddress returns the drop-off address, possibly empty.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Notes returns free-form customer notes, possibly empty.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// ScheduledPickupTime returns the requested pickup slot, nil if unscheduled.
func (c CreateOrderCommand) ScheduledPickupTime() *time.Time {
	return c.scheduledPickupTime
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []services.PricingLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	c.lines = lines
	return nil
}

func (c *CreateOrderCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}

	c.pickupAddress = pickupAddress
	return nil
}
