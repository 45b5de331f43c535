package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrAssignDeliveryPersonCommandIsNotConstructed = errors.New(
	"AssignDeliveryPersonCommand must be created via NewAssignDeliveryPersonCommand constructor",
)

// AssignDeliveryPersonCommand represents an administrator's request to put a
// delivery person on an order. Re-assignment of an already assigned order is
// allowed and simply overwrites the previous assignee.
type AssignDeliveryPersonCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	deliveryPersonID kernel.UUID
	actor            user.Actor

	guard guard.ConstructorGuard
}

// NewAssignDeliveryPersonCommand creates a command to assign a delivery
// person to an order. Whether the target user exists and holds the delivery
// role is checked by the handler against the users collection.
func NewAssignDeliveryPersonCommand(
	orderID kernel.UUID,
	deliveryPersonID kernel.UUID,
	actor user.Actor,
) (AssignDeliveryPersonCommand, error) {
	cmd := AssignDeliveryPersonCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryPersonID(deliveryPersonID),
		cmd.setActor(actor),
	); err != nil {
		return AssignDeliveryPersonCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryPersonCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryPersonCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignDeliveryPersonCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeliveryPersonID returns the identifier of the user being put on the order.
func (c AssignDeliveryPersonCommand) DeliveryPersonID() kernel.UUID {
	return c.deliveryPersonID
}

// Actor returns the authenticated identity requesting the assignment.
func (c AssignDeliveryPersonCommand) Actor() user.Actor {
	return c.actor
}

func (c *AssignDeliveryPersonCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDeliveryPersonCommand) setDeliveryPersonID(deliveryPersonID kernel.UUID) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	c.deliveryPersonID = deliveryPersonID
	return nil
}

func (c *AssignDeliveryPersonCommand) setActor(actor user.Actor) error {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
