package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery lists the orders assigned to a delivery person,
// newest first. Delivery personnel list their own workload, admins anyone's.
type GetAssignedOrdersQuery struct {
	deliveryPersonID kernel.UUID
	actor            user.Actor

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates a query to list assigned orders.
func NewGetAssignedOrdersQuery(deliveryPersonID kernel.UUID, actor user.Actor) (GetAssignedOrdersQuery, error) {
	if err := errors.Join(deliveryPersonID.Validate(), actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return GetAssignedOrdersQuery{}, err
	}
	return GetAssignedOrdersQuery{
		deliveryPersonID: deliveryPersonID,
		actor:            actor,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// DeliveryPersonID returns the delivery person whose workload is listed.
func (q GetAssignedOrdersQuery) DeliveryPersonID() kernel.UUID {
	return q.deliveryPersonID
}

// Actor returns the authenticated identity making the request.
func (q GetAssignedOrdersQuery) Actor() user.Actor {
	return q.actor
}
