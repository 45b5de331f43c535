package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by ID on behalf of an actor.
// Visibility is scoped to the order's own customer and delivery person
// fields: the owning customer, the assigned delivery person, or an admin.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   user.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to read one order.
func NewGetOrderQuery(orderID kernel.UUID, actor user.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the authenticated identity making the request.
func (q GetOrderQuery) Actor() user.Actor {
	return q.actor
}
