package queries

import (
	"errors"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrGetUnassignedOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedOrdersQuery must be created via NewGetUnassignedOrdersQuery constructor",
)

// GetUnassignedOrdersQuery lists REQUESTED orders with no delivery person,
// oldest first, so dispatchers work them in arrival order. Available to
// delivery personnel and admins.
type GetUnassignedOrdersQuery struct {
	actor user.Actor

	guard guard.ConstructorGuard
}

// NewGetUnassignedOrdersQuery creates a query to list the unassigned pool.
func NewGetUnassignedOrdersQuery(actor user.Actor) (GetUnassignedOrdersQuery, error) {
	if err := errors.Join(actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return GetUnassignedOrdersQuery{}, err
	}
	return GetUnassignedOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated identity making the request.
func (q GetUnassignedOrdersQuery) Actor() user.Actor {
	return q.actor
}
