package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery lists a customer's orders, newest first.
// Customers list their own orders, admins anyone's.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	actor      user.Actor

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query to list a customer's orders.
func NewGetCustomerOrdersQuery(customerID kernel.UUID, actor user.Actor) (GetCustomerOrdersQuery, error) {
	if err := errors.Join(customerID.Validate(), actor.ID.Validate(), actor.Role.Validate()); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	return GetCustomerOrdersQuery{
		customerID: customerID,
		actor:      actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// Actor returns the authenticated identity making the request.
func (q GetCustomerOrdersQuery) Actor() user.Actor {
	return q.actor
}
