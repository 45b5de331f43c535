package services

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/user"
)

// AccessPolicy holds the role based authorization rules for orders and
// statistics. Handlers consult it and translate a refusal into a forbidden
// error; the policy itself only answers yes or no.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanViewOrder reports whether the actor may read the order. Customers see
// their own orders, delivery personnel the orders assigned to them, admins
// everything.
func (p AccessPolicy) CanViewOrder(actor user.Actor, o *order.Order) bool {
	return p.CanViewOrderOwnedBy(actor, o.CustomerID(), o.DeliveryPerson())
}

// CanViewOrderOwnedBy is CanViewOrder for callers that hold the order's
// ownership fields without the aggregate, such as read-side row scans.
func (AccessPolicy) CanViewOrderOwnedBy(actor user.Actor, customerID kernel.UUID, deliveryPersonID *kernel.UUID) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleCustomer:
		return customerID.IsEqual(actor.ID)
	case user.RoleDelivery:
		return deliveryPersonID != nil && deliveryPersonID.IsEqual(actor.ID)
	default:
		return false
	}
}

// CanListCustomerOrders reports whether the actor may list the given
// customer's orders. Customers list their own, admins anyone's.
func (AccessPolicy) CanListCustomerOrders(actor user.Actor, customerID kernel.UUID) bool {
	if actor.Role == user.RoleAdmin {
		return true
	}
	return actor.Role == user.RoleCustomer && actor.ID.IsEqual(customerID)
}

// CanListAssignedOrders reports whether the actor may list the orders
// assigned to the given delivery person.
func (AccessPolicy) CanListAssignedOrders(actor user.Actor, deliveryPersonID kernel.UUID) bool {
	if actor.Role == user.RoleAdmin {
		return true
	}
	return actor.Role == user.RoleDelivery && actor.ID.IsEqual(deliveryPersonID)
}

// CanUpdateStatus reports whether the actor may move the order through its
// lifecycle. Only the assigned delivery person or an admin may do so;
// customers never update status directly.
func (AccessPolicy) CanUpdateStatus(actor user.Actor, o *order.Order) bool {
	switch actor.Role {
	case user.RoleAdmin:
		return true
	case user.RoleDelivery:
		return isAssignedTo(o, actor.ID)
	default:
		return false
	}
}

// CanAssignDeliveryPerson reports whether the actor may assign delivery
// personnel to orders. Assignment is an admin operation.
func (AccessPolicy) CanAssignDeliveryPerson(actor user.Actor) bool {
	return actor.Role == user.RoleAdmin
}

// CanListUnassigned reports whether the actor may browse the unassigned
// order pool.
func (AccessPolicy) CanListUnassigned(actor user.Actor) bool {
	return actor.Role == user.RoleAdmin || actor.Role == user.RoleDelivery
}

// CanViewFleetStats reports whether the actor may read fleet wide statistics.
func (AccessPolicy) CanViewFleetStats(actor user.Actor) bool {
	return actor.Role == user.RoleAdmin
}

// CanViewDeliveryStats reports whether the actor may read the per person
// delivery statistics. Delivery personnel see their own numbers, admins
// anyone's.
func (AccessPolicy) CanViewDeliveryStats(actor user.Actor, deliveryPersonID kernel.UUID) bool {
	if actor.Role == user.RoleAdmin {
		return true
	}
	return actor.Role == user.RoleDelivery && actor.ID.IsEqual(deliveryPersonID)
}

func isAssignedTo(o *order.Order, actorID kernel.UUID) bool {
	assigned := o.DeliveryPerson()
	return assigned != nil && assigned.IsEqual(actorID)
}
