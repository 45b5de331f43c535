package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// orderPlacedNote is the note on the first history entry of every order.
const orderPlacedNote = "Order placed"

// Pricing is the monetary summary computed once at order creation and never
// recomputed, even if catalog prices later change.
type Pricing struct {
	ItemsTotal     kernel.Money
	DeliveryCharge kernel.Money
	GrandTotal     kernel.Money
}

// NewPricing builds a Pricing with the grand total derived from its parts.
func NewPricing(itemsTotal, deliveryCharge kernel.Money) (Pricing, error) {
	p := Pricing{
		ItemsTotal:     itemsTotal,
		DeliveryCharge: deliveryCharge,
		GrandTotal:     itemsTotal + deliveryCharge,
	}
	if err := p.Validate(); err != nil {
		return Pricing{}, err
	}
	return p, nil
}

// Validate checks that all amounts are non-negative and the grand total is
// the sum of its parts.
func (p Pricing) Validate() error {
	if err := errors.Join(
		p.ItemsTotal.Validate(),
		p.DeliveryCharge.Validate(),
		p.GrandTotal.Validate(),
	); err != nil {
		return err
	}
	if p.GrandTotal != p.ItemsTotal+p.DeliveryCharge {
		return errs.NewValueIsInvalidErrorWithCause(
			"grandTotal",
			fmt.Errorf("%d does not equal itemsTotal %d + deliveryCharge %d",
				p.GrandTotal, p.ItemsTotal, p.DeliveryCharge),
		)
	}
	return nil
}

// Details carries the non-monetary order attributes supplied at creation.
// DeliveryAddress defaults to PickupAddress when empty; the scheduled pickup
// and estimated delivery times are optional.
type Details struct {
	PickupAddress         string
	DeliveryAddress       string
	Notes                 string
	ScheduledPickupTime   *time.Time
	EstimatedDeliveryTime *time.Time
}

// Order is the aggregate root of the laundry order lifecycle.
//
// Order maintains these invariants:
//   - items is non-empty; every subtotal equals unitPrice * quantity and
//     itemsTotal equals the sum of subtotals
//   - grandTotal equals itemsTotal + deliveryCharge, fixed at creation
//   - statusHistory has at least one entry and its last entry's status always
//     equals the order's status; every recorded status was reached from
//     REQUESTED via the transition table, in sequence
//   - the history is append-only; entries are never edited or removed
//
// Orders are never hard-deleted: CANCELLED is a terminal status, not removal.
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	deliveryPersonID *kernel.UUID

	items   []LineItem
	pricing Pricing

	status  Status
	history []StatusChange

	details Details

	createdAt time.Time
	updatedAt time.Time

	// version is the optimistic-concurrency counter the repository's
	// conditional update is keyed on.
	version int

	isConstructed bool
}

// NewOrder creates a new Order in REQUESTED status with the initial history
// entry recorded against the customer placing it. The pricing must already be
// resolved (see the pricing calculator); its items total must match the sum
// of line subtotals.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	items []LineItem,
	pricing Pricing,
	details Details,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        StatusRequested,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setPricing(pricing),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	if now.IsZero() {
		return nil, errs.NewValueIsRequiredError("now")
	}

	placed, err := NewStatusChange(StatusRequested, now, orderPlacedNote, customerID)
	if err != nil {
		return nil, err
	}

	o.history = []StatusChange{placed}
	o.createdAt = now
	o.updatedAt = now
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence. It revalidates the
// structural invariants but does not replay the lifecycle.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	deliveryPersonID *kernel.UUID,
	items []LineItem,
	pricing Pricing,
	status Status,
	history []StatusChange,
	details Details,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		o.setPricing(pricing),
		o.setDetails(details),
		o.setStatusWithHistory(status, history),
	); err != nil {
		return nil, err
	}

	if deliveryPersonID != nil {
		if err := deliveryPersonID.Validate(); err != nil {
			return nil, err
		}
		copied := *deliveryPersonID
		o.deliveryPersonID = &copied
	}

	if version < 1 {
		return nil, errs.NewValueIsOutOfRangeError("version", version, 1, int(^uint(0)>>1))
	}

	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryPerson returns the assigned delivery person's ID.
// Returns nil if no delivery person is assigned.
func (o *Order) DeliveryPerson() *kernel.UUID {
	return o.deliveryPersonID
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// Pricing returns the monetary summary fixed at creation.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only status history. The first entry
// is always the REQUESTED entry written at creation.
func (o *Order) History() []StatusChange {
	history := make([]StatusChange, len(o.history))
	copy(history, o.history)
	return history
}

// Details returns the non-monetary order attributes.
func (o *Order) Details() Details {
	return o.details
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modification timestamp. For a DELIVERED order
// this is the delivery completion time.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency counter.
func (o *Order) Version() int {
	return o.version
}

// ChangeStatus transitions the order to target and appends a history entry
// recording the acting user, the timestamp, and the supplied note (empty
// string if none given).
//
// The move is validated against the order's current status by the transition
// table; an illegal move returns *errs.InvalidTransitionError naming both
// statuses and leaves the order unchanged.
func (o *Order) ChangeStatus(target Status, actorID kernel.UUID, note string, now time.Time) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	change, err := NewStatusChange(newStatus, now, note, actorID)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.history = append(o.history, change)
	o.updatedAt = now
	return nil
}

// AssignDeliveryPerson sets the order's delivery person. It does not change
// the status and does not append a history entry. Re-assignment of an order
// that already has a delivery person, or that is already past REQUESTED, is
// not prevented by current rules.
func (o *Order) AssignDeliveryPerson(deliveryPersonID kernel.UUID, now time.Time) error {
	if err := deliveryPersonID.Validate(); err != nil {
		return err
	}

	o.deliveryPersonID = &deliveryPersonID
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}

	var sum kernel.Money
	for _, item := range o.items {
		sum += item.Subtotal()
	}
	if pricing.ItemsTotal != sum {
		return errs.NewValueIsInvalidErrorWithCause(
			"itemsTotal",
			fmt.Errorf("%d does not equal the sum of line subtotals %d", pricing.ItemsTotal, sum),
		)
	}

	o.pricing = pricing
	return nil
}

func (o *Order) setDetails(details Details) error {
	if details.PickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if details.DeliveryAddress == "" {
		details.DeliveryAddress = details.PickupAddress
	}
	o.details = details
	return nil
}

// setStatusWithHistory restores the status and history pair, enforcing that
// the history is non-empty, starts at REQUESTED, follows the transition table
// in sequence, and ends at the order's current status.
func (o *Order) setStatusWithHistory(status Status, history []StatusChange) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("statusHistory")
	}

	for i, change := range history {
		if err := change.Validate(); err != nil {
			return err
		}
		if i == 0 {
			if change.Status() != StatusRequested {
				return errs.NewValueIsInvalidErrorWithCause(
					"statusHistory",
					fmt.Errorf("first entry is %s, not %s", change.Status(), StatusRequested),
				)
			}
			continue
		}
		if !history[i-1].Status().CanTransitionTo(change.Status()) {
			return errs.NewInvalidTransitionError(history[i-1].Status().String(), change.Status().String())
		}
	}

	if last := history[len(history)-1].Status(); last != status {
		return errs.NewValueIsInvalidErrorWithCause(
			"statusHistory",
			fmt.Errorf("last entry is %s but order status is %s", last, status),
		)
	}

	o.status = status
	o.history = make([]StatusChange, len(history))
	copy(o.history, history)
	return nil
}
