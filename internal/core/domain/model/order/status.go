package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct business workflow.
//
// State transitions:
//
//	REQUESTED ──> PICKED_UP ──> IN_LAUNDRY ──> OUT_FOR_DELIVERY ──> DELIVERED
//	    │             │
//	    └─────────────┴──> CANCELLED
//
// Cancellation is only possible before laundering begins: once an order is
// IN_LAUNDRY the commitment is irreversible and the only way forward is
// delivery. DELIVERED and CANCELLED are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusRequested is the initial status when an order is placed.
	StatusRequested

	// StatusPickedUp indicates the delivery person collected the garments.
	StatusPickedUp

	// StatusInLaundry indicates laundering has begun. Cancellation is no
	// longer possible from here on.
	StatusInLaundry

	// StatusOutForDelivery indicates the cleaned garments are on their way
	// back to the customer.
	StatusOutForDelivery

	// StatusDelivered is the terminal success status.
	StatusDelivered

	// StatusCancelled is the terminal cancellation status. Orders are never
	// hard-deleted; cancellation is the removal mechanism.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusRequested:      "REQUESTED",
		StatusPickedUp:       "PICKED_UP",
		StatusInLaundry:      "IN_LAUNDRY",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusRequested:      "REQUESTED",
		StatusPickedUp:       "PICKED_UP",
		StatusInLaundry:      "IN_LAUNDRY",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusCancelled:      "CANCELLED",
	}
}

// getAllowedTransitions returns the hard-coded transition table. It is the
// sole authority on whether a proposed status change is legal.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusRequested:      {StatusPickedUp, StatusCancelled},
		StatusPickedUp:       {StatusInLaundry, StatusCancelled},
		StatusInLaundry:      {StatusOutForDelivery},
		StatusOutForDelivery: {StatusDelivered},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are REQUESTED, PICKED_UP, IN_LAUNDRY, OUT_FOR_DELIVERY,
// DELIVERED, and CANCELLED.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a canonical status name, as carried in API requests
// and persisted read models.
func StatusFromString(str string) (Status, error) {
	for s, name := range getValidStatusStrings() {
		if name == str {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", str),
	)
}

// CanTransitionTo reports whether the transition table permits moving from s
// to target. It is a pure function consulting only the table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo performs the transition to target.
//
// Returns:
//   - (target, nil) when the table permits the move
//   - (StatusUnknown, *errs.InvalidTransitionError) naming both the source
//     and the target status otherwise
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(getAllowedTransitions()[s]) == 0 && s.Validate() == nil
}
