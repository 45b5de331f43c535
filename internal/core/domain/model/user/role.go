package user

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Role represents the capability level of a user. Permission checks compare
// an actor's role plus their ownership relation to the order; there is no
// dynamic permission lookup beyond this enumeration.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders and may read their own.
	RoleCustomer

	// RoleDelivery is a courier. A delivery person may read and progress
	// only the orders currently assigned to them.
	RoleDelivery

	// RoleAdmin administers the fleet: assigns couriers, progresses any
	// order, and reads any order or statistic.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleCustomer: "CUSTOMER",
		RoleDelivery: "DELIVERY",
		RoleAdmin:    "ADMIN",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "CUSTOMER",
		RoleDelivery: "DELIVERY",
		RoleAdmin:    "ADMIN",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are CUSTOMER, DELIVERY, and ADMIN.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the canonical name of the role, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}

// RoleFromString parses a canonical role name, as carried in auth token
// claims and stored user records.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}
