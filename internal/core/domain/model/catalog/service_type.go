// Package catalog contains the clothing-item catalog facts that pricing is
// derived from: items, service types, garment categories, and the active
// price entries keyed by (item, service, category). Catalog administration is
// an external collaborator; the order engine only reads these facts, and
// orders snapshot them at creation time so later catalog changes never drift
// historical orders.
package catalog

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// ServiceType enumerates the laundering services a line item can request.
type ServiceType int

const (
	// ServiceUnknown represents an invalid or undefined service type.
	ServiceUnknown ServiceType = iota

	// ServiceWashing is a standard machine wash.
	ServiceWashing

	// ServiceIroning is pressing only.
	ServiceIroning

	// ServiceDryCleaning is solvent-based cleaning.
	ServiceDryCleaning

	// ServiceStarching is starch finishing after washing.
	ServiceStarching
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceUnknown:     "UNKNOWN",
		ServiceWashing:     "WASHING",
		ServiceIroning:     "IRONING",
		ServiceDryCleaning: "DRY_CLEANING",
		ServiceStarching:   "STARCHING",
	}
}

func getValidServiceTypeStrings() map[ServiceType]string {
	//nolint:exhaustive // ServiceUnknown is intentionally excluded as it's invalid
	return map[ServiceType]string{
		ServiceWashing:     "WASHING",
		ServiceIroning:     "IRONING",
		ServiceDryCleaning: "DRY_CLEANING",
		ServiceStarching:   "STARCHING",
	}
}

// Validate checks if the ServiceType value is valid.
func (s ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceType is invalid",
			fmt.Errorf("%d is not a valid service type", s),
		)
	}
	return nil
}

// String returns the canonical name of the service type, or "UNKNOWN" for
// invalid values. Implements fmt.Stringer.
func (s ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ServiceTypeFromString parses a canonical service type name.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for st, str := range getValidServiceTypeStrings() {
		if str == s {
			return st, nil
		}
	}
	return ServiceUnknown, errs.NewValueIsInvalidErrorWithCause(
		"serviceType is invalid",
		fmt.Errorf("%q is not a valid service type", s),
	)
}
