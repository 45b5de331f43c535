package catalog

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Category enumerates the garment categories the catalog prices by.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	CategoryMen
	CategoryWomen
	CategoryKids
	CategoryHousehold
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:   "UNKNOWN",
		CategoryMen:       "MEN",
		CategoryWomen:     "WOMEN",
		CategoryKids:      "KIDS",
		CategoryHousehold: "HOUSEHOLD",
	}
}

func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryMen:       "MEN",
		CategoryWomen:     "WOMEN",
		CategoryKids:      "KIDS",
		CategoryHousehold: "HOUSEHOLD",
	}
}

// Validate checks if the Category value is valid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category is invalid",
			fmt.Errorf("%d is not a valid category", c),
		)
	}
	return nil
}

// String returns the canonical name of the category, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}

// CategoryFromString parses a canonical category name.
func CategoryFromString(s string) (Category, error) {
	for c, str := range getValidCategoryStrings() {
		if str == s {
			return c, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category is invalid",
		fmt.Errorf("%q is not a valid category", s),
	)
}
