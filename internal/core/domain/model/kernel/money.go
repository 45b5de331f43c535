package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Money is the amount type used for all catalog and order pricing, expressed
// in whole currency units. Amounts are never negative.
type Money int64

// Validate checks that the amount is not negative.
func (m Money) Validate() error {
	if m < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d is negative", int64(m)),
		)
	}
	return nil
}

// Mul multiplies the amount by a quantity.
func (m Money) Mul(quantity int) Money {
	return m * Money(quantity)
}
