// Package errs provides standardized error types for the laundry order
// backend. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The package covers the error kinds the core operations report:
//   - ObjectNotFoundError: an order, user, or catalog object is absent
//   - ForbiddenError: the caller lacks the role or ownership relation required
//   - InvalidTransitionError: a status change the lifecycle table rejects
//   - PricingUnavailableError: an item/service/category with no active price
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError:
//     structurally malformed input
//   - VersionIsInvalidError: a lost optimistic-concurrency race
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// All of these are surfaced to the caller unmodified: no silent retries, no
// default substitution, and none of them are fatal process-level errors. The
// HTTP adapter maps each kind onto a protocol status code.
package errs
