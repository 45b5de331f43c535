// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the laundry ordering system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - PricingCalculator: resolves catalog prices and builds priced order lines
//   - AccessPolicy: role based authorization rules for orders and statistics
package services
