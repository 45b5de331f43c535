// Package order contains the order aggregate and its lifecycle state machine.
//
// An order is created by a customer with a snapshot of catalog pricing, moves
// through a fixed status lifecycle driven by its assigned delivery person or
// an administrator, and records every status it has occupied in an
// append-only history. The transition table in status.go is the single source
// of truth for which status changes are legal; no other component may bypass
// it.
package order
