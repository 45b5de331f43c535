package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrStatusChangeIsNotConstructed is returned when a StatusChange was not
// created through NewStatusChange.
var ErrStatusChangeIsNotConstructed = errors.New("StatusChange must be created via NewStatusChange constructor")

// StatusChange is one entry in an order's append-only status history: the
// status entered, when, by whom, and an optional note. Entries are never
// edited or removed.
type StatusChange struct {
	status    Status
	timestamp time.Time
	note      string
	updatedBy kernel.UUID

	isConstructed bool
}

// NewStatusChange creates a validated history entry. The note may be empty.
func NewStatusChange(status Status, timestamp time.Time, note string, updatedBy kernel.UUID) (StatusChange, error) {
	change := StatusChange{
		isConstructed: true,
	}

	if err := errors.Join(
		change.setStatus(status),
		change.setTimestamp(timestamp),
		change.setUpdatedBy(updatedBy),
	); err != nil {
		return StatusChange{}, err
	}

	change.note = note
	return change, nil
}

// Validate ensures the entry was created via NewStatusChange.
func (c StatusChange) Validate() error {
	if !c.isConstructed {
		return ErrStatusChangeIsNotConstructed
	}
	return nil
}

// Status returns the status the order entered.
func (c StatusChange) Status() Status {
	return c.status
}

// Timestamp returns when the status was entered.
func (c StatusChange) Timestamp() time.Time {
	return c.timestamp
}

// Note returns the note supplied with the change. May be empty.
func (c StatusChange) Note() string {
	return c.note
}

// UpdatedBy returns the identity of the user who made the change.
func (c StatusChange) UpdatedBy() kernel.UUID {
	return c.updatedBy
}

func (c *StatusChange) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *StatusChange) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	c.timestamp = timestamp
	return nil
}

func (c *StatusChange) setUpdatedBy(updatedBy kernel.UUID) error {
	if err := updatedBy.Validate(); err != nil {
		return err
	}
	c.updatedBy = updatedBy
	return nil
}
