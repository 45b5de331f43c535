// Package user contains the user entity and the role enumeration that the
// assignment and mutation rules are gated on. Authentication itself (OTP
// issuance, token exchange) lives outside this core; the domain only consumes
// the resulting identity.
package user

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser factory method.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is a registered account: a customer, a delivery person, or an
// administrator. The order engine reads users to validate assignment targets
// and to resolve the acting identity of a request.
type User struct {
	id    kernel.UUID
	name  string
	phone string
	role  Role

	isConstructed bool
}

// NewUser creates a validated User.
// The name must be non-empty and the role must be one of the valid roles.
func NewUser(id kernel.UUID, name, phone string, role Role) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	u.phone = phone
	return u, nil
}

// RestoreUser reconstructs a User from persistence without re-running
// creation-time checks beyond structural validation.
func RestoreUser(id kernel.UUID, name, phone string, role Role) (*User, error) {
	return NewUser(id, name, phone, role)
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Name returns the user's display name.
func (u *User) Name() string {
	return u.name
}

// Phone returns the user's phone number. May be empty.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

// Actor is the authenticated identity performing an operation, as resolved by
// the API boundary. It carries just enough for the permission rules: who is
// acting and with what role.
type Actor struct {
	ID   kernel.UUID
	Role Role
}

// NewActor builds a validated Actor.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{ID: id, Role: role}, nil
}
