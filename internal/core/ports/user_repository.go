package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
)

// UserRepository defines the contract the order engine has on the users
// collection. Regular account management is owned by the identity module;
// Add exists for startup seeding and tests.
type UserRepository interface {
	// Get retrieves a user by ID. Returns *errs.ObjectNotFoundError when the
	// user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// Add persists a new user.
	Add(ctx context.Context, u *user.User) error
}
