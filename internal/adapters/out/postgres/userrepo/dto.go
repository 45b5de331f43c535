// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Account management is owned by the identity module; the
// order engine reads users to resolve roles and validate assignment targets.
package userrepo

import (
	"github.com/google/uuid"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Phone string
	Role  string `gorm:"type:varchar(16);index"`
}

// TableName overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:    u.ID().Bytes(),
		Name:  u.Name(),
		Phone: u.Phone(),
		Role:  u.Role().String(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.Name, dto.Phone, role)
}
