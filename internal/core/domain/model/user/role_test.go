package user_test

import (
	"fmt"
	"testing"

	"laundry/internal/core/domain/model/user"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(user.RoleUnknown))
		assert.Equal(t, 1, int(user.RoleCustomer))
		assert.Equal(t, 2, int(user.RoleDelivery))
		assert.Equal(t, 3, int(user.RoleAdmin))
	})
}

func TestRole_Validate(t *testing.T) {
	t.Run("should validate valid roles", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleCustomer, user.RoleDelivery, user.RoleAdmin} {
			t.Run(fmt.Sprintf("should validate %s role", role.String()), func(t *testing.T) {
				require.NoError(t, role.Validate())
			})
		}
	})

	t.Run("should reject invalid role values", func(t *testing.T) {
		for _, role := range []user.Role{user.RoleUnknown, user.Role(-1), user.Role(4)} {
			t.Run(fmt.Sprintf("should reject role value %d", int(role)), func(t *testing.T) {
				err := role.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "role is invalid")
			})
		}
	})
}

func TestRole_String(t *testing.T) {
	t.Run("should return canonical names", func(t *testing.T) {
		testCases := []struct {
			role     user.Role
			expected string
		}{
			{user.RoleCustomer, "CUSTOMER"},
			{user.RoleDelivery, "DELIVERY"},
			{user.RoleAdmin, "ADMIN"},
			{user.RoleUnknown, "UNKNOWN"},
			{user.Role(42), "UNKNOWN"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.role.String())
		}
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("should parse canonical names", func(t *testing.T) {
		for _, name := range []string{"CUSTOMER", "DELIVERY", "ADMIN"} {
			role, err := user.RoleFromString(name)

			require.NoError(t, err)
			assert.Equal(t, name, role.String())
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := user.RoleFromString("COURIER")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}
