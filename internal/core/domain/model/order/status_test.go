package order_test

import (
	"fmt"
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.StatusRequested,
		order.StatusPickedUp,
		order.StatusInLaundry,
		order.StatusOutForDelivery,
		order.StatusDelivered,
		order.StatusCancelled,
	}
}

// allowedTransitions mirrors the lifecycle table; the exhaustive test below
// checks every source/target pair against it.
func allowedTransitions() map[order.Status][]order.Status {
	return map[order.Status][]order.Status{
		order.StatusRequested:      {order.StatusPickedUp, order.StatusCancelled},
		order.StatusPickedUp:       {order.StatusInLaundry, order.StatusCancelled},
		order.StatusInLaundry:      {order.StatusOutForDelivery},
		order.StatusOutForDelivery: {order.StatusDelivered},
		order.StatusDelivered:      {},
		order.StatusCancelled:      {},
	}
}

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.StatusUnknown))
		assert.Equal(t, 1, int(order.StatusRequested))
		assert.Equal(t, 2, int(order.StatusPickedUp))
		assert.Equal(t, 3, int(order.StatusInLaundry))
		assert.Equal(t, 4, int(order.StatusOutForDelivery))
		assert.Equal(t, 5, int(order.StatusDelivered))
		assert.Equal(t, 6, int(order.StatusCancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.StatusUnknown, order.Status(-1), order.Status(7), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return canonical names", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.StatusRequested, "REQUESTED"},
			{order.StatusPickedUp, "PICKED_UP"},
			{order.StatusInLaundry, "IN_LAUNDRY"},
			{order.StatusOutForDelivery, "OUT_FOR_DELIVERY"},
			{order.StatusDelivered, "DELIVERED"},
			{order.StatusCancelled, "CANCELLED"},
			{order.StatusUnknown, "UNKNOWN"},
			{order.Status(42), "UNKNOWN"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round trip every valid status", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.StatusFromString("WASHING")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should match the transition table for all pairs", func(t *testing.T) {
		table := allowedTransitions()

		for _, from := range allStatuses() {
			for _, to := range allStatuses() {
				expected := false
				for _, allowed := range table[from] {
					if allowed == to {
						expected = true
					}
				}

				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					assert.Equal(t, expected, from.CanTransitionTo(to))
				})
			}
		}
	})

	t.Run("unknown status has no transitions", func(t *testing.T) {
		for _, to := range allStatuses() {
			assert.False(t, order.StatusUnknown.CanTransitionTo(to))
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should perform allowed transitions", func(t *testing.T) {
		next, err := order.StatusRequested.TransitionTo(order.StatusPickedUp)

		require.NoError(t, err)
		assert.Equal(t, order.StatusPickedUp, next)
	})

	t.Run("cancellation is impossible once laundering begins", func(t *testing.T) {
		_, err := order.StatusInLaundry.TransitionTo(order.StatusCancelled)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "IN_LAUNDRY")
		assert.Contains(t, err.Error(), "CANCELLED")
	})

	t.Run("transition error names source and target", func(t *testing.T) {
		_, err := order.StatusDelivered.TransitionTo(order.StatusPickedUp)

		require.Error(t, err)

		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "DELIVERED", transitionErr.From)
		assert.Equal(t, "PICKED_UP", transitionErr.To)
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		_, err := order.StatusRequested.TransitionTo(order.StatusUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("delivered and cancelled are terminal", func(t *testing.T) {
		assert.True(t, order.StatusDelivered.IsTerminal())
		assert.True(t, order.StatusCancelled.IsTerminal())
	})

	t.Run("active statuses are not terminal", func(t *testing.T) {
		for _, status := range []order.Status{
			order.StatusRequested,
			order.StatusPickedUp,
			order.StatusInLaundry,
			order.StatusOutForDelivery,
		} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})

	t.Run("unknown is not terminal", func(t *testing.T) {
		assert.False(t, order.StatusUnknown.IsTerminal())
	})
}
