package order_test

import (
	"errors"
	"fmt"
	"testing"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Cleaning))
		assert.Equal(t, 2, int(order.Ready))
		assert.Equal(t, 3, int(order.Completed))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Cleaning,
			order.Ready,
			order.Completed,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(4),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Cleaning, "Cleaning"},
			{order.Ready, "Ready"},
			{order.Completed, "Completed"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse canonical names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected order.Status
		}{
			{"Cleaning", order.Cleaning},
			{"Ready", order.Ready},
			{"Completed", order.Completed},
		}

		for _, tc := range testCases {
			status, err := order.StatusFromString(tc.name)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "cleaning", "picked-up", "new"} {
			_, err := order.StatusFromString(name)
			require.Error(t, err, "name %q should not parse", name)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("adjacency truth table", func(t *testing.T) {
		testCases := []struct {
			from    order.Status
			to      order.Status
			allowed bool
		}{
			{order.Cleaning, order.Ready, true},
			{order.Ready, order.Completed, true},
			{order.Cleaning, order.Completed, false},
			{order.Ready, order.Cleaning, true},     // one-step rollback
			{order.Completed, order.Ready, true},    // one-step rollback
			{order.Completed, order.Cleaning, false},
			{order.Cleaning, order.Cleaning, false},
			{order.Ready, order.Ready, false},
			{order.Completed, order.Completed, false},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("%s to %s", tc.from, tc.to), func(t *testing.T) {
				assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
			})
		}
	})

	t.Run("invalid statuses never transition", func(t *testing.T) {
		assert.False(t, order.Unknown.CanTransitionTo(order.Cleaning))
		assert.False(t, order.Cleaning.CanTransitionTo(order.Unknown))
		assert.False(t, order.Status(42).CanTransitionTo(order.Ready))
	})
}

func TestStatus_Next(t *testing.T) {
	t.Run("should advance through the workflow", func(t *testing.T) {
		next, ok := order.Cleaning.Next()
		require.True(t, ok)
		assert.Equal(t, order.Ready, next)

		next, ok = order.Ready.Next()
		require.True(t, ok)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("terminal status has no next", func(t *testing.T) {
		_, ok := order.Completed.Next()
		assert.False(t, ok)
	})

	t.Run("invalid status has no next", func(t *testing.T) {
		_, ok := order.Unknown.Next()
		assert.False(t, ok)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow adjacent transition", func(t *testing.T) {
		newStatus, err := order.Cleaning.TransitionTo(order.Ready)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, newStatus)
	})

	t.Run("should reject a jump with a typed error", func(t *testing.T) {
		_, err := order.Cleaning.TransitionTo(order.Completed)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		var transitionErr *order.InvalidTransitionError
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, order.Cleaning, transitionErr.From)
		assert.Equal(t, order.Completed, transitionErr.To)
		assert.Equal(t, "status transition is not allowed: Cleaning -> Completed", err.Error())
	})

	t.Run("should allow one-step rollback", func(t *testing.T) {
		newStatus, err := order.Ready.TransitionTo(order.Cleaning)

		require.NoError(t, err)
		assert.Equal(t, order.Cleaning, newStatus)
	})
}
