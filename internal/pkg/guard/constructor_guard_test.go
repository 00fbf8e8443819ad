package guard_test

import (
	"errors"
	"testing"

	"laundry/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_has_meaningful_message", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is
// used in a value object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type surcharge struct {
		cents int
		guard guard.ConstructorGuard
	}

	var errSurchargeNotConstructed = errors.New("surcharge must be created via newSurcharge")

	newSurcharge := func(cents int) (surcharge, error) {
		if cents < 0 {
			return surcharge{}, errors.New("surcharge cannot be negative")
		}
		return surcharge{
			cents: cents,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validate := func(s surcharge) error {
		return s.guard.Validate(errSurchargeNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		s, err := newSurcharge(250)

		require.NoError(t, err)
		require.NoError(t, validate(s))
		assert.Equal(t, 250, s.cents)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var s surcharge // zero value

		err := validate(s)

		require.Error(t, err)
		assert.Equal(t, errSurchargeNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newSurcharge(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be negative")
	})
}

func TestConstructorGuard_PassedByValue(t *testing.T) {
	g := guard.NewConstructorGuard()
	testError := errors.New("test error")

	copied := g

	require.NoError(t, g.Validate(testError))
	require.NoError(t, copied.Validate(testError))
}
