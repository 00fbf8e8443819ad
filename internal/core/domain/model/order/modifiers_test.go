package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModifiers(t *testing.T) {
	t.Run("should create valid modifiers", func(t *testing.T) {
		modifiers, err := order.NewModifiers(true, mustPrice(t, "15.00"), decimal.NewFromInt(20))

		require.NoError(t, err)
		require.NoError(t, modifiers.Validate())
		assert.True(t, modifiers.IsExpress())
		assert.Equal(t, "15.00", modifiers.ExpressFee().StringFixed())
		assert.Equal(t, "20", modifiers.VATRatePercent().String())
	})

	t.Run("should accept zero VAT rate", func(t *testing.T) {
		_, err := order.NewModifiers(false, kernel.ZeroPrice(), decimal.Zero)

		require.NoError(t, err)
	})

	t.Run("should reject negative VAT rate", func(t *testing.T) {
		_, err := order.NewModifiers(false, kernel.ZeroPrice(), decimal.NewFromInt(-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unconstructed express fee", func(t *testing.T) {
		var fee kernel.Price

		_, err := order.NewModifiers(true, fee, decimal.Zero)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var modifiers order.Modifiers

		err := modifiers.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrModifiersAreNotConstructed, err)
	})
}
