package order_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(
		kernel.NewUUID(), mustPrice(t, "12.00"), nil, nil, kernel.ZeroPrice(), 2, "")
	require.NoError(t, err)
	return []order.LineItem{item}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order in Cleaning status", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()

		o, err := order.NewOrder(id, customerID, testItems(t), false, kernel.ZeroPrice())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, id.IsEqual(o.ID()))
		assert.True(t, customerID.IsEqual(o.CustomerID()))
		assert.Equal(t, order.Cleaning, o.Status())
		assert.False(t, o.IsExpress())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("should capture express fee", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), true, mustPrice(t, "15.00"))

		require.NoError(t, err)
		assert.True(t, o.IsExpress())
		assert.Equal(t, "15.00", o.ExpressFee().StringFixed())
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil, false, kernel.ZeroPrice())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid customer", func(t *testing.T) {
		var customerID kernel.UUID

		_, err := order.NewOrder(kernel.NewUUID(), customerID, testItems(t), false, kernel.ZeroPrice())

		require.Error(t, err)
	})

	t.Run("unconstructed order fails validation", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore with persisted status", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), false, kernel.ZeroPrice(), order.Ready)

		require.NoError(t, err)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject invalid persisted status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), false, kernel.ZeroPrice(), order.Unknown)

		require.Error(t, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should advance through the whole workflow", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), false, kernel.ZeroPrice())
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.Ready))
		assert.Equal(t, order.Ready, o.Status())

		require.NoError(t, o.ChangeStatus(order.Completed))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should reject a jump and keep current status", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), false, kernel.ZeroPrice())
		require.NoError(t, err)

		err = o.ChangeStatus(order.Completed)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Cleaning, o.Status())
	})

	t.Run("should allow one-step rollback", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), false, kernel.ZeroPrice(), order.Ready)
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.Cleaning))
		assert.Equal(t, order.Cleaning, o.Status())
	})
}

func TestOrder_ReplaceItems(t *testing.T) {
	t.Run("should replace items", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), false, kernel.ZeroPrice())
		require.NoError(t, err)

		replacement, err := order.NewLineItem(
			kernel.NewUUID(), mustPrice(t, "4.00"), nil, nil, kernel.ZeroPrice(), 5, "")
		require.NoError(t, err)

		require.NoError(t, o.ReplaceItems([]order.LineItem{replacement}))
		require.Len(t, o.Items(), 1)
		assert.Equal(t, 5, o.Items()[0].Quantity())
	})

	t.Run("should reject empty replacement", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), testItems(t), false, kernel.ZeroPrice())
		require.NoError(t, err)

		err = o.ReplaceItems(nil)

		require.Error(t, err)
		assert.Len(t, o.Items(), 1)
	})
}

func TestOrder_SetExpress(t *testing.T) {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), testItems(t), false, kernel.ZeroPrice())
	require.NoError(t, err)

	require.NoError(t, o.SetExpress(true, mustPrice(t, "15.00")))

	assert.True(t, o.IsExpress())
	assert.Equal(t, "15.00", o.ExpressFee().StringFixed())
}

func TestOrder_Items_ReturnsCopy(t *testing.T) {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), testItems(t), false, kernel.ZeroPrice())
	require.NoError(t, err)

	items := o.Items()
	items[0] = order.LineItem{}

	require.NoError(t, o.Items()[0].Validate())
}
