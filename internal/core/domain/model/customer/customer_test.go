package customer_test

import (
	"testing"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, "Ada Jones", "ada@example.com", "07700900000", "1 High St")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, id.IsEqual(c.ID()))
		assert.Equal(t, "Ada Jones", c.Name())
		assert.Equal(t, "ada@example.com", c.Email())
		assert.Equal(t, "07700900000", c.Phone())
		assert.Equal(t, "1 High St", c.Address())
	})

	t.Run("contact details are optional", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "Ada Jones", "", "", "")

		require.NoError(t, err)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := customer.NewCustomer(kernel.NewUUID(), "", "", "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		var id kernel.UUID

		_, err := customer.NewCustomer(id, "Ada Jones", "", "", "")

		require.Error(t, err)
	})

	t.Run("nil customer fails validation", func(t *testing.T) {
		var c *customer.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})
}

func TestCustomer_UpdateDetails(t *testing.T) {
	t.Run("should update all details", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Ada Jones", "", "", "")
		require.NoError(t, err)

		require.NoError(t, c.UpdateDetails("Ada Smith", "ada@new.example", "07700900001", "2 Low St"))

		assert.Equal(t, "Ada Smith", c.Name())
		assert.Equal(t, "ada@new.example", c.Email())
	})

	t.Run("should keep old name when new one is empty", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), "Ada Jones", "", "", "")
		require.NoError(t, err)

		err = c.UpdateDetails("", "x@example.com", "", "")

		require.Error(t, err)
		assert.Equal(t, "Ada Jones", c.Name())
	})
}
