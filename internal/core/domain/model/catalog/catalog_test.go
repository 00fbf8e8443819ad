package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
)

func mustPrice(t *testing.T, value string) kernel.Price {
	t.Helper()

	price, err := kernel.PriceFromString(value)
	require.NoError(t, err)
	return price
}

func TestNewProduct(t *testing.T) {
	id := kernel.NewUUID()
	categoryID := kernel.NewUUID()
	price := mustPrice(t, "12.00")

	t.Run("creates product with valid params", func(t *testing.T) {
		product, err := catalog.NewProduct(id, "Shirt", "Button-up shirt", categoryID, price)

		require.NoError(t, err)
		assert.True(t, product.ID().IsEqual(id))
		assert.Equal(t, "Shirt", product.Name())
		assert.Equal(t, "Button-up shirt", product.Description())
		assert.True(t, product.CategoryID().IsEqual(categoryID))
		assert.True(t, product.Price().Amount().Equal(price.Amount()))
	})

	t.Run("returns error when name is empty", func(t *testing.T) {
		product, err := catalog.NewProduct(id, "", "", categoryID, price)

		assert.Error(t, err)
		assert.Nil(t, product)
	})

	t.Run("returns error when id is not constructed", func(t *testing.T) {
		product, err := catalog.NewProduct(kernel.UUID{}, "Shirt", "", categoryID, price)

		assert.Error(t, err)
		assert.Nil(t, product)
	})

	t.Run("returns error when price is not constructed", func(t *testing.T) {
		product, err := catalog.NewProduct(id, "Shirt", "", categoryID, kernel.Price{})

		assert.Error(t, err)
		assert.Nil(t, product)
	})
}

func TestProduct_ChangePrice(t *testing.T) {
	product, err := catalog.NewProduct(kernel.NewUUID(), "Shirt", "", kernel.NewUUID(), mustPrice(t, "12.00"))
	require.NoError(t, err)

	t.Run("updates reference price", func(t *testing.T) {
		newPrice := mustPrice(t, "14.50")

		err := product.ChangePrice(newPrice)

		require.NoError(t, err)
		assert.True(t, product.Price().Amount().Equal(newPrice.Amount()))
	})

	t.Run("rejects unconstructed price", func(t *testing.T) {
		before := product.Price()

		err := product.ChangePrice(kernel.Price{})

		assert.Error(t, err)
		assert.True(t, product.Price().Amount().Equal(before.Amount()))
	})
}

func TestNewCategory(t *testing.T) {
	t.Run("creates category with valid params", func(t *testing.T) {
		id := kernel.NewUUID()

		category, err := catalog.NewCategory(id, "Outerwear", "Coats and jackets")

		require.NoError(t, err)
		assert.True(t, category.ID().IsEqual(id))
		assert.Equal(t, "Outerwear", category.Name())
		assert.Equal(t, "Coats and jackets", category.Description())
	})

	t.Run("returns error when name is empty", func(t *testing.T) {
		category, err := catalog.NewCategory(kernel.NewUUID(), "", "")

		assert.Error(t, err)
		assert.Nil(t, category)
	})
}

func TestNewStainType(t *testing.T) {
	t.Run("creates stain type with valid params", func(t *testing.T) {
		id := kernel.NewUUID()
		surcharge := mustPrice(t, "2.50")

		stainType, err := catalog.NewStainType(id, "Ink", surcharge)

		require.NoError(t, err)
		assert.True(t, stainType.ID().IsEqual(id))
		assert.Equal(t, "Ink", stainType.Name())
		assert.True(t, stainType.Surcharge().Amount().Equal(surcharge.Amount()))
	})

	t.Run("allows zero surcharge", func(t *testing.T) {
		stainType, err := catalog.NewStainType(kernel.NewUUID(), "Dust", kernel.ZeroPrice())

		require.NoError(t, err)
		assert.True(t, stainType.Surcharge().IsZero())
	})

	t.Run("returns error when name is empty", func(t *testing.T) {
		stainType, err := catalog.NewStainType(kernel.NewUUID(), "", mustPrice(t, "1.00"))

		assert.Error(t, err)
		assert.Nil(t, stainType)
	})
}

func TestStainType_ChangeSurcharge(t *testing.T) {
	stainType, err := catalog.NewStainType(kernel.NewUUID(), "Wine", mustPrice(t, "3.00"))
	require.NoError(t, err)

	newSurcharge := mustPrice(t, "3.75")

	err = stainType.ChangeSurcharge(newSurcharge)

	require.NoError(t, err)
	assert.True(t, stainType.Surcharge().Amount().Equal(newSurcharge.Amount()))
}

func TestProduct_Validate(t *testing.T) {
	t.Run("returns error for zero value", func(t *testing.T) {
		var product catalog.Product
		assert.ErrorIs(t, product.Validate(), catalog.ErrProductIsNotConstructed)
	})

	t.Run("returns nil for constructed product", func(t *testing.T) {
		product, err := catalog.NewProduct(kernel.NewUUID(), "Shirt", "", kernel.NewUUID(), mustPrice(t, "12.00"))
		require.NoError(t, err)
		assert.NoError(t, product.Validate())
	})
}
