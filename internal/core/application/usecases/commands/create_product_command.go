package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a sellable catalog entry.
// The price set here is the reference price captured onto line items at
// order-entry time.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	categoryID  kernel.UUID
	price       kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	categoryID kernel.UUID,
	price kernel.Price,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setCategoryID(categoryID),
		productCommand.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// CategoryID returns the category the product belongs to.
func (c CreateProductCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Price returns the product's reference price.
func (c CreateProductCommand) Price() kernel.Price {
	return c.price
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
