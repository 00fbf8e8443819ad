package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change a product's name,
// description or reference price. Existing orders keep the prices captured
// onto their line items at order-entry time.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Price

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalog product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Price,
) (UpdateProductCommand, error) {
	productCommand := UpdateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setPrice(price),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's new display name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the product's new description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the product's new reference price.
func (c UpdateProductCommand) Price() kernel.Price {
	return c.price
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
