package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to add a product category,
// e.g. "Shirts" or "Outerwear".
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID  kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a product category.
func NewCreateCategoryCommand(
	categoryID kernel.UUID,
	name string,
	description string,
) (CreateCategoryCommand, error) {
	categoryCommand := CreateCategoryCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		categoryCommand.setCategoryID(categoryID),
		categoryCommand.setName(name),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	return categoryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the unique identifier for the category.
func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the category's display name.
func (c CreateCategoryCommand) Name() string {
	return c.name
}

// Description returns the optional category description.
func (c CreateCategoryCommand) Description() string {
	return c.description
}

func (c *CreateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}

	c.categoryID = categoryID
	return nil
}

func (c *CreateCategoryCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
