package catalog

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through the NewCategory factory method.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups products for catalog navigation, e.g. "Shirts" or
// "Outerwear".
type Category struct {
	id          kernel.UUID
	name        string
	description string

	isConstructed bool
}

// NewCategory creates a new Category with validation.
func NewCategory(id kernel.UUID, name, description string) (*Category, error) {
	category := &Category{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		category.setID(id),
		category.setName(name),
	); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate ensures the Category instance was properly constructed.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}

	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category's display name.
func (c *Category) Name() string {
	return c.name
}

// Description returns the optional category description.
func (c *Category) Description() string {
	return c.description
}

// Rename updates the category's name and description.
func (c *Category) Rename(name, description string) error {
	if err := c.setName(name); err != nil {
		return err
	}

	c.description = description
	return nil
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
