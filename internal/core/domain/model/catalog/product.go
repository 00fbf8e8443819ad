package catalog

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a sellable catalog entry: a garment or service with its
// current reference price.
//
// Invariants:
//   - Must have a valid unique identifier and a valid category reference
//   - Name is required
//   - Price must be a constructed, non-negative amount
type Product struct {
	id          kernel.UUID
	name        string
	description string
	categoryID  kernel.UUID
	price       kernel.Price

	isConstructed bool
}

// NewProduct creates a new Product with validation.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	categoryID kernel.UUID,
	price kernel.Price,
) (*Product, error) {
	product := &Product{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setCategoryID(categoryID),
		product.setPrice(price),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional product description.
func (p *Product) Description() string {
	return p.description
}

// CategoryID returns the category the product belongs to.
func (p *Product) CategoryID() kernel.UUID {
	return p.categoryID
}

// Price returns the product's current reference price.
func (p *Product) Price() kernel.Price {
	return p.price
}

// ChangePrice updates the product's reference price.
// Existing orders keep the price they captured at order-entry time.
func (p *Product) ChangePrice(price kernel.Price) error {
	return p.setPrice(price)
}

// Rename updates the product's name and description.
func (p *Product) Rename(name, description string) error {
	if err := p.setName(name); err != nil {
		return err
	}

	p.description = description
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	p.categoryID = categoryID
	return nil
}

func (p *Product) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
