// Package customer provides the Customer aggregate for the laundry
// back-office system: the person orders are taken for, with their
// contact details.
package customer

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the aggregate root for a shop customer.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name is required; email, phone and address are optional contact details
//   - Can only be created through NewCustomer
type Customer struct {
	id      kernel.UUID
	name    string
	email   string
	phone   string
	address string

	isConstructed bool
}

// NewCustomer creates a new Customer with validation.
func NewCustomer(id kernel.UUID, name, email, phone, address string) (*Customer, error) {
	customer := &Customer{
		email:         email,
		phone:         phone,
		address:       address,
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address, possibly empty.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's postal address, possibly empty.
func (c *Customer) Address() string {
	return c.address
}

// UpdateDetails replaces the customer's name and contact details.
// The name remains required.
func (c *Customer) UpdateDetails(name, email, phone, address string) error {
	if err := c.setName(name); err != nil {
		return err
	}

	c.email = email
	c.phone = phone
	c.address = address
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
