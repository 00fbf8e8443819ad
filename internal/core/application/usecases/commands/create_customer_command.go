package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// Only the name is required; email, phone and address are optional contact
// details shown on receipts.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// Validates that the customer ID is valid and the name is not empty.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	name string,
	email string,
	phone string,
	address string,
) (CreateCustomerCommand, error) {
	customerCommand := CreateCustomerCommand{
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCustomerID(customerID),
		customerCommand.setName(name),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCustomerCommandIsNotConstructed if validation fails.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's optional email address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's optional phone number.
func (c CreateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's optional postal address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
