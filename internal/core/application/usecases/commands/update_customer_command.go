package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to change a customer's contact
// details. The full detail set is replaced; optional fields may be blank.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update customer details.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	name string,
	email string,
	phone string,
	address string,
) (UpdateCustomerCommand, error) {
	customerCommand := UpdateCustomerCommand{
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCustomerID(customerID),
		customerCommand.setName(name),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's new display name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's new email address.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's new phone number.
func (c UpdateCustomerCommand) Phone() string {
	return c.phone
}

// Address returns the customer's new postal address.
func (c UpdateCustomerCommand) Address() string {
	return c.address
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
