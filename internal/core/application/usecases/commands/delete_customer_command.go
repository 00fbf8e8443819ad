package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand represents a request to remove a customer record.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand creates a command to remove a customer.
func NewDeleteCustomerCommand(customerID kernel.UUID) (DeleteCustomerCommand, error) {
	customerCommand := DeleteCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerCommand.setCustomerID(customerID); err != nil {
		return DeleteCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to remove.
func (c DeleteCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *DeleteCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}
