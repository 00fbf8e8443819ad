package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCreateStainTypeCommandIsNotConstructed = errors.New(
	"CreateStainTypeCommand must be created via NewCreateStainTypeCommand constructor",
)

// CreateStainTypeCommand represents a request to add a treatable stain kind
// with its per-unit surcharge.
type CreateStainTypeCommand struct { //nolint:recvcheck //using for validation
	stainTypeID kernel.UUID
	name        string
	surcharge   kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateStainTypeCommand creates a command to add a stain type.
func NewCreateStainTypeCommand(
	stainTypeID kernel.UUID,
	name string,
	surcharge kernel.Price,
) (CreateStainTypeCommand, error) {
	stainTypeCommand := CreateStainTypeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stainTypeCommand.setStainTypeID(stainTypeID),
		stainTypeCommand.setName(name),
		stainTypeCommand.setSurcharge(surcharge),
	); err != nil {
		return CreateStainTypeCommand{}, err
	}

	return stainTypeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStainTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateStainTypeCommandIsNotConstructed)
}

// StainTypeID returns the unique identifier for the stain type.
func (c CreateStainTypeCommand) StainTypeID() kernel.UUID {
	return c.stainTypeID
}

// Name returns the stain type's display name.
func (c CreateStainTypeCommand) Name() string {
	return c.name
}

// Surcharge returns the per-unit treatment surcharge.
func (c CreateStainTypeCommand) Surcharge() kernel.Price {
	return c.surcharge
}

func (c *CreateStainTypeCommand) setStainTypeID(stainTypeID kernel.UUID) error {
	if err := stainTypeID.Validate(); err != nil {
		return err
	}

	c.stainTypeID = stainTypeID
	return nil
}

func (c *CreateStainTypeCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateStainTypeCommand) setSurcharge(surcharge kernel.Price) error {
	if err := surcharge.Validate(); err != nil {
		return err
	}

	c.surcharge = surcharge
	return nil
}
