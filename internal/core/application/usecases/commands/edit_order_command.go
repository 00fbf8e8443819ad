package commands

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents a request to replace an order's line items and
// express flag. Captured prices on the new lines are resolved from the catalog
// current at edit time; the status is not touched by edits.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	items     []OrderItemInput
	isExpress bool

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to edit an existing laundry order.
// Validates that the order ID is valid and at least one item is present.
func NewEditOrderCommand(
	orderID kernel.UUID,
	items []OrderItemInput,
	isExpress bool,
) (EditOrderCommand, error) {
	editCommand := EditOrderCommand{
		isExpress: isExpress,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		editCommand.setOrderID(orderID),
		editCommand.setItems(items),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being edited.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement order lines.
func (c EditOrderCommand) Items() []OrderItemInput {
	return c.items
}

// IsExpress returns whether expedited service is requested after the edit.
func (c EditOrderCommand) IsExpress() bool {
	return c.isExpress
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return err
		}
		if item.Quantity < 1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity),
			)
		}
	}

	c.items = items
	return nil
}
