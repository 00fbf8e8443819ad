package commands

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// OrderItemInput describes one requested line in an order entry command.
// Prices are not part of the input: the handler resolves the base price from
// the catalog and the surcharge from the stain type, capturing both onto the
// line item. CustomPrice, when set, overrides the catalog price for that line.
type OrderItemInput struct {
	ProductID   kernel.UUID
	CustomPrice *kernel.Price
	StainTypeID *kernel.UUID
	Quantity    int
	Note        string
}

// CreateOrderCommand represents a request to register a new laundry order.
// Encapsulates the customer, the requested items and the express flag.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	items := []commands.OrderItemInput{{ProductID: shirtID, Quantity: 3}}
//	cmd, err := NewCreateOrderCommand(orderID, customerID, items, false)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created in cleaning status", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []OrderItemInput
	isExpress  bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new laundry order.
// Validates that both identifiers are valid and at least one item is present.
// Item details beyond quantity are validated by the handler against the catalog.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []OrderItemInput,
	isExpress bool,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		isExpress: isExpress,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the owning customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

// IsExpress returns whether expedited service was requested.
func (c CreateOrderCommand) IsExpress() bool {
	return c.isExpress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
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
