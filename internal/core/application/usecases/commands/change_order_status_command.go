package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a target
// status. The transition itself is judged by the order aggregate: only moves
// between adjacent workflow states are allowed.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Ready)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var transitionErr *order.InvalidTransitionError
//	    if errors.As(err, &transitionErr) {
//	        // surface as a conflict to the caller
//	    }
//	    return err
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates the order ID and that the target is a known workflow status.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	targetStatus order.Status,
) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setTargetStatus(targetStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested workflow status.
func (c ChangeOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}

	c.targetStatus = targetStatus
	return nil
}
