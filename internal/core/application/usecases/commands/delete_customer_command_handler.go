package commands

import (
	"context"
)

// DeleteCustomerCommandHandler handles customer removal.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer removal.
func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer deletion command.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CustomerRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
