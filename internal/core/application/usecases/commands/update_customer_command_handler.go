package commands

import (
	"context"
)

// UpdateCustomerCommandHandler handles customer detail updates.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer update command.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	customerRepo := uow.CustomerRepository()

	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Address()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
