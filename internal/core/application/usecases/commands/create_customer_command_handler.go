package commands

import (
	"context"

	"laundry/internal/core/domain/model/customer"
)

// CreateCustomerCommandHandler handles customer registration.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer creation command.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
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

	aggregate, err := customer.NewCustomer(
		cmd.CustomerID(),
		cmd.Name(),
		cmd.Email(),
		cmd.Phone(),
		cmd.Address(),
	)
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
