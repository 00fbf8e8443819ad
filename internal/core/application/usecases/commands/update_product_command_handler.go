package commands

import (
	"context"
)

// UpdateProductCommandHandler handles catalog product updates.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	catalogRepo := uow.CatalogRepository()

	aggregate, err := catalogRepo.GetProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.Rename(cmd.Name(), cmd.Description()); err != nil {
		return err
	}

	if err = aggregate.ChangePrice(cmd.Price()); err != nil {
		return err
	}

	if err = catalogRepo.UpdateProduct(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
