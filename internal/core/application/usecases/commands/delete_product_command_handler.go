package commands

import (
	"context"
)

// DeleteProductCommandHandler handles catalog product removal.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product removal.
func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product deletion command.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	if err := uow.CatalogRepository().DeleteProduct(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
