package commands

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
)

// CreateProductCommandHandler handles adding catalog products.
type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateProductCommandHandler creates a handler for adding products.
func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
// The referenced category must exist before the product can be added.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	if _, err := catalogRepo.GetCategory(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	aggregate, err := catalog.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.CategoryID(),
		cmd.Price(),
	)
	if err != nil {
		return err
	}

	if err = catalogRepo.AddProduct(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
