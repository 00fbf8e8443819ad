package commands

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
)

// CreateCategoryCommandHandler handles adding product categories.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for adding categories.
func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category creation command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
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

	aggregate, err := catalog.NewCategory(cmd.CategoryID(), cmd.Name(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.CatalogRepository().AddCategory(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
