package commands

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
)

// CreateStainTypeCommandHandler handles adding stain types.
type CreateStainTypeCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateStainTypeCommandHandler creates a handler for adding stain types.
func NewCreateStainTypeCommandHandler(uowFactory CatalogUoWFactory) CreateStainTypeCommandHandler {
	return CreateStainTypeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stain type creation command.
func (h *CreateStainTypeCommandHandler) Handle(ctx context.Context, cmd CreateStainTypeCommand) error {
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

	aggregate, err := catalog.NewStainType(cmd.StainTypeID(), cmd.Name(), cmd.Surcharge())
	if err != nil {
		return err
	}

	if err = uow.CatalogRepository().AddStainType(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
