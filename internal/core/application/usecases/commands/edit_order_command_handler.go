package commands

import (
	"context"
)

// EditOrderCommandHandler handles the business logic for order edits.
// Replaces the order's line items with freshly priced ones and updates the
// express flag, re-capturing the express fee from current store settings.
type EditOrderCommandHandler struct {
	uowFactory OrderEntryUoWFactory
}

// NewEditOrderCommandHandler creates a handler for order edit operations.
func NewEditOrderCommandHandler(uowFactory OrderEntryUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order edit command.
// Loads the order, rebuilds its line items from the catalog and persists the
// result in one transaction. Returns errs.ObjectNotFoundError when the order
// does not exist.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	storeSettings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return err
	}

	items, err := buildLineItems(ctx, uow.CatalogRepository(), cmd.Items())
	if err != nil {
		return err
	}

	if err = aggregate.ReplaceItems(items); err != nil {
		return err
	}
	if err = aggregate.SetExpress(cmd.IsExpress(), storeSettings.ExpressFee()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
