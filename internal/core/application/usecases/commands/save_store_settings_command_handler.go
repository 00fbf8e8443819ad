package commands

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/settings"
	"laundry/internal/pkg/errs"
)

// SaveStoreSettingsCommandHandler handles changes to the store-wide settings
// record. The record is created on first save and updated in place afterwards,
// so the store always has at most one settings row.
type SaveStoreSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

// NewSaveStoreSettingsCommandHandler creates a handler for settings saves.
func NewSaveStoreSettingsCommandHandler(uowFactory SettingsUoWFactory) SaveStoreSettingsCommandHandler {
	return SaveStoreSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settings save command.
func (h *SaveStoreSettingsCommandHandler) Handle(ctx context.Context, cmd SaveStoreSettingsCommand) error {
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

	settingsRepo := uow.SettingsRepository()

	aggregate, err := settingsRepo.Get(ctx)
	switch {
	case err == nil:
		if err = aggregate.Update(
			cmd.StoreName(),
			cmd.StoreAddress(),
			cmd.StorePhone(),
			cmd.VATRatePercent(),
			cmd.ExpressFee(),
		); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		aggregate, err = settings.NewStoreSettings(
			kernel.NewUUID(),
			cmd.StoreName(),
			cmd.StoreAddress(),
			cmd.StorePhone(),
			cmd.VATRatePercent(),
			cmd.ExpressFee(),
		)
		if err != nil {
			return err
		}
	default:
		return err
	}

	if err = settingsRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
