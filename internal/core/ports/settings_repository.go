package ports

import (
	"context"

	"laundry/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the single
// store-wide settings record.
type SettingsRepository interface {
	// Save persists the settings record, inserting it on first save and
	// updating it afterwards.
	Save(ctx context.Context, aggregate *settings.StoreSettings) error

	// Get retrieves the current settings record.
	// Returns errs.ObjectNotFoundError when the store has not been configured yet.
	Get(ctx context.Context) (*settings.StoreSettings, error)
}
