package queries

import (
	"context"

	"gorm.io/gorm"

	"laundry/internal/pkg/errs"
)

// GetStoreSettingsQueryHandler reads the single store settings row.
type GetStoreSettingsQueryHandler struct {
	db *gorm.DB
}

// NewGetStoreSettingsQueryHandler creates a handler for store settings reads.
func NewGetStoreSettingsQueryHandler(db *gorm.DB) GetStoreSettingsQueryHandler {
	return GetStoreSettingsQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ObjectNotFoundError when the store
// has not been configured yet.
func (h GetStoreSettingsQueryHandler) Handle(
	ctx context.Context,
	query GetStoreSettingsQuery,
) (GetStoreSettingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStoreSettingsQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			store_name,
			store_address,
			store_phone,
			vat_rate_percent,
			express_fee
		FROM store_settings
		LIMIT 1
	`).Row()

	var response GetStoreSettingsQueryResponse
	if err := row.Scan(
		&response.StoreName,
		&response.StoreAddress,
		&response.StorePhone,
		&response.VATRatePercent,
		&response.ExpressFee,
	); err != nil {
		return GetStoreSettingsQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("storeSettings", "singleton", err)
	}

	return response, nil
}
