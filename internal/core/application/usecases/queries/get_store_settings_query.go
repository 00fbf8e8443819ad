package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"laundry/internal/pkg/guard"
)

var ErrGetStoreSettingsQueryIsNotConstructed = errors.New(
	"GetStoreSettingsQuery must be created via NewGetStoreSettingsQuery constructor",
)

// GetStoreSettingsQuery retrieves the store configuration row.
type GetStoreSettingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStoreSettingsQuery creates a query to read the store settings.
func NewGetStoreSettingsQuery() GetStoreSettingsQuery {
	return GetStoreSettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStoreSettingsQueryIsNotConstructed if validation fails.
func (q GetStoreSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreSettingsQueryIsNotConstructed)
}

// GetStoreSettingsQueryResponse carries the store identity and pricing
// configuration currently in effect.
type GetStoreSettingsQueryResponse struct {
	StoreName      string
	StoreAddress   string
	StorePhone     string
	VATRatePercent decimal.Decimal
	ExpressFee     decimal.Decimal
}
