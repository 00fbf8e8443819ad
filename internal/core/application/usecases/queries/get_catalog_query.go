package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves the full price list: categories, products and
// stain types, as shown on the order-entry screen.
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query to list the catalog.
// This is a parameterless query that fetches the whole price list.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCatalogQueryIsNotConstructed if validation fails.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// CategoryView is one category row in the catalog listing.
type CategoryView struct {
	ID          kernel.UUID
	Name        string
	Description string
}

// ProductView is one product row in the catalog listing. Price is the
// current reference price captured onto new line items.
type ProductView struct {
	ID          kernel.UUID
	Name        string
	Description string
	CategoryID  kernel.UUID
	Price       decimal.Decimal
}

// StainTypeView is one stain type row in the catalog listing.
type StainTypeView struct {
	ID        kernel.UUID
	Name      string
	Surcharge decimal.Decimal
}

// GetCatalogQueryResponse is the complete price list.
type GetCatalogQueryResponse struct {
	Categories []CategoryView
	Products   []ProductView
	StainTypes []StainTypeView
}
