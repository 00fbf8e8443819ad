package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line detail and computed totals
// for the back-office detail view.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to fetch.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderLine is one line of the order detail view. ProductName is the current
// catalog name, or blank when the product was removed after order entry; the
// amounts are the ones captured on the line.
type OrderLine struct {
	ProductID      kernel.UUID
	ProductName    string
	Quantity       int
	UnitPrice      decimal.Decimal
	StainSurcharge decimal.Decimal
	LineTotal      decimal.Decimal
	Note           string
}

// GetOrderQueryResponse is the complete order detail view.
// All amounts are rounded to the currency minor unit.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	Status       order.Status
	IsExpress    bool
	Lines        []OrderLine

	ItemsSubtotal  decimal.Decimal
	ExpressFee     decimal.Decimal
	PreTaxSubtotal decimal.Decimal
	VATRatePercent decimal.Decimal
	VATAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
}
