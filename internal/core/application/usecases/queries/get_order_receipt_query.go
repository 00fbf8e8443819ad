package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderReceiptQueryIsNotConstructed = errors.New(
	"GetOrderReceiptQuery must be created via NewGetOrderReceiptQuery constructor",
)

// GetOrderReceiptQuery retrieves the printable receipt for one order: store
// identity, customer details, per-line amounts and the order totals.
//
// Example:
//
//	query, err := NewGetOrderReceiptQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	receipt, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build receipt: %w", err)
//	}
//	fmt.Printf("%s  total %s\n", receipt.StoreName, receipt.GrandTotal)
type GetOrderReceiptQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderReceiptQuery creates a query for one order's receipt.
func NewGetOrderReceiptQuery(orderID kernel.UUID) (GetOrderReceiptQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderReceiptQuery{}, err
	}

	return GetOrderReceiptQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderReceiptQueryIsNotConstructed if validation fails.
func (q GetOrderReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderReceiptQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to print.
func (q GetOrderReceiptQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ReceiptLine is one printed line of the receipt. UnitPrice is the effective
// unit price (custom override when present, base price otherwise) and
// LineTotal includes the stain surcharge multiplied by quantity.
type ReceiptLine struct {
	ProductName    string
	Quantity       int
	UnitPrice      decimal.Decimal
	StainSurcharge decimal.Decimal
	LineTotal      decimal.Decimal
	Note           string
}

// GetOrderReceiptQueryResponse is the complete printable receipt.
// All amounts are rounded to the currency minor unit.
type GetOrderReceiptQueryResponse struct {
	OrderID      kernel.UUID
	StoreName    string
	StoreAddress string
	StorePhone   string
	CustomerName string
	IsExpress    bool
	Lines        []ReceiptLine

	ItemsSubtotal  decimal.Decimal
	ExpressFee     decimal.Decimal
	PreTaxSubtotal decimal.Decimal
	VATRatePercent decimal.Decimal
	VATAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
}
