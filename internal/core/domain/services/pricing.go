package services

import (
	"laundry/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// percentDivisor converts a VAT rate expressed in percent to a fraction.
var percentDivisor = decimal.NewFromInt(100)

// PricingService is the domain service that computes an order's monetary
// totals from its line items and order-level modifiers.
//
// It is a pure function over its arguments: no I/O, no randomness, no
// mutation of inputs. Calling it twice with identical inputs yields
// identical results, so recomputing totals is always safe and persisted
// totals are only ever a cache of its output.
//
// All arithmetic is decimal; rounding to the currency minor unit is the
// caller's concern, applied via Totals.Rounded at display or persistence
// boundaries only.
//
// Example usage:
//
//	pricing := services.NewPricingService()
//	totals, err := pricing.OrderTotals(o.Items(), modifiers)
//	if err != nil {
//	    // Malformed input, surface as a validation failure
//	    return err
//	}
//	receiptTotal := totals.Rounded().GrandTotal
type PricingService struct{}

// NewPricingService creates a new PricingService instance.
func NewPricingService() PricingService {
	return PricingService{}
}

// LineTotal computes one line item's contribution to the order:
//
//	(effective unit price + stain surcharge) × quantity
//
// where the effective unit price is the custom price when set, otherwise
// the catalog base price. The item must have been created via NewLineItem;
// zero-value items fail validation, which is how negative prices or a
// non-positive quantity are rejected before any arithmetic happens.
func (PricingService) LineTotal(item order.LineItem) (decimal.Decimal, error) {
	if err := item.Validate(); err != nil {
		return decimal.Zero, err
	}

	unitWithSurcharge, err := item.EffectiveUnitPrice().Add(item.StainSurcharge())
	if err != nil {
		return decimal.Zero, err
	}

	lineTotal, err := unitWithSurcharge.MulInt(item.Quantity())
	if err != nil {
		return decimal.Zero, err
	}

	return lineTotal.Amount(), nil
}

// OrderTotals computes the full monetary breakdown of an order:
//
//	itemsSubtotal  = Σ LineTotal(item)            (empty items ⇒ 0)
//	expressFee     = modifiers fee iff express    (flat, once per order)
//	preTaxSubtotal = itemsSubtotal + expressFee
//	vatAmount      = preTaxSubtotal × vatRate/100
//	grandTotal     = preTaxSubtotal + vatAmount
//
// The result is exact decimal arithmetic; apply Totals.Rounded when the
// values leave the domain. Since every input is non-negative the grand
// total is non-negative by construction.
func (s PricingService) OrderTotals(items []order.LineItem, modifiers order.Modifiers) (order.Totals, error) {
	if err := modifiers.Validate(); err != nil {
		return order.Totals{}, err
	}

	itemsSubtotal := decimal.Zero
	for _, item := range items {
		lineTotal, err := s.LineTotal(item)
		if err != nil {
			return order.Totals{}, err
		}
		itemsSubtotal = itemsSubtotal.Add(lineTotal)
	}

	expressFee := decimal.Zero
	if modifiers.IsExpress() {
		expressFee = modifiers.ExpressFee().Amount()
	}

	preTaxSubtotal := itemsSubtotal.Add(expressFee)
	vatAmount := preTaxSubtotal.Mul(modifiers.VATRatePercent()).Div(percentDivisor)

	return order.Totals{
		ItemsSubtotal:  itemsSubtotal,
		ExpressFee:     expressFee,
		PreTaxSubtotal: preTaxSubtotal,
		VATAmount:      vatAmount,
		GrandTotal:     preTaxSubtotal.Add(vatAmount),
	}, nil
}
