package order

import "github.com/shopspring/decimal"

// Totals is the derived monetary breakdown of an order. It is never stored
// as independent truth: it is always recomputable from the order's line
// items and modifiers, and persisting or displaying it must go through
// Rounded so intermediate precision never leaks half-rounded values.
//
// Invariants (maintained by the pricing engine that produces Totals):
//
//	ItemsSubtotal  = Σ line totals
//	PreTaxSubtotal = ItemsSubtotal + express fee (iff express)
//	VATAmount      = PreTaxSubtotal × vatRatePercent / 100
//	GrandTotal     = PreTaxSubtotal + VATAmount ≥ 0
type Totals struct {
	ItemsSubtotal  decimal.Decimal
	ExpressFee     decimal.Decimal
	PreTaxSubtotal decimal.Decimal
	VATAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
}

// Rounded returns a copy with every amount rounded to the currency minor
// unit (2 decimal places). Rounding is applied only here, at the
// display/persistence boundary, never between computation steps.
func (t Totals) Rounded() Totals {
	return Totals{
		ItemsSubtotal:  t.ItemsSubtotal.Round(2),
		ExpressFee:     t.ExpressFee.Round(2),
		PreTaxSubtotal: t.PreTaxSubtotal.Round(2),
		VATAmount:      t.VATAmount.Round(2),
		GrandTotal:     t.GrandTotal.Round(2),
	}
}
