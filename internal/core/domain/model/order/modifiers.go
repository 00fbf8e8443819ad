package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrModifiersAreNotConstructed is returned when a Modifiers value was not
// created through the NewModifiers constructor.
var ErrModifiersAreNotConstructed = errors.New("Modifiers must be created via NewModifiers constructor")

// Modifiers carries the order-level pricing inputs: the express flag, the
// flat express fee applied once per order when the flag is set, and the VAT
// rate supplied by store configuration.
//
// Modifiers is an immutable value object. The VAT rate is expressed in
// percent (20 means 20%) and applies to the items subtotal plus the express
// fee. The express fee is captured on the modifiers even when isExpress is
// false so an order can be toggled without re-reading configuration; it
// only enters the totals when the flag is set.
type Modifiers struct { //nolint:recvcheck //using for validation
	isExpress      bool
	expressFee     kernel.Price
	vatRatePercent decimal.Decimal

	guard guard.ConstructorGuard
}

// NewModifiers creates validated order-level pricing inputs.
// The express fee must be a constructed, non-negative price and the VAT
// rate must not be negative.
func NewModifiers(isExpress bool, expressFee kernel.Price, vatRatePercent decimal.Decimal) (Modifiers, error) {
	modifiers := Modifiers{
		isExpress: isExpress,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		modifiers.setExpressFee(expressFee),
		modifiers.setVATRatePercent(vatRatePercent),
	); err != nil {
		return Modifiers{}, err
	}

	return modifiers, nil
}

// Validate ensures the Modifiers value was created through NewModifiers.
func (m Modifiers) Validate() error {
	return m.guard.Validate(ErrModifiersAreNotConstructed)
}

// IsExpress reports whether expedited service was requested.
func (m Modifiers) IsExpress() bool {
	return m.isExpress
}

// ExpressFee returns the flat order-level fee applied when IsExpress is true.
func (m Modifiers) ExpressFee() kernel.Price {
	return m.expressFee
}

// VATRatePercent returns the VAT rate in percent (e.g. 20 for 20%).
func (m Modifiers) VATRatePercent() decimal.Decimal {
	return m.vatRatePercent
}

func (m *Modifiers) setExpressFee(expressFee kernel.Price) error {
	if err := expressFee.Validate(); err != nil {
		return err
	}
	m.expressFee = expressFee
	return nil
}

func (m *Modifiers) setVATRatePercent(vatRatePercent decimal.Decimal) error {
	if vatRatePercent.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"vatRatePercent",
			fmt.Errorf("%s is negative", vatRatePercent.String()),
		)
	}
	m.vatRatePercent = vatRatePercent
	return nil
}
