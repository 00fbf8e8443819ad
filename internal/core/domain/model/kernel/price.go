package kernel

import (
	"errors"
	"fmt"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPriceIsNotConstructed is returned when attempting to use an improperly
// initialized Price. Prices must be created using NewPrice, PriceFromString
// or ZeroPrice to ensure validity.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError(
	"price must be created via NewPrice, PriceFromString or ZeroPrice constructors")

// Price represents a non-negative monetary amount.
// Price is an immutable value object backed by an arbitrary-precision decimal,
// so repeated arithmetic never accumulates binary floating point drift.
// Rounding to the currency minor unit happens only at display or persistence
// time via Rounded or StringFixed, never between intermediate steps.
//
// The zero value of Price is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	base, err := kernel.PriceFromString("12.50")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(base.StringFixed()) // Output: 12.50
type Price struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal amount.
// The amount must not be negative; an explicit zero is a valid price
// (a free-of-charge item is not the same as an absent price).
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Price{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// PriceFromString parses a decimal string such as "12.50" into a Price.
// Returns an error for malformed or negative input.
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}

	return NewPrice(amount)
}

// ZeroPrice returns a valid Price of zero.
func ZeroPrice() Price {
	return Price{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the Price was properly constructed using a constructor.
// The zero value of Price is invalid and will fail this validation.
func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

// Amount returns the underlying decimal amount.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Add returns the sum of two prices.
// Both prices must be properly constructed for the operation to succeed.
func (p Price) Add(other Price) (Price, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return Price{}, err
	}

	return NewPrice(p.amount.Add(other.amount))
}

// MulInt returns the price multiplied by a non-negative integer factor,
// e.g. a unit price scaled by a line item quantity.
func (p Price) MulInt(factor int) (Price, error) {
	if err := p.Validate(); err != nil {
		return Price{}, err
	}

	if factor < 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%d is negative", factor),
		)
	}

	return NewPrice(p.amount.Mul(decimal.NewFromInt(int64(factor))))
}

// IsZero reports whether the price amount is exactly zero.
func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

// IsEqual compares two prices for numeric equality.
// Both prices must be properly constructed for the comparison to succeed.
func (p Price) IsEqual(other Price) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.amount.Equal(other.amount), nil
}

// Rounded returns the amount rounded to the currency minor unit (2 decimal
// places). Use only at display or persistence boundaries.
func (p Price) Rounded() decimal.Decimal {
	return p.amount.Round(2)
}

// StringFixed returns the amount formatted with exactly two decimal places,
// e.g. "12.50". This is the display/persistence representation.
func (p Price) StringFixed() string {
	return p.amount.StringFixed(2)
}

// String returns a human-readable representation of the price.
// This method implements the fmt.Stringer interface.
func (p Price) String() string {
	return fmt.Sprintf("Price(%s)", p.amount.String())
}
