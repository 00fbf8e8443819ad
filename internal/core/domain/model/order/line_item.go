package order

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem represents one priced unit within an order: a product at a
// quantity, with an optional stain-treatment surcharge and an optional
// manual price override.
//
// LineItem is an immutable value object. The catalog base price is captured
// at order-entry time and retained even when a custom price overrides it,
// so receipts and audits can show both. The custom price is a pointer on
// purpose: nil means "no override", while a non-nil zero is an explicit
// free-of-charge override.
//
// Example:
//
//	base, _ := kernel.PriceFromString("10.00")
//	surcharge, _ := kernel.PriceFromString("2.00")
//	item, err := order.NewLineItem(productID, base, nil, &stainID, surcharge, 3, "")
//	if err != nil {
//	    // Handle validation error
//	}
type LineItem struct { //nolint:recvcheck //using for validation
	productID      kernel.UUID
	basePrice      kernel.Price
	customPrice    *kernel.Price
	stainTypeID    *kernel.UUID
	stainSurcharge kernel.Price
	quantity       int
	note           string

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem.
//
// Validation rules:
//   - productID must be a valid UUID
//   - basePrice and stainSurcharge must be constructed, non-negative prices
//   - customPrice, when non-nil, must be a constructed, non-negative price
//   - stainTypeID, when non-nil, must be a valid UUID
//   - quantity must be at least 1; lower values are rejected, not clamped
//
// The note carries free-text care instructions and has no computational effect.
func NewLineItem(
	productID kernel.UUID,
	basePrice kernel.Price,
	customPrice *kernel.Price,
	stainTypeID *kernel.UUID,
	stainSurcharge kernel.Price,
	quantity int,
	note string,
) (LineItem, error) {
	item := LineItem{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setBasePrice(basePrice),
		item.setCustomPrice(customPrice),
		item.setStainTypeID(stainTypeID),
		item.setStainSurcharge(stainSurcharge),
		item.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductID returns the catalog product this line refers to.
func (li LineItem) ProductID() kernel.UUID {
	return li.productID
}

// BasePrice returns the catalog reference price captured at order-entry time.
func (li LineItem) BasePrice() kernel.Price {
	return li.basePrice
}

// CustomPrice returns the manual price override, or nil when none is set.
func (li LineItem) CustomPrice() *kernel.Price {
	return li.customPrice
}

// StainTypeID returns the selected stain treatment, or nil when none.
func (li LineItem) StainTypeID() *kernel.UUID {
	return li.stainTypeID
}

// StainSurcharge returns the per-unit stain-treatment surcharge
// (zero when no treatment is selected).
func (li LineItem) StainSurcharge() kernel.Price {
	return li.stainSurcharge
}

// Quantity returns the number of units, always at least 1.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Note returns the free-text care instructions for this line.
func (li LineItem) Note() string {
	return li.note
}

// EffectiveUnitPrice returns the price used for total computation:
// the custom price when set, otherwise the catalog base price.
func (li LineItem) EffectiveUnitPrice() kernel.Price {
	if li.customPrice != nil {
		return *li.customPrice
	}
	return li.basePrice
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setBasePrice(basePrice kernel.Price) error {
	if err := basePrice.Validate(); err != nil {
		return err
	}
	li.basePrice = basePrice
	return nil
}

func (li *LineItem) setCustomPrice(customPrice *kernel.Price) error {
	if customPrice == nil {
		return nil
	}
	if err := customPrice.Validate(); err != nil {
		return err
	}

	p := *customPrice
	li.customPrice = &p
	return nil
}

func (li *LineItem) setStainTypeID(stainTypeID *kernel.UUID) error {
	if stainTypeID == nil {
		return nil
	}
	if err := stainTypeID.Validate(); err != nil {
		return err
	}

	id := *stainTypeID
	li.stainTypeID = &id
	return nil
}

func (li *LineItem) setStainSurcharge(stainSurcharge kernel.Price) error {
	if err := stainSurcharge.Validate(); err != nil {
		return err
	}
	li.stainSurcharge = stainSurcharge
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	li.quantity = quantity
	return nil
}
