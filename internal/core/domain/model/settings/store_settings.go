// Package settings contains the store-wide configuration aggregate:
// store identity shown on receipts plus the pricing modifiers (VAT rate,
// express surcharge) applied to every order.
package settings

import (
	"errors"

	"github.com/shopspring/decimal"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// ErrStoreSettingsAreNotConstructed is returned when a StoreSettings instance
// was not created through the NewStoreSettings factory method.
var ErrStoreSettingsAreNotConstructed = errors.New("StoreSettings must be created via NewStoreSettings constructor")

// StoreSettings is the single store-wide configuration record.
//
// Invariants:
//   - Store name is required
//   - VAT rate is a non-negative percentage
//   - Express fee is a constructed, non-negative amount
type StoreSettings struct {
	id             kernel.UUID
	storeName      string
	storeAddress   string
	storePhone     string
	vatRatePercent decimal.Decimal
	expressFee     kernel.Price

	isConstructed bool
}

// NewStoreSettings creates a new StoreSettings with validation.
func NewStoreSettings(
	id kernel.UUID,
	storeName string,
	storeAddress string,
	storePhone string,
	vatRatePercent decimal.Decimal,
	expressFee kernel.Price,
) (*StoreSettings, error) {
	storeSettings := &StoreSettings{
		storeAddress:  storeAddress,
		storePhone:    storePhone,
		isConstructed: true,
	}

	if err := errors.Join(
		storeSettings.setID(id),
		storeSettings.setStoreName(storeName),
		storeSettings.setVATRatePercent(vatRatePercent),
		storeSettings.setExpressFee(expressFee),
	); err != nil {
		return nil, err
	}

	return storeSettings, nil
}

// Validate ensures the StoreSettings instance was properly constructed.
func (s *StoreSettings) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreSettingsAreNotConstructed
	}

	return nil
}

// ID returns the settings record's unique identifier.
func (s *StoreSettings) ID() kernel.UUID {
	return s.id
}

// StoreName returns the store name printed on receipts.
func (s *StoreSettings) StoreName() string {
	return s.storeName
}

// StoreAddress returns the store address printed on receipts.
func (s *StoreSettings) StoreAddress() string {
	return s.storeAddress
}

// StorePhone returns the store contact phone printed on receipts.
func (s *StoreSettings) StorePhone() string {
	return s.storePhone
}

// VATRatePercent returns the VAT rate as a percentage, e.g. 20 for 20%.
func (s *StoreSettings) VATRatePercent() decimal.Decimal {
	return s.vatRatePercent
}

// ExpressFee returns the flat surcharge for express orders.
func (s *StoreSettings) ExpressFee() kernel.Price {
	return s.expressFee
}

// Update replaces the store identity and pricing modifiers in one step.
func (s *StoreSettings) Update(
	storeName string,
	storeAddress string,
	storePhone string,
	vatRatePercent decimal.Decimal,
	expressFee kernel.Price,
) error {
	if err := errors.Join(
		s.setStoreName(storeName),
		s.setVATRatePercent(vatRatePercent),
		s.setExpressFee(expressFee),
	); err != nil {
		return err
	}

	s.storeAddress = storeAddress
	s.storePhone = storePhone
	return nil
}

func (s *StoreSettings) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *StoreSettings) setStoreName(storeName string) error {
	if storeName == "" {
		return errs.NewValueIsRequiredError("storeName")
	}
	s.storeName = storeName
	return nil
}

func (s *StoreSettings) setVATRatePercent(vatRatePercent decimal.Decimal) error {
	if vatRatePercent.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("vatRatePercent",
			errors.New(vatRatePercent.String()+" is negative"))
	}
	s.vatRatePercent = vatRatePercent
	return nil
}

func (s *StoreSettings) setExpressFee(expressFee kernel.Price) error {
	if err := expressFee.Validate(); err != nil {
		return err
	}
	s.expressFee = expressFee
	return nil
}
