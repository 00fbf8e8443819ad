package commands

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrSaveStoreSettingsCommandIsNotConstructed = errors.New(
	"SaveStoreSettingsCommand must be created via NewSaveStoreSettingsCommand constructor",
)

// SaveStoreSettingsCommand represents a request to replace the store-wide
// settings record: receipt identity plus the VAT rate and express fee used to
// price new orders. Orders created before the change keep their captured fees.
type SaveStoreSettingsCommand struct { //nolint:recvcheck //using for validation
	storeName      string
	storeAddress   string
	storePhone     string
	vatRatePercent decimal.Decimal
	expressFee     kernel.Price

	guard guard.ConstructorGuard
}

// NewSaveStoreSettingsCommand creates a command to save store settings.
// Validates that the store name is present, the VAT rate is non-negative and
// the express fee is a constructed price.
func NewSaveStoreSettingsCommand(
	storeName string,
	storeAddress string,
	storePhone string,
	vatRatePercent decimal.Decimal,
	expressFee kernel.Price,
) (SaveStoreSettingsCommand, error) {
	settingsCommand := SaveStoreSettingsCommand{
		storeAddress: storeAddress,
		storePhone:   storePhone,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		settingsCommand.setStoreName(storeName),
		settingsCommand.setVATRatePercent(vatRatePercent),
		settingsCommand.setExpressFee(expressFee),
	); err != nil {
		return SaveStoreSettingsCommand{}, err
	}

	return settingsCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveStoreSettingsCommandIsNotConstructed if validation fails.
func (c SaveStoreSettingsCommand) Validate() error {
	return c.guard.Validate(ErrSaveStoreSettingsCommandIsNotConstructed)
}

// StoreName returns the store name to print on receipts.
func (c SaveStoreSettingsCommand) StoreName() string {
	return c.storeName
}

// StoreAddress returns the store address to print on receipts.
func (c SaveStoreSettingsCommand) StoreAddress() string {
	return c.storeAddress
}

// StorePhone returns the store contact phone to print on receipts.
func (c SaveStoreSettingsCommand) StorePhone() string {
	return c.storePhone
}

// VATRatePercent returns the VAT rate as a percentage.
func (c SaveStoreSettingsCommand) VATRatePercent() decimal.Decimal {
	return c.vatRatePercent
}

// ExpressFee returns the flat surcharge for express orders.
func (c SaveStoreSettingsCommand) ExpressFee() kernel.Price {
	return c.expressFee
}

func (c *SaveStoreSettingsCommand) setStoreName(storeName string) error {
	if storeName == "" {
		return errs.NewValueIsRequiredError("storeName")
	}

	c.storeName = storeName
	return nil
}

func (c *SaveStoreSettingsCommand) setVATRatePercent(vatRatePercent decimal.Decimal) error {
	if vatRatePercent.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"vatRatePercent",
			fmt.Errorf("%s is negative", vatRatePercent.String()),
		)
	}

	c.vatRatePercent = vatRatePercent
	return nil
}

func (c *SaveStoreSettingsCommand) setExpressFee(expressFee kernel.Price) error {
	if err := expressFee.Validate(); err != nil {
		return err
	}

	c.expressFee = expressFee
	return nil
}
