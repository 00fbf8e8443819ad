package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// lineItemRow is the scan target for order line rows.
type lineItemRow struct {
	OrderID        uuid.UUID
	ProductID      uuid.UUID
	BasePrice      decimal.Decimal
	CustomPrice    decimal.NullDecimal
	StainTypeID    uuid.NullUUID
	StainSurcharge decimal.Decimal
	Quantity       int
	Note           string
}

// toDomain rebuilds the captured line item so totals run through the same
// domain arithmetic as the write side.
func (r lineItemRow) toDomain() (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(r.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	basePrice, err := kernel.NewPrice(r.BasePrice)
	if err != nil {
		return order.LineItem{}, err
	}

	var customPrice *kernel.Price
	if r.CustomPrice.Valid {
		price, priceErr := kernel.NewPrice(r.CustomPrice.Decimal)
		if priceErr != nil {
			return order.LineItem{}, priceErr
		}
		customPrice = &price
	}

	var stainTypeID *kernel.UUID
	if r.StainTypeID.Valid {
		id, idErr := kernel.UUIDFromBytes(r.StainTypeID.UUID[:])
		if idErr != nil {
			return order.LineItem{}, idErr
		}
		stainTypeID = &id
	}

	stainSurcharge, err := kernel.NewPrice(r.StainSurcharge)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, basePrice, customPrice, stainTypeID, stainSurcharge, r.Quantity, r.Note)
}

// fetchLineItems loads the line rows for the given orders and groups them by
// order id. Only the requested orders are scanned, so callers filtering on
// status or date range do not pull the whole order_items table.
func fetchLineItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]order.LineItem, error) {
	items := make(map[uuid.UUID][]order.LineItem)
	if len(orderIDs) == 0 {
		return items, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			base_price,
			custom_price,
			stain_type_id,
			stain_surcharge,
			quantity,
			note
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row lineItemRow
		if err = rows.Scan(
			&row.OrderID,
			&row.ProductID,
			&row.BasePrice,
			&row.CustomPrice,
			&row.StainTypeID,
			&row.StainSurcharge,
			&row.Quantity,
			&row.Note,
		); err != nil {
			return nil, err
		}

		item, itemErr := row.toDomain()
		if itemErr != nil {
			return nil, itemErr
		}
		items[row.OrderID] = append(items[row.OrderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// fetchVATRate reads the VAT percentage from the store settings row.
// Returns errs.ObjectNotFoundError when the store has not been configured yet.
func fetchVATRate(ctx context.Context, db *gorm.DB) (decimal.Decimal, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT vat_rate_percent FROM store_settings LIMIT 1
	`).Row()

	var vatRate decimal.Decimal
	if err := row.Scan(&vatRate); err != nil {
		return decimal.Decimal{}, errs.NewObjectNotFoundErrorWithCause("storeSettings", "singleton", err)
	}

	return vatRate, nil
}
