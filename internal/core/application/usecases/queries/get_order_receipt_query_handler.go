package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// GetOrderReceiptQueryHandler builds the printable receipt for one order.
// Per-line amounts and totals are computed by the domain pricing service over
// the prices captured on the order, so reprinting a receipt after a catalog
// price change yields the original amounts.
type GetOrderReceiptQueryHandler struct {
	db      *gorm.DB
	pricing services.PricingService
}

// NewGetOrderReceiptQueryHandler creates a handler for receipt queries.
func NewGetOrderReceiptQueryHandler(db *gorm.DB, pricing services.PricingService) GetOrderReceiptQueryHandler {
	return GetOrderReceiptQueryHandler{db: db, pricing: pricing}
}

// receiptLineRow joins a captured line with the current product name.
type receiptLineRow struct {
	item        lineItemRow
	productName string
}

// Handle executes the receipt query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetOrderReceiptQuery,
) (GetOrderReceiptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}

	response := GetOrderReceiptQueryResponse{OrderID: query.OrderID()}

	var isExpress bool
	var expressFee decimal.Decimal
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			c.name,
			o.is_express,
			o.express_fee
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&response.CustomerName, &isExpress, &expressFee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderReceiptQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderReceiptQueryResponse{}, err
	}
	response.IsExpress = isExpress

	vatRate, storeName, storeAddress, storePhone, err := h.fetchStoreIdentity(ctx)
	if err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}
	response.StoreName = storeName
	response.StoreAddress = storeAddress
	response.StorePhone = storePhone
	response.VATRatePercent = vatRate

	lineRows, err := h.fetchReceiptLines(ctx, query.OrderID().Bytes())
	if err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}

	items := make([]order.LineItem, 0, len(lineRows))
	lines := make([]ReceiptLine, 0, len(lineRows))
	for _, lineRow := range lineRows {
		item, itemErr := lineRow.item.toDomain()
		if itemErr != nil {
			return GetOrderReceiptQueryResponse{}, itemErr
		}
		items = append(items, item)

		lineTotal, totalErr := h.pricing.LineTotal(item)
		if totalErr != nil {
			return GetOrderReceiptQueryResponse{}, totalErr
		}

		lines = append(lines, ReceiptLine{
			ProductName:    lineRow.productName,
			Quantity:       item.Quantity(),
			UnitPrice:      item.EffectiveUnitPrice().Rounded(),
			StainSurcharge: item.StainSurcharge().Rounded(),
			LineTotal:      lineTotal.Round(2),
			Note:           item.Note(),
		})
	}
	response.Lines = lines

	fee, err := kernel.NewPrice(expressFee)
	if err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}

	modifiers, err := order.NewModifiers(isExpress, fee, vatRate)
	if err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}

	totals, err := h.pricing.OrderTotals(items, modifiers)
	if err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}
	totals = totals.Rounded()

	response.ItemsSubtotal = totals.ItemsSubtotal
	response.ExpressFee = totals.ExpressFee
	response.PreTaxSubtotal = totals.PreTaxSubtotal
	response.VATAmount = totals.VATAmount
	response.GrandTotal = totals.GrandTotal

	return response, nil
}

func (h GetOrderReceiptQueryHandler) fetchStoreIdentity(
	ctx context.Context,
) (decimal.Decimal, string, string, string, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			vat_rate_percent,
			store_name,
			store_address,
			store_phone
		FROM store_settings
		LIMIT 1
	`).Row()

	var vatRate decimal.Decimal
	var name, address, phone string
	if err := row.Scan(&vatRate, &name, &address, &phone); err != nil {
		return decimal.Decimal{}, "", "", "",
			errs.NewObjectNotFoundErrorWithCause("storeSettings", "singleton", err)
	}

	return vatRate, name, address, phone, nil
}

func (h GetOrderReceiptQueryHandler) fetchReceiptLines(
	ctx context.Context,
	orderID uuid.UUID,
) ([]receiptLineRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.product_id,
			p.name,
			i.base_price,
			i.custom_price,
			i.stain_type_id,
			i.stain_surcharge,
			i.quantity,
			i.note
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY p.name
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lineRows := make([]receiptLineRow, 0)
	for rows.Next() {
		var lineRow receiptLineRow
		if err = rows.Scan(
			&lineRow.item.OrderID,
			&lineRow.item.ProductID,
			&lineRow.productName,
			&lineRow.item.BasePrice,
			&lineRow.item.CustomPrice,
			&lineRow.item.StainTypeID,
			&lineRow.item.StainSurcharge,
			&lineRow.item.Quantity,
			&lineRow.item.Note,
		); err != nil {
			return nil, err
		}
		lineRows = append(lineRows, lineRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lineRows, nil
}
