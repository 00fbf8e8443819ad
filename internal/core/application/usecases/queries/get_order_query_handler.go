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

// GetOrderQueryHandler retrieves one order with its lines and computed
// totals. Like the list view, totals run through the domain pricing service
// over the prices captured at order-entry time.
type GetOrderQueryHandler struct {
	db      *gorm.DB
	pricing services.PricingService
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB, pricing services.PricingService) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, pricing: pricing}
}

// Handle executes the order detail query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response := GetOrderQueryResponse{ID: query.OrderID()}

	var customerID uuid.UUID
	var status int
	var isExpress bool
	var expressFee decimal.Decimal
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.customer_id,
			c.name,
			o.status,
			o.is_express,
			o.express_fee
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()
	if err := row.Scan(&customerID, &response.CustomerName, &status, &isExpress, &expressFee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.CustomerID = id
	response.Status = order.Status(status)
	response.IsExpress = isExpress

	vatRate, err := fetchVATRate(ctx, h.db)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.VATRatePercent = vatRate

	lineRows, err := h.fetchOrderLines(ctx, query.OrderID().Bytes())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	items := make([]order.LineItem, 0, len(lineRows))
	lines := make([]OrderLine, 0, len(lineRows))
	for _, lineRow := range lineRows {
		item, itemErr := lineRow.item.toDomain()
		if itemErr != nil {
			return GetOrderQueryResponse{}, itemErr
		}
		items = append(items, item)

		lineTotal, totalErr := h.pricing.LineTotal(item)
		if totalErr != nil {
			return GetOrderQueryResponse{}, totalErr
		}

		lines = append(lines, OrderLine{
			ProductID:      item.ProductID(),
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
		return GetOrderQueryResponse{}, err
	}

	modifiers, err := order.NewModifiers(isExpress, fee, vatRate)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	totals, err := h.pricing.OrderTotals(items, modifiers)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	totals = totals.Rounded()

	response.ItemsSubtotal = totals.ItemsSubtotal
	response.ExpressFee = totals.ExpressFee
	response.PreTaxSubtotal = totals.PreTaxSubtotal
	response.VATAmount = totals.VATAmount
	response.GrandTotal = totals.GrandTotal

	return response, nil
}

// fetchOrderLines keeps lines whose product was removed from the catalog; the
// product name comes back blank in that case.
func (h GetOrderQueryHandler) fetchOrderLines(
	ctx context.Context,
	orderID uuid.UUID,
) ([]receiptLineRow, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.order_id,
			i.product_id,
			COALESCE(p.name, ''),
			i.base_price,
			i.custom_price,
			i.stain_type_id,
			i.stain_surcharge,
			i.quantity,
			i.note
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY i.id
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
