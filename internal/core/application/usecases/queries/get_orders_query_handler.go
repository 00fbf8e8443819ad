package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// GetOrdersQueryHandler retrieves orders with their computed totals for the
// back-office list view. Line totals and VAT are computed by the domain
// pricing service, never in SQL, so the list view always agrees with receipts.
type GetOrdersQueryHandler struct {
	db      *gorm.DB
	pricing services.PricingService
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB, pricing services.PricingService) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db, pricing: pricing}
}

// orderRow is the scan target for order header rows.
type orderRow struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	CustomerName string
	IsExpress    bool
	ExpressFee   kernel.Price
	Status       int
}

// Handle executes the query and computes a grand total per order.
// Results are sorted by order ID for consistent output.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vatRate, err := fetchVATRate(ctx, h.db)
	if err != nil {
		return nil, err
	}

	headers, err := h.fetchOrderHeaders(ctx, query.StatusFilter())
	if err != nil {
		return nil, err
	}

	orderIDs := make([]uuid.UUID, 0, len(headers))
	for _, header := range headers {
		orderIDs = append(orderIDs, header.ID)
	}

	itemsByOrder, err := fetchLineItems(ctx, h.db, orderIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]GetOrdersQueryResponse, 0, len(headers))
	for _, header := range headers {
		items := itemsByOrder[header.ID]

		modifiers, modErr := order.NewModifiers(header.IsExpress, header.ExpressFee, vatRate)
		if modErr != nil {
			return nil, modErr
		}

		totals, totalsErr := h.pricing.OrderTotals(items, modifiers)
		if totalsErr != nil {
			return nil, totalsErr
		}
		totals = totals.Rounded()

		orderID, idErr := kernel.UUIDFromBytes(header.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		customerID, idErr := kernel.UUIDFromBytes(header.CustomerID[:])
		if idErr != nil {
			return nil, idErr
		}

		responses = append(responses, GetOrdersQueryResponse{
			ID:           orderID,
			CustomerID:   customerID,
			CustomerName: header.CustomerName,
			Status:       order.Status(header.Status),
			IsExpress:    header.IsExpress,
			ItemCount:    len(items),
			GrandTotal:   totals.GrandTotal,
		})
	}

	return responses, nil
}

func (h GetOrdersQueryHandler) fetchOrderHeaders(
	ctx context.Context,
	statusFilter *order.Status,
) ([]orderRow, error) {
	sql := `
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.is_express,
			o.express_fee,
			o.status
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
	`
	args := make([]any, 0, 1)
	if statusFilter != nil {
		sql += ` WHERE o.status = ?`
		args = append(args, int(*statusFilter))
	}
	sql += ` ORDER BY o.id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	headers := make([]orderRow, 0)
	for rows.Next() {
		var header orderRow
		var expressFee decimal.Decimal
		if err = rows.Scan(
			&header.ID,
			&header.CustomerID,
			&header.CustomerName,
			&header.IsExpress,
			&expressFee,
			&header.Status,
		); err != nil {
			return nil, err
		}

		fee, feeErr := kernel.NewPrice(expressFee)
		if feeErr != nil {
			return nil, feeErr
		}
		header.ExpressFee = fee

		headers = append(headers, header)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return headers, nil
}
