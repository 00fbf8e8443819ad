package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
)

// GetDailyRevenueQueryHandler sums the grand totals of orders completed on a
// given day. Completion time is taken from the order's last update, which is
// written when the status transition to completed is persisted. Totals come
// from the domain pricing service over the captured line prices.
type GetDailyRevenueQueryHandler struct {
	db      *gorm.DB
	pricing services.PricingService
}

// NewGetDailyRevenueQueryHandler creates a handler for daily revenue queries.
func NewGetDailyRevenueQueryHandler(db *gorm.DB, pricing services.PricingService) GetDailyRevenueQueryHandler {
	return GetDailyRevenueQueryHandler{db: db, pricing: pricing}
}

// Handle executes the revenue query for the query's calendar day.
func (h GetDailyRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetDailyRevenueQuery,
) (GetDailyRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDailyRevenueQueryResponse{}, err
	}

	vatRate, err := fetchVATRate(ctx, h.db)
	if err != nil {
		return GetDailyRevenueQueryResponse{}, err
	}

	dayStart := time.Date(
		query.Day().Year(), query.Day().Month(), query.Day().Day(),
		0, 0, 0, 0, query.Day().Location(),
	)
	dayEnd := dayStart.AddDate(0, 0, 1)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			is_express,
			express_fee
		FROM orders
		WHERE status = ? AND updated_at >= ? AND updated_at < ?
		ORDER BY id
	`, int(order.Completed), dayStart, dayEnd).Rows()
	if err != nil {
		return GetDailyRevenueQueryResponse{}, err
	}
	defer rows.Close()

	type completedOrder struct {
		id         uuid.UUID
		isExpress  bool
		expressFee decimal.Decimal
	}

	completed := make([]completedOrder, 0)
	for rows.Next() {
		var c completedOrder
		if err = rows.Scan(&c.id, &c.isExpress, &c.expressFee); err != nil {
			return GetDailyRevenueQueryResponse{}, err
		}
		completed = append(completed, c)
	}
	if err = rows.Err(); err != nil {
		return GetDailyRevenueQueryResponse{}, err
	}

	orderIDs := make([]uuid.UUID, 0, len(completed))
	for _, c := range completed {
		orderIDs = append(orderIDs, c.id)
	}

	itemsByOrder, err := fetchLineItems(ctx, h.db, orderIDs)
	if err != nil {
		return GetDailyRevenueQueryResponse{}, err
	}

	total := decimal.Zero
	for _, c := range completed {
		fee, feeErr := kernel.NewPrice(c.expressFee)
		if feeErr != nil {
			return GetDailyRevenueQueryResponse{}, feeErr
		}

		modifiers, modErr := order.NewModifiers(c.isExpress, fee, vatRate)
		if modErr != nil {
			return GetDailyRevenueQueryResponse{}, modErr
		}

		totals, totalsErr := h.pricing.OrderTotals(itemsByOrder[c.id], modifiers)
		if totalsErr != nil {
			return GetDailyRevenueQueryResponse{}, totalsErr
		}

		total = total.Add(totals.Rounded().GrandTotal)
	}

	return GetDailyRevenueQueryResponse{
		Day:        dayStart,
		OrderCount: len(completed),
		Total:      total,
	}, nil
}
