// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly and delegate all money arithmetic
// to the domain pricing service, so every caller reports the same totals.
package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders for the back-office list view, optionally
// filtered by workflow status.
//
// Example:
//
//	query := NewGetOrdersQuery(nil) // all orders
//	handler := NewGetOrdersQueryHandler(db, pricing)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetOrdersQuery struct {
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders.
// A nil statusFilter returns orders in every status; a non-nil filter must be
// a valid workflow status.
func NewGetOrdersQuery(statusFilter *order.Status) (GetOrdersQuery, error) {
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// StatusFilter returns the requested status filter, nil meaning all statuses.
func (q GetOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

// GetOrdersQueryResponse represents one order row in the back-office list.
// Totals are computed by the pricing service over the order's current line
// items and rounded to the currency minor unit.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	CustomerName string
	Status       order.Status
	IsExpress    bool
	ItemCount    int
	GrandTotal   decimal.Decimal
}
