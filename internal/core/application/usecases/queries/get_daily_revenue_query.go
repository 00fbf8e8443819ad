package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"laundry/internal/pkg/guard"
)

var ErrGetDailyRevenueQueryIsNotConstructed = errors.New(
	"GetDailyRevenueQuery must be created via NewGetDailyRevenueQuery constructor",
)

// GetDailyRevenueQuery computes the revenue for one calendar day: the summed
// grand totals of orders completed on that day.
//
// Example:
//
//	query, err := NewGetDailyRevenueQuery(time.Now())
//	if err != nil {
//	    return err
//	}
//
//	revenue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute revenue: %w", err)
//	}
//	fmt.Printf("%d orders, %s total\n", revenue.OrderCount, revenue.Total)
type GetDailyRevenueQuery struct {
	day time.Time

	guard guard.ConstructorGuard
}

// NewGetDailyRevenueQuery creates a query for one day's revenue.
// The day must not be the zero time; only its date part is used.
func NewGetDailyRevenueQuery(day time.Time) (GetDailyRevenueQuery, error) {
	if day.IsZero() {
		return GetDailyRevenueQuery{}, errors.New("day is required")
	}

	return GetDailyRevenueQuery{
		day:   day,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDailyRevenueQueryIsNotConstructed if validation fails.
func (q GetDailyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyRevenueQueryIsNotConstructed)
}

// Day returns the calendar day the revenue is computed for.
func (q GetDailyRevenueQuery) Day() time.Time {
	return q.day
}

// GetDailyRevenueQueryResponse represents one day's revenue aggregate.
type GetDailyRevenueQueryResponse struct {
	Day        time.Time
	OrderCount int
	Total      decimal.Decimal
}
