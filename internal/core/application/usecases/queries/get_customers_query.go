package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetCustomersQueryIsNotConstructed = errors.New(
	"GetCustomersQuery must be created via NewGetCustomersQuery constructor",
)

// GetCustomersQuery retrieves all customers with their order counts for the
// back-office customer list.
type GetCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCustomersQuery creates a query to list customers.
// This is a parameterless query that fetches every customer.
func NewGetCustomersQuery() GetCustomersQuery {
	return GetCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomersQueryIsNotConstructed if validation fails.
func (q GetCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersQueryIsNotConstructed)
}

// GetCustomersQueryResponse represents one customer row in the list view.
type GetCustomersQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Email      string
	Phone      string
	Address    string
	OrderCount int
}
