// Package ports defines repository interfaces for the laundry domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/customer"
	"laundry/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	// The customer must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	// The customer must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes a customer from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
