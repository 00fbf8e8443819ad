package ports

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// with their complete state including line items.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with all line items and its current status.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by the express alert job to watch express orders still in cleaning.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// Delete removes an order and its line items from storage.
	Delete(ctx context.Context, id kernel.UUID) error
}
