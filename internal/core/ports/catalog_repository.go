package ports

import (
	"context"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
)

// CatalogRepository defines the persistence contract for catalog aggregates:
// products, categories and stain types. Order entry reads reference prices
// from here; the captured copies on line items are owned by the order.
type CatalogRepository interface {
	// AddProduct persists a new product to storage.
	AddProduct(ctx context.Context, aggregate *catalog.Product) error

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, aggregate *catalog.Product) error

	// GetProduct retrieves a product by its unique identifier.
	GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// DeleteProduct removes a product from storage. Orders keep the prices
	// captured on their line items, so deleting a product never reprices
	// existing orders.
	DeleteProduct(ctx context.Context, id kernel.UUID) error

	// AddCategory persists a new category to storage.
	AddCategory(ctx context.Context, aggregate *catalog.Category) error

	// GetCategory retrieves a category by its unique identifier.
	GetCategory(ctx context.Context, id kernel.UUID) (*catalog.Category, error)

	// AddStainType persists a new stain type to storage.
	AddStainType(ctx context.Context, aggregate *catalog.StainType) error

	// GetStainType retrieves a stain type by its unique identifier.
	GetStainType(ctx context.Context, id kernel.UUID) (*catalog.StainType, error)
}
