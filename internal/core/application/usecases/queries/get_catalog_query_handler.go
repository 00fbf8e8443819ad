package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"laundry/internal/core/domain/model/kernel"
)

// GetCatalogQueryHandler retrieves the price list from the database.
type GetCatalogQueryHandler struct {
	db *gorm.DB
}

// NewGetCatalogQueryHandler creates a handler for catalog listing queries.
// Requires a GORM database connection for query execution.
func NewGetCatalogQueryHandler(db *gorm.DB) GetCatalogQueryHandler {
	return GetCatalogQueryHandler{db: db}
}

// Handle executes the query to retrieve categories, products and stain
// types. Each listing is sorted by name for consistent output.
func (h GetCatalogQueryHandler) Handle(
	ctx context.Context,
	query GetCatalogQuery,
) (GetCatalogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCatalogQueryResponse{}, err
	}

	categories, err := h.fetchCategories(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	products, err := h.fetchProducts(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	stainTypes, err := h.fetchStainTypes(ctx)
	if err != nil {
		return GetCatalogQueryResponse{}, err
	}

	return GetCatalogQueryResponse{
		Categories: categories,
		Products:   products,
		StainTypes: stainTypes,
	}, nil
}

func (h GetCatalogQueryHandler) fetchCategories(ctx context.Context) ([]CategoryView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description FROM categories ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryView, 0)
	for rows.Next() {
		var view CategoryView
		var id uuid.UUID
		if err = rows.Scan(&id, &view.Name, &view.Description); err != nil {
			return nil, err
		}

		categoryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = categoryID

		categories = append(categories, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (h GetCatalogQueryHandler) fetchProducts(ctx context.Context) ([]ProductView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, description, category_id, price FROM products ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductView, 0)
	for rows.Next() {
		var view ProductView
		var id, categoryID uuid.UUID
		if err = rows.Scan(&id, &view.Name, &view.Description, &categoryID, &view.Price); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = productID

		productCategoryID, idErr := kernel.UUIDFromBytes(categoryID[:])
		if idErr != nil {
			return nil, idErr
		}
		view.CategoryID = productCategoryID

		products = append(products, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

func (h GetCatalogQueryHandler) fetchStainTypes(ctx context.Context) ([]StainTypeView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, surcharge FROM stain_types ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stainTypes := make([]StainTypeView, 0)
	for rows.Next() {
		var view StainTypeView
		var id uuid.UUID
		if err = rows.Scan(&id, &view.Name, &view.Surcharge); err != nil {
			return nil, err
		}

		stainTypeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = stainTypeID

		stainTypes = append(stainTypes, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stainTypes, nil
}
