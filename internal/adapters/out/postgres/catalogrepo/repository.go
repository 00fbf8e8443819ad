package catalogrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddProduct saves a new product to the database.
func (r *GormCatalogRepository) AddProduct(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateProduct saves an existing product to the database.
func (r *GormCatalogRepository) UpdateProduct(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", dto.ID).
		Select("Name", "Description", "CategoryID", "Price").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetProduct retrieves a product by ID.
func (r *GormCatalogRepository) GetProduct(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

// DeleteProduct removes a product by ID. Line items on existing orders keep
// their captured prices, so no repricing happens here.
func (r *GormCatalogRepository) DeleteProduct(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

// AddCategory saves a new category to the database.
func (r *GormCatalogRepository) AddCategory(ctx context.Context, aggregate *catalog.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetCategory retrieves a category by ID.
func (r *GormCatalogRepository) GetCategory(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// AddStainType saves a new stain type to the database.
func (r *GormCatalogRepository) AddStainType(ctx context.Context, aggregate *catalog.StainType) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := stainTypeFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetStainType retrieves a stain type by ID.
func (r *GormCatalogRepository) GetStainType(ctx context.Context, id kernel.UUID) (*catalog.StainType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StainTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stainType", id.String())
		}
		return nil, err
	}

	return stainTypeToDomain(dto)
}
