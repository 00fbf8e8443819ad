// Package catalogrepo provides data transfer objects and mapping functions for catalog persistence:
// products, their categories and the stain types with treatment surcharges.
package catalogrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// CategoryDTO represents the database structure for persisting categories.
type CategoryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// StainTypeDTO represents the database structure for persisting stain types.
type StainTypeDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Surcharge decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for stain type entities.
func (StainTypeDTO) TableName() string {
	return "stain_types"
}

func productFromDomain(aggregate *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		CategoryID:  aggregate.CategoryID().Bytes(),
		Price:       aggregate.Price().Amount(),
	}
}

func productToDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.NewProduct(id, dto.Name, dto.Description, categoryID, price)
}

func categoryFromDomain(aggregate *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.NewCategory(id, dto.Name, dto.Description)
}

func stainTypeFromDomain(aggregate *catalog.StainType) StainTypeDTO {
	return StainTypeDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Surcharge: aggregate.Surcharge().Amount(),
	}
}

func stainTypeToDomain(dto StainTypeDTO) (*catalog.StainType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	surcharge, err := kernel.NewPrice(dto.Surcharge)
	if err != nil {
		return nil, err
	}

	return catalog.NewStainType(id, dto.Name, surcharge)
}
