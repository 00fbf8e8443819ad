// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Money columns are numeric so captured prices survive round-trips exactly.
// UpdatedAt doubles as the completion timestamp for revenue reporting, since
// the final write on an order is its transition to completed.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index"`
	IsExpress  bool            `gorm:"not null"`
	ExpressFee decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status     int             `gorm:"not null;index"`
	Items      []LineItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents the database structure for persisting order lines.
// Base price and stain surcharge are the values captured at order-entry time;
// custom_price is null unless the clerk overrode the catalog price.
type LineItemDTO struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID           `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID           `gorm:"type:uuid;not null"`
	BasePrice      decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	CustomPrice    decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	StainTypeID    *uuid.UUID          `gorm:"type:uuid"`
	StainSurcharge decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	Quantity       int                 `gorm:"type:int;not null"`
	Note           string              `gorm:"type:text"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_items".
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Line rows get fresh identifiers on every save; the domain treats lines as
// values owned by the order, so row identity does not need to be stable.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]LineItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		var customPrice decimal.NullDecimal
		if price := item.CustomPrice(); price != nil {
			customPrice = decimal.NullDecimal{Decimal: price.Amount(), Valid: true}
		}

		var stainTypeID *uuid.UUID
		if id := item.StainTypeID(); id != nil {
			raw := id.Bytes()
			stainTypeID = &raw
		}

		items = append(items, LineItemDTO{
			ID:             kernel.NewUUID().Bytes(),
			OrderID:        orderID,
			ProductID:      item.ProductID().Bytes(),
			BasePrice:      item.BasePrice().Amount(),
			CustomPrice:    customPrice,
			StainTypeID:    stainTypeID,
			StainSurcharge: item.StainSurcharge().Amount(),
			Quantity:       item.Quantity(),
			Note:           item.Note(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().Bytes(),
		IsExpress:  aggregate.IsExpress(),
		ExpressFee: aggregate.ExpressFee().Amount(),
		Status:     int(aggregate.Status()),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	expressFee, err := kernel.NewPrice(dto.ExpressFee)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := lineItemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, items, dto.IsExpress, expressFee, order.Status(dto.Status))
}

// lineItemToDomain converts a line row to its domain value object.
func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.LineItem{}, err
	}

	basePrice, err := kernel.NewPrice(dto.BasePrice)
	if err != nil {
		return order.LineItem{}, err
	}

	var customPrice *kernel.Price
	if dto.CustomPrice.Valid {
		price, priceErr := kernel.NewPrice(dto.CustomPrice.Decimal)
		if priceErr != nil {
			return order.LineItem{}, priceErr
		}
		customPrice = &price
	}

	var stainTypeID *kernel.UUID
	if dto.StainTypeID != nil {
		stID, stErr := kernel.UUIDFromBytes((*dto.StainTypeID)[:])
		if stErr != nil {
			return order.LineItem{}, stErr
		}
		stainTypeID = &stID
	}

	stainSurcharge, err := kernel.NewPrice(dto.StainSurcharge)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(productID, basePrice, customPrice, stainTypeID, stainSurcharge, dto.Quantity, dto.Note)
}
