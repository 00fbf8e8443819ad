// Package settingsrepo provides data transfer objects and mapping functions for
// the store-wide settings record.
package settingsrepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/settings"
)

// StoreSettingsDTO represents the database structure for the single settings row.
type StoreSettingsDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StoreName      string          `gorm:"type:varchar(255);not null"`
	StoreAddress   string          `gorm:"type:text"`
	StorePhone     string          `gorm:"type:varchar(64)"`
	VATRatePercent decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	ExpressFee     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for the settings record.
func (StoreSettingsDTO) TableName() string {
	return "store_settings"
}

// fromDomain converts a settings domain aggregate to its database representation.
func fromDomain(aggregate *settings.StoreSettings) StoreSettingsDTO {
	return StoreSettingsDTO{
		ID:             aggregate.ID().Bytes(),
		StoreName:      aggregate.StoreName(),
		StoreAddress:   aggregate.StoreAddress(),
		StorePhone:     aggregate.StorePhone(),
		VATRatePercent: aggregate.VATRatePercent(),
		ExpressFee:     aggregate.ExpressFee().Amount(),
	}
}

// toDomain converts a database DTO to a settings domain aggregate.
func toDomain(dto StoreSettingsDTO) (*settings.StoreSettings, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	expressFee, err := kernel.NewPrice(dto.ExpressFee)
	if err != nil {
		return nil, err
	}

	return settings.NewStoreSettings(
		id,
		dto.StoreName,
		dto.StoreAddress,
		dto.StorePhone,
		dto.VATRatePercent,
		expressFee,
	)
}
