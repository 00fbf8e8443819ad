package settingsrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/settings"
	"laundry/internal/pkg/errs"
)

// GormSettingsRepository implements SettingsRepository using GORM.
type GormSettingsRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB, tracker aggregateTracker) *GormSettingsRepository {
	return &GormSettingsRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the settings record.
func (r *GormSettingsRepository) Save(ctx context.Context, aggregate *settings.StoreSettings) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves the settings record.
func (r *GormSettingsRepository) Get(ctx context.Context) (*settings.StoreSettings, error) {
	var dto StoreSettingsDTO
	if err := r.db.WithContext(ctx).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storeSettings", "singleton")
		}
		return nil, err
	}

	return toDomain(dto)
}
