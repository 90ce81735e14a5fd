package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight-marketplace/internal/domain/fleet"
	"freight-marketplace/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type DriverRepository struct {
	db *DB
}

func NewDriverRepository(db *DB) *DriverRepository {
	return &DriverRepository{db: db}
}

func (r *DriverRepository) Create(ctx context.Context, d *fleet.Driver) error {
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()

	dbModel := models.ToDriverModel(d)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err) {
			return fleet.ErrDuplicateDriverPhone
		}
		return fmt.Errorf("failed to create driver: %w", err)
	}

	d.ID = dbModel.ID
	d.CreatedAt = dbModel.CreatedAt
	d.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *DriverRepository) GetByPhone(ctx context.Context, phoneNumber string) (*fleet.Driver, error) {
	var dbModel models.DriverModel
	err := r.db.DB.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fleet.ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return models.ToDriverEntity(&dbModel), nil
}

func (r *DriverRepository) ListByTransporter(ctx context.Context, transporterID uint) ([]*fleet.Driver, error) {
	var dbModels []models.DriverModel
	if err := r.db.DB.WithContext(ctx).Where("transporter_id = ?", transporterID).Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}

	drivers := make([]*fleet.Driver, 0, len(dbModels))
	for i := range dbModels {
		drivers = append(drivers, models.ToDriverEntity(&dbModels[i]))
	}
	return drivers, nil
}
