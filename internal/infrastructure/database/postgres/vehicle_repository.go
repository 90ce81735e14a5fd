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

type VehicleRepository struct {
	db *DB
}

func NewVehicleRepository(db *DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *fleet.Vehicle) error {
	v.CreatedAt = time.Now()
	v.UpdatedAt = time.Now()

	dbModel, err := models.ToVehicleModel(v)
	if err != nil {
		return fmt.Errorf("failed to encode vehicle dimension: %w", err)
	}

	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err) {
			return fleet.ErrDuplicateVehicleNumber
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}

	v.ID = dbModel.ID
	v.CreatedAt = dbModel.CreatedAt
	v.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *VehicleRepository) GetByNumber(ctx context.Context, vehicleNumber string) (*fleet.Vehicle, error) {
	var dbModel models.VehicleModel
	err := r.db.DB.WithContext(ctx).Where("vehicle_number = ?", vehicleNumber).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fleet.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return models.ToVehicleEntity(&dbModel), nil
}

func (r *VehicleRepository) ListByTransporter(ctx context.Context, transporterID uint) ([]*fleet.Vehicle, error) {
	var dbModels []models.VehicleModel
	if err := r.db.DB.WithContext(ctx).Where("transporter_id = ?", transporterID).Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	vehicles := make([]*fleet.Vehicle, 0, len(dbModels))
	for i := range dbModels {
		vehicles = append(vehicles, models.ToVehicleEntity(&dbModels[i]))
	}
	return vehicles, nil
}
