package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight-marketplace/internal/domain/shipment"
	"freight-marketplace/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type ShipmentRepository struct {
	db *DB
}

func NewShipmentRepository(db *DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

func (r *ShipmentRepository) Create(ctx context.Context, s *shipment.Shipment) error {
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()

	dbModel := models.ToShipmentModel(s)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create shipment: %w", err)
	}

	s.ID = dbModel.ID
	s.CreatedAt = dbModel.CreatedAt
	s.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *ShipmentRepository) GetByID(ctx context.Context, id uint) (*shipment.Shipment, error) {
	var dbModel models.ShipmentModel
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrShipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}
	return models.ToShipmentEntity(&dbModel), nil
}

func (r *ShipmentRepository) ListByShipper(ctx context.Context, shipperID uint) ([]*shipment.Shipment, error) {
	var dbModels []models.ShipmentModel
	if err := r.db.DB.WithContext(ctx).Where("shipper_id = ?", shipperID).Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list shipments: %w", err)
	}

	shipments := make([]*shipment.Shipment, 0, len(dbModels))
	for i := range dbModels {
		shipments = append(shipments, models.ToShipmentEntity(&dbModels[i]))
	}
	return shipments, nil
}
