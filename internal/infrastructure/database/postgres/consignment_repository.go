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

type ConsignmentRepository struct {
	db *DB
}

func NewConsignmentRepository(db *DB) *ConsignmentRepository {
	return &ConsignmentRepository{db: db}
}

func (r *ConsignmentRepository) Create(ctx context.Context, c *shipment.Consignment) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	if c.Status == "" {
		c.Status = shipment.StatusPending
	}

	dbModel := models.ToConsignmentModel(c)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		// The unique index on shipment_id enforces the one-consignment-per-
		// shipment invariant even when two creates race past the pre-check.
		if isUniqueViolation(err) {
			return shipment.ErrDuplicateConsignment
		}
		return fmt.Errorf("failed to create consignment: %w", err)
	}

	c.ID = dbModel.ID
	c.CreatedAt = dbModel.CreatedAt
	c.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *ConsignmentRepository) GetByShipmentID(ctx context.Context, shipmentID uint) (*shipment.Consignment, error) {
	var dbModel models.ConsignmentModel
	err := r.db.DB.WithContext(ctx).Where("shipment_id = ?", shipmentID).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shipment.ErrConsignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get consignment: %w", err)
	}
	return models.ToConsignmentEntity(&dbModel), nil
}

func (r *ConsignmentRepository) GetAll(ctx context.Context) ([]*shipment.Consignment, error) {
	var dbModels []models.ConsignmentModel
	if err := r.db.DB.WithContext(ctx).Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list consignments: %w", err)
	}
	return toConsignmentEntities(dbModels), nil
}

func (r *ConsignmentRepository) ListByStatus(ctx context.Context, status shipment.ConsignmentStatus) ([]*shipment.Consignment, error) {
	var dbModels []models.ConsignmentModel
	if err := r.db.DB.WithContext(ctx).Where("status = ?", string(status)).Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list consignments by status: %w", err)
	}
	return toConsignmentEntities(dbModels), nil
}

func toConsignmentEntities(dbModels []models.ConsignmentModel) []*shipment.Consignment {
	consignments := make([]*shipment.Consignment, 0, len(dbModels))
	for i := range dbModels {
		consignments = append(consignments, models.ToConsignmentEntity(&dbModels[i]))
	}
	return consignments
}
