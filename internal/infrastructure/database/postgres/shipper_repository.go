package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight-marketplace/internal/domain/account"
	"freight-marketplace/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type ShipperRepository struct {
	db *DB
}

func NewShipperRepository(db *DB) *ShipperRepository {
	return &ShipperRepository{db: db}
}

func (r *ShipperRepository) Create(ctx context.Context, s *account.Shipper) error {
	s.CreatedAt = time.Now()
	s.UpdatedAt = time.Now()

	dbModel := models.ToShipperModel(s)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err) {
			return account.ErrDuplicate
		}
		return fmt.Errorf("failed to create shipper: %w", err)
	}

	s.ID = dbModel.ID
	s.CreatedAt = dbModel.CreatedAt
	s.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *ShipperRepository) GetByID(ctx context.Context, id uint) (*account.Shipper, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *ShipperRepository) GetByEmail(ctx context.Context, email string) (*account.Shipper, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *ShipperRepository) GetByMobile(ctx context.Context, mobileNumber string) (*account.Shipper, error) {
	return r.getOne(ctx, "mobile_number = ?", mobileNumber)
}

func (r *ShipperRepository) GetByGSTNumber(ctx context.Context, gstNumber string) (*account.Shipper, error) {
	return r.getOne(ctx, "gst_number = ?", gstNumber)
}

func (r *ShipperRepository) GetByEmailAndGST(ctx context.Context, email, gstNumber string) (*account.Shipper, error) {
	return r.getOne(ctx, "email = ? AND gst_number = ?", email, gstNumber)
}

func (r *ShipperRepository) SetEmailVerified(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.ShipperModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"email_verified": true,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark shipper email verified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *ShipperRepository) getOne(ctx context.Context, query string, args ...interface{}) (*account.Shipper, error) {
	var dbModel models.ShipperModel
	err := r.db.DB.WithContext(ctx).Where(query, args...).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, account.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get shipper: %w", err)
	}
	return models.ToShipperEntity(&dbModel), nil
}
