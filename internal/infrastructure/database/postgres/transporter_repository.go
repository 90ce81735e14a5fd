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

type TransporterRepository struct {
	db *DB
}

func NewTransporterRepository(db *DB) *TransporterRepository {
	return &TransporterRepository{db: db}
}

func (r *TransporterRepository) Create(ctx context.Context, t *account.Transporter) error {
	t.CreatedAt = time.Now()
	t.UpdatedAt = time.Now()

	dbModel := models.ToTransporterModel(t)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		if isUniqueViolation(err) {
			return account.ErrDuplicate
		}
		return fmt.Errorf("failed to create transporter: %w", err)
	}

	t.ID = dbModel.ID
	t.CreatedAt = dbModel.CreatedAt
	t.UpdatedAt = dbModel.UpdatedAt

	return nil
}

func (r *TransporterRepository) GetByID(ctx context.Context, id uint) (*account.Transporter, error) {
	return r.getOne(ctx, "id = ?", id)
}

func (r *TransporterRepository) GetByEmail(ctx context.Context, email string) (*account.Transporter, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *TransporterRepository) GetByMobile(ctx context.Context, mobileNumber string) (*account.Transporter, error) {
	return r.getOne(ctx, "mobile_number = ?", mobileNumber)
}

func (r *TransporterRepository) GetByGSTNumber(ctx context.Context, gstNumber string) (*account.Transporter, error) {
	return r.getOne(ctx, "gst_number = ?", gstNumber)
}

func (r *TransporterRepository) GetByEmailAndGST(ctx context.Context, email, gstNumber string) (*account.Transporter, error) {
	return r.getOne(ctx, "email = ? AND gst_number = ?", email, gstNumber)
}

func (r *TransporterRepository) SetEmailVerified(ctx context.Context, id uint) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.TransporterModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"email_verified": true,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark transporter email verified: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *TransporterRepository) GetAll(ctx context.Context) ([]*account.Transporter, error) {
	var dbModels []models.TransporterModel
	if err := r.db.DB.WithContext(ctx).Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list transporters: %w", err)
	}

	transporters := make([]*account.Transporter, 0, len(dbModels))
	for i := range dbModels {
		transporters = append(transporters, models.ToTransporterEntity(&dbModels[i]))
	}
	return transporters, nil
}

func (r *TransporterRepository) getOne(ctx context.Context, query string, args ...interface{}) (*account.Transporter, error) {
	var dbModel models.TransporterModel
	err := r.db.DB.WithContext(ctx).Where(query, args...).First(&dbModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, account.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transporter: %w", err)
	}
	return models.ToTransporterEntity(&dbModel), nil
}
