package measurements

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/internal/repo"
	"github.com/darziapp/darzi-backend/pkg/db/models"
)

// Repository handles measurement persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to measurement operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create persists a new measurement profile.
func (r *Repository) Create(ctx context.Context, dto CreateMeasurementDTO) (*models.Measurement, error) {
	measurement := dto.ToModel()
	if measurement.ID == uuid.Nil {
		measurement.ID = uuid.New()
	}
	if err := r.DB(ctx).Create(measurement).Error; err != nil {
		return nil, err
	}
	return measurement, nil
}

// FindByID loads a measurement scoped to its shop.
func (r *Repository) FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Measurement, error) {
	var measurement models.Measurement
	err := r.DB(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&measurement).Error
	if err != nil {
		return nil, err
	}
	return &measurement, nil
}

// ListByCustomer returns all measurement profiles of one customer.
func (r *Repository) ListByCustomer(ctx context.Context, shopID, customerID uuid.UUID) ([]models.Measurement, error) {
	var measurements []models.Measurement
	err := r.DB(ctx).
		Where("shop_id = ? AND customer_id = ?", shopID, customerID).
		Order("created_at DESC").
		Find(&measurements).Error
	if err != nil {
		return nil, err
	}
	return measurements, nil
}

// Update saves the provided measurement.
func (r *Repository) Update(ctx context.Context, measurement *models.Measurement) error {
	if measurement == nil {
		return fmt.Errorf("measurement is required")
	}
	return r.DB(ctx).Save(measurement).Error
}

// Delete removes a measurement scoped to its shop.
func (r *Repository) Delete(ctx context.Context, shopID, id uuid.UUID) error {
	result := r.DB(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&models.Measurement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
