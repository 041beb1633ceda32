package shops

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/internal/repo"
	"github.com/darziapp/darzi-backend/pkg/db/models"
)

// Repository handles shop persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to shop operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create persists a new shop row.
func (r *Repository) Create(ctx context.Context, dto CreateShopDTO) (*models.Shop, error) {
	shop := dto.ToModel()
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	if err := r.DB(ctx).Create(shop).Error; err != nil {
		return nil, err
	}
	return shop, nil
}

// FindByID loads a shop by its UUID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	if err := r.DB(ctx).Where("id = ?", id).First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// Update saves the provided shop.
func (r *Repository) Update(ctx context.Context, shop *models.Shop) error {
	if shop == nil {
		return fmt.Errorf("shop is required")
	}
	return r.DB(ctx).Save(shop).Error
}
