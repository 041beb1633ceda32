package tailors

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/internal/repo"
	"github.com/darziapp/darzi-backend/pkg/db/models"
	"github.com/darziapp/darzi-backend/pkg/pagination"
)

// Repository handles tailor persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to tailor operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create persists a new tailor row.
func (r *Repository) Create(ctx context.Context, dto CreateTailorDTO) (*models.Tailor, error) {
	tailor := dto.ToModel()
	if tailor.ID == uuid.Nil {
		tailor.ID = uuid.New()
	}
	if err := r.DB(ctx).Create(tailor).Error; err != nil {
		return nil, err
	}
	return tailor, nil
}

// FindByID loads a tailor scoped to its shop.
func (r *Repository) FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Tailor, error) {
	var tailor models.Tailor
	err := r.DB(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&tailor).Error
	if err != nil {
		return nil, err
	}
	return &tailor, nil
}

// ListByShop returns one cursor page of a shop's tailors, newest first.
func (r *Repository) ListByShop(ctx context.Context, shopID uuid.UUID, params pagination.Params) ([]models.Tailor, error) {
	query := r.DB(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit))

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, fmt.Errorf("parse cursor: %w", err)
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var tailors []models.Tailor
	if err := query.Find(&tailors).Error; err != nil {
		return nil, err
	}
	return tailors, nil
}

// Update saves the provided tailor.
func (r *Repository) Update(ctx context.Context, tailor *models.Tailor) error {
	if tailor == nil {
		return fmt.Errorf("tailor is required")
	}
	return r.DB(ctx).Save(tailor).Error
}
