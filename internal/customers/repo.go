package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/internal/repo"
	"github.com/darziapp/darzi-backend/pkg/db/models"
	"github.com/darziapp/darzi-backend/pkg/pagination"
)

// Repository handles customer persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to customer operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create persists a new customer row.
func (r *Repository) Create(ctx context.Context, dto CreateCustomerDTO) (*models.Customer, error) {
	customer := dto.ToModel()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if err := r.DB(ctx).Create(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// FindByID loads a customer scoped to its shop.
func (r *Repository) FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	err := r.DB(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&customer).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// ListByShop returns one cursor page of a shop's customers, newest first,
// optionally narrowed by a name/phone search term.
func (r *Repository) ListByShop(ctx context.Context, shopID uuid.UUID, filter ListFilter, params pagination.Params) ([]models.Customer, error) {
	query := r.DB(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit))

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(phone) LIKE ?)", pattern, pattern)
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, fmt.Errorf("parse cursor: %w", err)
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var customers []models.Customer
	if err := query.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// Update saves the provided customer.
func (r *Repository) Update(ctx context.Context, customer *models.Customer) error {
	if customer == nil {
		return fmt.Errorf("customer is required")
	}
	return r.DB(ctx).Save(customer).Error
}

// Delete removes a customer scoped to its shop.
func (r *Repository) Delete(ctx context.Context, shopID, id uuid.UUID) error {
	result := r.DB(ctx).
		Where("id = ? AND shop_id = ?", id, shopID).
		Delete(&models.Customer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
