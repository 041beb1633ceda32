package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/internal/repo"
	"github.com/darziapp/darzi-backend/pkg/db/models"
	"github.com/darziapp/darzi-backend/pkg/enums"
	"github.com/darziapp/darzi-backend/pkg/pagination"
)

// ListFilter narrows a paginated order listing.
type ListFilter struct {
	Status     *enums.OrderStatus
	CustomerID *uuid.UUID
}

// Repository handles order persistence.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to order operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create persists a new order and its line items in one insert.
func (r *Repository) Create(ctx context.Context, dto CreateOrderDTO) (*models.Order, error) {
	order := dto.ToModel()
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
	}
	if err := r.DB(ctx).Create(order).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// FindByID loads an order with its items, scoped to its shop.
func (r *Repository) FindByID(ctx context.Context, shopID, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB(ctx).
		Preload("Items").
		Where("id = ? AND shop_id = ?", id, shopID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns one cursor page of a shop's orders, newest first.
func (r *Repository) List(ctx context.Context, shopID uuid.UUID, filter ListFilter, params pagination.Params) ([]models.Order, error) {
	query := r.DB(ctx).
		Preload("Items").
		Where("shop_id = ?", shopID).
		Order("created_at DESC, id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit))

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, fmt.Errorf("parse cursor: %w", err)
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByShop returns every order of a shop with items preloaded. The
// dashboard aggregation consumes this; it needs the full history because
// month-spanning windows and legacy undated rows are handled in memory.
func (r *Repository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB(ctx).
		Preload("Items").
		Where("shop_id = ?", shopID).
		Order("placed_at ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Update saves the provided order. Line items are managed at creation time
// and not rewritten here.
func (r *Repository) Update(ctx context.Context, order *models.Order) error {
	if order == nil {
		return fmt.Errorf("order is required")
	}
	return r.DB(ctx).Omit("Items").Save(order).Error
}
