package payments

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/darziapp/darzi-backend/internal/repo"
	"github.com/darziapp/darzi-backend/pkg/db/models"
)

// Repository handles ledger persistence. The ledger is append-only: there
// are no update or delete operations, corrections are new rows.
type Repository struct {
	repo.Base
}

// NewRepository binds a GORM DB to ledger operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create appends a ledger entry.
func (r *Repository) Create(ctx context.Context, dto CreatePaymentDTO) (*models.Payment, error) {
	payment := dto.ToModel()
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if err := r.DB(ctx).Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

// ListByOrder returns the entries recorded against one order, oldest first.
func (r *Repository) ListByOrder(ctx context.Context, shopID, orderID uuid.UUID) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.DB(ctx).
		Where("shop_id = ? AND order_id = ?", shopID, orderID).
		Order("paid_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// ListByShopWindow returns the entries a shop collected inside a time
// window, boundaries inclusive. The dashboard aggregation consumes this.
func (r *Repository) ListByShopWindow(ctx context.Context, shopID uuid.UUID, start, end time.Time) ([]models.Payment, error) {
	var payments []models.Payment
	err := r.DB(ctx).
		Where("shop_id = ? AND paid_at >= ? AND paid_at <= ?", shopID, start, end).
		Order("paid_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
