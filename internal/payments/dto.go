package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	"github.com/darziapp/darzi-backend/pkg/enums"
)

// PaymentDTO is the API view of a ledger entry.
type PaymentDTO struct {
	ID        uuid.UUID           `json:"id"`
	ShopID    uuid.UUID           `json:"shop_id"`
	OrderID   uuid.UUID           `json:"order_id"`
	Amount    decimal.Decimal     `json:"amount"`
	Method    enums.PaymentMethod `json:"method"`
	Note      *string             `json:"note,omitempty"`
	PaidAt    time.Time           `json:"paid_at"`
	CreatedAt time.Time           `json:"created_at"`
}

// CreatePaymentDTO holds creation-time ledger data.
type CreatePaymentDTO struct {
	ShopID  uuid.UUID
	OrderID uuid.UUID
	Amount  decimal.Decimal
	Method  enums.PaymentMethod
	Note    *string
	PaidAt  time.Time
}

// FromModel maps a persisted payment into a DTO.
func FromModel(m *models.Payment) *PaymentDTO {
	if m == nil {
		return nil
	}
	return &PaymentDTO{
		ID:        m.ID,
		ShopID:    m.ShopID,
		OrderID:   m.OrderID,
		Amount:    m.Amount,
		Method:    m.Method,
		Note:      m.Note,
		PaidAt:    m.PaidAt,
		CreatedAt: m.CreatedAt,
	}
}

// ToModel prepares the GORM model from creation data.
func (c CreatePaymentDTO) ToModel() *models.Payment {
	return &models.Payment{
		ShopID:  c.ShopID,
		OrderID: c.OrderID,
		Amount:  c.Amount,
		Method:  c.Method,
		Note:    c.Note,
		PaidAt:  c.PaidAt,
	}
}
