package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/darziapp/darzi-backend/pkg/enums"
)

// Payment is an immutable ledger entry recording money collected against an
// order. Payments are never updated; corrections are recorded as new rows.
type Payment struct {
	ID        uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ShopID    uuid.UUID           `gorm:"column:shop_id;type:uuid;not null" json:"shop_id"`
	OrderID   uuid.UUID           `gorm:"column:order_id;type:uuid;not null" json:"order_id"`
	Amount    decimal.Decimal     `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	Method    enums.PaymentMethod `gorm:"column:method;type:payment_method_enum;not null" json:"method"`
	Note      *string             `gorm:"column:note" json:"note,omitempty"`
	PaidAt    time.Time           `gorm:"column:paid_at;not null" json:"paid_at"`
	CreatedAt time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
