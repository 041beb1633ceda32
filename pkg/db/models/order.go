package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/darziapp/darzi-backend/pkg/enums"
)

// Order is a stitching or alteration job placed by a customer.
//
// Total is nullable: rows imported from before totals were captured carry
// NULL and fall back to the sum of their line-item material costs. PlacedAt
// is likewise nullable for legacy imports with garbled dates; aggregation
// drops such rows instead of guessing.
type Order struct {
	ID         uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ShopID     uuid.UUID           `gorm:"column:shop_id;type:uuid;not null" json:"shop_id"`
	CustomerID uuid.UUID           `gorm:"column:customer_id;type:uuid;not null" json:"customer_id"`
	TailorID   *uuid.UUID          `gorm:"column:tailor_id;type:uuid" json:"tailor_id,omitempty"`
	Category   enums.OrderCategory `gorm:"column:category;type:order_category_enum" json:"category"`
	Status     enums.OrderStatus   `gorm:"column:status;type:order_status_enum;not null;default:'pending'" json:"status"`
	Total      *decimal.Decimal    `gorm:"column:total;type:numeric(12,2)" json:"total,omitempty"`
	Notes      *string             `gorm:"column:notes" json:"notes,omitempty"`
	PlacedAt   *time.Time          `gorm:"column:placed_at" json:"placed_at,omitempty"`
	DueAt      *time.Time          `gorm:"column:due_at" json:"due_at,omitempty"`
	Items      []OrderItem         `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// OrderItem captures one garment or alteration line within an order.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderID      uuid.UUID       `gorm:"column:order_id;type:uuid;not null" json:"order_id"`
	Description  string          `gorm:"column:description;not null" json:"description"`
	MaterialCost decimal.Decimal `gorm:"column:material_cost;type:numeric(12,2);not null;default:0" json:"material_cost"`
	Qty          int             `gorm:"column:qty;not null;default:1" json:"qty"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
