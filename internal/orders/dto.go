package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/darziapp/darzi-backend/pkg/db/models"
	"github.com/darziapp/darzi-backend/pkg/enums"
)

// OrderDTO is the API view of an order with its line items.
type OrderDTO struct {
	ID         uuid.UUID           `json:"id"`
	ShopID     uuid.UUID           `json:"shop_id"`
	CustomerID uuid.UUID           `json:"customer_id"`
	TailorID   *uuid.UUID          `json:"tailor_id,omitempty"`
	Category   enums.OrderCategory `json:"category,omitempty"`
	Status     enums.OrderStatus   `json:"status"`
	Total      *decimal.Decimal    `json:"total,omitempty"`
	Notes      *string             `json:"notes,omitempty"`
	PlacedAt   *time.Time          `json:"placed_at,omitempty"`
	DueAt      *time.Time          `json:"due_at,omitempty"`
	Items      []OrderItemDTO      `json:"items,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// OrderItemDTO is one garment or alteration line.
type OrderItemDTO struct {
	ID           uuid.UUID       `json:"id"`
	Description  string          `json:"description"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	Qty          int             `json:"qty"`
}

// CreateOrderDTO holds creation-time order data.
type CreateOrderDTO struct {
	ShopID     uuid.UUID
	CustomerID uuid.UUID
	TailorID   *uuid.UUID
	Category   enums.OrderCategory
	Total      *decimal.Decimal
	Notes      *string
	PlacedAt   time.Time
	DueAt      *time.Time
	Items      []CreateOrderItemDTO
}

// CreateOrderItemDTO holds one creation-time line item.
type CreateOrderItemDTO struct {
	Description  string
	MaterialCost decimal.Decimal
	Qty          int
}

// FromModel maps a persisted order into a DTO.
func FromModel(m *models.Order) *OrderDTO {
	if m == nil {
		return nil
	}
	dto := &OrderDTO{
		ID:         m.ID,
		ShopID:     m.ShopID,
		CustomerID: m.CustomerID,
		TailorID:   m.TailorID,
		Category:   m.Category,
		Status:     m.Status,
		Total:      m.Total,
		Notes:      m.Notes,
		PlacedAt:   m.PlacedAt,
		DueAt:      m.DueAt,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	for _, item := range m.Items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:           item.ID,
			Description:  item.Description,
			MaterialCost: item.MaterialCost,
			Qty:          item.Qty,
		})
	}
	return dto
}

// ToModel prepares the GORM model from creation data. New orders start
// pending.
func (c CreateOrderDTO) ToModel() *models.Order {
	placedAt := c.PlacedAt
	order := &models.Order{
		ShopID:     c.ShopID,
		CustomerID: c.CustomerID,
		TailorID:   c.TailorID,
		Category:   c.Category,
		Status:     enums.OrderStatusPending,
		Total:      c.Total,
		Notes:      c.Notes,
		PlacedAt:   &placedAt,
		DueAt:      c.DueAt,
	}
	for _, item := range c.Items {
		qty := item.Qty
		if qty <= 0 {
			qty = 1
		}
		order.Items = append(order.Items, models.OrderItem{
			Description:  item.Description,
			MaterialCost: item.MaterialCost,
			Qty:          qty,
		})
	}
	return order
}
