package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a shop-scoped customer record.
type Customer struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ShopID    uuid.UUID `gorm:"column:shop_id;type:uuid;not null" json:"shop_id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Phone     string    `gorm:"column:phone;not null" json:"phone"`
	Email     *string   `gorm:"column:email" json:"email,omitempty"`
	Address   *string   `gorm:"column:address" json:"address,omitempty"`
	Notes     *string   `gorm:"column:notes" json:"notes,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
