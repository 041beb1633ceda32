package models

import (
	"time"

	"github.com/google/uuid"
)

// Tailor is a shop-scoped worker who orders can be assigned to.
type Tailor struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ShopID    uuid.UUID `gorm:"column:shop_id;type:uuid;not null" json:"shop_id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Phone     *string   `gorm:"column:phone" json:"phone,omitempty"`
	Specialty *string   `gorm:"column:specialty" json:"specialty,omitempty"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
